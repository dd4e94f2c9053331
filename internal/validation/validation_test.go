package validation_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tara_na/internal/validation"
)

func fields(errs validation.FieldErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestRouteListAcceptsValidQuery(t *testing.T) {
	q, errs := validation.RouteList(url.Values{"lgu": {"Quezon City"}, "type": {"jeepney"}})
	require.Empty(t, errs)
	assert.Equal(t, "Quezon City", q.LGU)
	assert.Equal(t, "jeepney", q.Type)
}

func TestRouteListRejectsUnknownType(t *testing.T) {
	_, errs := validation.RouteList(url.Values{"type": {"ferry"}})
	require.Len(t, errs, 1)
	assert.Equal(t, "type", errs[0].Field)
	assert.Equal(t, "must be one of jeepney, tricycle, bus", errs[0].Message)
}

func TestAnnouncementListLimitCoercion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		message string
	}{
		{name: "absent defaults to 50", raw: "", want: 50},
		{name: "in range", raw: "25", want: 25},
		{name: "upper bound", raw: "200", want: 200},
		{name: "zero", raw: "0", message: "must be at least 1"},
		{name: "over maximum", raw: "201", message: "must be at most 200"},
		{name: "not a number", raw: "abc", message: "must be a number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := url.Values{}
			if tc.raw != "" {
				values.Set("limit", tc.raw)
			}
			q, errs := validation.AnnouncementList(values)
			if tc.message == "" {
				require.Empty(t, errs)
				assert.Equal(t, tc.want, q.Limit)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "limit", errs[0].Field)
			assert.Equal(t, tc.message, errs[0].Message)
		})
	}
}

func TestReportListRejectsMalformedUUIDs(t *testing.T) {
	_, errs := validation.ReportList(url.Values{"route_id": {"not-a-uuid"}})
	require.Len(t, errs, 1)
	assert.Equal(t, "route_id", errs[0].Field)
	assert.Equal(t, "must be a valid uuid", errs[0].Message)
}

func TestReportListReportsEveryFailingField(t *testing.T) {
	_, errs := validation.ReportList(url.Values{
		"limit":    {"0"},
		"route_id": {"nope"},
		"trip_id":  {"also-nope"},
	})
	assert.ElementsMatch(t, []string{"limit", "route_id", "trip_id"}, fields(errs))
}

func TestReportCreateValidBody(t *testing.T) {
	body := `{"type":"reckless","text":"test","location":{"lat":14.6,"lng":120.98}}`
	in, errs := validation.ReportCreate(strings.NewReader(body))
	require.Empty(t, errs)
	assert.Equal(t, "reckless", in.Type)
	require.NotNil(t, in.Text)
	assert.Equal(t, "test", *in.Text)
	assert.Nil(t, in.RouteID)
	require.NotNil(t, in.Location)
	assert.Equal(t, 14.6, *in.Location.Lat)
	assert.Equal(t, 120.98, *in.Location.Lng)
}

func TestReportCreateRequiresType(t *testing.T) {
	_, errs := validation.ReportCreate(strings.NewReader(`{"text":"no type"}`))
	require.Len(t, errs, 1)
	assert.Equal(t, "type", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
}

func TestReportCreateRejectsPartialLocation(t *testing.T) {
	_, errs := validation.ReportCreate(strings.NewReader(`{"type":"reckless","location":{"lat":14.6}}`))
	require.Len(t, errs, 1)
	assert.Equal(t, "location.lng", errs[0].Field)
}

func TestReportCreateRejectsMalformedJSON(t *testing.T) {
	_, errs := validation.ReportCreate(strings.NewReader(`{"type":`))
	require.Len(t, errs, 1)
	assert.Equal(t, "body", errs[0].Field)
}

func TestReportCreateRejectsBadUUID(t *testing.T) {
	_, errs := validation.ReportCreate(strings.NewReader(`{"type":"reckless","route_id":"xyz"}`))
	require.Len(t, errs, 1)
	assert.Equal(t, "route_id", errs[0].Field)
	assert.Equal(t, "must be a valid uuid", errs[0].Message)
}
