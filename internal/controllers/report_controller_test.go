package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tara_na/internal/store"
)

type reportBody struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Text     *string         `json:"text"`
	RouteID  *string         `json:"route_id"`
	TripID   *string         `json:"trip_id"`
	Location json.RawMessage `json:"location"`
	TS       time.Time       `json:"ts"`
}

func TestCreateReportRoundTrip(t *testing.T) {
	server := newServer(t, store.NewDemoStore())
	start := time.Now().UTC()

	resp, err := http.Post(server.URL+"/reports", "application/json",
		strings.NewReader(`{"type":"reckless","text":"test"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data reportBody `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	_, err = uuid.Parse(created.Data.ID)
	assert.NoError(t, err, "id should be a fresh uuid")
	assert.False(t, created.Data.TS.Before(start))
	assert.Equal(t, "reckless", created.Data.Type)
	require.NotNil(t, created.Data.Text)
	assert.Equal(t, "test", *created.Data.Text)
	assert.Nil(t, created.Data.RouteID, "omitted optionals serialize as null")
	assert.Nil(t, created.Data.TripID)

	// Newest-first: the fresh report leads a limited read.
	resp, err = http.Get(server.URL + "/reports?limit=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed struct {
		Data []reportBody `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, created.Data.ID, listed.Data[0].ID)
}

func TestCreateReportWithLocation(t *testing.T) {
	server := newServer(t, store.NewDemoStore())

	resp, err := http.Post(server.URL+"/reports", "application/json",
		strings.NewReader(`{"type":"overloading","location":{"lat":14.6,"lng":120.98}}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			Location *struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotNil(t, created.Data.Location)
	assert.Equal(t, 14.6, created.Data.Location.Lat)
	assert.Equal(t, 120.98, created.Data.Location.Lng)
}

func TestCreateReportRejectsBadInputWithoutTouchingStore(t *testing.T) {
	stub := &stubStore{}
	server := newServer(t, stub)

	bodies := []string{
		`{"text":"missing type"}`,
		`{"type":"reckless","route_id":"not-a-uuid"}`,
		`{"type":"reckless","location":{"lat":14.6}}`,
		`{not json`,
	}
	for _, body := range bodies {
		resp, err := http.Post(server.URL+"/reports", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)
	}
	assert.Zero(t, stub.calls)
}

func TestListReportsRejectsMalformedUUIDFilter(t *testing.T) {
	stub := &stubStore{}
	server := newServer(t, stub)

	resp, err := http.Get(server.URL + "/reports?route_id=not-a-uuid")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, stub.calls)
}

func TestCreateReportBackendFailure(t *testing.T) {
	stub := &stubStore{err: errors.New("foreign key violation")}
	server := newServer(t, stub)

	resp, err := http.Post(server.URL+"/reports", "application/json",
		strings.NewReader(`{"type":"reckless"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "foreign key violation", body.Error)
}
