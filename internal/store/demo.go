package store

import (
	"context"
	"encoding/binary"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"

	"tara_na/internal/models"
)

// DemoStore serves fixed in-memory data when no database is configured.
// Routes, stops and announcements are frozen at construction; reports
// are the only mutable collection and a mutex keeps the newest-first
// prepend ordering intact under concurrent requests.
type DemoStore struct {
	mu            sync.RWMutex
	routes        []models.Route
	stops         []models.Stop
	announcements []models.Announcement
	reports       []models.Report
}

// Fixture ids referenced across collections.
const (
	demoRouteJeepneyID  = "00000000-0000-4000-8000-000000000001"
	demoRouteTricycleID = "00000000-0000-4000-8000-000000000002"
	demoRouteBusID      = "00000000-0000-4000-8000-000000000003"
)

func NewDemoStore() *DemoStore {
	now := time.Now().UTC()
	hourAgo := now.Add(-time.Hour)

	return &DemoStore{
		routes: []models.Route{
			{ID: demoRouteJeepneyID, Name: "Jeepney Line A", Type: "jeepney", LGU: "Quezon City", Polyline: demoPolyline()},
			{ID: demoRouteTricycleID, Name: "Tricycle Zone 5", Type: "tricycle", LGU: "Antipolo"},
			{ID: demoRouteBusID, Name: "Bus EDSA Southbound", Type: "bus", LGU: "Mandaluyong"},
		},
		stops: []models.Stop{
			{ID: "30000000-0000-4000-8000-000000000001", RouteID: demoRouteJeepneyID, Name: "Stop 1", Lat: 14.5995, Lng: 120.9842},
			{ID: "30000000-0000-4000-8000-000000000002", RouteID: demoRouteJeepneyID, Name: "Stop 2", Lat: 14.6095, Lng: 120.9942},
			{ID: "30000000-0000-4000-8000-000000000003", RouteID: demoRouteTricycleID, Name: "Zone 5 Terminal", Lat: 14.5869, Lng: 121.1753},
		},
		announcements: []models.Announcement{
			{
				ID:            "10000000-0000-4000-8000-000000000001",
				LGU:           "Quezon City",
				Title:         "Road closure on Friday",
				Body:          strPtr("Main Ave closed for parade 9am-2pm"),
				Severity:      "info",
				EffectiveFrom: &now,
			},
			{
				ID:            "10000000-0000-4000-8000-000000000002",
				LGU:           "Mandaluyong",
				Title:         "Fare adjustment",
				Body:          strPtr("Bus fare +2 PHP starting next week"),
				Severity:      "warning",
				EffectiveFrom: &hourAgo,
			},
		},
		reports: []models.Report{
			{
				ID:       "20000000-0000-4000-8000-000000000001",
				Type:     "reckless",
				Text:     strPtr("Speeding near Stop 1"),
				RouteID:  strPtr(demoRouteJeepneyID),
				Location: &models.Location{Lat: 14.60, Lng: 120.98},
				TS:       hourAgo,
			},
		},
	}
}

// demoPolyline encodes the Jeepney Line A path as WKB, the same shape
// the live rows carry.
func demoPolyline() []byte {
	line := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{
		{120.9842, 14.5995},
		{120.9942, 14.6095},
	})
	line.SetSRID(4326)
	b, err := wkb.Marshal(line, binary.LittleEndian)
	if err != nil {
		return nil
	}
	return b
}

func (s *DemoStore) ListRoutes(ctx context.Context, f RouteFilter) ([]models.Route, error) {
	out := make([]models.Route, 0, len(s.routes))
	for _, r := range s.routes {
		if f.LGU != "" && !strings.EqualFold(r.LGU, f.LGU) {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *DemoStore) ListRouteStops(ctx context.Context, routeID string) ([]models.Stop, error) {
	found := false
	for _, r := range s.routes {
		if r.ID == routeID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	out := make([]models.Stop, 0)
	for _, st := range s.stops {
		if st.RouteID == routeID {
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *DemoStore) ListAnnouncements(ctx context.Context, f AnnouncementFilter) ([]models.Announcement, error) {
	out := make([]models.Announcement, 0, len(s.announcements))
	for _, a := range s.announcements {
		if f.LGU != "" && a.LGU != f.LGU {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return effectiveFrom(out[i]).After(effectiveFrom(out[j]))
	})
	return truncate(out, f.Limit), nil
}

// effectiveFrom treats a missing effective_from as the zero time so
// undated announcements sort last.
func effectiveFrom(a models.Announcement) time.Time {
	if a.EffectiveFrom == nil {
		return time.Time{}
	}
	return *a.EffectiveFrom
}

func (s *DemoStore) GetAnnouncement(ctx context.Context, id string) (*models.Announcement, error) {
	for _, a := range s.announcements {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *DemoStore) ListReports(ctx context.Context, f ReportFilter) ([]models.Report, error) {
	s.mu.RLock()
	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if f.RouteID != "" && (r.RouteID == nil || *r.RouteID != f.RouteID) {
			continue
		}
		if f.TripID != "" && (r.TripID == nil || *r.TripID != f.TripID) {
			continue
		}
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].TS.After(out[j].TS) })
	return truncate(out, f.Limit), nil
}

func (s *DemoStore) CreateReport(ctx context.Context, in NewReport) (*models.Report, error) {
	row := models.Report{
		ID:       uuid.NewString(),
		Type:     in.Type,
		Text:     in.Text,
		RouteID:  in.RouteID,
		TripID:   in.TripID,
		Location: in.Location,
		TS:       time.Now().UTC(),
	}

	s.mu.Lock()
	s.reports = append([]models.Report{row}, s.reports...)
	s.mu.Unlock()

	return &row, nil
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func strPtr(s string) *string { return &s }
