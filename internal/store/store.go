package store

import (
	"context"
	"errors"

	"tara_na/internal/models"
)

// ErrNotFound signals a singular lookup that matched no row. Handlers
// translate it to a 404; it is distinct from an empty list result.
var ErrNotFound = errors.New("not found")

// Limit bounds shared by validation and both store implementations.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// RouteFilter narrows ListRoutes. Zero values mean no constraint.
// LGU compares case-insensitively; Type compares exactly.
type RouteFilter struct {
	LGU  string
	Type string
}

// AnnouncementFilter narrows ListAnnouncements. LGU compares exactly.
type AnnouncementFilter struct {
	LGU   string
	Limit int
}

// ReportFilter narrows ListReports. RouteID and TripID compare exactly.
type ReportFilter struct {
	RouteID string
	TripID  string
	Limit   int
}

// NewReport carries the caller-supplied fields for CreateReport.
// Optional fields stay nil and persist as explicit nulls.
type NewReport struct {
	Type     string
	Text     *string
	RouteID  *string
	TripID   *string
	Location *models.Location
}

// Store is the data access façade shared by the live Postgres path and
// the in-memory demo path. The implementation is chosen once at startup
// and injected into every controller. Both implementations apply
// identical filter, order and limit semantics: routes and stops order by
// name ascending, announcements by effective_from descending, reports by
// ts descending, with ties resolving to insertion order.
type Store interface {
	ListRoutes(ctx context.Context, f RouteFilter) ([]models.Route, error)

	// ListRouteStops returns ErrNotFound when the route itself does not
	// exist; a route with no stops yields an empty (non-nil) slice.
	ListRouteStops(ctx context.Context, routeID string) ([]models.Stop, error)

	ListAnnouncements(ctx context.Context, f AnnouncementFilter) ([]models.Announcement, error)
	GetAnnouncement(ctx context.Context, id string) (*models.Announcement, error)

	ListReports(ctx context.Context, f ReportFilter) ([]models.Report, error)

	// CreateReport assigns a fresh id and the current UTC timestamp and
	// returns the persisted row. Referential integrity of RouteID and
	// TripID is left to the live database's foreign keys.
	CreateReport(ctx context.Context, in NewReport) (*models.Report, error)
}
