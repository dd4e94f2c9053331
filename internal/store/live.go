package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tara_na/internal/models"
)

// LiveStore runs every operation against Postgres through gorm. Query
// shapes mirror the demo store one-to-one (same filters, same ordering,
// same limits) so both modes stay observably identical. Secondary sort
// on id keeps equal-key orderings deterministic.
type LiveStore struct {
	db *gorm.DB
}

func NewLiveStore(db *gorm.DB) *LiveStore {
	return &LiveStore{db: db}
}

func (s *LiveStore) ListRoutes(ctx context.Context, f RouteFilter) ([]models.Route, error) {
	q := s.db.WithContext(ctx).Order("name asc, id asc")
	if f.LGU != "" {
		q = q.Where("lower(lgu) = lower(?)", f.LGU)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	routes := make([]models.Route, 0)
	if err := q.Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (s *LiveStore) ListRouteStops(ctx context.Context, routeID string) ([]models.Stop, error) {
	// id::text keeps a malformed path id a clean not-found instead of a
	// uuid cast error from Postgres.
	var route models.Route
	err := s.db.WithContext(ctx).Select("id").Where("id::text = ?", routeID).First(&route).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stops := make([]models.Stop, 0)
	err = s.db.WithContext(ctx).
		Where("route_id = ?", route.ID).
		Order("name asc, id asc").
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (s *LiveStore) ListAnnouncements(ctx context.Context, f AnnouncementFilter) ([]models.Announcement, error) {
	q := s.db.WithContext(ctx).Order("effective_from desc nulls last, id asc")
	if f.LGU != "" {
		q = q.Where("lgu = ?", f.LGU)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	announcements := make([]models.Announcement, 0)
	if err := q.Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *LiveStore) GetAnnouncement(ctx context.Context, id string) (*models.Announcement, error) {
	var a models.Announcement
	err := s.db.WithContext(ctx).Where("id::text = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *LiveStore) ListReports(ctx context.Context, f ReportFilter) ([]models.Report, error) {
	q := s.db.WithContext(ctx).Order("ts desc, id asc")
	if f.RouteID != "" {
		q = q.Where("route_id = ?", f.RouteID)
	}
	if f.TripID != "" {
		q = q.Where("trip_id = ?", f.TripID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	reports := make([]models.Report, 0)
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *LiveStore) CreateReport(ctx context.Context, in NewReport) (*models.Report, error) {
	row := models.Report{
		ID:       uuid.NewString(),
		Type:     in.Type,
		Text:     in.Text,
		RouteID:  in.RouteID,
		TripID:   in.TripID,
		Location: in.Location,
		TS:       time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
