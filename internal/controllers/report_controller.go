package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tara_na/internal/models"
	"tara_na/internal/store"
	"tara_na/internal/validation"
)

type ReportController struct {
	store store.Store
}

func NewReportController(s store.Store) *ReportController {
	return &ReportController{store: s}
}

// ListReports returns incident reports newest-first, optionally narrowed
// by route_id / trip_id and truncated to limit (default 50).
func (ctl *ReportController) ListReports(c *gin.Context) {
	query, errs := validation.ReportList(c.Request.URL.Query())
	if len(errs) > 0 {
		logrus.WithField("fields", errs).Warn("ListReports: invalid query")
		respondValidation(c, errs)
		return
	}

	reports, err := ctl.store.ListReports(c.Request.Context(), store.ReportFilter{
		RouteID: query.RouteID,
		TripID:  query.TripID,
		Limit:   query.Limit,
	})
	if err != nil {
		logrus.WithError(err).Error("ListReports: backend failure")
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, reports)
}

// CreateReport stores a commuter-submitted incident and returns the
// persisted row with its server-assigned id and timestamp.
func (ctl *ReportController) CreateReport(c *gin.Context) {
	input, errs := validation.ReportCreate(c.Request.Body)
	if len(errs) > 0 {
		logrus.WithField("fields", errs).Warn("CreateReport: invalid body")
		respondValidation(c, errs)
		return
	}

	newReport := store.NewReport{
		Type:    input.Type,
		Text:    input.Text,
		RouteID: input.RouteID,
		TripID:  input.TripID,
	}
	if input.Location != nil {
		newReport.Location = &models.Location{
			Lat: *input.Location.Lat,
			Lng: *input.Location.Lng,
		}
	}

	report, err := ctl.store.CreateReport(c.Request.Context(), newReport)
	if err != nil {
		logrus.WithError(err).Error("CreateReport: backend failure")
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusCreated, report)
}
