package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tara_na/internal/store"
	"tara_na/internal/validation"
)

type AnnouncementController struct {
	store store.Store
}

func NewAnnouncementController(s store.Store) *AnnouncementController {
	return &AnnouncementController{store: s}
}

// ListAnnouncements returns announcements newest-first, optionally
// narrowed by lgu and truncated to limit (default 50).
func (ctl *AnnouncementController) ListAnnouncements(c *gin.Context) {
	query, errs := validation.AnnouncementList(c.Request.URL.Query())
	if len(errs) > 0 {
		logrus.WithField("fields", errs).Warn("ListAnnouncements: invalid query")
		respondValidation(c, errs)
		return
	}

	announcements, err := ctl.store.ListAnnouncements(c.Request.Context(), store.AnnouncementFilter{
		LGU:   query.LGU,
		Limit: query.Limit,
	})
	if err != nil {
		logrus.WithError(err).Error("ListAnnouncements: backend failure")
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, announcements)
}

// GetAnnouncement returns one announcement by id.
func (ctl *AnnouncementController) GetAnnouncement(c *gin.Context) {
	announcement, err := ctl.store.GetAnnouncement(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Not found")
			return
		}
		logrus.WithError(err).Error("GetAnnouncement: backend failure")
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, announcement)
}
