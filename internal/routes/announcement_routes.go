package routes

import (
	"github.com/gin-gonic/gin"

	"tara_na/internal/controllers"
	"tara_na/internal/store"
)

func AnnouncementRoutes(r *gin.Engine, s store.Store) {
	ctl := controllers.NewAnnouncementController(s)

	announcements := r.Group("/announcements")
	{
		announcements.GET("", ctl.ListAnnouncements)
		announcements.GET("/:id", ctl.GetAnnouncement)
	}
}
