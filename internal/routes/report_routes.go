package routes

import (
	"github.com/gin-gonic/gin"

	"tara_na/internal/controllers"
	"tara_na/internal/store"
)

func ReportRoutes(r *gin.Engine, s store.Store) {
	ctl := controllers.NewReportController(s)

	reports := r.Group("/reports")
	{
		reports.GET("", ctl.ListReports)
		reports.POST("", ctl.CreateReport)
	}
}
