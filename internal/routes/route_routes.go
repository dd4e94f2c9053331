package routes

import (
	"github.com/gin-gonic/gin"

	"tara_na/internal/controllers"
	"tara_na/internal/store"
)

func RouteRoutes(r *gin.Engine, s store.Store) {
	ctl := controllers.NewRouteController(s)

	routes := r.Group("/routes")
	{
		routes.GET("", ctl.ListRoutes)
		routes.GET("/:id/stops", ctl.ListRouteStops)
	}
}
