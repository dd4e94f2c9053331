package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"tara_na/internal/store"
)

// SetupRouter assembles the engine and wires every endpoint against the
// given store. The store is injected here once; controllers hold no
// other state.
func SetupRouter(s store.Store) *gin.Engine {
	r := gin.New()

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	// Recovery middleware
	r.Use(gin.Recovery())

	HealthRoutes(r)
	RouteRoutes(r, s)
	AnnouncementRoutes(r, s)
	ReportRoutes(r, s)

	return r
}
