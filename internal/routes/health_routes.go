package routes

import (
	"github.com/gin-gonic/gin"

	"tara_na/internal/controllers"
)

func HealthRoutes(r *gin.Engine) {
	r.GET("/health", controllers.Health)
}
