package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers the mobile client's startup probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "tara-na-server"})
}
