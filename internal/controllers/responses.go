package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tara_na/internal/validation"
)

// Response envelopes consumed by the mobile client: rows wrapped in
// {"data": ...}, failures in {"error": ...}.

func respondData(c *gin.Context, status int, v any) {
	c.JSON(status, gin.H{"data": v})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// respondValidation reports every failing field, not just the first.
func respondValidation(c *gin.Context, errs validation.FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"message": "validation failed",
			"fields":  errs,
		},
	})
}
