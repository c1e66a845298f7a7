package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the schedule endpoints onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/parse-pdf", h.ParsePDF)
}
