package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the invite endpoints onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/send-invites", h.SendInvites)
}
