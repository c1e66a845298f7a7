package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the browser-facing sign-in flow and the status
// endpoint consumed by the frontend.
func RegisterRoutes(r *gin.Engine, api *gin.RouterGroup, h Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/login", h.Login)
		authGroup.GET("/callback", h.Callback)
		authGroup.GET("/logout", h.Logout)
	}
	api.GET("/auth/status", h.Status)
}
