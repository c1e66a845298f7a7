package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the session endpoints onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	session := rg.Group("/session")
	{
		session.GET("", h.GetSession)
		session.POST("/selection", h.SetSelection)
		session.PUT("/events/:index", h.UpdateEvent)
		session.POST("/attendees", h.AddAttendee)
		session.DELETE("/attendees/:index", h.RemoveAttendee)
		session.POST("/groups/toggle", h.ToggleGroup)
		session.POST("/reset", h.Reset)
		if h.allowSample {
			session.POST("/sample", h.LoadSample)
		}
	}
}
