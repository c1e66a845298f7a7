package http

import (
	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/auth"
	pkgLog "swim-schedule-manager/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Logout(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l     pkgLog.Logger
	store *auth.Store
}

// New creates a new HTTP handler for the Microsoft sign-in flow.
func New(l pkgLog.Logger, store *auth.Store) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
