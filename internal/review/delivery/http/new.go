package http

import (
	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/review"
	pkgLog "swim-schedule-manager/pkg/log"
)

// Handler is the public interface for the review HTTP delivery layer.
type Handler interface {
	GetSession(c *gin.Context)
	SetSelection(c *gin.Context)
	UpdateEvent(c *gin.Context)
	AddAttendee(c *gin.Context)
	RemoveAttendee(c *gin.Context)
	ToggleGroup(c *gin.Context)
	Reset(c *gin.Context)
	LoadSample(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	session     *review.Session
	allowSample bool
}

// New creates a new HTTP handler for the review session. The sample-data
// endpoint is only registered when allowSample is set; it exists for local
// development without burning model quota.
func New(l pkgLog.Logger, session *review.Session, allowSample bool) *handler {
	return &handler{
		l:           l,
		session:     session,
		allowSample: allowSample,
	}
}
