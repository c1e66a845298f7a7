package http

import (
	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/internal/review"
	pkgLog "swim-schedule-manager/pkg/log"
)

// AuthStatus reports whether a signed-in account is available for dispatch.
// The auth token store implements this; a nil AuthStatus skips the check
// (the Google provider carries its own credentials).
type AuthStatus interface {
	SignedIn() bool
}

// Handler is the public interface for the invite HTTP delivery layer.
type Handler interface {
	SendInvites(c *gin.Context)
}

type handler struct {
	l       pkgLog.Logger
	uc      invite.UseCase
	session *review.Session
	auth    AuthStatus
}

// New creates a new HTTP handler for the invite domain.
func New(l pkgLog.Logger, uc invite.UseCase, session *review.Session, auth AuthStatus) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		session: session,
		auth:    auth,
	}
}
