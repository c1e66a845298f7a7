package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"swim-schedule-manager/internal/review"
	"swim-schedule-manager/internal/schedule"
	pkgLog "swim-schedule-manager/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	ParsePDF(c *gin.Context)
}

type handler struct {
	l       pkgLog.Logger
	uc      schedule.UseCase
	session *review.Session
	limiter *rate.Limiter
}

// New creates a new HTTP handler for the schedule domain. Extraction calls
// are rate limited to ratePerMinute uploads per minute with a burst of one;
// the model gateway is metered and an accidental upload loop is expensive.
func New(l pkgLog.Logger, uc schedule.UseCase, session *review.Session, ratePerMinute int) *handler {
	if ratePerMinute <= 0 {
		ratePerMinute = 6
	}
	return &handler{
		l:       l,
		uc:      uc,
		session: session,
		limiter: rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), 1),
	}
}
