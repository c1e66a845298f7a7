package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/auth"
	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/internal/review"
	"swim-schedule-manager/internal/schedule"
	pkgLog "swim-schedule-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	session    *review.Session
	scheduleUC schedule.UseCase
	inviteUC   invite.UseCase
	authStore  *auth.Store // nil when the Google provider is configured

	frontendDir        string
	parseRatePerMinute int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Session    *review.Session
	ScheduleUC schedule.UseCase
	InviteUC   invite.UseCase
	AuthStore  *auth.Store

	FrontendDir        string
	ParseRatePerMinute int
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		session:            cfg.Session,
		scheduleUC:         cfg.ScheduleUC,
		inviteUC:           cfg.InviteUC,
		authStore:          cfg.AuthStore,
		frontendDir:        cfg.FrontendDir,
		parseRatePerMinute: cfg.ParseRatePerMinute,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.session == nil {
		return errors.New("review session is required")
	}
	if srv.scheduleUC == nil {
		return errors.New("schedule usecase is required")
	}
	if srv.inviteUC == nil {
		return errors.New("invite usecase is required")
	}
	return nil
}
