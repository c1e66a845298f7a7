package httpserver

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "swim-schedule-manager/internal/auth/delivery/http"
	inviteHTTP "swim-schedule-manager/internal/invite/delivery/http"
	"swim-schedule-manager/internal/middleware"
	reviewHTTP "swim-schedule-manager/internal/review/delivery/http"
	scheduleHTTP "swim-schedule-manager/internal/schedule/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)
	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerFrontend()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerFrontend serves the review UI: one template plus static assets.
func (srv *HTTPServer) registerFrontend() {
	if srv.frontendDir == "" {
		return
	}

	srv.gin.LoadHTMLGlob(filepath.Join(srv.frontendDir, "templates", "*.html"))
	srv.gin.Static("/static", filepath.Join(srv.frontendDir, "static"))
	srv.gin.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"signedIn": srv.authStore != nil && srv.authStore.SignedIn(),
		})
	})
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	scheduleH := scheduleHTTP.New(srv.l, srv.scheduleUC, srv.session, srv.parseRatePerMinute)
	scheduleHTTP.RegisterRoutes(api, scheduleH)

	var authStatus inviteHTTP.AuthStatus
	if srv.authStore != nil {
		authStatus = srv.authStore
	}
	inviteH := inviteHTTP.New(srv.l, srv.inviteUC, srv.session, authStatus)
	inviteHTTP.RegisterRoutes(api, inviteH)

	allowSample := srv.environment != "production"
	reviewH := reviewHTTP.New(srv.l, srv.session, allowSample)
	reviewHTTP.RegisterRoutes(api, reviewH)

	if srv.authStore != nil {
		authH := authHTTP.New(srv.l, srv.authStore)
		authHTTP.RegisterRoutes(srv.gin, api, authH)
		srv.l.Infof(ctx, "Microsoft sign-in routes registered")
	} else {
		srv.l.Infof(ctx, "No Microsoft auth configured, sign-in routes skipped")
	}

	srv.l.Infof(ctx, "Domain routes registered")
}
