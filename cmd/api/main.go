package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"swim-schedule-manager/config"
	_ "swim-schedule-manager/docs" // Swagger docs
	"swim-schedule-manager/internal/auth"
	"swim-schedule-manager/internal/httpserver"
	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/internal/invite/provider"
	inviteUC "swim-schedule-manager/internal/invite/usecase"
	"swim-schedule-manager/internal/review"
	scheduleUC "swim-schedule-manager/internal/schedule/usecase"
	"swim-schedule-manager/pkg/datemath"
	"swim-schedule-manager/pkg/deepseek"
	"swim-schedule-manager/pkg/gcalendar"
	"swim-schedule-manager/pkg/gemini"
	"swim-schedule-manager/pkg/log"
	"swim-schedule-manager/pkg/msgraph"
)

// @title       Swim Schedule Manager API
// @description Parses swim practice schedule PDFs with a cross-checked LLM pipeline and sends calendar invites.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Swim Schedule Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Invite provider: %s", cfg.Invite.Provider)

	// 3. Extraction pipeline
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)

	var verifier deepseek.IDeepSeek
	if cfg.DeepSeek.APIKey != "" {
		dsClient, dsErr := deepseek.New(deepseek.Config{
			APIKey: cfg.DeepSeek.APIKey,
			Model:  cfg.DeepSeek.Model,
		})
		if dsErr != nil {
			logger.Warnf(ctx, "DeepSeek verifier not available (optional): %v", dsErr)
		} else {
			verifier = dsClient
		}
	} else {
		logger.Warn(ctx, "DEEPSEEK_API_KEY not set, cross-check verification disabled")
	}

	schedUC, err := scheduleUC.New(logger, geminiClient, verifier, cfg.Parse.CacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to initialize schedule usecase: ", err)
		return
	}

	// 4. Invite dispatch
	dateMathParser, err := datemath.NewParser(cfg.Invite.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Invite.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	var inviteProvider invite.Provider
	var authStore *auth.Store

	switch cfg.Invite.Provider {
	case "gcalendar":
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Error(ctx, "Google Calendar not available: ", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			return
		}
		inviteProvider = provider.NewGoogle(calendarClient)
		logger.Info(ctx, "Google Calendar invite provider initialized")

	default: // msgraph
		authStore = auth.NewStore(&oauth2.Config{
			ClientID:     cfg.Azure.ClientID,
			ClientSecret: cfg.Azure.ClientSecret,
			RedirectURL:  cfg.Azure.RedirectURL,
			Scopes:       []string{"User.Read", "Calendars.ReadWrite", "offline_access"},
			Endpoint:     microsoft.AzureADEndpoint(cfg.Azure.TenantID),
		})
		inviteProvider = provider.NewGraph(msgraph.NewClient(authStore))
		logger.Info(ctx, "Microsoft Graph invite provider initialized")
	}

	invUC := inviteUC.New(logger, inviteProvider, dateMathParser, cfg.Invite.Timezone)

	// 5. HTTP Server
	session := review.NewSession()

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		Session:            session,
		ScheduleUC:         schedUC,
		InviteUC:           invUC,
		AuthStore:          authStore,
		FrontendDir:        cfg.Frontend.Dir,
		ParseRatePerMinute: cfg.Parse.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
