// cmd/server is the application entry point. It wires the config, ledger,
// liveness tracker, identity provider, and HTTP layers together, and saves
// the final registration report on shutdown.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groupsignup/config"
	emailadapter "groupsignup/internal/adapters/email"
	httpdelivery "groupsignup/internal/delivery/http"
	"groupsignup/internal/delivery/http/controllers"
	"groupsignup/internal/delivery/http/middleware"
	"groupsignup/internal/export"
	"groupsignup/internal/identity"
	"groupsignup/internal/ledger"
	"groupsignup/internal/liveness"
	"groupsignup/internal/metrics"
	"groupsignup/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	event, err := config.LoadEventFile(cfg.EventFile)
	if err != nil {
		logger.Error("event configuration rejected", "file", cfg.EventFile, "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	tracker := liveness.New(event.PollInterval())
	provider := identity.NewProvider()

	groups := event.DomainGroups()
	reg := ledger.New(groups)
	for _, g := range groups {
		m.SeatsAvailable.WithLabelValues(g.ID).Set(float64(g.Total))
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("mailer setup failed", "error", err)
		os.Exit(1)
	}
	emailSvc := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	regSvc := services.NewRegistrationService(reg, emailSvc, m, logger)
	exporter := export.New(reg)

	registrationCtrl := controllers.NewRegistrationController(logger, regSvc)
	statusCtrl := controllers.NewStatusController(logger, regSvc, tracker, event.Settings.RefreshRateMS)
	exportCtrl := controllers.NewExportController(logger, exporter, cfg.ExportFile)

	mux := httpdelivery.NewRouter(registrationCtrl, statusCtrl, exportCtrl, cfg.WebDir)
	handler := middleware.CORS(cfg.CORSAllowedOrigins,
		middleware.TrackVisitor(provider, tracker, m, logger,
			middleware.LoggingMiddleware(logger, mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			"port", cfg.Port,
			"groups", len(groups),
			"poll_interval", event.PollInterval(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	// Final report. A write failure is reported but never blocks a clean exit;
	// everything committed stays valid in memory until the process ends.
	if err := exporter.SaveToFile(cfg.ExportFile); err != nil {
		logger.Error("saving registrations failed", "file", cfg.ExportFile, "error", err)
	} else {
		logger.Info("registrations saved", "file", cfg.ExportFile)
	}
	logger.Info("server stopped")
}
