package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"slidearchive/config"
	"slidearchive/internal/adapters/auth"
	"slidearchive/internal/adapters/email"
	delivery "slidearchive/internal/delivery/http"
	"slidearchive/internal/delivery/http/controllers"
	"slidearchive/internal/delivery/http/web"
	"slidearchive/internal/domain"
	"slidearchive/internal/repository/postgres"
	"slidearchive/internal/repository/spreadsheet"
	"slidearchive/internal/repository/sqlite"
	"slidearchive/internal/services"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, closer, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	notifier := services.NewSlideNotifier(mailer, email.NewTemplateRenderer(), cfg.NotifyRecipients, logger)
	svc := services.NewSlideService(repo, notifier, logger)

	pages, err := web.NewRenderer(web.Site{SupportName: cfg.SupportName, SupportEmail: cfg.SupportEmail})
	if err != nil {
		return err
	}

	deps := delivery.RouterDeps{
		Logger:             logger,
		Archive:            controllers.NewArchiveController(logger, svc, pages),
		API:                controllers.NewAPIController(logger, svc),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.APIJWTSecret != "" {
		deps.Verifier = auth.NewJWT(cfg.APIJWTSecret)
	} else {
		logger.Warn("API_JWT_SECRET not set, POST /api/slides is unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           delivery.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "store", cfg.StoreDriver, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore builds the archive store selected by STORE_DRIVER. For the sheets
// driver only the credentials are checked here; the spreadsheet is opened on
// first use.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.SlideRepository, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewSlideRepository(db), db, nil
	case config.StoreDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewSlideRepository(db), db, nil
	default:
		creds, err := spreadsheet.ParseCredentials(ctx, cfg.CredentialsJSON)
		if err != nil {
			return nil, nil, err
		}
		store, err := spreadsheet.New(ctx, spreadsheet.Config{
			SpreadsheetName: cfg.SheetName,
			SpreadsheetID:   cfg.SheetID,
			Worksheet:       cfg.Worksheet,
		}, logger, option.WithCredentials(creds))
		if err != nil {
			return nil, nil, err
		}
		return store, nopCloser{}, nil
	}
}
