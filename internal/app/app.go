package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/familypa-backend/internal/adapter/postgres/category"
	familyrepo "github.com/heartmarshall/familypa-backend/internal/adapter/postgres/family"
	intakerepo "github.com/heartmarshall/familypa-backend/internal/adapter/postgres/intake"
	personrepo "github.com/heartmarshall/familypa-backend/internal/adapter/postgres/person"
	taskrepo "github.com/heartmarshall/familypa-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/familypa-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/familypa-backend/internal/adapter/provider/media"
	"github.com/heartmarshall/familypa-backend/internal/adapter/provider/transcribe"
	"github.com/heartmarshall/familypa-backend/internal/auth"
	"github.com/heartmarshall/familypa-backend/internal/config"
	"github.com/heartmarshall/familypa-backend/internal/service/category"
	"github.com/heartmarshall/familypa-backend/internal/service/diagnostics"
	"github.com/heartmarshall/familypa-backend/internal/service/family"
	"github.com/heartmarshall/familypa-backend/internal/service/intake"
	"github.com/heartmarshall/familypa-backend/internal/service/person"
	"github.com/heartmarshall/familypa-backend/internal/service/task"
	"github.com/heartmarshall/familypa-backend/internal/transport/middleware"
	"github.com/heartmarshall/familypa-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle webhook rate-limit entries are swept.
const rateLimitCleanup = time.Minute

// Run loads configuration, connects to PostgreSQL and serves HTTP until ctx
// is cancelled, then drains in-flight requests within the shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, pool, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

// newHandler wires repositories, services and handlers into the root
// http.Handler. Middleware order, outermost first: request id, access log,
// panic recovery, CORS, token authentication.
func newHandler(cfg *config.Config, logger *slog.Logger, db *pgxpool.Pool, limiter *middleware.RateLimiter) http.Handler {
	families := familyrepo.New(db)
	categories := categoryrepo.New(db)
	tasks := taskrepo.New(db)
	people := personrepo.New(db)
	messages := intakerepo.New(db)

	resolver := family.NewResolver(logger, families)

	taskSvc := task.NewService(logger, resolver, tasks, categories, people)
	categorySvc := category.NewService(logger, resolver, categories)
	personSvc := person.NewService(logger, resolver, people)
	diagnosticsSvc := diagnostics.NewService(logger, resolver, categories)
	intakeSvc := intake.NewService(logger, intake.Deps{
		Families:    families,
		Messages:    messages,
		Categories:  categories,
		Tasks:       tasks,
		Media:       media.NewFetcher(cfg.Media, logger),
		Transcriber: transcribe.NewProvider(cfg.Transcription, logger),
		Classifier:  llm.NewClassifier(cfg.LLM, logger),
	}, cfg.Webhook.ConfidenceThreshold)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(db, Version,
			rest.Integration{Name: "llm", Configured: cfg.LLM.APIKey != ""},
			rest.Integration{Name: "transcription", Configured: cfg.Transcription.APIKey != ""},
		),
		Tasks:      rest.NewTaskHandler(taskSvc, logger),
		Categories: rest.NewCategoryHandler(categorySvc, logger),
		People:     rest.NewPersonHandler(personSvc, logger),
		Debug:      rest.NewDebugHandler(diagnosticsSvc, logger),
		Webhook:    rest.NewWebhookHandler(intakeSvc, cfg.Webhook, logger),
	}, limiter.Limit(cfg.Webhook.RateLimitPerMinute))

	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.Issuer)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(sessions, cfg.Auth.CookieName),
	)(router)
}
