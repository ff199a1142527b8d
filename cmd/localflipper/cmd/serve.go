package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/localflipper/api/openapi"
	"github.com/donaldgifford/localflipper/internal/api/handlers"
	"github.com/donaldgifford/localflipper/internal/api/middleware"
	"github.com/donaldgifford/localflipper/internal/config"
	"github.com/donaldgifford/localflipper/internal/ebay"
	"github.com/donaldgifford/localflipper/internal/engine"
	"github.com/donaldgifford/localflipper/internal/store"
	"github.com/donaldgifford/localflipper/internal/telemetry"
	"github.com/donaldgifford/localflipper/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	serveMigrate    bool
	serveNoSchedule bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "apply pending migrations on startup")
	serveCmd.Flags().BoolVar(&serveNoSchedule, "no-schedule", false, "serve the API without running scheduled searches")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, &cfg.Telemetry, Version, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Error("telemetry shutdown failed", "error", err)
		}
	}()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if serveMigrate {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	market, rl := newMarket(cfg, log)
	eng := newEngine(cfg, st, newSource(cfg, log), market, newNotifier(cfg, log), log)

	var sched *engine.Scheduler
	if !serveNoSchedule {
		sched, err = engine.NewScheduler(eng, st, cfg.Schedule.SearchInterval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start(ctx)
	}

	e := newServer(cfg, st, eng, rl, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Error("server error", "error", err)
		}
	}

	log.Info("shutting down server")

	if sched != nil {
		<-sched.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo server with every API route registered.
func newServer(
	cfg *config.Config,
	st store.Store,
	eng *engine.Engine,
	rl *ebay.RateLimiter,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	httpLog := logger.Component(log, "http")
	e.Use(
		middleware.Recovery(httpLog),
		middleware.Tracing(nil),
		middleware.RequestLog(httpLog),
		middleware.Metrics(),
	)

	health := handlers.NewHealthHandler(handlers.PingCheck("database", st))
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("LocalFlipper API", Version))
	handlers.RegisterEvaluateRoutes(api, handlers.NewEvaluateHandler(eng))
	handlers.RegisterCleanRoutes(api)
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(st))
	handlers.RegisterRunRoutes(api, handlers.NewRunHandler(eng, st))
	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(st))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))
	openapi.RegisterRoutes(e, api)

	return e
}
