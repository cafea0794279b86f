// Package app assembles and runs the dayflow HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dayflow-backend/internal/adapter/metrics"
	"github.com/heartmarshall/dayflow-backend/internal/adapter/notice"
	"github.com/heartmarshall/dayflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dayflow-backend/internal/adapter/postgres/eventrepo"
	"github.com/heartmarshall/dayflow-backend/internal/adapter/postgres/habitrepo"
	"github.com/heartmarshall/dayflow-backend/internal/adapter/postgres/taskrepo"
	"github.com/heartmarshall/dayflow-backend/internal/adapter/postgres/txnrepo"
	"github.com/heartmarshall/dayflow-backend/internal/auth"
	"github.com/heartmarshall/dayflow-backend/internal/config"
	"github.com/heartmarshall/dayflow-backend/internal/service/habit"
	"github.com/heartmarshall/dayflow-backend/internal/service/undo"
	"github.com/heartmarshall/dayflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/dayflow-backend/internal/transport/rest"
	"github.com/heartmarshall/dayflow-backend/internal/undoqueue"
)

// maxNoticeUsers bounds how many users' notices are kept in memory.
const maxNoticeUsers = 10_000

// Database is what the server needs from the connection pool.
// *pgxpool.Pool and pgxmock pools implement it.
type Database interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

// Run loads configuration from configPath, connects to PostgreSQL and serves
// HTTP until ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Duration("undo_timeout", cfg.Undo.Timeout),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := NewTracerProvider(cfg.Tracing, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("flush traces", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	srv, err := NewServer(cfg, logger, pool, clockwork.NewRealClock(), tp, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

// Server is the assembled application: repositories, services, transport.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	http    *http.Server
	queue   *undo.Queue
	habits  *habit.Service
	limiter *middleware.RateLimiter
}

// NewServer wires every component on top of db. reg receives the application
// and runtime collectors.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	db Database,
	clock clockwork.Clock,
	tp trace.TracerProvider,
	reg *prometheus.Registry,
) (*Server, error) {
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	tasks := taskrepo.New(db)
	habits := habitrepo.New(db)
	events := eventrepo.New(db)
	txns := txnrepo.New(db)
	txm := postgres.NewTxManager(db)

	queue := undoqueue.New[undo.Pending](
		undoqueue.WithClock(clock),
		undoqueue.WithDefaultTimeout(cfg.Undo.Timeout),
		undoqueue.WithLogger(logger),
	)
	feed := notice.NewFeed(logger, clock, maxNoticeUsers, cfg.Undo.Timeout+time.Minute)

	undoSvc := undo.NewService(logger,
		undo.Config{Timeout: cfg.Undo.Timeout, NoticeDuration: cfg.Undo.EffectiveNoticeDuration()},
		queue, tasks, habits, events, txns, txm, feed, m, clock,
	)
	habitSvc, err := habit.NewService(logger, habits, m, clock, cfg.Habit.StateCacheSize)
	if err != nil {
		return nil, fmt.Errorf("habit service: %w", err)
	}

	m.RegisterQueueSize(queue.Size)
	m.RegisterSyncing(habitSvc.Syncing)

	handlers := rest.Handlers{
		Undo:   rest.NewUndoHandler(undoSvc, habitSvc, logger),
		Habit:  rest.NewHabitHandler(habitSvc, logger),
		Notice: rest.NewNoticeHandler(feed, logger),
		Health: rest.NewHealthHandler(db, queue, clock, BuildVersion()),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
		handlers.MetricsPath = cfg.Metrics.Path
	}

	router := rest.NewRouter(handlers,
		middleware.Tracing(tp),
		middleware.Metrics(m, clock),
	)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)
	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger, clock),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt, logger),
		limiter.Limit(cfg.RateLimit.PerMinute),
	)(router)

	return &Server{
		cfg: cfg,
		log: logger,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
		},
		queue:   queue,
		habits:  habitSvc,
		limiter: limiter,
	}, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Serve listens on the configured address until ctx is done, then shuts the
// server down. Pending undo entries are discarded on shutdown; their deletes
// stand. Background completion writes are waited for.
func (s *Server) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(ctx)
	s.habits.Wait()
	dropped := s.queue.Clear()
	s.limiter.Stop()

	s.log.Info("http server stopped", slog.Int("pending_undos_dropped", dropped))
	if err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
