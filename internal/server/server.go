package server

import (
	"context"
	"log/slog"
	"net/http"

	appfavorites "github.com/preston-bernstein/football-players-service/internal/app/favorites"
	appplayers "github.com/preston-bernstein/football-players-service/internal/app/players"
	"github.com/preston-bernstein/football-players-service/internal/chat"
	"github.com/preston-bernstein/football-players-service/internal/config"
	"github.com/preston-bernstein/football-players-service/internal/favorites"
	httpserver "github.com/preston-bernstein/football-players-service/internal/http"
	"github.com/preston-bernstein/football-players-service/internal/http/handlers"
	"github.com/preston-bernstein/football-players-service/internal/http/middleware"
	"github.com/preston-bernstein/football-players-service/internal/kv"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/metrics"
	"github.com/preston-bernstein/football-players-service/internal/poller"
	"github.com/preston-bernstein/football-players-service/internal/providers"
	"github.com/preston-bernstein/football-players-service/internal/state"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg              config.Config
	logger           *slog.Logger
	metrics          *metrics.Recorder
	storage          kv.Store
	state            *state.Store
	playersService   *appplayers.Service
	favoritesService *appfavorites.Service
	chatService      *chat.Service
	httpServer       httpServer
	metricsServer    httpServer
	poller           Poller
	metricsStop      func(context.Context) error
}

// New opens storage and constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storageOpenTimeout)
	defer cancel()

	store, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	return newServer(cfg, logger, store, nil, nil), nil
}

// newServer wires services over store. A nil provider is built from cfg; a nil
// recorder triggers telemetry setup.
func newServer(cfg config.Config, logger *slog.Logger, store kv.Store, provider providers.PlayerProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}
	if store == nil {
		store = kv.NewMemoryStore()
	}

	st := state.NewStore(state.State{})
	playerSvc := appplayers.NewService(provider, st, logger)
	favSvc := appfavorites.NewService(favorites.New(store, cfg.Storage.FavoritesKey, logger), st, recorder, logger)
	chatSvc := chat.NewService(store, chat.NewClient(chat.Config{
		APIKey:        cfg.Chat.APIKey,
		BaseURL:       cfg.Chat.BaseURL,
		Model:         cfg.Chat.Model,
		RatePerMinute: cfg.Chat.RatePerMinute,
		Metrics:       recorder,
	}), logger)
	if !cfg.Chat.Enabled() && logger != nil {
		logger.Info("chat api key not configured, chat replies disabled")
	}

	plr := poller.New(playerSvc, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, handlers.Deps{
		Players:   playerSvc,
		Favorites: favSvc,
		Chat:      chatSvc,
		State:     st,
		Logger:    logger,
		StatusFn:  plr.Status,
		RefreshFn: plr.Refresh,
	}, logger, recorder)

	return &Server{
		cfg:              cfg,
		logger:           logger,
		metrics:          recorder,
		storage:          store,
		state:            st,
		playersService:   playerSvc,
		favoritesService: favSvc,
		chatService:      chatSvc,
		httpServer:       httpSrv,
		metricsServer:    metricsSrv,
		poller:           plr,
		metricsStop:      metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, deps handlers.Deps, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	deps.Logger = logger
	router := httpserver.NewRouter(handlers.NewHandler(deps))
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.RecoverMiddleware(logger, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.restoreFavorites(ctx)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// restoreFavorites seeds the favorites cache from storage before traffic arrives.
func (s *Server) restoreFavorites(ctx context.Context) {
	if s.favoritesService == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, restoreTimeout)
	defer cancel()
	items, err := s.favoritesService.Reload(ctx)
	if err != nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("favorites restored", slog.Int(logging.FieldCount, len(items)))
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if err := kv.Close(s.storage); err != nil && s.logger != nil {
		s.logger.Warn("storage close failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
