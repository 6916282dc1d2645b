package main

import (
	"context"
	"net/http"

	"go-shortlink/internal/config"
	"go-shortlink/internal/eventlog"
	"go-shortlink/internal/geo"
	"go-shortlink/internal/logging"
	httpdelivery "go-shortlink/internal/urlservice/delivery/http"
	"go-shortlink/internal/urlservice/repository/memory"
	"go-shortlink/internal/urlservice/usecase"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet is the dependency graph of the url service.
var ProviderSet = wire.NewSet(
	wire.FieldsOf(new(*config.Config), "Server", "ShortLink", "EventLog", "GeoIP", "Log"),
	memory.NewURLRepository,
	wire.Bind(new(usecase.URLRepository), new(*memory.URLRepository)),
	newEventLogger,
	wire.Bind(new(usecase.DiagnosticLogger), new(*eventlog.Logger)),
	newGeoResolver,
	wire.Bind(new(usecase.GeoResolver), new(*geo.Resolver)),
	newURLService,
	newHandler,
	newRequestLogger,
	newRouter,
	newHTTPServer,
	newApp,
)

// requestLogger receives one entry per HTTP request.
type requestLogger struct {
	*zap.Logger
}

// newRequestLogger writes to the access log file when one is configured and
// falls back to the application logger otherwise.
func newRequestLogger(cfg config.LogConfig, logger *zap.Logger) (requestLogger, func(), error) {
	if cfg.AccessLogPath == "" {
		return requestLogger{logger.Named("http")}, func() {}, nil
	}

	access, stop, err := logging.NewAccessLogger(cfg.AccessLogPath, cfg.AccessLogFlushInterval)
	if err != nil {
		return requestLogger{}, nil, err
	}
	cleanup := func() {
		if err := stop(); err != nil {
			logger.Error("failed to close access log", zap.Error(err))
		}
	}
	return requestLogger{access}, cleanup, nil
}

// newEventLogger starts the diagnostic forwarder. The cleanup drains the
// queue for at most cfg.DrainTimeout.
func newEventLogger(cfg config.EventLogConfig, logger *zap.Logger) (*eventlog.Logger, func()) {
	var sink eventlog.Sink = eventlog.NopSink{}
	if cfg.Endpoint != "" {
		sink = eventlog.NewClient(cfg.Endpoint, cfg.AuthToken, cfg.Timeout)
	} else {
		logger.Info("LOG_API_URL not set, diagnostic events are discarded")
	}

	l := eventlog.New(sink, logger.Named("eventlog"),
		eventlog.WithQueueSize(cfg.QueueSize),
		eventlog.WithSendTimeout(cfg.Timeout),
	)
	l.Start()

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.DrainTimeout)
		defer cancel()
		if err := l.Close(ctx); err != nil {
			logger.Warn("diagnostic events lost on shutdown", zap.Error(err))
		}
		stats := l.Stats()
		logger.Info("eventlog closed",
			zap.Int64("delivered", stats.Delivered),
			zap.Int64("failed", stats.Failed),
			zap.Int64("dropped", stats.Dropped),
		)
	}
	return l, cleanup
}

func newGeoResolver(cfg config.GeoIPConfig, logger *zap.Logger) (*geo.Resolver, func(), error) {
	resolver, err := geo.NewResolver(cfg.DBPath, cfg.CacheTTL)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DBPath == "" {
		logger.Info("GEOIP_DB_PATH not set, click geo is recorded as unknown")
	}
	cleanup := func() {
		if err := resolver.Close(); err != nil {
			logger.Error("failed to close geoip database", zap.Error(err))
		}
	}
	return resolver, cleanup, nil
}

func newURLService(
	repo usecase.URLRepository,
	diag usecase.DiagnosticLogger,
	resolver usecase.GeoResolver,
	logger *zap.Logger,
	cfg config.ShortLinkConfig,
) *usecase.URLService {
	return usecase.NewURLService(repo, diag, resolver, logger,
		usecase.WithDefaultValidity(cfg.DefaultValidityMinutes),
	)
}

func newHandler(service *usecase.URLService, cfg config.ServerConfig, logger *zap.Logger) *httpdelivery.Handler {
	return httpdelivery.NewHandler(service, cfg.BaseURL, logger)
}

func newRouter(handler *httpdelivery.Handler, rl requestLogger) http.Handler {
	return httpdelivery.NewRouter(handler, rl.Logger)
}

func newHTTPServer(cfg config.ServerConfig, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
