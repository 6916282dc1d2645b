package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-shortlink/internal/config"
	"go-shortlink/internal/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "url-service"
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

type app struct {
	server          *http.Server
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func newApp(server *http.Server, logger *zap.Logger, cfg config.ServerConfig) *app {
	return &app{
		server:          server,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run serves until SIGINT or SIGTERM, then shuts the server down gracefully.
func (a *app) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("server shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	return a.server.Shutdown(ctx)
}

func main() {
	flag.Parse()

	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	cfg, err := config.Load(flagconf)
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger = logger.With(zap.String("service", Name), zap.String("version", Version))

	a, cleanup, err := wireApp(cfg, logger)
	if err != nil {
		logger.Fatal("failed to wire application", zap.Error(err))
	}

	if err := a.Run(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
	cleanup()

	logger.Info("server stopped")
}
