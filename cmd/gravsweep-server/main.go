package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/infra/buildinfo"
	"github.com/gravsweep/gravsweep-go/internal/infra/confloader"
	"github.com/gravsweep/gravsweep-go/internal/infra/shutdown"
	"github.com/gravsweep/gravsweep-go/internal/server/config"
	"github.com/gravsweep/gravsweep-go/internal/server/httpserver"
	"github.com/gravsweep/gravsweep-go/internal/server/localserver"
	"github.com/gravsweep/gravsweep-go/internal/storage"
	telemetry "github.com/gravsweep/gravsweep-go/internal/telemetry/metric"
	"github.com/gravsweep/gravsweep-go/internal/telemetry/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("gravsweep-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting gravsweep-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	metrics, promReg := telemetry.NewRegistry()

	store, err := storage.New(storage.Config{
		Dir:         cfg.Storage.DataDir,
		InMemory:    cfg.Storage.InMemory,
		SyncWrites:  cfg.Storage.SyncWrites,
		GCInterval:  cfg.Storage.GCInterval,
		GCThreshold: cfg.Storage.GCThreshold,
	}, log, metrics)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	evaluator, err := eval.New(eval.Config{
		Epsilon:   cfg.Eval.Epsilon,
		CacheSize: cfg.Eval.CacheSize,
		Workers:   cfg.Eval.Workers,
		RateLimit: cfg.Eval.RateLimit,
		Store:     store,
		Metrics:   metrics,
		Logger:    log,
	})
	if err != nil {
		return fmt.Errorf("init evaluator: %w", err)
	}

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Evaluator:   evaluator,
		Runs:        store,
		Metrics:     telemetry.Handler(promReg),
		Logger:      log,
		RateLimit:   cfg.Server.HTTP.RateLimit,
		RateBurst:   cfg.Server.HTTP.RateBurst,
		EnableAudit: true,
	})

	var serverOpts []httpserver.Option
	if cfg.Server.HTTP.TLSCertFile != "" && cfg.Server.HTTP.TLSKeyFile != "" {
		serverOpts = append(serverOpts, httpserver.WithTLS(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile))
	}
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router, serverOpts...)

	var localSrv *localserver.Server
	if cfg.Server.Local.SocketPath != "" {
		localSrv = localserver.New(cfg.Server.Local.SocketPath, router)
	}

	// Reload the log level when the config file changes.
	var watcher *confloader.Watcher
	if *configFile != "" {
		watcher, err = watchConfig(*configFile, log)
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		}
	}

	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	// Shutdown hooks run in reverse order of startup.
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})
	if localSrv != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down local socket server")
			return localSrv.Shutdown(ctx)
		})
	}
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("closing run store")
		return store.Close()
	})
	if watcher != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			return watcher.Stop()
		})
	}

	if localSrv != nil {
		go func() {
			log.Info("local socket listening", "path", localSrv.Path())
			if err := localSrv.ListenAndServe(); err != nil {
				log.Error("local socket server error", "error", err)
			}
		}()
	}

	go func() {
		log.Info("HTTP server listening", "addr", httpServer.Addr(), "tls", httpServer.TLSEnabled())
		if err := httpServer.Run(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// watchConfig re-reads the config file on change and applies the log
// level. Other settings require a restart.
func watchConfig(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Warn("config reload failed", "path", path, "error", err)
			return
		}
		previous := logger.GetLevel()
		logger.SetLevel(cfg.Log.Level)
		log.Info("log level applied from config", "from", previous, "to", logger.GetLevel())
	})
	watcher.StartAsync()

	return watcher, nil
}
