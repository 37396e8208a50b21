// Command apiserver runs the siamhora HTTP service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/siamhora/siamhora/internal/application/astro"
	"github.com/siamhora/siamhora/internal/config"
	"github.com/siamhora/siamhora/internal/infrastructure/database/redis"
	"github.com/siamhora/siamhora/internal/infrastructure/geocode"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/prometheus"
	"github.com/siamhora/siamhora/internal/infrastructure/verify"
	httpiface "github.com/siamhora/siamhora/internal/interfaces/http"
	"github.com/siamhora/siamhora/internal/interfaces/http/handlers"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.yaml (empty: environment only)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logCfg := logging.LogConfig{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if cfg.Log.Output != "" {
		logCfg.OutputPaths = []string{cfg.Log.Output}
	}
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)
	logger.Info("starting apiserver", logging.String("version", version))

	if *configPath != "" {
		config.Watch(*configPath, func(newCfg *config.Config) {
			logger.Info("config file changed; restart to apply non-reloadable settings",
				logging.String("log_level", newCfg.Log.Level))
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := prometheus.NewCollector()

	// Redis is optional; a connection failure degrades the geocode cache to
	// direct lookups instead of blocking startup.
	var geocodeCache *redis.Cache
	readiness := map[string]handlers.ReadinessChecker{}
	if cfg.Redis.Enabled {
		redisClient, rerr := redis.NewClient(ctx, cfg.Redis, logger)
		if rerr != nil {
			logger.Warn("redis unavailable, geocode cache disabled", logging.Err(rerr))
		} else {
			defer redisClient.Close()
			geocodeCache = redis.NewCache(redisClient)
			readiness["redis"] = redisClient
		}
	}

	geocoder := geocode.NewCachedClient(
		geocode.NewClient(cfg.Geocoder, logger),
		geocodeCache,
		cfg.Geocoder.CacheTTL,
		logger,
		collector,
	)

	selector := astro.NewSystemSelector(geocoder, logger)
	service := astro.NewService(selector, astro.Defaults{
		Timezone:  cfg.Astro.DefaultTimezone,
		Latitude:  cfg.Astro.DefaultLatitude,
		Longitude: cfg.Astro.DefaultLongitude,
	}, logger, collector)

	gateway := verify.NewGateway(cfg.Verifier, logger, collector)

	router := httpiface.NewRouter(httpiface.RouterDeps{
		Weekday:        handlers.NewWeekdayHandler(gateway, logger),
		Astro:          handlers.NewAstroHandler(service, logger),
		Health:         handlers.NewHealthHandler(version, readiness),
		MetricsHandler: collector.Handler(),
		HTTPMetrics:    collector,
		Logger:         logger,
		Server:         cfg.Server,
	})

	server := httpiface.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
		logger.Info("apiserver stopped")
		return nil
	}
}

//Personal.AI order the ending
