package main

import (
	netHttp "net/http"
	"time"

	"github.com/janne6565/projectmanager/internal/adapter/catalog"
	"github.com/janne6565/projectmanager/internal/adapter/feed"
	"github.com/janne6565/projectmanager/internal/adapter/limiter"
	"github.com/janne6565/projectmanager/internal/api/http"
	"github.com/janne6565/projectmanager/internal/app"
	"github.com/janne6565/projectmanager/internal/database"
	"github.com/janne6565/projectmanager/internal/metrics"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.Level = level

	httpClient := &netHttp.Client{
		Timeout: conf.ContributionsFetchTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.ContributionsAPIRateLimit,
		1,
	)

	kvStore, err := database.NewBoltKVStore(
		conf.DBPath,
		conf.DBBucketName,
	)
	if err != nil {
		l.Fatalf("couldn't create bolt kv store: %v", err)
	}
	defer kvStore.Close()

	projectCatalog := catalog.NewCatalog(kvStore)
	feedClient := feed.NewClient(
		limitedHTTPClient,
		conf.ContributionsAPIAddress,
		conf.ContributionsAPIToken,
	)

	matcher, err := app.NewMatcher(conf.PatternCacheSize)
	if err != nil {
		l.Fatalf("couldn't create repository matcher: %v", err)
	}

	reconcilerMetrics := metrics.NewReconciliation()
	reconciler := app.NewReconciler(
		feedClient,
		projectCatalog,
		matcher,
		conf.ReconcileInterval,
		conf.ContributionsFetchTimeout,
		reconcilerMetrics,
		l.WithField("component", "reconciler"),
	)
	reconciler.RunScheduler()
	defer reconciler.Close()

	service := app.NewService(
		projectCatalog,
		reconciler,
		l.WithField("component", "service"),
	)

	mux := http.NewMux(
		service,
		reconcilerMetrics.Handler(),
		conf.HTTPHandlerTimeout,
		l.WithField("component", "mux"),
	)
	cors := http.NewCORSMiddleware(http.CORSOptions{
		Enabled:          conf.CORSEnabled,
		AllowedOrigins:   conf.CORSAllowedOrigins,
		AllowedMethods:   conf.CORSAllowedMethods,
		AllowedHeaders:   conf.CORSAllowedHeaders,
		AllowCredentials: conf.CORSAllowCredentials,
		MaxAge:           conf.CORSMaxAge,
	})
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		cors(mux),
		l.WithField("component", "httpServer"),
	)

	start := time.Now()
	server.Run()
	l.Infof("shutting down after %s", time.Since(start).Round(time.Second))
}
