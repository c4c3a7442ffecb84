package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPHandlerTimeout - timeout for single http handler execution
	HTTPHandlerTimeout time.Duration `default:"60s"`

	// CORSEnabled - adds CORS headers and answers preflight requests
	CORSEnabled bool `default:"true"`

	// CORSAllowedOrigins - comma separated origins allowed to call the api, "*" allows any
	CORSAllowedOrigins []string `default:"*"`

	// CORSAllowedMethods - comma separated methods allowed in cross origin requests
	CORSAllowedMethods []string `default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`

	// CORSAllowedHeaders - comma separated request headers allowed in cross origin requests, "*" allows any
	CORSAllowedHeaders []string `default:"*"`

	// CORSAllowCredentials - allows cookies and authorization headers in cross origin requests
	CORSAllowCredentials bool `default:"true"`

	// CORSMaxAge - how long browsers may cache preflight responses
	CORSMaxAge time.Duration `default:"1h"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`

	// ContributionsAPIAddress - address for contributions feed api with protocol
	ContributionsAPIAddress string `default:"http://localhost:8081"`

	// ContributionsAPIToken - bearer token for contributions feed api (optional)
	ContributionsAPIToken string `default:""`

	// ContributionsAPIRateLimit - max frequency for contributions feed api calls, 0 disables limiting
	ContributionsAPIRateLimit float64 `default:"1"`

	// ContributionsFetchTimeout - maximum duration of single feed fetch
	ContributionsFetchTimeout time.Duration `default:"30s"`

	// ReconcileInterval - delay between end of one reconciliation pass and start of the next
	ReconcileInterval time.Duration `default:"2m"`

	// PatternCacheSize - maximum number of compiled repository patterns kept in memory
	PatternCacheSize int `default:"1000"`

	// DBPath - filepath for bolt db data
	DBPath string `default:"./projects.data"`

	// DBBucketName - bolt db bucket name
	DBBucketName string `default:"projects"`
}
