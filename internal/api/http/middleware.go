package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/sirupsen/logrus"
)

// NewTimeoutMiddleware creates middleware that cancels requests context after given time.
func NewTimeoutMiddleware(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			h(w, r)
		}
	}
}

// NewLoggingMiddleware creates middleware logging method, path, status and duration of each request.
func NewLoggingMiddleware(l logrus.FieldLogger) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			l.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   m.Code,
				"bytes":    m.Written,
				"duration": m.Duration,
			}).Debug("request handled")
		}
	}
}

// CORSOptions configures cross origin requests from browser frontends.
type CORSOptions struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// NewCORSMiddleware creates middleware adding CORS headers and answering preflight requests.
// Wraps whole mux, preflight OPTIONS requests don't match any route.
func NewCORSMiddleware(opts CORSOptions) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		if !opts.Enabled {
			return h
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				h.ServeHTTP(w, r)
				return
			}

			header := w.Header()
			header.Add("Vary", "Origin")
			allowed := containsOrWildcard(opts.AllowedOrigins, origin)
			if allowed {
				// Wildcard origin is not accepted by browsers for credentialed requests.
				if opts.AllowCredentials || !contains(opts.AllowedOrigins, "*") {
					header.Set("Access-Control-Allow-Origin", origin)
				} else {
					header.Set("Access-Control-Allow-Origin", "*")
				}
				if opts.AllowCredentials {
					header.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				h.ServeHTTP(w, r)
				return
			}

			method := r.Header.Get("Access-Control-Request-Method")
			if !allowed || !containsOrWildcard(opts.AllowedMethods, method) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			header.Set("Access-Control-Allow-Methods", strings.Join(opts.AllowedMethods, ", "))
			if contains(opts.AllowedHeaders, "*") {
				if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
					header.Set("Access-Control-Allow-Headers", requested)
				}
			} else if len(opts.AllowedHeaders) > 0 {
				header.Set("Access-Control-Allow-Headers", strings.Join(opts.AllowedHeaders, ", "))
			}
			if opts.MaxAge > 0 {
				header.Set("Access-Control-Max-Age", strconv.Itoa(int(opts.MaxAge.Seconds())))
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func containsOrWildcard(values []string, v string) bool {
	return contains(values, "*") || contains(values, v)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
