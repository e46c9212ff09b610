package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"

	"github.com/davidbz/anyway/internal/config"
)

// exposedHeaders are the response headers set by Trace that browser clients may read.
var exposedHeaders = []string{"X-Request-Id", "X-Trace-Id"} //nolint:gochecknoglobals // constant list

// CORS creates a middleware that handles Cross-Origin Resource Sharing.
// Credentials are never allowed together with a wildcard origin.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	allowCredentials := cfg.AllowCredentials && !slices.Contains(cfg.AllowedOrigins, "*")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
