package api

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/mcoot/diamondstats/internal/middleware"
)

// WithCORS wraps handler so browsers on allowedOrigins may call the API
func WithCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: allowedOrigins,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	return c.Handler(handler)
}
