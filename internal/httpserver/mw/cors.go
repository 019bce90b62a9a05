package mw

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the configured web client origin, with credentials and
// the auth token header.
func CORS(clientURL string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{clientURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "x-auth-token"},
		ExposedHeaders:   []string{"Content-Length"},
		MaxAge:           86400,
	})
}
