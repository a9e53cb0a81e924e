package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware matching the API's open-origin policy: the app is
// served from web and mobile wrappers on arbitrary hosts.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler
}

// AllowOptions answers every remaining OPTIONS request with 200 and the
// open-policy headers. The cors handler only intercepts true preflights
// (those carrying Access-Control-Request-Method); a bare OPTIONS would
// otherwise fall through to auth and get a 401.
func AllowOptions() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
			w.WriteHeader(http.StatusOK)
		})
	}
}
