package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/cors"
)

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"}
)

// CorsMiddleware allows any origin. Every response carries the permissive
// headers, with or without an Origin header, and every OPTIONS request is
// answered with an empty 200.
func CorsMiddleware(maxAge int) func(http.Handler) http.Handler {
	negotiate := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: corsMethods,
		AllowedHeaders: corsHeaders,
		MaxAge:         maxAge,
	})

	return func(next http.Handler) http.Handler {
		preflight := negotiate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		}))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", strings.ToLower(strings.Join(corsHeaders, ", ")))
			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ", "))
				if maxAge > 0 {
					h.Set("Access-Control-Max-Age", strconv.Itoa(maxAge))
				}
			}
			preflight.ServeHTTP(w, r)
		})
	}
}
