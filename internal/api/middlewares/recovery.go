package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/bjisadorozco/book-reviews-api/internal/api/apperr"
)

// Recovery converts handler panics into a problem+json 500 so a bad
// request never tears down the listener.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				rid := GetRequestID(r)
				if rid == "" {
					rid = "unknown"
				}

				log.Printf("[PANIC] RequestID=%s %s %s: %v\n%s",
					rid, r.Method, r.URL.Path, v, debug.Stack())

				// The panic value stays in the logs only.
				apperr.WriteStatus(w, r, http.StatusInternalServerError,
					"internal error", "unexpected server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
