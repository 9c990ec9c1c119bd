package handlers

import (
	"net/http"

	"github.com/bjisadorozco/book-reviews-api/internal/api/httpx"
)

// RootHandler answers GET / with a small service banner so health probes
// and humans get something other than a 404.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"service": "book-reviews-api",
		"status":  "ok",
	})
}
