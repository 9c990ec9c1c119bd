package books

import (
	"database/sql"
	"net/http"

	"github.com/bjisadorozco/book-reviews-api/internal/api/apperr"
	"github.com/bjisadorozco/book-reviews-api/internal/api/httpx"
	storebooks "github.com/bjisadorozco/book-reviews-api/internal/store/books"
)

// List handles GET /api/books: every book with its average rating, as a
// flat JSON array. No pagination or filtering on this endpoint.
func List(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := storebooks.ListWithAverageRating(r.Context(), db)
		if err != nil {
			apperr.HandleDBError(w, r, err, "failed to list books")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rows)
	}
}
