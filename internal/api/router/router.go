package router

import (
	"database/sql"
	"net/http"

	"github.com/bjisadorozco/book-reviews-api/internal/api/handlers"
	"github.com/bjisadorozco/book-reviews-api/internal/api/handlers/books"
	"github.com/bjisadorozco/book-reviews-api/internal/api/handlers/reviews"
	"github.com/bjisadorozco/book-reviews-api/internal/timefmt"
)

func Router(db *sql.DB, f timefmt.Formatter) http.Handler {
	mux := http.NewServeMux()

	// Root
	mux.HandleFunc("GET /", handlers.RootHandler)

	// Catalog (method-specific 1.22 patterns)
	mux.Handle("GET /api/books", books.List(db))
	mux.Handle("POST /api/reviews", reviews.Create(db, f))

	return mux
}
