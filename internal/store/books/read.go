package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bjisadorozco/book-reviews-api/internal/models"
	"github.com/bjisadorozco/book-reviews-api/internal/store/dbx"
)

// FindByID returns the book with that identity or ErrNotFound.
func FindByID(ctx context.Context, db dbx.Getter, id int64) (models.Book, error) {
	const q = `SELECT id, title, author, published_year FROM books WHERE id = $1`

	var b models.Book
	err := db.QueryRowContext(ctx, q, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.PublishedYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrNotFound
		}
		return models.Book{}, err
	}
	return b, nil
}
