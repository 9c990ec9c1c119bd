package reviews

import (
	"context"

	"github.com/bjisadorozco/book-reviews-api/internal/models"
	"github.com/bjisadorozco/book-reviews-api/internal/store/dbx"
)

// Create persists a new review and fills in its database-assigned id.
// The review is assumed to have passed validation and to reference an
// existing book; a lost race on the book surfaces as an FK violation.
func Create(ctx context.Context, db dbx.Getter, rv *models.Review) error {
	const q = `
INSERT INTO reviews (rating, comment, created_at, book_id)
VALUES ($1, $2, $3, $4)
RETURNING id`

	return db.QueryRowContext(ctx, q, rv.Rating, rv.Comment, rv.CreatedAt, rv.BookID).
		Scan(&rv.ID)
}
