// Package seed loads the fixture catalog. Books are only ever created
// here; the API itself has no book-creation endpoint.
package seed

import (
	"context"
	"database/sql"

	"github.com/bjisadorozco/book-reviews-api/internal/models"
	"github.com/bjisadorozco/book-reviews-api/internal/store/dbx"
	"github.com/bjisadorozco/book-reviews-api/internal/store/reviews"
	"github.com/bjisadorozco/book-reviews-api/internal/timefmt"
)

type bookFixture struct {
	title   string
	author  string
	year    int
	reviews []reviewFixture
}

type reviewFixture struct {
	rating  int
	comment string
}

var fixtures = []bookFixture{
	{
		title: "El Arte de Programar", author: "Donald Knuth", year: 1968,
		reviews: []reviewFixture{
			{5, "Excelente libro"},
			{4, "Muy completo"},
		},
	},
	{
		title: "Clean Code", author: "Robert C. Martin", year: 2008,
		reviews: []reviewFixture{
			{5, "Imprescindible"},
			{4, "Buenas prácticas claras"},
		},
	},
	{
		title: "Refactoring", author: "Martin Fowler", year: 1999,
		reviews: []reviewFixture{
			{3, "Buen contenido"},
			{4, "Muy útil"},
		},
	},
}

// Load inserts the fixture books and their reviews in one transaction.
// Returns the number of books and reviews inserted.
func Load(ctx context.Context, db *sql.DB, f timefmt.Formatter) (int, int, error) {
	nBooks, nReviews := 0, 0
	err := dbx.WithinTx(ctx, db, func(tx *sql.Tx) error {
		for _, fx := range fixtures {
			var bookID int64
			err := tx.QueryRowContext(ctx, `
INSERT INTO books (title, author, published_year)
VALUES ($1, $2, $3)
RETURNING id`, fx.title, fx.author, fx.year).Scan(&bookID)
			if err != nil {
				return err
			}
			nBooks++

			for _, rf := range fx.reviews {
				rv := models.Review{
					Rating:    rf.rating,
					Comment:   rf.comment,
					CreatedAt: f.Now(),
					BookID:    bookID,
				}
				if err := reviews.Create(ctx, tx, &rv); err != nil {
					return err
				}
				nReviews++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return nBooks, nReviews, nil
}

// Truncate clears both tables; reviews first because of the FK.
func Truncate(ctx context.Context, db *sql.DB) error {
	return dbx.WithinTx(ctx, db, func(tx *sql.Tx) error {
		for _, q := range []string{"DELETE FROM reviews", "DELETE FROM books"} {
			if _, err := tx.ExecContext(ctx, q); err != nil {
				return err
			}
		}
		return nil
	})
}
