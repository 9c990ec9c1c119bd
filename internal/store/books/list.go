package books

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/bjisadorozco/book-reviews-api/internal/store/dbx"
)

// ListWithAverageRating returns one row per book with the mean of its
// review ratings. Books without reviews get a NULL average, never zero.
// Rows are ordered by book id ascending so the listing is deterministic.
func ListWithAverageRating(ctx context.Context, db dbx.Queryer) ([]RatedBook, error) {
	const q = `
SELECT b.title, b.author, b.published_year, AVG(r.rating)
FROM books b
LEFT JOIN reviews r ON r.book_id = b.id
GROUP BY b.id
ORDER BY b.id`

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RatedBook{}
	for rows.Next() {
		var rb RatedBook
		var avg sql.NullFloat64
		if err := rows.Scan(&rb.Title, &rb.Author, &rb.PublishedYear, &avg); err != nil {
			return nil, err
		}
		if avg.Valid {
			s := strconv.FormatFloat(avg.Float64, 'f', -1, 64)
			rb.AverageRating = &s
		}
		out = append(out, rb)
	}
	return out, rows.Err()
}
