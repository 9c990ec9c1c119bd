package books_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bjisadorozco/book-reviews-api/internal/store/books"
)

const listSQL = `
SELECT b.title, b.author, b.published_year, AVG(r.rating)
FROM books b
LEFT JOIN reviews r ON r.book_id = b.id
GROUP BY b.id
ORDER BY b.id`

func TestListWithAverageRating(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"title", "author", "published_year", "avg"}).
		AddRow("El Arte de Programar", "Donald Knuth", 1968, nil).
		AddRow("Clean Code", "Robert C. Martin", 2008, 4.5)

	mock.ExpectQuery(regexp.QuoteMeta(listSQL)).WillReturnRows(rows)

	got, err := books.ListWithAverageRating(context.Background(), db)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}

	if got[0].AverageRating != nil {
		t.Errorf("book with no reviews: average = %q, want nil", *got[0].AverageRating)
	}
	if got[0].Title != "El Arte de Programar" || got[0].PublishedYear != 1968 {
		t.Errorf("unexpected first row: %+v", got[0])
	}

	if got[1].AverageRating == nil {
		t.Fatal("book with reviews: average is nil")
	}
	if *got[1].AverageRating != "4.5" {
		t.Errorf("average = %q, want 4.5", *got[1].AverageRating)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListWithAverageRating_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(listSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"title", "author", "published_year", "avg"}))

	got, err := books.ListWithAverageRating(context.Background(), db)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, author, published_year FROM books WHERE id = $1`,
	)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "published_year"}).
			AddRow(2, "Clean Code", "Robert C. Martin", 2008))

	b, err := books.FindByID(context.Background(), db, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b.ID != 2 || b.Title != "Clean Code" {
		t.Errorf("unexpected book: %+v", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, author, published_year FROM books WHERE id = $1`,
	)).
		WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "published_year"}))

	_, err = books.FindByID(context.Background(), db, 9999)
	if err != books.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
