package seed_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bjisadorozco/book-reviews-api/internal/seed"
	"github.com/bjisadorozco/book-reviews-api/internal/timefmt"
)

func TestLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectBegin()
	for bookID := int64(1); bookID <= 3; bookID++ {
		mock.ExpectQuery("INSERT INTO books").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(bookID))
		for j := 0; j < 2; j++ {
			mock.ExpectQuery("INSERT INTO reviews").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(bookID*10 + int64(j)))
		}
	}
	mock.ExpectCommit()

	nBooks, nReviews, err := seed.Load(context.Background(), db, timefmt.New(timefmt.Bogota))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if nBooks != 3 || nReviews != 6 {
		t.Errorf("got %d books, %d reviews; want 3 and 6", nBooks, nReviews)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO books").
		WillReturnError(sqlmock.ErrCancelled)
	mock.ExpectRollback()

	if _, _, err := seed.Load(context.Background(), db, timefmt.New(timefmt.Bogota)); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTruncate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reviews").WillReturnResult(sqlmock.NewResult(0, 6))
	mock.ExpectExec("DELETE FROM books").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	if err := seed.Truncate(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
