package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/bjisadorozco/book-reviews-api/internal/api/middlewares"
)

func TestRecovery_CatchesPanic(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went badly wrong")
	})

	wrapped := mw.Recovery(handler)

	req := httptest.NewRequest("GET", "/api/books", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "something went badly wrong\n" {
		t.Error("Panic value must not leak to the client")
	}
}

func TestRecovery_PassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	wrapped := mw.Recovery(handler)

	req := httptest.NewRequest("POST", "/api/reviews", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", rec.Code)
	}
}
