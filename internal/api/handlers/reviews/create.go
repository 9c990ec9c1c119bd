package reviews

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bjisadorozco/book-reviews-api/internal/api/apperr"
	"github.com/bjisadorozco/book-reviews-api/internal/api/httpx"
	"github.com/bjisadorozco/book-reviews-api/internal/models"
	storebooks "github.com/bjisadorozco/book-reviews-api/internal/store/books"
	storereviews "github.com/bjisadorozco/book-reviews-api/internal/store/reviews"
	"github.com/bjisadorozco/book-reviews-api/internal/timefmt"
	"github.com/bjisadorozco/book-reviews-api/internal/validate"
)

type createRequest struct {
	BookID  *int64          `json:"book_id"`
	Rating  json.RawMessage `json:"rating"`
	Comment *string         `json:"comment"`
}

// coerceRating accepts the integer-like shapes clients have sent in the
// wild: numbers, numeric strings, floats (truncated). Anything else
// becomes 0 and fails validation downstream.
func coerceRating(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return int(f)
		}
	}
	return 0
}

// Create handles POST /api/reviews. Every failure aborts the request
// before anything is written; there is no partial state to undo.
func Create(db *sql.DB, f timefmt.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var body createRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		// An absent book_id cannot resolve, same as an unknown one.
		if body.BookID == nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "Book not found")
			return
		}
		book, err := storebooks.FindByID(r.Context(), db, *body.BookID)
		if err != nil {
			if errors.Is(err, storebooks.ErrNotFound) {
				httpx.ErrorJSON(w, http.StatusBadRequest, "Book not found")
				return
			}
			apperr.HandleDBError(w, r, err, "failed to look up book")
			return
		}

		// An absent or malformed rating coerces to 0 and an absent comment
		// to "", so both fall through to the validator instead of erroring
		// here.
		rating := coerceRating(body.Rating)
		comment := ""
		if body.Comment != nil {
			comment = strings.TrimSpace(*body.Comment)
		}

		if vs := validate.Review(rating, comment); !vs.OK() {
			httpx.FieldErrors(w, http.StatusBadRequest, vs.ByField())
			return
		}

		rv := models.Review{
			Rating:    rating,
			Comment:   comment,
			CreatedAt: f.Now(),
			BookID:    book.ID,
		}
		if err := storereviews.Create(r.Context(), db, &rv); err != nil {
			apperr.HandleDBError(w, r, err, "failed to save review")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"id":         rv.ID,
			"created_at": f.Numeric(rv.CreatedAt),
		})
	}
}
