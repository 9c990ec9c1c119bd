package models

import "time"

type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedYear int    `json:"published_year"`
}

// Review belongs to exactly one Book. CreatedAt is assigned server-side
// when the review is constructed and never changes afterwards.
type Review struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"-"`
	BookID    int64     `json:"book_id"`
}
