package books

// RatedBook is one row of the catalog listing. AverageRating is the mean
// of all review ratings rendered as a decimal string, nil when the book
// has no reviews (the mean of an empty set is not zero).
type RatedBook struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PublishedYear int     `json:"published_year"`
	AverageRating *string `json:"average_rating"`
}
