package domain

import "time"

// Review is a user's rating and optional comment on a book.
// Rating is an integer from 1 to 5 inclusive.
type Review struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewWithUser is a review joined with the reviewer's display name.
type ReviewWithUser struct {
	Review
	UserName string `json:"user_name"`
}
