package domain

import "time"

// Bookmark marks a book as saved by a user. Adding is idempotent and
// removing a bookmark that does not exist is a no-op.
type Bookmark struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkedBook is a bookmark joined with the book it points at.
type BookmarkedBook struct {
	Bookmark
	Book Book `json:"book"`
}
