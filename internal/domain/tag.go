package domain

import "time"

// Tag is a global label shared across books. Names are unique and matched
// exactly, with no case normalization.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BookTag links a book to a tag. Insertion is idempotent on the pair.
type BookTag struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	TagID     int64     `json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
