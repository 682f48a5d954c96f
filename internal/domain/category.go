package domain

import "time"

// Category groups books by technology area.
// TrendScore is an editorial popularity score used for ordering and for
// deriving the trend tier shown on category cards.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	TrendScore  int       `json:"trend_score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookCategory links a book to a category. Insertion is idempotent on the pair.
type BookCategory struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	CategoryID int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}
