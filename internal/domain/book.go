package domain

import "time"

// Book represents a technology book tracked by the ranking site.
// MentionCount is the number of external articles referencing the book and
// drives the default sort order everywhere books are listed.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author,omitempty"`
	PublishDate   string    `json:"publish_date,omitempty"`
	ISBN          string    `json:"isbn,omitempty"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	CoverImageKey string    `json:"cover_image_key,omitempty"`
	CoverBlurHash string    `json:"cover_blur_hash,omitempty"`
	AmazonURL     string    `json:"amazon_url,omitempty"`
	RakutenURL    string    `json:"rakuten_url,omitempty"`
	MentionCount  int       `json:"mention_count"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int       `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp.
func (b *Book) Touch() {
	b.UpdatedAt = time.Now()
}

// BookPatch carries a partial update for a book. Nil fields are left as-is.
type BookPatch struct {
	Title         *string
	Author        *string
	PublishDate   *string
	ISBN          *string
	Description   *string
	CoverImageURL *string
	CoverImageKey *string
	CoverBlurHash *string
	AmazonURL     *string
	RakutenURL    *string
	MentionCount  *int
	AverageRating *float64
	ReviewCount   *int
}

// Apply copies the patch's set fields onto the book and touches it.
func (p *BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.PublishDate != nil {
		b.PublishDate = *p.PublishDate
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.CoverImageURL != nil {
		b.CoverImageURL = *p.CoverImageURL
	}
	if p.CoverImageKey != nil {
		b.CoverImageKey = *p.CoverImageKey
	}
	if p.CoverBlurHash != nil {
		b.CoverBlurHash = *p.CoverBlurHash
	}
	if p.AmazonURL != nil {
		b.AmazonURL = *p.AmazonURL
	}
	if p.RakutenURL != nil {
		b.RakutenURL = *p.RakutenURL
	}
	if p.MentionCount != nil {
		b.MentionCount = *p.MentionCount
	}
	if p.AverageRating != nil {
		b.AverageRating = *p.AverageRating
	}
	if p.ReviewCount != nil {
		b.ReviewCount = *p.ReviewCount
	}
	b.Touch()
}
