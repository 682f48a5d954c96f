package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBookPatch_Apply(t *testing.T) {
	before := time.Now().Add(-time.Hour)
	book := Book{
		ID:           1,
		Title:        "Clean Code",
		Author:       "Robert C. Martin",
		MentionCount: 200,
		UpdatedAt:    before,
	}

	rating := 4.5
	count := 2
	patch := BookPatch{
		Description:   strPtr("A handbook of agile software craftsmanship"),
		AverageRating: &rating,
		ReviewCount:   &count,
	}
	patch.Apply(&book)

	assert.Equal(t, "Clean Code", book.Title)
	assert.Equal(t, "Robert C. Martin", book.Author)
	assert.Equal(t, "A handbook of agile software craftsmanship", book.Description)
	assert.Equal(t, 4.5, book.AverageRating)
	assert.Equal(t, 2, book.ReviewCount)
	assert.Equal(t, 200, book.MentionCount)
	assert.True(t, book.UpdatedAt.After(before))
}

func TestBookPatch_EmptyPatchOnlyTouches(t *testing.T) {
	before := time.Now().Add(-time.Hour)
	book := Book{ID: 1, Title: "The Pragmatic Programmer", UpdatedAt: before}

	(&BookPatch{}).Apply(&book)

	assert.Equal(t, "The Pragmatic Programmer", book.Title)
	assert.True(t, book.UpdatedAt.After(before))
}
