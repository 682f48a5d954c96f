package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookpulse/bookpulse-server/internal/domain"
)

func TestCreateBook_AssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateBook(ctx, CreateBookInput{Title: "Clean Code", MentionCount: 200})
	require.NoError(t, err)
	second, err := s.CreateBook(ctx, CreateBookInput{Title: "Refactoring", MentionCount: 90})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestGetBook_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetBook(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestListBooks_OrdersByMentionsThenID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateBook(ctx, CreateBookInput{Title: "A", MentionCount: 100})
	require.NoError(t, err)
	_, err = s.CreateBook(ctx, CreateBookInput{Title: "B", MentionCount: 300})
	require.NoError(t, err)
	_, err = s.CreateBook(ctx, CreateBookInput{Title: "C", MentionCount: 100})
	require.NoError(t, err)

	books, err := s.ListBooks(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, books, 3)

	assert.Equal(t, "B", books[0].Title)
	// Tie on 100 mentions resolves by insertion order.
	assert.Equal(t, "A", books[1].Title)
	assert.Equal(t, "C", books[2].Title)
}

func TestListBooks_Pagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.CreateBook(ctx, CreateBookInput{Title: "Book", MentionCount: 10 - i})
		require.NoError(t, err)
	}

	page, err := s.ListBooks(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 8, page[0].MentionCount)
	assert.Equal(t, 7, page[1].MentionCount)

	past, err := s.ListBooks(ctx, 2, 100)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestSearchBooks_CaseInsensitiveSubstring(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateBook(ctx, CreateBookInput{Title: "Clean Code", MentionCount: 200})
	require.NoError(t, err)
	_, err = s.CreateBook(ctx, CreateBookInput{Title: "Clean Architecture", MentionCount: 120})
	require.NoError(t, err)
	_, err = s.CreateBook(ctx, CreateBookInput{Title: "Refactoring", MentionCount: 90})
	require.NoError(t, err)

	results, err := s.SearchBooks(ctx, "clean", 20)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Clean Code", results[0].Title)
	assert.Equal(t, "Clean Architecture", results[1].Title)

	none, err := s.SearchBooks(ctx, "kubernetes", 20)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateBook_PartialPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	book, err := s.CreateBook(ctx, CreateBookInput{Title: "Clean Code", MentionCount: 200})
	require.NoError(t, err)

	url := "https://cdn.example.com/covers/1.webp"
	key := "book-covers/1-123-abc.webp"
	updated, err := s.UpdateBook(ctx, book.ID, domain.BookPatch{
		CoverImageURL: &url,
		CoverImageKey: &key,
	})
	require.NoError(t, err)

	assert.Equal(t, "Clean Code", updated.Title)
	assert.Equal(t, url, updated.CoverImageURL)
	assert.Equal(t, key, updated.CoverImageKey)
	assert.True(t, updated.UpdatedAt.After(book.CreatedAt) || updated.UpdatedAt.Equal(book.CreatedAt))
}

func TestUpdateBook_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateBook(context.Background(), 42, domain.BookPatch{})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestDeleteBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	book, err := s.CreateBook(ctx, CreateBookInput{Title: "Clean Code"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteBook(ctx, book.ID))

	_, err = s.GetBook(ctx, book.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)

	assert.ErrorIs(t, s.DeleteBook(ctx, book.ID), ErrBookNotFound)
}

func TestBookIDs_MonotonicAcrossDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateBook(ctx, CreateBookInput{Title: "A"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteBook(ctx, first.ID))

	second, err := s.CreateBook(ctx, CreateBookInput{Title: "B"})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}
