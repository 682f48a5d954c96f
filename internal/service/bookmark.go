package service

import (
	"context"
	"log/slog"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/errors"
	"github.com/bookpulse/bookpulse-server/internal/store"
)

// BookmarkService orchestrates bookmark operations.
type BookmarkService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(store *store.Store, logger *slog.Logger) *BookmarkService {
	return &BookmarkService{store: store, logger: logger}
}

// ListBookmarks returns the user's bookmarks joined with their books.
func (s *BookmarkService) ListBookmarks(ctx context.Context, userID int64) ([]*domain.BookmarkedBook, error) {
	bookmarks, err := s.store.UserBookmarks(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list bookmarks")
	}
	return emptyIfNil(bookmarks), nil
}

// IsBookmarked reports whether the user has bookmarked the book.
func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, bookID int64) (bool, error) {
	return s.store.IsBookmarked(ctx, userID, bookID)
}

// AddBookmark saves a book for the user. Idempotent.
func (s *BookmarkService) AddBookmark(ctx context.Context, userID, bookID int64) (*domain.Bookmark, error) {
	bm, err := s.store.AddBookmark(ctx, userID, bookID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "add bookmark")
	}
	return bm, nil
}

// RemoveBookmark deletes the user's bookmark. Tolerant of missing bookmarks.
func (s *BookmarkService) RemoveBookmark(ctx context.Context, userID, bookID int64) error {
	if err := s.store.RemoveBookmark(ctx, userID, bookID); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "remove bookmark")
	}
	return nil
}
