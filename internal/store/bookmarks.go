package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookpulse/bookpulse-server/internal/domain"
)

// AddBookmark saves a book for a user. Idempotent on the pair.
func (s *Store) AddBookmark(ctx context.Context, userID, bookID int64) (*domain.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bm domain.Bookmark
	err := s.db.Update(func(txn *badger.Txn) error {
		key := pairKey(bookmarkPrefix, userID, bookID)

		if err := getJSON(txn, key, &bm); err == nil {
			return nil // Already bookmarked.
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		id, err := nextID(txn, "bookmark")
		if err != nil {
			return err
		}

		bm = domain.Bookmark{
			ID:        id,
			UserID:    userID,
			BookID:    bookID,
			CreatedAt: time.Now(),
		}
		return setJSON(txn, key, &bm)
	})
	if err != nil {
		return nil, err
	}
	return &bm, nil
}

// RemoveBookmark deletes a bookmark. Removing one that does not exist is a
// no-op.
func (s *Store) RemoveBookmark(ctx context.Context, userID, bookID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(pairKey(bookmarkPrefix, userID, bookID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// IsBookmarked reports whether a user has bookmarked a book.
func (s *Store) IsBookmarked(ctx context.Context, userID, bookID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(pairKey(bookmarkPrefix, userID, bookID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// UserBookmarks returns a user's bookmarks joined with the bookmarked books,
// newest bookmark first. Bookmarks pointing at deleted books are dropped.
func (s *Store) UserBookmarks(ctx context.Context, userID int64) ([]*domain.BookmarkedBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []*domain.BookmarkedBook
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := bookmarkPrefix + strconv.FormatInt(userID, 10) + ":"
		for _, bm := range scanJSON[domain.Bookmark](txn, prefix) {
			var book domain.Book
			if err := getJSON(txn, idKey(bookPrefix, bm.BookID), &book); err != nil {
				continue // Dangling reference.
			}
			out = append(out, &domain.BookmarkedBook{Bookmark: *bm, Book: book})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}
