package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookpulse/bookpulse-server/internal/domain"
)

// CreateBookInput carries the fields accepted when registering a book.
type CreateBookInput struct {
	Title        string
	Author       string
	PublishDate  string
	ISBN         string
	Description  string
	AmazonURL    string
	RakutenURL   string
	MentionCount int
}

// CreateBook inserts a new book and returns it.
func (s *Store) CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var book domain.Book
	err := s.db.Update(func(txn *badger.Txn) error {
		id, err := nextID(txn, "book")
		if err != nil {
			return err
		}

		now := time.Now()
		book = domain.Book{
			ID:           id,
			Title:        input.Title,
			Author:       input.Author,
			PublishDate:  input.PublishDate,
			ISBN:         input.ISBN,
			Description:  input.Description,
			AmazonURL:    input.AmazonURL,
			RakutenURL:   input.RakutenURL,
			MentionCount: input.MentionCount,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return setJSON(txn, idKey(bookPrefix, id), &book)
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBook retrieves a book by ID.
func (s *Store) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var book domain.Book
	err := s.db.View(func(txn *badger.Txn) error {
		err := getJSON(txn, idKey(bookPrefix, id), &book)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBookNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook applies a partial update to a book. UpdatedAt always advances.
func (s *Store) UpdateBook(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var book domain.Book
	err := s.db.Update(func(txn *badger.Txn) error {
		key := idKey(bookPrefix, id)
		err := getJSON(txn, key, &book)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBookNotFound
		}
		if err != nil {
			return err
		}

		patch.Apply(&book)
		return setJSON(txn, key, &book)
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book. Join records and reviews are left behind;
// lookups filter out dangling references.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := idKey(bookPrefix, id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBookNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// ListBooks returns books ordered by mention count descending, ties broken by
// ID ascending (insertion order), sliced by offset and limit.
func (s *Store) ListBooks(ctx context.Context, limit, offset int) ([]*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var books []*domain.Book
	err := s.db.View(func(txn *badger.Txn) error {
		books = scanJSON[domain.Book](txn, bookPrefix)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByMentions(books)
	return sliceWindow(books, limit, offset), nil
}

// SearchBooks returns books whose title contains the query, case-insensitive,
// ordered by mention count descending and truncated to limit.
func (s *Store) SearchBooks(ctx context.Context, query string, limit int) ([]*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)

	var books []*domain.Book
	err := s.db.View(func(txn *badger.Txn) error {
		for _, b := range scanJSON[domain.Book](txn, bookPrefix) {
			if strings.Contains(strings.ToLower(b.Title), needle) {
				books = append(books, b)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByMentions(books)
	return sliceWindow(books, limit, 0), nil
}

// sortByMentions orders books by mention count descending, ID ascending.
func sortByMentions(books []*domain.Book) {
	sort.Slice(books, func(i, j int) bool {
		if books[i].MentionCount != books[j].MentionCount {
			return books[i].MentionCount > books[j].MentionCount
		}
		return books[i].ID < books[j].ID
	})
}

// sliceWindow applies offset and limit to a sorted result set.
// A non-positive limit means no truncation.
func sliceWindow[T any](items []*T, limit, offset int) []*T {
	if offset > 0 {
		if offset >= len(items) {
			return []*T{}
		}
		items = items[offset:]
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
