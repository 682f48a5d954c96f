package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookpulse/bookpulse-server/internal/domain"
)

// CreateCategoryInput carries the fields accepted when creating a category.
type CreateCategoryInput struct {
	Name        string
	Icon        string
	Description string
	TrendScore  int
}

// CreateCategory inserts a new category and returns it.
func (s *Store) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cat domain.Category
	err := s.db.Update(func(txn *badger.Txn) error {
		id, err := nextID(txn, "category")
		if err != nil {
			return err
		}

		now := time.Now()
		cat = domain.Category{
			ID:          id,
			Name:        input.Name,
			Icon:        input.Icon,
			Description: input.Description,
			TrendScore:  input.TrendScore,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return setJSON(txn, idKey(categoryPrefix, id), &cat)
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetCategory retrieves a category by ID.
func (s *Store) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cat domain.Category
	err := s.db.View(func(txn *badger.Txn) error {
		err := getJSON(txn, idKey(categoryPrefix, id), &cat)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrCategoryNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListCategories returns all categories ordered by trend score descending,
// ties broken by ID ascending.
func (s *Store) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cats []*domain.Category
	err := s.db.View(func(txn *badger.Txn) error {
		cats = scanJSON[domain.Category](txn, categoryPrefix)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByTrendScore(cats)
	return cats, nil
}

// TrendingCategories returns the top categories by trend score.
func (s *Store) TrendingCategories(ctx context.Context, limit int) ([]*domain.Category, error) {
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return sliceWindow(cats, limit, 0), nil
}

// AddBookCategory links a book to a category. Idempotent on the pair.
func (s *Store) AddBookCategory(ctx context.Context, bookID, categoryID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := pairKey(bookCategoryPrefix, bookID, categoryID)
		if _, err := txn.Get(key); err == nil {
			return nil
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		id, err := nextID(txn, "book_category")
		if err != nil {
			return err
		}

		bc := domain.BookCategory{
			ID:         id,
			BookID:     bookID,
			CategoryID: categoryID,
			CreatedAt:  time.Now(),
		}
		if err := setJSON(txn, key, &bc); err != nil {
			return err
		}

		// Reverse index for category → books lookups.
		return txn.Set(pairKey(categoryBooksPrefix, categoryID, bookID), []byte{})
	})
}

// BookCategories returns the categories attached to a book, dropping
// dangling references, ordered by trend score descending.
func (s *Store) BookCategories(ctx context.Context, bookID int64) ([]*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cats []*domain.Category
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := bookCategoryPrefix + strconv.FormatInt(bookID, 10) + ":"
		for _, bc := range scanJSON[domain.BookCategory](txn, prefix) {
			var cat domain.Category
			if err := getJSON(txn, idKey(categoryPrefix, bc.CategoryID), &cat); err != nil {
				continue // Dangling reference.
			}
			cats = append(cats, &cat)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByTrendScore(cats)
	return cats, nil
}

// BooksByCategory returns the books in a category ordered by mention count
// descending, truncated to limit. Dangling references are dropped.
func (s *Store) BooksByCategory(ctx context.Context, categoryID int64, limit int) ([]*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var books []*domain.Book
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := categoryBooksPrefix + strconv.FormatInt(categoryID, 10) + ":"
		p := []byte(prefix)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = p
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			rest := strings.TrimPrefix(string(it.Item().Key()), prefix)
			bookID, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				continue
			}

			var book domain.Book
			if err := getJSON(txn, idKey(bookPrefix, bookID), &book); err != nil {
				continue // Dangling reference.
			}
			books = append(books, &book)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByMentions(books)
	return sliceWindow(books, limit, 0), nil
}

// sortByTrendScore orders categories by trend score descending, ID ascending.
func sortByTrendScore(cats []*domain.Category) {
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].TrendScore != cats[j].TrendScore {
			return cats[i].TrendScore > cats[j].TrendScore
		}
		return cats[i].ID < cats[j].ID
	})
}
