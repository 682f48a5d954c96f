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

// ListTags returns all tags ordered by ID ascending.
func (s *Store) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tags []*domain.Tag
	err := s.db.View(func(txn *badger.Txn) error {
		tags = scanJSON[domain.Tag](txn, tagPrefix)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

// GetTag retrieves a tag by ID.
func (s *Store) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tag domain.Tag
	err := s.db.View(func(txn *badger.Txn) error {
		err := getJSON(txn, idKey(tagPrefix, id), &tag)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrTagNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetOrCreateTag finds a tag by exact name or creates it.
// Names are unique and not case-normalized.
func (s *Store) GetOrCreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tag domain.Tag
	err := s.db.Update(func(txn *badger.Txn) error {
		nameKey := []byte(tagByNamePrefix + name)

		item, err := txn.Get(nameKey)
		if err == nil {
			var id int64
			if verr := item.Value(func(val []byte) error {
				n, perr := strconv.ParseInt(string(val), 10, 64)
				id = n
				return perr
			}); verr != nil {
				return verr
			}
			return getJSON(txn, idKey(tagPrefix, id), &tag)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		id, err := nextID(txn, "tag")
		if err != nil {
			return err
		}

		tag = domain.Tag{
			ID:        id,
			Name:      name,
			CreatedAt: time.Now(),
		}
		if err := setJSON(txn, idKey(tagPrefix, id), &tag); err != nil {
			return err
		}
		return txn.Set(nameKey, []byte(strconv.FormatInt(id, 10)))
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// AddBookTag links a book to a tag. Idempotent on the pair.
func (s *Store) AddBookTag(ctx context.Context, bookID, tagID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := pairKey(bookTagPrefix, bookID, tagID)
		if _, err := txn.Get(key); err == nil {
			return nil
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		id, err := nextID(txn, "book_tag")
		if err != nil {
			return err
		}

		bt := domain.BookTag{
			ID:        id,
			BookID:    bookID,
			TagID:     tagID,
			CreatedAt: time.Now(),
		}
		return setJSON(txn, key, &bt)
	})
}

// BookTags returns the tags attached to a book, dropping dangling
// references, ordered by tag ID ascending.
func (s *Store) BookTags(ctx context.Context, bookID int64) ([]*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tags []*domain.Tag
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := bookTagPrefix + strconv.FormatInt(bookID, 10) + ":"
		for _, bt := range scanJSON[domain.BookTag](txn, prefix) {
			var tag domain.Tag
			if err := getJSON(txn, idKey(tagPrefix, bt.TagID), &tag); err != nil {
				continue // Dangling reference.
			}
			tags = append(tags, &tag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}
