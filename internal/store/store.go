// Package store implements the process-lifetime data store backing the API.
//
// Data lives in a Badger database running in in-memory mode: everything is
// seeded at startup and lost on restart. Entities are JSON-encoded under
// typed key prefixes, with numeric per-entity counters providing
// auto-incrementing IDs.
package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New creates a new in-memory Store instance.
func New(logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // Disable Badger's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("in-memory store opened")
	}

	return &Store{db: db, logger: logger}, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing store")
	}
	return s.db.Close()
}

// Key prefixes. Entity records are JSON under {prefix}{id}; index keys map a
// lookup value to an ID or mark a pair's existence with an empty value.
const (
	seqPrefix = "seq:" // seq:{entity} → decimal counter

	userPrefix         = "user:"             // user:{id} → User JSON
	userByOpenIDPrefix = "idx:users:openid:" // idx:users:openid:{openID} → userID

	bookPrefix     = "book:"     // book:{id} → Book JSON
	categoryPrefix = "category:" // category:{id} → Category JSON

	tagPrefix       = "tag:"           // tag:{id} → Tag JSON
	tagByNamePrefix = "idx:tags:name:" // idx:tags:name:{name} → tagID

	bookTagPrefix       = "booktag:"            // booktag:{bookID}:{tagID} → BookTag JSON
	bookCategoryPrefix  = "bookcat:"            // bookcat:{bookID}:{categoryID} → BookCategory JSON
	categoryBooksPrefix = "idx:category:books:" // idx:category:books:{categoryID}:{bookID} → empty

	reviewPrefix      = "review:"           // review:{id} → Review JSON
	bookReviewsPrefix = "idx:book:reviews:" // idx:book:reviews:{bookID}:{reviewID} → empty

	bookmarkPrefix = "bookmark:" // bookmark:{userID}:{bookID} → Bookmark JSON
)

// nextID increments and returns the named entity counter within a transaction.
// Counters are monotonic for the process lifetime.
func nextID(txn *badger.Txn, entity string) (int64, error) {
	key := []byte(seqPrefix + entity)

	var current int64
	item, err := txn.Get(key)
	if err == nil {
		verr := item.Value(func(val []byte) error {
			n, perr := strconv.ParseInt(string(val), 10, 64)
			if perr != nil {
				return perr
			}
			current = n
			return nil
		})
		if verr != nil {
			return 0, verr
		}
	} else if !errors.Is(err, badger.ErrKeyNotFound) {
		return 0, err
	}

	next := current + 1
	if err := txn.Set(key, []byte(strconv.FormatInt(next, 10))); err != nil {
		return 0, err
	}
	return next, nil
}

// getJSON unmarshals the value at key into dest within a transaction.
// Returns badger.ErrKeyNotFound when the key is absent.
func getJSON(txn *badger.Txn, key []byte, dest any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dest)
	})
}

// setJSON marshals value and stores it at key within a transaction.
func setJSON(txn *badger.Txn, key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return txn.Set(key, data)
}

// scanJSON iterates all records under prefix, unmarshalling each into a fresh
// T and appending it to the result. Undecodable records are skipped.
func scanJSON[T any](txn *badger.Txn, prefix string) []*T {
	p := []byte(prefix)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = p
	opts.PrefetchSize = 100

	it := txn.NewIterator(opts)
	defer it.Close()

	var out []*T
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		var v T
		err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &v)
		})
		if err != nil {
			continue
		}
		out = append(out, &v)
	}
	return out
}

// idKey builds an entity key from a prefix and numeric ID.
func idKey(prefix string, id int64) []byte {
	return []byte(prefix + strconv.FormatInt(id, 10))
}

// pairKey builds a join key from a prefix and two numeric IDs.
func pairKey(prefix string, a, b int64) []byte {
	return []byte(prefix + strconv.FormatInt(a, 10) + ":" + strconv.FormatInt(b, 10))
}
