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

// CreateReviewInput carries the fields accepted when posting a review.
type CreateReviewInput struct {
	BookID  int64
	UserID  int64
	Rating  int
	Comment string
}

// CreateReview inserts a review and recomputes the book's average rating and
// review count within the same transaction. The book record is only updated
// when it exists; reviews on missing books are stored as-is.
func (s *Store) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var review domain.Review
	err := s.db.Update(func(txn *badger.Txn) error {
		id, err := nextID(txn, "review")
		if err != nil {
			return err
		}

		now := time.Now()
		review = domain.Review{
			ID:        id,
			BookID:    input.BookID,
			UserID:    input.UserID,
			Rating:    input.Rating,
			Comment:   input.Comment,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := setJSON(txn, idKey(reviewPrefix, id), &review); err != nil {
			return err
		}
		if err := txn.Set(pairKey(bookReviewsPrefix, input.BookID, id), []byte{}); err != nil {
			return err
		}

		return s.recomputeBookRating(txn, input.BookID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// recomputeBookRating recalculates a book's average rating (arithmetic mean)
// and review count from its reviews, within an existing transaction.
func (s *Store) recomputeBookRating(txn *badger.Txn, bookID int64) error {
	bookKey := idKey(bookPrefix, bookID)

	var book domain.Book
	err := getJSON(txn, bookKey, &book)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil // No book to update.
	}
	if err != nil {
		return err
	}

	sum, count := 0, 0
	for _, r := range s.reviewsForBookInTxn(txn, bookID) {
		sum += r.Rating
		count++
	}

	book.ReviewCount = count
	if count > 0 {
		book.AverageRating = float64(sum) / float64(count)
	} else {
		book.AverageRating = 0
	}
	book.Touch()

	return setJSON(txn, bookKey, &book)
}

// reviewsForBookInTxn loads all reviews for a book from the index.
func (s *Store) reviewsForBookInTxn(txn *badger.Txn, bookID int64) []*domain.Review {
	prefix := bookReviewsPrefix + strconv.FormatInt(bookID, 10) + ":"
	p := []byte(prefix)

	opts := badger.DefaultIteratorOptions
	opts.Prefix = p
	opts.PrefetchValues = false

	it := txn.NewIterator(opts)
	defer it.Close()

	var reviews []*domain.Review
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		rest := strings.TrimPrefix(string(it.Item().Key()), prefix)
		reviewID, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			continue
		}

		var r domain.Review
		if err := getJSON(txn, idKey(reviewPrefix, reviewID), &r); err != nil {
			continue
		}
		reviews = append(reviews, &r)
	}
	return reviews
}

// BookReviews returns a book's reviews newest first, each joined with the
// reviewer's display name. Missing reviewers show as "Unknown User".
func (s *Store) BookReviews(ctx context.Context, bookID int64) ([]*domain.ReviewWithUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []*domain.ReviewWithUser
	err := s.db.View(func(txn *badger.Txn) error {
		for _, r := range s.reviewsForBookInTxn(txn, bookID) {
			name := "Unknown User"
			var user domain.User
			if err := getJSON(txn, idKey(userPrefix, r.UserID), &user); err == nil {
				name = user.DisplayName()
			}
			out = append(out, &domain.ReviewWithUser{Review: *r, UserName: name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Newest first, ID descending for same-instant inserts.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}
