// Package service provides the business logic layer between the API and the store.
package service

import (
	"context"
	"log/slog"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/errors"
	"github.com/bookpulse/bookpulse-server/internal/store"
	"github.com/bookpulse/bookpulse-server/internal/validation"
)

// Default page sizes for book listings.
const (
	defaultListLimit   = 50
	defaultSearchLimit = 20
)

// BookService orchestrates book operations.
type BookService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *BookService {
	return &BookService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// BookDetail is a book joined with its tags, categories, and reviews.
type BookDetail struct {
	domain.Book
	Tags       []*domain.Tag            `json:"tags"`
	Categories []*domain.Category       `json:"categories"`
	Reviews    []*domain.ReviewWithUser `json:"reviews"`
}

// ListBooks returns books by mention count descending.
// limit defaults to 50, offset to 0.
func (s *BookService) ListBooks(ctx context.Context, limit, offset int) ([]*domain.Book, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListBooks(ctx, limit, offset)
}

// GetBook returns a book with its tags, categories, and reviews.
func (s *BookService) GetBook(ctx context.Context, id int64) (*BookDetail, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, errors.NotFoundf("book %d not found", id)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get book")
	}

	tags, err := s.store.BookTags(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get book tags")
	}
	categories, err := s.store.BookCategories(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get book categories")
	}
	reviews, err := s.store.BookReviews(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get book reviews")
	}

	return &BookDetail{
		Book:       *book,
		Tags:       emptyIfNil(tags),
		Categories: emptyIfNil(categories),
		Reviews:    emptyIfNil(reviews),
	}, nil
}

// SearchBooks returns books whose title contains the query.
// limit defaults to 20.
func (s *BookService) SearchBooks(ctx context.Context, query string, limit int) ([]*domain.Book, error) {
	if query == "" {
		return nil, errors.BadRequest("query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.store.SearchBooks(ctx, query, limit)
}

// CreateBookParams carries a book registration payload.
type CreateBookParams struct {
	Title        string   `json:"title" validate:"required"`
	Author       string   `json:"author,omitempty"`
	PublishDate  string   `json:"publish_date,omitempty"`
	ISBN         string   `json:"isbn,omitempty"`
	Description  string   `json:"description,omitempty"`
	AmazonURL    string   `json:"amazon_url,omitempty" validate:"omitempty,url"`
	RakutenURL   string   `json:"rakuten_url,omitempty" validate:"omitempty,url"`
	MentionCount int      `json:"mention_count,omitempty" validate:"gte=0"`
	CategoryIDs  []int64  `json:"category_ids,omitempty"`
	TagNames     []string `json:"tag_names,omitempty"`
}

// CreateBook registers a book, then attaches the requested categories and
// tags. Attachment is best effort and not atomic with the insert: a failed
// join leaves the book in place.
func (s *BookService) CreateBook(ctx context.Context, params CreateBookParams) (*BookDetail, error) {
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}

	book, err := s.store.CreateBook(ctx, store.CreateBookInput{
		Title:        params.Title,
		Author:       params.Author,
		PublishDate:  params.PublishDate,
		ISBN:         params.ISBN,
		Description:  params.Description,
		AmazonURL:    params.AmazonURL,
		RakutenURL:   params.RakutenURL,
		MentionCount: params.MentionCount,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create book")
	}

	for _, categoryID := range params.CategoryIDs {
		if err := s.store.AddBookCategory(ctx, book.ID, categoryID); err != nil {
			s.logger.Warn("failed to attach category",
				"book_id", book.ID,
				"category_id", categoryID,
				"error", err,
			)
		}
	}

	for _, name := range params.TagNames {
		tag, err := s.store.GetOrCreateTag(ctx, name)
		if err != nil {
			s.logger.Warn("failed to resolve tag", "book_id", book.ID, "tag", name, "error", err)
			continue
		}
		if err := s.store.AddBookTag(ctx, book.ID, tag.ID); err != nil {
			s.logger.Warn("failed to attach tag", "book_id", book.ID, "tag_id", tag.ID, "error", err)
		}
	}

	s.logger.Info("book created", "book_id", book.ID, "title", book.Title)

	return s.GetBook(ctx, book.ID)
}

// emptyIfNil turns a nil slice into an empty one so JSON output stays [].
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
