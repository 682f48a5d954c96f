package service

import (
	"context"
	"log/slog"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/errors"
	"github.com/bookpulse/bookpulse-server/internal/rankings"
	"github.com/bookpulse/bookpulse-server/internal/store"
	"github.com/bookpulse/bookpulse-server/internal/validation"
)

// Trending defaults.
const (
	defaultTrendingLimit     = 3
	trendingBooksPerCategory = 3
)

// CategoryService orchestrates category operations.
type CategoryService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// TrendingCategory is a category card with its trend tier and top books.
type TrendingCategory struct {
	domain.Category
	TrendTag rankings.TrendTag `json:"trend_tag"`
	Books    []*domain.Book    `json:"books"`
}

// ListCategories returns all categories by trend score descending.
func (s *CategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.store.ListCategories(ctx)
}

// TrendingCategories returns the top categories by trend score, each with a
// trend tier and its top books by mention count. limit defaults to 3.
func (s *CategoryService) TrendingCategories(ctx context.Context, limit int) ([]*TrendingCategory, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	cats, err := s.store.TrendingCategories(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list trending categories")
	}

	out := make([]*TrendingCategory, 0, len(cats))
	for _, cat := range cats {
		books, err := s.store.BooksByCategory(ctx, cat.ID, trendingBooksPerCategory)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "list category books")
		}
		out = append(out, &TrendingCategory{
			Category: *cat,
			TrendTag: rankings.TierForScore(cat.TrendScore),
			Books:    emptyIfNil(books),
		})
	}

	return out, nil
}

// CreateCategoryParams carries a category creation payload.
type CreateCategoryParams struct {
	Name        string `json:"name" validate:"required"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	TrendScore  int    `json:"trend_score,omitempty" validate:"gte=0"`
}

// CreateCategory creates a category.
func (s *CategoryService) CreateCategory(ctx context.Context, params CreateCategoryParams) (*domain.Category, error) {
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}

	cat, err := s.store.CreateCategory(ctx, store.CreateCategoryInput{
		Name:        params.Name,
		Icon:        params.Icon,
		Description: params.Description,
		TrendScore:  params.TrendScore,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create category")
	}

	s.logger.Info("category created", "category_id", cat.ID, "name", cat.Name)
	return cat, nil
}
