package service

import (
	"context"
	"log/slog"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/errors"
	"github.com/bookpulse/bookpulse-server/internal/store"
	"github.com/bookpulse/bookpulse-server/internal/validation"
)

// ReviewService orchestrates review operations.
type ReviewService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateReviewParams carries a review payload.
type CreateReviewParams struct {
	BookID  int64  `json:"book_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty"`
}

// CreateReview posts a review for the given user. The rating is validated
// before the store is touched; the book's average rating and review count
// are recomputed by the store.
func (s *ReviewService) CreateReview(ctx context.Context, userID int64, params CreateReviewParams) (*domain.Review, error) {
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}

	review, err := s.store.CreateReview(ctx, store.CreateReviewInput{
		BookID:  params.BookID,
		UserID:  userID,
		Rating:  params.Rating,
		Comment: params.Comment,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create review")
	}

	s.logger.Info("review created",
		"review_id", review.ID,
		"book_id", review.BookID,
		"user_id", userID,
		"rating", review.Rating,
	)

	return review, nil
}
