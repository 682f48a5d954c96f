package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/service"
)

func (s *Server) registerReviewRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createReview",
		Method:      http.MethodPost,
		Path:        "/api/v1/reviews",
		Summary:     "Post review",
		Description: "Posts a rating and optional comment for a book",
		Tags:        []string{"Reviews"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateReview)
}

// CreateReviewInput wraps the review request for Huma.
type CreateReviewInput struct {
	Authorization string `header:"Authorization"`
	Body          service.CreateReviewParams
}

// ReviewOutput wraps a single review for Huma.
type ReviewOutput struct {
	Body domain.Review
}

func (s *Server) handleCreateReview(ctx context.Context, input *CreateReviewInput) (*ReviewOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	review, err := s.services.Review.CreateReview(ctx, userID, input.Body)
	if err != nil {
		return nil, err
	}

	return &ReviewOutput{Body: *review}, nil
}
