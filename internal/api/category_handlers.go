package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/service"
)

func (s *Server) registerCategoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns all categories ordered by trend score descending",
		Tags:        []string{"Categories"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "trendingCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/trending",
		Summary:     "Trending categories",
		Description: "Returns the top categories with their trend tier and top books",
		Tags:        []string{"Categories"},
	}, s.handleTrendingCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "createCategory",
		Method:      http.MethodPost,
		Path:        "/api/v1/categories",
		Summary:     "Create category",
		Description: "Creates a new category",
		Tags:        []string{"Categories"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateCategory)
}

// === DTOs ===

// ListCategoriesInput contains parameters for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesResponse contains all categories.
type ListCategoriesResponse struct {
	Categories []*domain.Category `json:"categories" doc:"Categories ordered by trend score"`
}

// ListCategoriesOutput wraps the category list response for Huma.
type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

// TrendingCategoriesInput contains parameters for the trending listing.
type TrendingCategoriesInput struct {
	Limit int `query:"limit" doc:"Maximum number of categories to return (default 3)"`
}

// TrendingCategoriesResponse contains trending category cards.
type TrendingCategoriesResponse struct {
	Categories []*service.TrendingCategory `json:"categories" doc:"Top categories with trend tier and books"`
}

// TrendingCategoriesOutput wraps the trending response for Huma.
type TrendingCategoriesOutput struct {
	Body TrendingCategoriesResponse
}

// CreateCategoryInput wraps the category creation request for Huma.
type CreateCategoryInput struct {
	Authorization string `header:"Authorization"`
	Body          service.CreateCategoryParams
}

// CategoryOutput wraps a single category for Huma.
type CategoryOutput struct {
	Body domain.Category
}

// === Handlers ===

func (s *Server) handleListCategories(ctx context.Context, _ *ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := s.services.Category.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &ListCategoriesOutput{Body: ListCategoriesResponse{Categories: categories}}, nil
}

func (s *Server) handleTrendingCategories(ctx context.Context, input *TrendingCategoriesInput) (*TrendingCategoriesOutput, error) {
	categories, err := s.services.Category.TrendingCategories(ctx, input.Limit)
	if err != nil {
		return nil, err
	}

	return &TrendingCategoriesOutput{Body: TrendingCategoriesResponse{Categories: categories}}, nil
}

func (s *Server) handleCreateCategory(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	category, err := s.services.Category.CreateCategory(ctx, input.Body)
	if err != nil {
		return nil, err
	}

	return &CategoryOutput{Body: *category}, nil
}
