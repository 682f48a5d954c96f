package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookpulse/bookpulse-server/internal/domain"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Description: "Returns all tags",
		Tags:        []string{"Tags"},
	}, s.handleListTags)
}

// ListTagsInput contains parameters for listing tags.
type ListTagsInput struct{}

// ListTagsResponse contains all tags.
type ListTagsResponse struct {
	Tags []*domain.Tag `json:"tags" doc:"All tags"`
}

// ListTagsOutput wraps the tag list response for Huma.
type ListTagsOutput struct {
	Body ListTagsResponse
}

func (s *Server) handleListTags(ctx context.Context, _ *ListTagsInput) (*ListTagsOutput, error) {
	tags, err := s.services.Tag.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	return &ListTagsOutput{Body: ListTagsResponse{Tags: tags}}, nil
}
