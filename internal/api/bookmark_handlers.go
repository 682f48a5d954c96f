package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookpulse/bookpulse-server/internal/domain"
)

func (s *Server) registerBookmarkRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBookmarks",
		Method:      http.MethodGet,
		Path:        "/api/v1/bookmarks",
		Summary:     "List bookmarks",
		Description: "Returns the signed-in user's bookmarked books, newest first",
		Tags:        []string{"Bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListBookmarks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBookmarkStatus",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/bookmark",
		Summary:     "Get bookmark status",
		Description: "Reports whether the signed-in user has bookmarked the book",
		Tags:        []string{"Bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetBookmarkStatus)

	huma.Register(s.api, huma.Operation{
		OperationID: "addBookmark",
		Method:      http.MethodPost,
		Path:        "/api/v1/books/{id}/bookmark",
		Summary:     "Add bookmark",
		Description: "Saves the book for the signed-in user",
		Tags:        []string{"Bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAddBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeBookmark",
		Method:      http.MethodDelete,
		Path:        "/api/v1/books/{id}/bookmark",
		Summary:     "Remove bookmark",
		Description: "Removes the signed-in user's bookmark for the book",
		Tags:        []string{"Bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleRemoveBookmark)
}

// === DTOs ===

// ListBookmarksInput contains parameters for listing bookmarks.
type ListBookmarksInput struct {
	Authorization string `header:"Authorization"`
}

// ListBookmarksResponse contains the user's bookmarked books.
type ListBookmarksResponse struct {
	Bookmarks []*domain.BookmarkedBook `json:"bookmarks" doc:"Bookmarked books, newest first"`
}

// ListBookmarksOutput wraps the bookmark list response for Huma.
type ListBookmarksOutput struct {
	Body ListBookmarksResponse
}

// BookmarkInput identifies a book for bookmark operations.
type BookmarkInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Book ID"`
}

// BookmarkStatusResponse reports whether a book is bookmarked.
type BookmarkStatusResponse struct {
	Bookmarked bool `json:"bookmarked" doc:"Whether the book is bookmarked"`
}

// BookmarkStatusOutput wraps the bookmark status response for Huma.
type BookmarkStatusOutput struct {
	Body BookmarkStatusResponse
}

// BookmarkOutput wraps a single bookmark for Huma.
type BookmarkOutput struct {
	Body domain.Bookmark
}

// === Handlers ===

func (s *Server) handleListBookmarks(ctx context.Context, _ *ListBookmarksInput) (*ListBookmarksOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	bookmarks, err := s.services.Bookmark.ListBookmarks(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListBookmarksOutput{Body: ListBookmarksResponse{Bookmarks: bookmarks}}, nil
}

func (s *Server) handleGetBookmarkStatus(ctx context.Context, input *BookmarkInput) (*BookmarkStatusOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	marked, err := s.services.Bookmark.IsBookmarked(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	return &BookmarkStatusOutput{Body: BookmarkStatusResponse{Bookmarked: marked}}, nil
}

func (s *Server) handleAddBookmark(ctx context.Context, input *BookmarkInput) (*BookmarkOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	bookmark, err := s.services.Bookmark.AddBookmark(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	return &BookmarkOutput{Body: *bookmark}, nil
}

func (s *Server) handleRemoveBookmark(ctx context.Context, input *BookmarkInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Bookmark.RemoveBookmark(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Bookmark removed"}}, nil
}
