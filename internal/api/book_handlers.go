package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/service"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns books ordered by mention count descending",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/search",
		Summary:     "Search books",
		Description: "Returns books whose title contains the query",
		Tags:        []string{"Books"},
	}, s.handleSearchBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Description: "Returns a book with its tags, categories, and reviews",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "createBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/books",
		Summary:     "Register book",
		Description: "Registers a book and attaches the requested categories and tags",
		Tags:        []string{"Books"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "uploadBookCover",
		Method:      http.MethodPost,
		Path:        "/api/v1/books/{id}/cover",
		Summary:     "Upload book cover",
		Description: "Stores a base64-encoded cover image and updates the book",
		Tags:        []string{"Books"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUploadBookCover)
}

// === DTOs ===

// ListBooksInput contains parameters for listing books.
type ListBooksInput struct {
	Limit  int `query:"limit" doc:"Maximum number of books to return (default 50)"`
	Offset int `query:"offset" doc:"Number of books to skip"`
}

// ListBooksResponse contains a page of books.
type ListBooksResponse struct {
	Books []*domain.Book `json:"books" doc:"Books ordered by mention count"`
}

// ListBooksOutput wraps the book list response for Huma.
type ListBooksOutput struct {
	Body ListBooksResponse
}

// SearchBooksInput contains parameters for searching books.
type SearchBooksInput struct {
	Query string `query:"q" doc:"Substring to match against book titles"`
	Limit int    `query:"limit" doc:"Maximum number of books to return (default 20)"`
}

// GetBookInput contains parameters for getting a book.
type GetBookInput struct {
	ID int64 `path:"id" doc:"Book ID"`
}

// BookDetailOutput wraps a book with its relations for Huma.
type BookDetailOutput struct {
	Body service.BookDetail
}

// CreateBookInput wraps the book registration request for Huma.
type CreateBookInput struct {
	Authorization string `header:"Authorization"`
	Body          service.CreateBookParams
}

// UploadCoverRequest is the request body for uploading a cover image.
type UploadCoverRequest struct {
	ImageBase64 string `json:"image_base64" doc:"Base64-encoded image data"`
	MimeType    string `json:"mime_type" doc:"Image MIME type, e.g. image/png"`
}

// UploadCoverInput wraps the cover upload request for Huma.
type UploadCoverInput struct {
	Authorization string `header:"Authorization"`
	ID            int64  `path:"id" doc:"Book ID"`
	Body          UploadCoverRequest
}

// BookOutput wraps a single book for Huma.
type BookOutput struct {
	Body domain.Book
}

// === Handlers ===

func (s *Server) handleListBooks(ctx context.Context, input *ListBooksInput) (*ListBooksOutput, error) {
	books, err := s.services.Book.ListBooks(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return &ListBooksOutput{Body: ListBooksResponse{Books: books}}, nil
}

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchBooksInput) (*ListBooksOutput, error) {
	books, err := s.services.Book.SearchBooks(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListBooksOutput{Body: ListBooksResponse{Books: books}}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*BookDetailOutput, error) {
	detail, err := s.services.Book.GetBook(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &BookDetailOutput{Body: *detail}, nil
}

func (s *Server) handleCreateBook(ctx context.Context, input *CreateBookInput) (*BookDetailOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	detail, err := s.services.Book.CreateBook(ctx, input.Body)
	if err != nil {
		return nil, err
	}

	return &BookDetailOutput{Body: *detail}, nil
}

func (s *Server) handleUploadBookCover(ctx context.Context, input *UploadCoverInput) (*BookOutput, error) {
	if _, err := GetUserID(ctx); err != nil {
		return nil, err
	}

	book, err := s.services.Cover.UploadCover(ctx, input.ID, input.Body.ImageBase64, input.Body.MimeType)
	if err != nil {
		return nil, err
	}

	return &BookOutput{Body: *book}, nil
}
