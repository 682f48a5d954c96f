package api

import "github.com/bookpulse/bookpulse-server/internal/service"

// Services bundles the service layer dependencies for the API server.
type Services struct {
	Book     *service.BookService
	Category *service.CategoryService
	Tag      *service.TagService
	Review   *service.ReviewService
	Bookmark *service.BookmarkService
	User     *service.UserService
	Cover    *service.CoverService
	System   *service.SystemService
}
