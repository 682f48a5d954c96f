package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/errors"
	"github.com/bookpulse/bookpulse-server/internal/id"
	"github.com/bookpulse/bookpulse-server/internal/media/images"
	"github.com/bookpulse/bookpulse-server/internal/store"
)

// ObjectStorage is the slice of the storage client the cover service needs.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// CoverService handles book cover uploads.
type CoverService struct {
	store   *store.Store
	storage ObjectStorage
	logger  *slog.Logger
}

// NewCoverService creates a new cover service.
func NewCoverService(store *store.Store, storage ObjectStorage, logger *slog.Logger) *CoverService {
	return &CoverService{
		store:   store,
		storage: storage,
		logger:  logger,
	}
}

// coverKeySuffixLength is the random segment appended to cover keys so
// re-uploads never collide.
const coverKeySuffixLength = 10

// UploadCover decodes a base64 cover image, stores it, and patches the
// book's cover fields. The BlurHash placeholder is best effort: a cover
// without one is still a valid cover.
func (s *CoverService) UploadCover(ctx context.Context, bookID int64, imageBase64, mimeType string) (*domain.Book, error) {
	if _, err := s.store.GetBook(ctx, bookID); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, errors.NotFoundf("book %d not found", bookID)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get book")
	}

	ext, err := extensionForMIME(mimeType)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, errors.BadRequest("image data is not valid base64")
	}
	if len(data) == 0 {
		return nil, errors.BadRequest("image data is empty")
	}

	suffix, err := id.Suffix(coverKeySuffixLength)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate cover key")
	}
	key := fmt.Sprintf("book-covers/%d-%d-%s.%s", bookID, time.Now().UnixMilli(), suffix, ext)

	blurHash, err := images.ComputeBlurHash(data)
	if err != nil {
		s.logger.Warn("failed to compute cover blurhash", "book_id", bookID, "error", err)
		blurHash = ""
	}

	url, err := s.storage.Put(ctx, key, data, mimeType)
	if err != nil {
		return nil, err
	}

	patch := domain.BookPatch{
		CoverImageURL: &url,
		CoverImageKey: &key,
	}
	if blurHash != "" {
		patch.CoverBlurHash = &blurHash
	}

	book, err := s.store.UpdateBook(ctx, bookID, patch)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "update book cover")
	}

	s.logger.Info("cover uploaded", "book_id", bookID, "key", key, "bytes", len(data))
	return book, nil
}

// extensionForMIME maps an image MIME type to a file extension.
func extensionForMIME(mimeType string) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", errors.BadRequestf("unsupported content type %q", mimeType)
	}

	switch mimeType {
	case "image/jpeg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/gif":
		return "gif", nil
	case "image/webp":
		return "webp", nil
	default:
		// Unknown image subtype: derive the extension from the subtype.
		return strings.TrimPrefix(mimeType, "image/"), nil
	}
}
