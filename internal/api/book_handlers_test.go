package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookpulse/bookpulse-server/internal/service"
)

func TestListBooks_OrderedByMentions(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Get("/api/v1/books")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListBooksResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data.Books, 3)
	assert.Equal(t, "Clean Code", envelope.Data.Books[0].Title)
	assert.Equal(t, 200, envelope.Data.Books[0].MentionCount)
	assert.Equal(t, "Designing Data-Intensive Applications", envelope.Data.Books[1].Title)
	assert.Equal(t, "The Pragmatic Programmer", envelope.Data.Books[2].Title)
}

func TestListBooks_Pagination(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Get("/api/v1/books?limit=1&offset=1")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListBooksResponse](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Books, 1)
	assert.Equal(t, "Designing Data-Intensive Applications", envelope.Data.Books[0].Title)
}

func TestGetBook_WithRelations(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Get("/api/v1/books/1")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[service.BookDetail](t, resp.Body.Bytes())
	assert.Equal(t, "The Pragmatic Programmer", envelope.Data.Title)
	require.Len(t, envelope.Data.Categories, 1)
	assert.Equal(t, "Web Development", envelope.Data.Categories[0].Name)
	require.Len(t, envelope.Data.Tags, 1)
	assert.Equal(t, "React", envelope.Data.Tags[0].Name)
	assert.NotNil(t, envelope.Data.Reviews)
}

func TestGetBook_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/books/999")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	envelope := decodeEnvelope[any](t, resp.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestSearchBooks(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Get("/api/v1/books/search?q=clean")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListBooksResponse](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Books, 1)
	assert.Equal(t, "Clean Code", envelope.Data.Books[0].Title)
}

func TestSearchBooks_MissingQuery(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/books/search")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[any](t, resp.Body.Bytes())
	assert.Equal(t, "BAD_REQUEST", envelope.Code)
}

func TestCreateBook_RequiresSignIn(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/books", map[string]any{"title": "New Book"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	envelope := decodeEnvelope[any](t, resp.Body.Bytes())
	assert.Equal(t, "UNAUTHORIZED", envelope.Code)
}

func TestCreateBook(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Post("/api/v1/books", map[string]any{
		"title":         "Refactoring",
		"author":        "Martin Fowler",
		"mention_count": 90,
		"category_ids":  []int64{1},
		"tag_names":     []string{"TypeScript", "Refactoring"},
	}, ts.authHeader("line-1"))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[service.BookDetail](t, resp.Body.Bytes())
	assert.Equal(t, "Refactoring", envelope.Data.Title)
	assert.Equal(t, 90, envelope.Data.MentionCount)
	require.Len(t, envelope.Data.Categories, 1)
	// One existing tag reused, one created.
	assert.Len(t, envelope.Data.Tags, 2)
}

func TestCreateBook_InvalidURL(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/books", map[string]any{
		"title":      "Broken",
		"amazon_url": "not-a-url",
	}, ts.authHeader("line-1"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[any](t, resp.Body.Bytes())
	assert.Equal(t, "BAD_REQUEST", envelope.Code)
}

func coverPayload(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 24, 36))
	for y := 0; y < 36; y++ {
		for x := 0; x < 24; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 90, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestUploadBookCover(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Post("/api/v1/books/1/cover", map[string]any{
		"image_base64": coverPayload(t),
		"mime_type":    "image/png",
	}, ts.authHeader("line-1"))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.Equal(t, 1, ts.storage.calls)
	assert.Equal(t, "https://cdn.test/covers/obj", envelope.Data["cover_image_url"])
	assert.NotEmpty(t, envelope.Data["cover_blur_hash"])
}

func TestUploadBookCover_RequiresSignIn(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Post("/api/v1/books/1/cover", map[string]any{
		"image_base64": coverPayload(t),
		"mime_type":    "image/png",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, 0, ts.storage.calls)
}
