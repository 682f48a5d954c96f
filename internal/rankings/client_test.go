package rankings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/42", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"rank": 1,
			"id": "42",
			"title": "Clean Code",
			"author": "Robert C. Martin",
			"rating": 4.5,
			"review_count": 10,
			"mention_count": 200,
			"mentions": [
				{"title": "Why Clean Code still matters", "url": "https://example.com/a", "likes": 120, "stocks": 80, "comments": 5}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)

	detail, err := c.GetBookDetail(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Rank)
	assert.Equal(t, "Clean Code", detail.Title)
	assert.Equal(t, 200, detail.MentionCount)
	require.Len(t, detail.Mentions, 1)
	assert.Equal(t, 120, detail.Mentions[0].Likes)
}

func TestGetBookDetail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)

	_, err := c.GetBookDetail(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCategoriesWithBooks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/with-books", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("max_categories"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"categories": [
				{"id": "1", "name": "Web Development", "icon": "🌐", "trend_tag": "hot", "score": 100,
				 "books": [{"rank": 1, "id": "2", "title": "Clean Code"}]}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)

	cats, err := c.GetCategoriesWithBooks(context.Background(), 3, 5)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, TrendHot, cats[0].TrendTag)
	require.Len(t, cats[0].Books, 1)
	assert.Equal(t, "Clean Code", cats[0].Books[0].Title)
}

func TestGetRankings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rankings", r.URL.Path)
		assert.Equal(t, "monthly", r.URL.Query().Get("range"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "2", r.URL.Query().Get("offset"))
		assert.Equal(t, "web", r.URL.Query().Get("category"))
		_, _ = w.Write([]byte(`{
			"books": [{"rank": 3, "id": "7", "title": "DDIA", "mention_count": 180}],
			"total": 42
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)

	books, total, err := c.GetRankings(context.Background(), RankingsParams{
		Range:    RangeMonthly,
		Limit:    10,
		Offset:   2,
		Category: "web",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	require.Len(t, books, 1)
	assert.Equal(t, "DDIA", books[0].Title)
}

func TestGetRankings_InvalidRange(t *testing.T) {
	c := NewClient("http://unused", nil)

	_, _, err := c.GetRankings(context.Background(), RankingsParams{Range: "weekly"})
	assert.Error(t, err)
}
