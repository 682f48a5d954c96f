package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookpulse/bookpulse-server/internal/rankings"
)

func TestListCategories_OrderedByTrendScore(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Get("/api/v1/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListCategoriesResponse](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Categories, 5)
	assert.Equal(t, "Web Development", envelope.Data.Categories[0].Name)
	assert.Equal(t, "AI & Machine Learning", envelope.Data.Categories[1].Name)
	assert.Equal(t, "Database", envelope.Data.Categories[4].Name)
}

func TestTrendingCategories(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Get("/api/v1/categories/trending")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[TrendingCategoriesResponse](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Categories, 3)

	top := envelope.Data.Categories[0]
	assert.Equal(t, "Web Development", top.Name)
	assert.Equal(t, rankings.TrendHot, top.TrendTag)
	assert.LessOrEqual(t, len(top.Books), 3)

	assert.Equal(t, rankings.TrendHot, envelope.Data.Categories[1].TrendTag)
	assert.Equal(t, rankings.TrendPopular, envelope.Data.Categories[2].TrendTag)
}

func TestTrendingCategories_Limit(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Get("/api/v1/categories/trending?limit=1")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[TrendingCategoriesResponse](t, resp.Body.Bytes())
	assert.Len(t, envelope.Data.Categories, 1)
}

func TestCreateCategory_RequiresSignIn(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/categories", map[string]any{"name": "Security"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateCategory(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/categories", map[string]any{
		"name":        "Security",
		"icon":        "🔒",
		"trend_score": 40,
	}, ts.authHeader("line-1"))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
	assert.Equal(t, "Security", envelope.Data["name"])
	assert.Equal(t, float64(40), envelope.Data["trend_score"])
}

func TestListTags(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.st.Seed(context.Background()))

	resp := ts.api.Get("/api/v1/tags")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListTagsResponse](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Tags, 8)
	assert.Equal(t, "React", envelope.Data.Tags[0].Name)
}
