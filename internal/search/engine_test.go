package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeck/newsdeck/internal/api"
)

func testArticles() []api.Article {
	return []api.Article{
		{Title: "NVIDIA DLSS upscaling deep dive", Source: "NVIDIA Blog", Category: "Gaming", Summary: "Real-time AI upscaling in modern engines."},
		{Title: "Text-to-3D mesh generation", Source: "GitHub · Text-to-3D", Category: "GitHub", Summary: "Diffusion models producing game-ready meshes."},
		{Title: "World models for procedural levels", Source: "arXiv", Category: "Research", Summary: "Neural world models that simulate playable environments."},
	}
}

func TestSearchFindsByTitle(t *testing.T) {
	e, err := NewEngine(testArticles())
	require.NoError(t, err)
	defer e.Close()

	results, err := e.Search("upscaling", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "NVIDIA DLSS upscaling deep dive", results[0].Article.Title)
}

func TestSearchFindsBySummary(t *testing.T) {
	e, err := NewEngine(testArticles())
	require.NoError(t, err)
	defer e.Close()

	results, err := e.Search("playable environments", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "arXiv", results[0].Article.Source)
}

func TestSearchNoMatches(t *testing.T) {
	e, err := NewEngine(testArticles())
	require.NoError(t, err)
	defer e.Close()

	results, err := e.Search("zzzznotfound", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmptySnapshot(t *testing.T) {
	e, err := NewEngine(nil)
	require.NoError(t, err)
	defer e.Close()

	results, err := e.Search("anything", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchLimit(t *testing.T) {
	articles := make([]api.Article, 0, 30)
	for i := 0; i < 30; i++ {
		articles = append(articles, api.Article{
			Title:  "generation article",
			URL:    "http://a",
			Source: "Example",
		})
	}
	e, err := NewEngine(articles)
	require.NoError(t, err)
	defer e.Close()

	results, err := e.Search("generation", 5)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}
