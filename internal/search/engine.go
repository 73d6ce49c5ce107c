// Package search provides offline full-text search over the cached
// article snapshot. Live search goes through the server; this engine
// only backs the `newsdeck search` subcommand.
package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/newsdeck/newsdeck/internal/api"
)

type Result struct {
	Article api.Article
	Score   float64
}

type Engine struct {
	idx      bleve.Index
	articles map[string]api.Article
}

// NewEngine builds an in-memory index over the given articles. The
// snapshot is small (the server caps list responses), so rebuilding per
// invocation is cheaper than maintaining an index on disk.
func NewEngine(articles []api.Article) (*Engine, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	e := &Engine{idx: idx, articles: make(map[string]api.Article, len(articles))}

	batch := idx.NewBatch()
	for i, a := range articles {
		id := fmt.Sprintf("article:%d", i)
		e.articles[id] = a
		if err := batch.Index(id, map[string]any{
			"title":    a.Title,
			"summary":  a.Summary,
			"source":   a.Source,
			"category": a.Category,
		}); err != nil {
			return nil, fmt.Errorf("indexing article: %w", err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("committing batch: %w", err)
	}

	return e, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = standard.Name
	title.Store = true

	summary := bleve.NewTextFieldMapping()
	summary.Analyzer = standard.Name
	summary.Store = false

	source := bleve.NewTextFieldMapping()
	source.Analyzer = standard.Name
	source.Store = true

	dm.AddFieldMappingsAt("title", title)
	dm.AddFieldMappingsAt("summary", summary)
	dm.AddFieldMappingsAt("source", source)
	dm.AddFieldMappingsAt("category", source)

	im.DefaultMapping = dm
	return im
}

// Search runs a match query over title, summary and source.
func (e *Engine) Search(query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)

	res, err := e.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	results := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		article, ok := e.articles[hit.ID]
		if !ok {
			continue
		}
		results = append(results, Result{Article: article, Score: hit.Score})
	}
	return results, nil
}

func (e *Engine) Close() error {
	return e.idx.Close()
}
