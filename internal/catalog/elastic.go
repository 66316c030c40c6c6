package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v7"
	"go.uber.org/zap"
)

const DefaultIndex = "bookshelf"

const searchSize = 5

// Elastic searches a catalogue index with normalized author/title fields and
// verifies fuzzy hits against the query before trusting them.
type Elastic struct {
	es    *elasticsearch.Client
	index string
	sugar *zap.SugaredLogger
}

func NewElastic(addresses []string, index string, sugar *zap.SugaredLogger) (*Elastic, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	if index == "" {
		index = DefaultIndex
	}
	return &Elastic{es: es, index: index, sugar: sugar}, nil
}

func (e *Elastic) LookupISBN(ctx context.Context, isbn string) (*Book, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"isbn": isbn,
			},
		},
	}

	hits, err := e.run(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}
	book := bookFromSource(hits[0])
	return &book, nil
}

func (e *Elastic) Search(ctx context.Context, title, author string) ([]Book, error) {
	author = NormalizeAuthor(author)
	title = NormalizeTitle(title)

	// There are some titles which are very short, but they are more likely
	// to just be false junk.
	if len(title) < 4 {
		e.sugar.Debugf("Reject too short title %q", title)
		return nil, nil
	}

	// Empirical testing shows that a fuzziness of 2 gives good results.
	must := []interface{}{
		map[string]interface{}{
			"fuzzy": map[string]interface{}{
				"normaltitle": map[string]interface{}{
					"value":     title,
					"fuzziness": 2,
				},
			},
		},
	}
	if author != "" {
		must = append(must, map[string]interface{}{
			"fuzzy": map[string]interface{}{
				"normalauthor": map[string]interface{}{
					"value":     author,
					"fuzziness": 2,
				},
			},
		})
	}
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": must,
			},
		},
	}

	sources, err := e.run(ctx, query, searchSize)
	if err != nil {
		return nil, err
	}

	books := []Book{}
	for _, data := range sources {
		hitauthor := fmt.Sprintf("%v", data["normalauthor"])
		hittitle := fmt.Sprintf("%v", data["normaltitle"])

		titperc := compare(title, hittitle)
		authperc := Confidence
		if author != "" {
			authperc = compare(author, hitauthor)
		}

		e.sugar.Debugf("Match %d, %d, %s - %s vs %s - %s", authperc, titperc, author, title, hitauthor, hittitle)
		if titperc >= Confidence && authperc >= Confidence && sanityCheck(hitauthor, hittitle) {
			books = append(books, bookFromSource(data))
		}
	}
	return books, nil
}

func (e *Elastic) run(ctx context.Context, query map[string]interface{}, size int) ([]map[string]interface{}, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	res, err := e.es.Search(
		e.es.Search.WithContext(ctx),
		e.es.Search.WithIndex(e.index),
		e.es.Search.WithBody(&buf),
		e.es.Search.WithSize(size),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search returned %s", res.Status())
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	sources := []map[string]interface{}{}
	for _, hit := range r["hits"].(map[string]interface{})["hits"].([]interface{}) {
		if data, ok := hit.(map[string]interface{})["_source"].(map[string]interface{}); ok {
			sources = append(sources, data)
		}
	}
	return sources, nil
}

func bookFromSource(data map[string]interface{}) Book {
	str := func(key string) string {
		if v, ok := data[key].(string); ok {
			return strings.TrimSpace(v)
		}
		return ""
	}
	return Book{
		Title:  str("title"),
		Author: str("author"),
		ISBN:   str("isbn"),
	}
}
