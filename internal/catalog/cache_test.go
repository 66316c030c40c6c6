package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSearcher struct {
	lookups  int
	searches int
	book     *Book
	books    []Book
	err      error
}

func (c *countingSearcher) LookupISBN(ctx context.Context, isbn string) (*Book, error) {
	c.lookups++
	return c.book, c.err
}

func (c *countingSearcher) Search(ctx context.Context, title, author string) ([]Book, error) {
	c.searches++
	return c.books, c.err
}

func TestCachedLookupISBN(t *testing.T) {
	inner := &countingSearcher{book: &Book{Title: "Dune", ISBN: "9780441013593"}}
	cached := NewCached(inner, time.Minute)
	ctx := context.Background()

	first, err := cached.LookupISBN(ctx, "9780441013593")
	assert.NoError(t, err)
	second, err := cached.LookupISBN(ctx, "9780441013593")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.lookups)
}

func TestCachedSearchKeysOnQuery(t *testing.T) {
	inner := &countingSearcher{books: []Book{{Title: "Dune"}}}
	cached := NewCached(inner, time.Minute)
	ctx := context.Background()

	cached.Search(ctx, "dune", "herbert")
	cached.Search(ctx, "dune", "herbert")
	assert.Equal(t, 1, inner.searches)

	cached.Search(ctx, "dune", "")
	assert.Equal(t, 2, inner.searches)
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	inner := &countingSearcher{err: errors.New("index down")}
	cached := NewCached(inner, time.Minute)
	ctx := context.Background()

	_, err := cached.Search(ctx, "dune", "")
	assert.Error(t, err)
	_, err = cached.Search(ctx, "dune", "")
	assert.Error(t, err)

	assert.Equal(t, 2, inner.searches)
}
