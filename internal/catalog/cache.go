package catalog

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached is a read-through wrapper so retrying a capture of the same cover
// doesn't hit the index twice.  Errors are never cached.
type Cached struct {
	inner Searcher
	c     *cache.Cache
}

func NewCached(inner Searcher, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		c:     cache.New(ttl, 2*ttl),
	}
}

func (s *Cached) LookupISBN(ctx context.Context, isbn string) (*Book, error) {
	key := "isbn:" + isbn
	if v, ok := s.c.Get(key); ok {
		return v.(*Book), nil
	}
	book, err := s.inner.LookupISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	s.c.Set(key, book, cache.DefaultExpiration)
	return book, nil
}

func (s *Cached) Search(ctx context.Context, title, author string) ([]Book, error) {
	key := "q:" + title + "|" + author
	if v, ok := s.c.Get(key); ok {
		return v.([]Book), nil
	}
	books, err := s.inner.Search(ctx, title, author)
	if err != nil {
		return nil, err
	}
	s.c.Set(key, books, cache.DefaultExpiration)
	return books, nil
}
