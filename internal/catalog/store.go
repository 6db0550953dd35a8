package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTTL bounds how often the backing source is re-read.
const DefaultTTL = 60 * time.Second

// Store caches the loaded catalog for a fixed TTL so repeated requests
// within the window reuse the previous load instead of hitting the source.
// The product list is replaced wholesale on reload, never patched in place.
type Store struct {
	source Source
	ttl    time.Duration

	mu       sync.Mutex
	products []Product
	notice   string
	loadedAt time.Time
}

func NewStore(source Source, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{source: source, ttl: ttl}
}

// Products returns the current catalog, reloading from the source at most
// once per TTL.
func (s *Store) Products(ctx context.Context) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loadedAt.IsZero() && time.Since(s.loadedAt) < s.ttl {
		return s.products
	}

	res, err := s.source.Load(ctx)
	if err != nil {
		// Keep whatever was loaded before; the failure becomes a notice
		// rather than failing the request.
		log.Error().Err(err).Str("source", s.source.Name()).Msg("catalog reload failed")
		s.notice = fmt.Sprintf("catalog temporarily unavailable: %v", err)
		s.loadedAt = time.Now()
		return s.products
	}

	s.products = res.Products
	s.notice = res.Notice
	s.loadedAt = time.Now()
	return s.products
}

// Notice reports the last soft load condition, empty when the catalog
// loaded cleanly.
func (s *Store) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// Invalidate drops the cache so the next call hits the source again.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadedAt = time.Time{}
}

// Lookup resolves a product id against the current catalog.
func (s *Store) Lookup(ctx context.Context, id string) (Product, bool) {
	for _, p := range s.Products(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories returns the distinct categories in sorted order.
func (s *Store) Categories(ctx context.Context) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.Products(ctx) {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
