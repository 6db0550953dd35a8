package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how often it was hit so tests can pin the TTL
// memoization.
type countingSource struct {
	loads int
	res   Result
	err   error
}

func (s *countingSource) Load(ctx context.Context) (Result, error) {
	s.loads++
	return s.res, s.err
}

func (s *countingSource) Name() string { return "counting" }

func TestStoreMemoizesWithinTTL(t *testing.T) {
	src := &countingSource{res: Result{Products: SampleProducts()}}
	store := NewStore(src, time.Minute)
	ctx := context.Background()

	first := store.Products(ctx)
	second := store.Products(ctx)

	assert.Equal(t, 1, src.loads)
	assert.Equal(t, first, second)
}

func TestStoreInvalidateForcesReload(t *testing.T) {
	src := &countingSource{res: Result{Products: SampleProducts()}}
	store := NewStore(src, time.Minute)
	ctx := context.Background()

	store.Products(ctx)
	store.Invalidate()
	store.Products(ctx)

	assert.Equal(t, 2, src.loads)
}

func TestStoreReloadsAfterTTL(t *testing.T) {
	src := &countingSource{res: Result{Products: SampleProducts()}}
	store := NewStore(src, 10*time.Millisecond)
	ctx := context.Background()

	store.Products(ctx)
	time.Sleep(20 * time.Millisecond)
	store.Products(ctx)

	assert.Equal(t, 2, src.loads)
}

func TestStoreKeepsPreviousCatalogOnReloadError(t *testing.T) {
	src := &countingSource{res: Result{Products: SampleProducts()}}
	store := NewStore(src, time.Minute)
	ctx := context.Background()

	require.Len(t, store.Products(ctx), 6)

	src.err = assert.AnError
	store.Invalidate()

	assert.Len(t, store.Products(ctx), 6)
	assert.NotEmpty(t, store.Notice())
}

func TestStoreSurfacesSourceNotice(t *testing.T) {
	src := &countingSource{res: Result{Products: []Product{}, Notice: "file unreadable"}}
	store := NewStore(src, time.Minute)

	store.Products(context.Background())
	assert.Equal(t, "file unreadable", store.Notice())
}

func TestStoreLookup(t *testing.T) {
	store := NewStore(NewSampleSource(), time.Minute)
	ctx := context.Background()

	p, ok := store.Lookup(ctx, "103")
	require.True(t, ok)
	assert.Equal(t, "Coffee Mug - Ceramic", p.Name)

	_, ok = store.Lookup(ctx, "999")
	assert.False(t, ok)
}

func TestStoreCategoriesSortedAndUnique(t *testing.T) {
	store := NewStore(NewSampleSource(), time.Minute)

	categories := store.Categories(context.Background())
	assert.Equal(t, []string{"Clothing", "Electronics", "Home Decor"}, categories)
}

func TestFindByName(t *testing.T) {
	products := SampleProducts()

	tests := []struct {
		name    string
		query   string
		want    string
		found   bool
	}{
		{name: "partial match", query: "hoodie", want: "Oversized Hoodie - Pink", found: true},
		{name: "case insensitive", query: "EARBUDS", want: "Wireless Earbuds", found: true},
		{name: "first in catalog order wins", query: "o", want: "Oversized Hoodie - Pink", found: true},
		{name: "no match", query: "spaceship", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := FindByName(products, tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, p.Name)
			}
		})
	}
}
