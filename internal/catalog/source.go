package catalog

import (
	"context"
	"fmt"

	"github.com/qoozee/qoozee/internal/config"
)

// Result is one catalog load outcome. Notice carries a non-fatal condition
// (missing file, unreadable file) that the UI surfaces as a soft warning.
type Result struct {
	Products []Product
	Notice   string
}

// Source loads the full product list from a backing location.
type Source interface {
	Load(ctx context.Context) (Result, error)
	Name() string
}

// NewSource creates a catalog source based on configuration.
func NewSource(cfg *config.CatalogConfig) (Source, error) {
	switch cfg.Source {
	case "csv", "":
		return NewCSVSource(cfg.Path), nil
	case "mysql":
		return NewMySQLSource(&cfg.MySQL)
	case "sample":
		return NewSampleSource(), nil
	default:
		return nil, fmt.Errorf("unsupported catalog source: %s", cfg.Source)
	}
}

// SampleSource always serves the built-in demo catalog. Useful for tests and
// offline demos.
type SampleSource struct{}

func NewSampleSource() *SampleSource { return &SampleSource{} }

func (s *SampleSource) Load(ctx context.Context) (Result, error) {
	return Result{Products: SampleProducts()}, nil
}

func (s *SampleSource) Name() string { return "sample" }

// Compile-time interface check
var _ Source = (*SampleSource)(nil)
