package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// CSVSource reads the product catalog from a header-delimited flat file with
// columns product_id,product_name,price,rating,category.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string { return "csv" }

// Load reads the product file. A missing file falls back to the built-in
// sample set; any other problem yields an empty catalog. Both conditions are
// soft notices, never fatal errors.
func (s *CSVSource) Load(ctx context.Context) (Result, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", s.path).Msg("product file not found, serving sample catalog")
		return Result{
			Products: SampleProducts(),
			Notice:   fmt.Sprintf("product file %q not found, showing sample catalog", s.path),
		}, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("product file unreadable")
		return Result{
			Products: []Product{},
			Notice:   fmt.Sprintf("unable to read product file %q", s.path),
		}, nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("product file has no header row")
		return Result{
			Products: []Product{},
			Notice:   fmt.Sprintf("product file %q is empty or malformed", s.path),
		}, nil
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	var products []Product
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn().Err(err).Str("path", s.path).Msg("product file row unreadable")
			return Result{
				Products: []Product{},
				Notice:   fmt.Sprintf("product file %q contains malformed rows", s.path),
			}, nil
		}
		products = append(products, Product{
			ID:       field(record, columns, "product_id"),
			Name:     field(record, columns, "product_name"),
			Price:    field(record, columns, "price"),
			Rating:   field(record, columns, "rating"),
			Category: field(record, columns, "category"),
		})
	}

	log.Debug().Int("count", len(products)).Str("path", s.path).Msg("loaded products from file")
	return Result{Products: products}, nil
}

// field tolerates missing optional columns: an absent key becomes an empty
// value, and the failure happens later at point of use if at all.
func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// Compile-time interface check
var _ Source = (*CSVSource)(nil)
