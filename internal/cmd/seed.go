package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qoozee/qoozee/internal/catalog"
)

var (
	seedPath  string
	seedForce bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a demo products.csv",
	Long: `Write a demo product catalog to a CSV file so the server has real
data to load. Without this file the server serves the built-in six-product
sample set instead.`,
	RunE: seedCatalog,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedPath, "path", "products.csv", "Where to write the catalog file")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Overwrite an existing file")
}

// demoProducts is the seeded catalog: the built-in sample set plus the
// products the canned advisor answers mention.
func demoProducts() []catalog.Product {
	extra := []catalog.Product{
		{ID: "107", Name: "Kitchen Blender", Price: "2000", Rating: "4.0", Category: "Home Appliances"},
		{ID: "108", Name: "Minimalist Wall Clock", Price: "699", Rating: "4.1", Category: "Home Decor"},
		{ID: "109", Name: "Memory Foam Pillow", Price: "899", Rating: "4.7", Category: "Home Decor"},
		{ID: "110", Name: "Smart LED Bulb", Price: "349", Rating: "4.2", Category: "Electronics"},
		{ID: "111", Name: "Stainless Steel Water Bottle", Price: "549", Rating: "4.5", Category: "Accessories"},
		{ID: "112", Name: "Canvas Tote Bag", Price: "249", Rating: "4.0", Category: "Accessories"},
	}
	return append(catalog.SampleProducts(), extra...)
}

func seedCatalog(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(seedPath); err == nil && !seedForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", seedPath)
	}

	f, err := os.Create(seedPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", seedPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"product_id", "product_name", "price", "rating", "category"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	products := demoProducts()
	for _, p := range products {
		if err := w.Write([]string{p.ID, p.Name, p.Price, p.Rating, p.Category}); err != nil {
			return fmt.Errorf("failed to write product row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush catalog file: %w", err)
	}

	fmt.Printf("📦 Wrote %d products to %s\n", len(products), seedPath)
	return nil
}
