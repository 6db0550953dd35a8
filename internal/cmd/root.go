package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qoozee",
	Short: "Qoozee - AI Shopping Assistant",
	Long: `Qoozee is a demo shopping assistant backed by a locally hosted
language model. It serves a catalog browser, cart, product comparison and
AI recommendations over a JSON API, with a canned fallback whenever the
model is unreachable.

The server keeps all shopper state in per-session memory; the catalog comes
from a CSV file, a MySQL table or a built-in sample set.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
