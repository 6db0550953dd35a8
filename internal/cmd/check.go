package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qoozee/qoozee/internal/advisor"
	"github.com/qoozee/qoozee/internal/config"
)

var checkPrompt string

var checkCmd = &cobra.Command{
	Use:   "check-advisor",
	Short: "Check that the advisor endpoint answers",
	Long: `Send a test prompt to the configured advisor endpoint and report
whether the answer came from the live model or from the canned fallback.
This helps verify that the local model is reachable before starting the
server.`,
	RunE: checkAdvisor,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkPrompt, "prompt", "Recommend one product for a coffee lover.", "Test prompt to send")
}

func checkAdvisor(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	adv, err := advisor.New(&cfg.Advisor)
	if err != nil {
		return fmt.Errorf("failed to create advisor: %w", err)
	}

	fmt.Printf("🔍 Asking %s at %s...\n", cfg.Advisor.Model, cfg.Advisor.URL)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Advisor.Timeout+time.Second)
	defer cancel()

	resp := adv.Ask(ctx, checkPrompt)

	if resp.Source == advisor.SourceLive {
		fmt.Println("✅ Live answer from the model")
	} else {
		fmt.Println("⚠️  Endpoint unreachable; a canned fallback was served")
		fmt.Println("📝 This is expected when no local model is running")
		fmt.Println("💡 The server still works fully, shoppers just get canned advice")
	}

	fmt.Println(strings.Repeat("─", 60))
	fmt.Println(resp.Text)
	return nil
}
