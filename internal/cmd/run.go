package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qoozee/qoozee/internal/advisor"
	"github.com/qoozee/qoozee/internal/catalog"
	"github.com/qoozee/qoozee/internal/config"
	"github.com/qoozee/qoozee/internal/server"
	"github.com/qoozee/qoozee/internal/session"
	"github.com/qoozee/qoozee/pkg/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Qoozee server",
	Long: `Start the Qoozee server which provides:
- REST API for browsing, cart, comparison and checkout
- AI-backed recommendations with a canned fallback
- A diagnostics endpoint for the session behavior log`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Qoozee Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Environment)

	fmt.Printf("📦 Opening %s catalog source...\n", cfg.Catalog.Source)
	source, err := catalog.NewSource(&cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to create catalog source: %w", err)
	}
	store := catalog.NewStore(source, cfg.Catalog.TTL)

	adv, err := advisor.New(&cfg.Advisor)
	if err != nil {
		return fmt.Errorf("failed to create advisor: %w", err)
	}
	fmt.Printf("🧠 Advisor ready (%s)\n", adv.Model())

	sessions, err := session.NewStore(&cfg.Session)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(store, adv, sessions)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
