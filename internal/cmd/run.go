package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sciencekitconnect/storefront/internal/config"
	"github.com/sciencekitconnect/storefront/internal/database"
	"github.com/sciencekitconnect/storefront/internal/server"
	"github.com/sciencekitconnect/storefront/internal/store"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront API server",
	Long: `Start the storefront API server which provides:
- REST API for the product catalog (list, search, featured, categories)
- Filtering by term, category, price range and age group
- Device storage for the shopping cart`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fmt.Println("🚀 Storefront starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("💾 Opening device storage...")
	db, err := database.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open device storage: %w", err)
	}
	defer db.Close()

	fmt.Println("📦 Seeding catalog...")
	st := store.New()
	fmt.Printf("   %d products, %d categories\n", len(st.Products()), len(st.Categories()))

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(st, logger)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
