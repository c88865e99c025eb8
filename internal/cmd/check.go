package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sciencekitconnect/storefront/internal/checkout"
	"github.com/sciencekitconnect/storefront/internal/config"
	"github.com/sciencekitconnect/storefront/internal/database"
	"github.com/sciencekitconnect/storefront/internal/models"
	"github.com/spf13/cobra"
)

var showCart bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check configuration and device storage",
	Long: `Load the configuration, open the device storage file and report the
state of the persisted cart. This helps verify an installation before
starting the server.`,
	RunE: checkEnvironment,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&showCart, "show-cart", false, "Print the persisted cart contents")
}

func checkEnvironment(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Checking environment...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fmt.Printf("   server addr: %s\n", cfg.Server.Addr)
	fmt.Printf("   storage path: %s\n", cfg.Storage.Path)

	if _, err := checkout.NewProcessor(
		cfg.Checkout.FreeShippingMin,
		cfg.Checkout.ShippingFlat,
		cfg.Checkout.TaxRate,
		cfg.Checkout.ProcessingDelay,
	); err != nil {
		return fmt.Errorf("invalid checkout rates: %w", err)
	}
	fmt.Printf("   checkout: free shipping ≥ %s, flat %s, tax %s, delay %s\n",
		cfg.Checkout.FreeShippingMin, cfg.Checkout.ShippingFlat,
		cfg.Checkout.TaxRate, cfg.Checkout.ProcessingDelay)

	db, err := database.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open device storage: %w", err)
	}
	defer db.Close()

	if err := db.HealthCheck(); err != nil {
		return fmt.Errorf("device storage health check failed: %w", err)
	}

	payload, ok, err := db.LoadSnapshot(models.StorageKey)
	if err != nil {
		return fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	switch {
	case !ok:
		fmt.Println("   cart: no persisted snapshot")
	default:
		var cart models.Cart
		if err := json.Unmarshal([]byte(payload), &cart); err != nil {
			fmt.Printf("   ⚠️  cart snapshot does not parse (%v); the server will start from an empty cart\n", err)
			break
		}
		fmt.Printf("   cart: %d item(s), total %s\n", cart.ItemCount, cart.Total)
		if showCart {
			for _, item := range cart.Items {
				fmt.Printf("      - %s ×%d @ %s\n", item.Name, item.Quantity, item.Price)
			}
		}
	}

	fmt.Println("✅ Environment looks good")
	return nil
}
