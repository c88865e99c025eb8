package cmd

import (
	"fmt"
	"strings"

	"github.com/sciencekitconnect/storefront/internal/store"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inspect and validate the seed catalog",
	Long: `Print the embedded seed catalog and validate it against the data
model: prices must be non-negative decimals with two fraction digits and
stock counts must be non-negative.

Category labels that have no category record are reported but allowed; the
category list is a browsing aid, not a referential constraint.`,
	RunE: inspectSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func inspectSeed(cmd *cobra.Command, args []string) error {
	fmt.Println("📦 Seed catalog")

	categories := store.SeedCategories()
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[strings.ToLower(c.Name)] = true
		fmt.Printf("   • %s (%d products listed)\n", c.Name, c.ProductCount)
	}

	products := store.SeedProducts()
	fmt.Printf("\n🔬 %d products\n", len(products))

	var problems []string
	for _, p := range products {
		price, err := decimal.NewFromString(p.Price)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("%s: unparsable price %q", p.Name, p.Price))
		case price.IsNegative():
			problems = append(problems, fmt.Sprintf("%s: negative price %s", p.Name, p.Price))
		case price.Exponent() < -2:
			problems = append(problems, fmt.Sprintf("%s: price %s has more than two fraction digits", p.Name, p.Price))
		}
		if p.InStock < 0 {
			problems = append(problems, fmt.Sprintf("%s: negative stock %d", p.Name, p.InStock))
		}

		flag := " "
		if p.Featured {
			flag = "★"
		}
		fmt.Printf("   %s %-35s %10s  %-16s stock %d\n", flag, p.Name, p.Price, p.Category, p.InStock)

		if !known[strings.ToLower(p.Category)] {
			fmt.Printf("     note: category %q has no category record\n", p.Category)
		}
	}

	if len(problems) > 0 {
		fmt.Println("\n❌ Seed data problems:")
		for _, p := range problems {
			fmt.Printf("   - %s\n", p)
		}
		return fmt.Errorf("seed catalog failed validation with %d problem(s)", len(problems))
	}

	fmt.Println("\n✅ Seed catalog is valid")
	return nil
}
