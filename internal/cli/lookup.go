package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/spf13/cobra"
)

// lookupResult mirrors the search endpoint's response body
type lookupResult struct {
	ProductName      string                 `json:"productName"`
	Source           string                 `json:"source"`
	SearchMethod     string                 `json:"searchMethod,omitempty"`
	RawMaterials     string                 `json:"rawMaterials"`
	FoundIngredients domain.DetectionResult `json:"foundIngredients"`
}

func newLookupCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <barcode|report-number>",
		Short: "Look a product up and list its allergens",
		Long: `Lookup searches the local product store, then the HACCP registry, then the
Food QR registry, and prints the first product found with its allergens.

Example:
  allergenctl lookup 8801043014809
  allergenctl lookup --json 19720288002406`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := openApp(opts)
			if err != nil {
				return err
			}
			defer application.Close()

			outcome := application.Lookup.Lookup(context.Background(), args[0])
			switch outcome.Kind {
			case domain.OutcomeFound, domain.OutcomeFoundNoIngredients:
			default:
				return errors.New(outcome.Message())
			}

			result := lookupResult{
				ProductName:      outcome.Product.ProductName,
				Source:           outcome.Product.SourceLabel(),
				SearchMethod:     outcome.Product.SearchMethod,
				RawMaterials:     outcome.Product.RawMaterials,
				FoundIngredients: outcome.Allergens,
			}
			if outcome.Kind == domain.OutcomeFoundNoIngredients {
				result.RawMaterials = domain.NoIngredientsMessage
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Product:       %s\n", result.ProductName)
			fmt.Fprintf(out, "Source:        %s\n", result.Source)
			fmt.Fprintf(out, "Raw materials: %s\n", result.RawMaterials)
			fmt.Fprintln(out, "Allergens:")
			printAllergens(out, result.FoundIngredients)
			return nil
		},
	}
}
