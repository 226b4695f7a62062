package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/spf13/cobra"
)

func newProductsCommand(opts *options) *cobra.Command {
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "Manage user-submitted products in the local store",
	}
	productsCmd.AddCommand(newProductsAddCommand(opts), newProductsListCommand(opts))
	return productsCmd
}

func newProductsAddCommand(opts *options) *cobra.Command {
	var request domain.AddProductRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the local store",
		Long: `Add stores a product so later lookups by its barcode or report number find it
before the registries are queried.

Example:
  allergenctl products add --name "수제 소시지" --barcode 8800000000011 --raw-materials "돼지고기, 정제소금"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := openApp(opts)
			if err != nil {
				return err
			}
			defer application.Close()

			product, err := application.Catalog.AddProduct(context.Background(), &request)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), product)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q has been added to the database (id %d)\n", product.ProductName, product.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&request.ProductName, "name", "", "product name")
	cmd.Flags().StringVar(&request.Barcode, "barcode", "", "barcode")
	cmd.Flags().StringVar(&request.ReportNumber, "imrpt-no", "", "product report number")
	cmd.Flags().StringVar(&request.RawMaterials, "raw-materials", "", "ingredient text")
	return cmd
}

func newProductsListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products in the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := openApp(opts)
			if err != nil {
				return err
			}
			defer application.Close()

			products, err := application.Catalog.ListProducts(context.Background())
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), products)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tBARCODE\tIMRPT NO\tCREATED")
			for _, p := range products {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.ProductName, p.Barcode, p.ReportNumber, p.CreatedAt.Format("2006-01-02 15:04"))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d product(s)\n", len(products))
			return nil
		},
	}
}
