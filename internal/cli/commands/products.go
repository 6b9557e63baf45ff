package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
)

// NewProductsCmd creates the products command group
func NewProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
	}

	cmd.AddCommand(newProductsListCmd())
	cmd.AddCommand(newProductsCreateCmd())
	cmd.AddCommand(newProductsUpdateCmd())

	return cmd
}

func newProductsListCmd() *cobra.Command {
	var category, search, serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runProductsList(d, filterFrom(map[string]string{
				"category": category,
				"search":   search,
			}))
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name or SKU")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runProductsList(d *deps, filter map[string]string) error {
	products, err := d.api.ListProducts(filter)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		d.printer.Print("No products found.")
		return nil
	}

	w := tabwriter.NewWriter(d.printer.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNAME\tCATEGORY\tUNIT PRICE\tREORDER LEVEL")
	for _, product := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\n",
			product.SKU,
			product.Name,
			product.Category,
			product.UnitPrice,
			product.ReorderLevel,
		)
	}
	w.Flush()

	return nil
}

func productFlags(cmd *cobra.Command, product *client.Product) {
	cmd.Flags().StringVar(&product.SKU, "sku", "", "Stock keeping unit")
	cmd.Flags().StringVar(&product.Name, "name", "", "Product name")
	cmd.Flags().StringVar(&product.Category, "category", "", "Product category")
	cmd.Flags().Float64Var(&product.UnitPrice, "price", 0, "Unit price")
	cmd.Flags().IntVar(&product.ReorderLevel, "reorder-level", 0, "Reorder threshold")
}

func newProductsCreateCmd() *cobra.Command {
	var product client.Product
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runProductsCreate(d, product)
		},
	}

	productFlags(cmd, &product)
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runProductsCreate(d *deps, product client.Product) error {
	created, err := d.api.CreateProduct(product)
	if err != nil {
		return err
	}

	d.printer.Success("Created product %s (%s)", created.Name, created.SKU)
	return nil
}

func newProductsUpdateCmd() *cobra.Command {
	var product client.Product
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runProductsUpdate(d, args[0], product)
		},
	}

	productFlags(cmd, &product)
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runProductsUpdate(d *deps, id string, product client.Product) error {
	updated, err := d.api.UpdateProduct(id, product)
	if err != nil {
		return err
	}

	d.printer.Success("Updated product %s (%s)", updated.Name, updated.SKU)
	return nil
}
