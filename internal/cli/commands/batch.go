package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
)

// NewImportCmd creates the bulk product import command
func NewImportCmd() *cobra.Command {
	var file, serverAlias string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk import products from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runImport(d, file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file containing an array of products")
	cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runImport(d *deps, file string) error {
	var products []client.Product
	if err := readJSONFile(file, &products); err != nil {
		return err
	}

	result, err := d.api.ImportProducts(products)
	if err != nil {
		return err
	}

	d.printer.Success("Imported %d of %d products", result.Imported, len(products))
	for _, importErr := range result.Errors {
		d.printer.Warning("%s", importErr)
	}
	return nil
}

// NewStockTakeCmd creates the bulk stock-take adjustment command
func NewStockTakeCmd() *cobra.Command {
	var file, serverAlias string

	cmd := &cobra.Command{
		Use:   "stock-take",
		Short: "Apply counted quantities from a JSON file",
		Long: `Apply counted quantities from a JSON file.

The file holds an array of adjustments:
  [{"productId": "p1", "warehouseId": "w1", "countedQuantity": 40, "reason": "annual count"}]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runStockTake(d, file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file containing an array of adjustments")
	cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runStockTake(d *deps, file string) error {
	var adjustments []client.Adjustment
	if err := readJSONFile(file, &adjustments); err != nil {
		return err
	}

	result, err := d.api.StockTake(adjustments)
	if err != nil {
		return err
	}

	d.printer.Success("Adjusted %d of %d lines", result.Adjusted, len(adjustments))
	for _, adjustErr := range result.Errors {
		d.printer.Warning("%s", adjustErr)
	}
	return nil
}

func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
