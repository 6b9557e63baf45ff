package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewInventoryCmd creates the inventory command group
func NewInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inspect stock levels",
	}

	cmd.AddCommand(newInventoryListCmd())
	cmd.AddCommand(newInventoryGetCmd())

	return cmd
}

func newInventoryListCmd() *cobra.Command {
	var productID, warehouseID, serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List inventory rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runInventoryList(d, filterFrom(map[string]string{
				"productId":   productID,
				"warehouseId": warehouseID,
			}))
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "Filter by product ID")
	cmd.Flags().StringVar(&warehouseID, "warehouse", "", "Filter by warehouse ID")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runInventoryList(d *deps, filter map[string]string) error {
	items, err := d.api.ListInventory(filter)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		d.printer.Print("No inventory found.")
		return nil
	}

	w := tabwriter.NewWriter(d.printer.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tWAREHOUSE\tQUANTITY\tUPDATED")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			item.ProductID,
			item.WarehouseID,
			item.Quantity,
			item.UpdatedAt,
		)
	}
	w.Flush()

	return nil
}

func newInventoryGetCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "get <product-id> <warehouse-id>",
		Short: "Show stock of one product at one warehouse",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runInventoryGet(d, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runInventoryGet(d *deps, productID, warehouseID string) error {
	item, err := d.api.GetInventoryByLocation(productID, warehouseID)
	if err != nil {
		return err
	}

	d.printer.Print("%d units of %s at %s", item.Quantity, item.ProductID, item.WarehouseID)
	if item.UpdatedAt != "" {
		d.printer.Dim("Last updated: %s", item.UpdatedAt)
	}
	return nil
}
