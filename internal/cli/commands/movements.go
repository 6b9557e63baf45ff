package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
)

// NewMovementsCmd creates the movements command group
func NewMovementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Record and inspect stock movements",
	}

	cmd.AddCommand(newMovementsListCmd())
	cmd.AddCommand(newMovementsCreateCmd())

	return cmd
}

func newMovementsListCmd() *cobra.Command {
	var productID, warehouseID, movementType, serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stock movements",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runMovementsList(d, filterFrom(map[string]string{
				"productId":   productID,
				"warehouseId": warehouseID,
				"type":        movementType,
			}))
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "Filter by product ID")
	cmd.Flags().StringVar(&warehouseID, "warehouse", "", "Filter by warehouse ID")
	cmd.Flags().StringVar(&movementType, "type", "", "Filter by movement type (in, out, adjustment)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runMovementsList(d *deps, filter map[string]string) error {
	movements, err := d.api.ListStockMovements(filter)
	if err != nil {
		return err
	}

	if len(movements) == 0 {
		d.printer.Print("No stock movements found.")
		return nil
	}

	w := tabwriter.NewWriter(d.printer.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tPRODUCT\tWAREHOUSE\tQUANTITY\tREFERENCE\tCREATED AT")
	for _, movement := range movements {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			movement.Type,
			movement.ProductID,
			movement.WarehouseID,
			movement.Quantity,
			movement.Reference,
			movement.CreatedAt,
		)
	}
	w.Flush()

	return nil
}

func newMovementsCreateCmd() *cobra.Command {
	var movement client.StockMovement
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a stock movement",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runMovementsCreate(d, movement)
		},
	}

	cmd.Flags().StringVar(&movement.ProductID, "product", "", "Product ID")
	cmd.Flags().StringVar(&movement.WarehouseID, "warehouse", "", "Warehouse ID")
	cmd.Flags().StringVar(&movement.Type, "type", "", "Movement type (in, out, adjustment)")
	cmd.Flags().IntVar(&movement.Quantity, "quantity", 0, "Quantity moved")
	cmd.Flags().StringVar(&movement.Reference, "reference", "", "External reference (PO, invoice)")
	cmd.Flags().StringVar(&movement.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runMovementsCreate(d *deps, movement client.StockMovement) error {
	created, err := d.api.CreateStockMovement(movement)
	if err != nil {
		return err
	}

	d.printer.Success("Recorded %s of %d units of %s at %s",
		created.Type, created.Quantity, created.ProductID, created.WarehouseID)
	return nil
}
