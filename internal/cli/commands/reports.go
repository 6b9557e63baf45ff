package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stocktake-dev/stocktake/internal/cli/output"
)

// NewReportCmd creates the report command group
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run inventory reports",
	}

	cmd.AddCommand(newLowStockCmd())
	cmd.AddCommand(newStockValueCmd())
	cmd.AddCommand(newMovementSummaryCmd())

	return cmd
}

func newLowStockCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "Products at or below their reorder level",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runLowStock(d)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runLowStock(d *deps) error {
	items, err := d.api.LowStockReport()
	if err != nil {
		return err
	}

	d.printer.Header("Low stock")

	if len(items) == 0 {
		d.printer.Print("Nothing below reorder level.")
		return nil
	}

	table := output.NewTable(d.printer.Out(),
		[]string{"SKU", "Name", "Warehouse", "Quantity", "Reorder level"})
	for _, item := range items {
		table.AddRow([]string{
			item.SKU,
			item.Name,
			item.WarehouseID,
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.ReorderLevel),
		})
	}
	table.Render()

	return nil
}

func newStockValueCmd() *cobra.Command {
	var warehouse, serverAlias string

	cmd := &cobra.Command{
		Use:   "stock-value",
		Short: "Value of stock on hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runStockValue(d, warehouse)
		},
	}

	cmd.Flags().StringVar(&warehouse, "warehouse", "", "Limit to one warehouse ID")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runStockValue(d *deps, warehouse string) error {
	report, err := d.api.StockValueReport(warehouse)
	if err != nil {
		return err
	}

	d.printer.Header("Stock value")

	table := output.NewTable(d.printer.Out(),
		[]string{"Product", "Quantity", "Unit price", "Value"})
	for _, item := range report.Items {
		table.AddRow([]string{
			item.Name,
			strconv.Itoa(item.Quantity),
			fmt.Sprintf("%.2f", item.UnitPrice),
			fmt.Sprintf("%.2f", item.Value),
		})
	}
	table.Render()

	d.printer.Print("Total: %.2f", report.TotalValue)
	return nil
}

func newMovementSummaryCmd() *cobra.Command {
	var startDate, endDate, serverAlias string

	cmd := &cobra.Command{
		Use:   "movement-summary",
		Short: "Movement totals for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runMovementSummary(d, startDate, endDate)
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runMovementSummary(d *deps, startDate, endDate string) error {
	summary, err := d.api.MovementSummary(startDate, endDate)
	if err != nil {
		return err
	}

	d.printer.Header("Movement summary")
	if summary.StartDate != "" || summary.EndDate != "" {
		d.printer.Dim("%s to %s", summary.StartDate, summary.EndDate)
	}

	if len(summary.Rows) == 0 {
		d.printer.Print("No movements in range.")
		return nil
	}

	table := output.NewTable(d.printer.Out(),
		[]string{"Type", "Count", "Total quantity"})
	for _, row := range summary.Rows {
		table.AddRow([]string{
			row.Type,
			strconv.Itoa(row.Count),
			strconv.Itoa(row.TotalQuantity),
		})
	}
	table.Render()

	return nil
}
