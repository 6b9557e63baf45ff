package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
)

// NewWarehousesCmd creates the warehouses command group
func NewWarehousesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warehouses",
		Short: "Manage warehouses",
	}

	cmd.AddCommand(newWarehousesListCmd())
	cmd.AddCommand(newWarehousesCreateCmd())

	return cmd
}

func newWarehousesListCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List warehouses",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runWarehousesList(d)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runWarehousesList(d *deps) error {
	warehouses, err := d.api.ListWarehouses()
	if err != nil {
		return err
	}

	if len(warehouses) == 0 {
		d.printer.Print("No warehouses found.")
		return nil
	}

	w := tabwriter.NewWriter(d.printer.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tCAPACITY")
	for _, warehouse := range warehouses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			warehouse.ID,
			warehouse.Name,
			warehouse.Location,
			warehouse.Capacity,
		)
	}
	w.Flush()

	return nil
}

func newWarehousesCreateCmd() *cobra.Command {
	var warehouse client.Warehouse
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a warehouse",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runWarehousesCreate(d, warehouse)
		},
	}

	cmd.Flags().StringVar(&warehouse.Name, "name", "", "Warehouse name")
	cmd.Flags().StringVar(&warehouse.Location, "location", "", "Warehouse location")
	cmd.Flags().IntVar(&warehouse.Capacity, "capacity", 0, "Storage capacity")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runWarehousesCreate(d *deps, warehouse client.Warehouse) error {
	created, err := d.api.CreateWarehouse(warehouse)
	if err != nil {
		return err
	}

	d.printer.Success("Created warehouse %s", created.Name)
	return nil
}
