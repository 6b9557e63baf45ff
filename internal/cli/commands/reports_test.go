package commands

import (
	"strings"
	"testing"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
)

func TestLowStock_RendersRows(t *testing.T) {
	api := &fakeAPI{
		lowStockFn: func() ([]client.LowStockItem, error) {
			return []client.LowStockItem{
				{ProductID: "p1", SKU: "SKU-1", Name: "Apples", WarehouseID: "w1", Quantity: 3, ReorderLevel: 20},
			}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runLowStock(d); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	outputStr := out.String()
	if !strings.Contains(outputStr, "Low stock") {
		t.Errorf("expected report header, got: %s", outputStr)
	}
	if !strings.Contains(outputStr, "Apples") || !strings.Contains(outputStr, "SKU-1") {
		t.Errorf("expected low-stock row, got: %s", outputStr)
	}
}

func TestLowStock_Empty(t *testing.T) {
	api := &fakeAPI{
		lowStockFn: func() ([]client.LowStockItem, error) {
			return nil, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runLowStock(d); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(out.String(), "Nothing below reorder level.") {
		t.Errorf("expected empty message, got: %s", out.String())
	}
}

func TestStockValue_PassesWarehouseFilter(t *testing.T) {
	var gotWarehouse string
	api := &fakeAPI{
		stockValueFn: func(warehouse string) (*client.StockValueReport, error) {
			gotWarehouse = warehouse
			return &client.StockValueReport{
				TotalValue: 1234.5,
				Items: []client.StockValueItem{
					{ProductID: "p1", Name: "Apples", Quantity: 100, UnitPrice: 1.5, Value: 150},
				},
			}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runStockValue(d, "w1"); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if gotWarehouse != "w1" {
		t.Errorf("expected warehouse filter 'w1', got %q", gotWarehouse)
	}
	if !strings.Contains(out.String(), "Total: 1234.50") {
		t.Errorf("expected total line, got: %s", out.String())
	}
}

func TestMovementSummary_PassesDateRange(t *testing.T) {
	var gotStart, gotEnd string
	api := &fakeAPI{
		movementSummaryFn: func(startDate, endDate string) (*client.MovementSummary, error) {
			gotStart, gotEnd = startDate, endDate
			return &client.MovementSummary{
				StartDate: startDate,
				EndDate:   endDate,
				Rows: []client.MovementSummaryRow{
					{Type: "in", Count: 4, TotalQuantity: 120},
					{Type: "out", Count: 9, TotalQuantity: 80},
				},
			}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runMovementSummary(d, "2026-01-01", "2026-01-31"); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if gotStart != "2026-01-01" || gotEnd != "2026-01-31" {
		t.Errorf("expected date range to reach the client, got %q / %q", gotStart, gotEnd)
	}

	outputStr := out.String()
	if !strings.Contains(outputStr, "120") || !strings.Contains(outputStr, "out") {
		t.Errorf("expected summary rows, got: %s", outputStr)
	}
}

func TestMovementSummary_EmptyRange(t *testing.T) {
	api := &fakeAPI{
		movementSummaryFn: func(startDate, endDate string) (*client.MovementSummary, error) {
			return &client.MovementSummary{}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runMovementSummary(d, "", ""); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(out.String(), "No movements in range.") {
		t.Errorf("expected empty message, got: %s", out.String())
	}
}
