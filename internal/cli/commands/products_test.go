package commands

import (
	"strings"
	"testing"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
)

func TestProductsList_RendersTable(t *testing.T) {
	var gotFilter map[string]string
	api := &fakeAPI{
		listProductsFn: func(filter map[string]string) ([]client.Product, error) {
			gotFilter = filter
			return []client.Product{
				{ID: "p1", SKU: "SKU-1", Name: "Apples", Category: "fruit", UnitPrice: 1.5, ReorderLevel: 20},
				{ID: "p2", SKU: "SKU-2", Name: "Pears", Category: "fruit", UnitPrice: 2.0, ReorderLevel: 10},
			}, nil
		},
	}

	d, out := newTestDeps(api)

	err := runProductsList(d, map[string]string{"category": "fruit"})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if gotFilter["category"] != "fruit" {
		t.Errorf("expected category filter to reach the client, got %v", gotFilter)
	}

	outputStr := out.String()
	for _, want := range []string{"SKU", "NAME", "Apples", "Pears", "1.50"} {
		if !strings.Contains(outputStr, want) {
			t.Errorf("expected output to contain %q, got: %s", want, outputStr)
		}
	}
}

func TestProductsList_Empty(t *testing.T) {
	api := &fakeAPI{
		listProductsFn: func(filter map[string]string) ([]client.Product, error) {
			return nil, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runProductsList(d, nil); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(out.String(), "No products found.") {
		t.Errorf("expected empty message, got: %s", out.String())
	}
}

func TestProductsList_APIFailure(t *testing.T) {
	api := &fakeAPI{
		listProductsFn: func(filter map[string]string) ([]client.Product, error) {
			return nil, &client.APIError{Message: "Request failed"}
		},
	}

	d, _ := newTestDeps(api)

	err := runProductsList(d, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "Request failed" {
		t.Errorf("expected normalized message, got: %s", err.Error())
	}
}

func TestProductsCreate(t *testing.T) {
	api := &fakeAPI{
		createProductFn: func(product client.Product) (*client.Product, error) {
			product.ID = "p1"
			return &product, nil
		},
	}

	d, out := newTestDeps(api)

	err := runProductsCreate(d, client.Product{SKU: "SKU-1", Name: "Apples"})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(out.String(), "Created product Apples (SKU-1)") {
		t.Errorf("expected creation confirmation, got: %s", out.String())
	}
}

func TestProductsUpdate_NotFound(t *testing.T) {
	api := &fakeAPI{
		updateProductFn: func(id string, product client.Product) (*client.Product, error) {
			return nil, &client.APIError{Message: "Product not found"}
		},
	}

	d, _ := newTestDeps(api)

	err := runProductsUpdate(d, "x", client.Product{SKU: "SKU-1", Name: "Apples"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "Product not found" {
		t.Errorf("expected 'Product not found', got: %s", err.Error())
	}
}

func TestWarehousesList(t *testing.T) {
	api := &fakeAPI{
		listWarehousesFn: func() ([]client.Warehouse, error) {
			return []client.Warehouse{
				{ID: "w1", Name: "Central", Location: "Rotterdam", Capacity: 10000},
			}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runWarehousesList(d); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(out.String(), "Central") || !strings.Contains(out.String(), "Rotterdam") {
		t.Errorf("expected warehouse row, got: %s", out.String())
	}
}

func TestInventoryGet(t *testing.T) {
	api := &fakeAPI{
		getInventoryFn: func(productID, warehouseID string) (*client.InventoryItem, error) {
			return &client.InventoryItem{
				ProductID: productID, WarehouseID: warehouseID, Quantity: 42, UpdatedAt: "2026-08-01",
			}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runInventoryGet(d, "p1", "w1"); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(out.String(), "42 units of p1 at w1") {
		t.Errorf("expected quantity line, got: %s", out.String())
	}
}

func TestMovementsCreate(t *testing.T) {
	var got client.StockMovement
	api := &fakeAPI{
		createMovementFn: func(movement client.StockMovement) (*client.StockMovement, error) {
			got = movement
			movement.ID = "m1"
			return &movement, nil
		},
	}

	d, out := newTestDeps(api)

	movement := client.StockMovement{
		ProductID: "p1", WarehouseID: "w1", Type: "in", Quantity: 5, Reference: "PO-7",
	}
	if err := runMovementsCreate(d, movement); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if got.Reference != "PO-7" {
		t.Errorf("expected reference to reach the client, got %+v", got)
	}
	if !strings.Contains(out.String(), "Recorded in of 5 units of p1 at w1") {
		t.Errorf("expected movement confirmation, got: %s", out.String())
	}
}
