package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestImport_SendsFileContents(t *testing.T) {
	path := writeTestFile(t, "products.json", `[
		{"sku": "SKU-1", "name": "Apples", "category": "fruit", "unitPrice": 1.5},
		{"sku": "SKU-2", "name": "Pears", "category": "fruit", "unitPrice": 2.0}
	]`)

	var got []client.Product
	api := &fakeAPI{
		importProductsFn: func(products []client.Product) (*client.ImportResult, error) {
			got = products
			return &client.ImportResult{Imported: 2}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runImport(d, path); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if len(got) != 2 || got[1].SKU != "SKU-2" {
		t.Errorf("expected parsed products to reach the client, got %+v", got)
	}
	if !strings.Contains(out.String(), "Imported 2 of 2 products") {
		t.Errorf("expected import summary, got: %s", out.String())
	}
}

func TestImport_ReportsPartialFailures(t *testing.T) {
	path := writeTestFile(t, "products.json", `[{"sku": "SKU-1", "name": "Apples"}]`)

	api := &fakeAPI{
		importProductsFn: func(products []client.Product) (*client.ImportResult, error) {
			return &client.ImportResult{
				Imported: 0,
				Errors:   []string{"SKU-1: duplicate SKU"},
			}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runImport(d, path); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(out.String(), "duplicate SKU") {
		t.Errorf("expected per-row error in output, got: %s", out.String())
	}
}

func TestImport_MissingFile(t *testing.T) {
	d, _ := newTestDeps(&fakeAPI{})

	err := runImport(d, filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got: %s", err.Error())
	}
}

func TestImport_MalformedFile(t *testing.T) {
	path := writeTestFile(t, "products.json", "{not an array")

	d, _ := newTestDeps(&fakeAPI{})

	err := runImport(d, path)
	if err == nil {
		t.Fatal("expected error for malformed file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got: %s", err.Error())
	}
}

func TestStockTake_SendsAdjustments(t *testing.T) {
	path := writeTestFile(t, "adjustments.json", `[
		{"productId": "p1", "warehouseId": "w1", "countedQuantity": 40, "reason": "annual count"}
	]`)

	var got []client.Adjustment
	api := &fakeAPI{
		stockTakeFn: func(adjustments []client.Adjustment) (*client.StockTakeResult, error) {
			got = adjustments
			return &client.StockTakeResult{Adjusted: 1}, nil
		},
	}

	d, out := newTestDeps(api)

	if err := runStockTake(d, path); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if len(got) != 1 || got[0].CountedQuantity != 40 {
		t.Errorf("expected parsed adjustments to reach the client, got %+v", got)
	}
	if !strings.Contains(out.String(), "Adjusted 1 of 1 lines") {
		t.Errorf("expected stock-take summary, got: %s", out.String())
	}
}

func TestStockTake_APIFailure(t *testing.T) {
	path := writeTestFile(t, "adjustments.json", `[{"productId": "p1", "warehouseId": "w1", "countedQuantity": 1}]`)

	api := &fakeAPI{
		stockTakeFn: func(adjustments []client.Adjustment) (*client.StockTakeResult, error) {
			return nil, &client.APIError{Message: "stock take in progress"}
		},
	}

	d, _ := newTestDeps(api)

	err := runStockTake(d, path)
	if err == nil || err.Error() != "stock take in progress" {
		t.Errorf("expected server message, got: %v", err)
	}
}
