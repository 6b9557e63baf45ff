package commands

import (
	"bytes"
	"errors"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
	"github.com/stocktake-dev/stocktake/internal/cli/output"
	"github.com/stocktake-dev/stocktake/internal/cli/session"
	"github.com/stocktake-dev/stocktake/internal/cli/storage"
	"github.com/stocktake-dev/stocktake/internal/cli/theme"
)

var errNotImplemented = errors.New("not implemented in fake")

// fakeAPI implements stocktakeAPI through optional function fields, so
// each test wires only the endpoints it exercises.
type fakeAPI struct {
	loginFn            func(email, password string) (*client.AuthResponse, error)
	registerFn         func(email, password, name, role string) (*client.AuthResponse, error)
	listProductsFn     func(filter map[string]string) ([]client.Product, error)
	createProductFn    func(product client.Product) (*client.Product, error)
	updateProductFn    func(id string, product client.Product) (*client.Product, error)
	listWarehousesFn   func() ([]client.Warehouse, error)
	createWarehouseFn  func(warehouse client.Warehouse) (*client.Warehouse, error)
	listInventoryFn    func(filter map[string]string) ([]client.InventoryItem, error)
	getInventoryFn     func(productID, warehouseID string) (*client.InventoryItem, error)
	createMovementFn   func(movement client.StockMovement) (*client.StockMovement, error)
	listMovementsFn    func(filter map[string]string) ([]client.StockMovement, error)
	lowStockFn         func() ([]client.LowStockItem, error)
	stockValueFn       func(warehouse string) (*client.StockValueReport, error)
	movementSummaryFn  func(startDate, endDate string) (*client.MovementSummary, error)
	importProductsFn   func(products []client.Product) (*client.ImportResult, error)
	stockTakeFn        func(adjustments []client.Adjustment) (*client.StockTakeResult, error)
}

func (f *fakeAPI) Login(email, password string) (*client.AuthResponse, error) {
	if f.loginFn == nil {
		return nil, errNotImplemented
	}
	return f.loginFn(email, password)
}

func (f *fakeAPI) Register(email, password, name, role string) (*client.AuthResponse, error) {
	if f.registerFn == nil {
		return nil, errNotImplemented
	}
	return f.registerFn(email, password, name, role)
}

func (f *fakeAPI) ListProducts(filter map[string]string) ([]client.Product, error) {
	if f.listProductsFn == nil {
		return nil, errNotImplemented
	}
	return f.listProductsFn(filter)
}

func (f *fakeAPI) CreateProduct(product client.Product) (*client.Product, error) {
	if f.createProductFn == nil {
		return nil, errNotImplemented
	}
	return f.createProductFn(product)
}

func (f *fakeAPI) UpdateProduct(id string, product client.Product) (*client.Product, error) {
	if f.updateProductFn == nil {
		return nil, errNotImplemented
	}
	return f.updateProductFn(id, product)
}

func (f *fakeAPI) ListWarehouses() ([]client.Warehouse, error) {
	if f.listWarehousesFn == nil {
		return nil, errNotImplemented
	}
	return f.listWarehousesFn()
}

func (f *fakeAPI) CreateWarehouse(warehouse client.Warehouse) (*client.Warehouse, error) {
	if f.createWarehouseFn == nil {
		return nil, errNotImplemented
	}
	return f.createWarehouseFn(warehouse)
}

func (f *fakeAPI) ListInventory(filter map[string]string) ([]client.InventoryItem, error) {
	if f.listInventoryFn == nil {
		return nil, errNotImplemented
	}
	return f.listInventoryFn(filter)
}

func (f *fakeAPI) GetInventoryByLocation(productID, warehouseID string) (*client.InventoryItem, error) {
	if f.getInventoryFn == nil {
		return nil, errNotImplemented
	}
	return f.getInventoryFn(productID, warehouseID)
}

func (f *fakeAPI) CreateStockMovement(movement client.StockMovement) (*client.StockMovement, error) {
	if f.createMovementFn == nil {
		return nil, errNotImplemented
	}
	return f.createMovementFn(movement)
}

func (f *fakeAPI) ListStockMovements(filter map[string]string) ([]client.StockMovement, error) {
	if f.listMovementsFn == nil {
		return nil, errNotImplemented
	}
	return f.listMovementsFn(filter)
}

func (f *fakeAPI) LowStockReport() ([]client.LowStockItem, error) {
	if f.lowStockFn == nil {
		return nil, errNotImplemented
	}
	return f.lowStockFn()
}

func (f *fakeAPI) StockValueReport(warehouse string) (*client.StockValueReport, error) {
	if f.stockValueFn == nil {
		return nil, errNotImplemented
	}
	return f.stockValueFn(warehouse)
}

func (f *fakeAPI) MovementSummary(startDate, endDate string) (*client.MovementSummary, error) {
	if f.movementSummaryFn == nil {
		return nil, errNotImplemented
	}
	return f.movementSummaryFn(startDate, endDate)
}

func (f *fakeAPI) ImportProducts(products []client.Product) (*client.ImportResult, error) {
	if f.importProductsFn == nil {
		return nil, errNotImplemented
	}
	return f.importProductsFn(products)
}

func (f *fakeAPI) StockTake(adjustments []client.Adjustment) (*client.StockTakeResult, error) {
	if f.stockTakeFn == nil {
		return nil, errNotImplemented
	}
	return f.stockTakeFn(adjustments)
}

// newTestDeps builds deps with in-memory stores and a printer writing to
// the returned buffer.
func newTestDeps(api stocktakeAPI) (*deps, *bytes.Buffer) {
	var buf bytes.Buffer
	printer := output.NewPrinterWithWriter(&buf)

	return &deps{
		api:      api,
		sessions: session.New(storage.NewMemory()),
		themes:   theme.New(storage.NewMemory(), printer, nil),
		printer:  printer,
	}, &buf
}
