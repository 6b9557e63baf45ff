package client

import "github.com/stocktake-dev/stocktake/internal/cli/session"

// Request and response records for the stocktake API. The backend speaks
// camelCase JSON; validation tags are checked before a request is
// serialized so malformed records never reach the wire.

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// AuthResponse is returned by both auth endpoints.
type AuthResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

// Product is a catalog entry.
type Product struct {
	ID           string  `json:"id,omitempty"`
	SKU          string  `json:"sku" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unitPrice" validate:"gte=0"`
	ReorderLevel int     `json:"reorderLevel" validate:"gte=0"`
}

// Warehouse is a stock location.
type Warehouse struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

// InventoryItem is the quantity of one product at one warehouse.
type InventoryItem struct {
	ProductID   string `json:"productId"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int    `json:"quantity"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// StockMovement records stock entering, leaving or being corrected at a
// warehouse.
type StockMovement struct {
	ID          string `json:"id,omitempty"`
	ProductID   string `json:"productId" validate:"required"`
	WarehouseID string `json:"warehouseId" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity    int    `json:"quantity" validate:"required"`
	Reference   string `json:"reference,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty"`
}

// Adjustment is one counted line of a stock take.
type Adjustment struct {
	ProductID       string `json:"productId" validate:"required"`
	WarehouseID     string `json:"warehouseId" validate:"required"`
	CountedQuantity int    `json:"countedQuantity" validate:"gte=0"`
	Reason          string `json:"reason,omitempty"`
}

// LowStockItem is one row of the low-stock report.
type LowStockItem struct {
	ProductID    string `json:"productId"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	WarehouseID  string `json:"warehouseId"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorderLevel"`
}

// StockValueItem is one row of the stock-value report.
type StockValueItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Value     float64 `json:"value"`
}

// StockValueReport totals the value of stock on hand.
type StockValueReport struct {
	TotalValue float64          `json:"totalValue"`
	Items      []StockValueItem `json:"items"`
}

// MovementSummaryRow aggregates movements of one type.
type MovementSummaryRow struct {
	Type          string `json:"type"`
	Count         int    `json:"count"`
	TotalQuantity int    `json:"totalQuantity"`
}

// MovementSummary is the movement-summary report.
type MovementSummary struct {
	StartDate string               `json:"startDate,omitempty"`
	EndDate   string               `json:"endDate,omitempty"`
	Rows      []MovementSummaryRow `json:"rows"`
}

// ImportResult is returned by the bulk product import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// StockTakeResult is returned by the bulk stock-take adjustment.
type StockTakeResult struct {
	Adjusted int      `json:"adjusted"`
	Errors   []string `json:"errors,omitempty"`
}

type importRequest struct {
	Products []Product `json:"products" validate:"required,min=1,dive"`
}

type stockTakeRequest struct {
	Adjustments []Adjustment `json:"adjustments" validate:"required,min=1,dive"`
}
