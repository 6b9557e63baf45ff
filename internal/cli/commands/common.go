package commands

import (
	"fmt"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
	"github.com/stocktake-dev/stocktake/internal/cli/config"
	"github.com/stocktake-dev/stocktake/internal/cli/output"
	"github.com/stocktake-dev/stocktake/internal/cli/serverselect"
	"github.com/stocktake-dev/stocktake/internal/cli/session"
	"github.com/stocktake-dev/stocktake/internal/cli/storage"
	"github.com/stocktake-dev/stocktake/internal/cli/theme"
	"github.com/stocktake-dev/stocktake/internal/logger"
)

// stocktakeAPI is the client surface commands consume. *client.Client
// satisfies it; tests substitute fakes.
type stocktakeAPI interface {
	Login(email, password string) (*client.AuthResponse, error)
	Register(email, password, name, role string) (*client.AuthResponse, error)
	ListProducts(filter map[string]string) ([]client.Product, error)
	CreateProduct(product client.Product) (*client.Product, error)
	UpdateProduct(id string, product client.Product) (*client.Product, error)
	ListWarehouses() ([]client.Warehouse, error)
	CreateWarehouse(warehouse client.Warehouse) (*client.Warehouse, error)
	ListInventory(filter map[string]string) ([]client.InventoryItem, error)
	GetInventoryByLocation(productID, warehouseID string) (*client.InventoryItem, error)
	CreateStockMovement(movement client.StockMovement) (*client.StockMovement, error)
	ListStockMovements(filter map[string]string) ([]client.StockMovement, error)
	LowStockReport() ([]client.LowStockItem, error)
	StockValueReport(warehouse string) (*client.StockValueReport, error)
	MovementSummary(startDate, endDate string) (*client.MovementSummary, error)
	ImportProducts(products []client.Product) (*client.ImportResult, error)
	StockTake(adjustments []client.Adjustment) (*client.StockTakeResult, error)
}

// deps bundles the stores, API client and printer a command run needs.
// Production wiring comes from newDeps; tests build it directly.
type deps struct {
	api      stocktakeAPI
	sessions *session.Store
	themes   *theme.Store
	printer  *output.Printer
}

// newDeps resolves the server, restores the persisted session from the
// keyring and the theme from the preferences file, and wires the API
// client to read its token from the session store.
func newDeps(serverAlias string) (*deps, error) {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	server, err := serverselect.ResolveServer(cfg, serverAlias)
	if err != nil {
		return nil, err
	}

	if server.URL == "" {
		return nil, fmt.Errorf("server URL is empty. Please edit stocktake.json and add a valid URL")
	}

	sessions := session.New(storage.NewKeyring())
	if err := sessions.Init(); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	printer := output.NewPrinter()

	prefs, err := storage.NewFile()
	if err != nil {
		return nil, err
	}
	themes := theme.New(prefs, printer, theme.TerminalPreference)
	if err := themes.Init(); err != nil {
		return nil, fmt.Errorf("failed to restore theme: %w", err)
	}

	api := client.New(server.URL, sessions)
	api.SetLogger(logger.GetLogger())

	return &deps{
		api:      api,
		sessions: sessions,
		themes:   themes,
		printer:  printer,
	}, nil
}

// filterFrom collects non-empty flag values into the filter map passed to
// list endpoints. Returns nil when every value is empty.
func filterFrom(pairs map[string]string) map[string]string {
	var filter map[string]string
	for key, value := range pairs {
		if value == "" {
			continue
		}
		if filter == nil {
			filter = make(map[string]string)
		}
		filter[key] = value
	}
	return filter
}
