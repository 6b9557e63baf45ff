// Package client is the HTTP client for the stocktake API. It exposes one
// method per backend endpoint, reads the bearer token from the session
// store on every call, and collapses every failed response into a single
// error shape carrying the server's message.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production API endpoint, used when no server is
// configured.
const DefaultBaseURL = "https://api.stocktake.app/api"

// genericFailure is the error message when the server's failure body
// carries no message of its own.
const genericFailure = "Request failed"

// TokenSource supplies the current bearer token. The session store
// satisfies this; an empty token means no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// APIError is the single failure shape for every unsuccessful request:
// the server's `error` field when the body parses as JSON, the generic
// message otherwise.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client represents an HTTP client for the stocktake API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	validate   *validator.Validate
	log        zerolog.Logger
}

// New creates a new API client. The token source is consulted on every
// request, never cached.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens:   tokens,
		validate: validator.New(),
		log:      zerolog.Nop(),
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetLogger enables debug logging of requests and failures.
func (c *Client) SetLogger(log zerolog.Logger) {
	c.log = log
}

// Login authenticates the user and returns the token and user record.
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	reqBody := LoginRequest{Email: email, Password: password}
	if err := c.validate.Struct(reqBody); err != nil {
		return nil, fmt.Errorf("invalid login request: %w", err)
	}

	var authResp AuthResponse
	if err := c.do("POST", "/auth/login", nil, reqBody, &authResp); err != nil {
		return nil, err
	}
	return &authResp, nil
}

// Register creates a new account and returns the token and user record.
func (c *Client) Register(email, password, name, role string) (*AuthResponse, error) {
	reqBody := RegisterRequest{Email: email, Password: password, Name: name, Role: role}
	if err := c.validate.Struct(reqBody); err != nil {
		return nil, fmt.Errorf("invalid register request: %w", err)
	}

	var authResp AuthResponse
	if err := c.do("POST", "/auth/register", nil, reqBody, &authResp); err != nil {
		return nil, err
	}
	return &authResp, nil
}

// ListProducts returns products matching the optional filter map.
func (c *Client) ListProducts(filter map[string]string) ([]Product, error) {
	var products []Product
	if err := c.do("GET", "/products", queryFrom(filter), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(product Product) (*Product, error) {
	if err := c.validate.Struct(product); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	var created Product
	if err := c.do("POST", "/products", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces the product with the given ID.
func (c *Client) UpdateProduct(id string, product Product) (*Product, error) {
	if err := c.validate.Struct(product); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	var updated Product
	if err := c.do("PUT", "/products/"+url.PathEscape(id), nil, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListWarehouses returns all warehouses.
func (c *Client) ListWarehouses() ([]Warehouse, error) {
	var warehouses []Warehouse
	if err := c.do("GET", "/warehouses", nil, nil, &warehouses); err != nil {
		return nil, err
	}
	return warehouses, nil
}

// CreateWarehouse creates a warehouse and returns the stored record.
func (c *Client) CreateWarehouse(warehouse Warehouse) (*Warehouse, error) {
	if err := c.validate.Struct(warehouse); err != nil {
		return nil, fmt.Errorf("invalid warehouse: %w", err)
	}

	var created Warehouse
	if err := c.do("POST", "/warehouses", nil, warehouse, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListInventory returns inventory rows matching the optional filter map.
func (c *Client) ListInventory(filter map[string]string) ([]InventoryItem, error) {
	var items []InventoryItem
	if err := c.do("GET", "/inventory", queryFrom(filter), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetInventoryByLocation returns the inventory row for one product at one
// warehouse.
func (c *Client) GetInventoryByLocation(productID, warehouseID string) (*InventoryItem, error) {
	path := "/inventory/" + url.PathEscape(productID) + "/" + url.PathEscape(warehouseID)

	var item InventoryItem
	if err := c.do("GET", path, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateStockMovement records a stock movement.
func (c *Client) CreateStockMovement(movement StockMovement) (*StockMovement, error) {
	if err := c.validate.Struct(movement); err != nil {
		return nil, fmt.Errorf("invalid stock movement: %w", err)
	}

	var created StockMovement
	if err := c.do("POST", "/stock-movements", nil, movement, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListStockMovements returns movements matching the optional filter map.
func (c *Client) ListStockMovements(filter map[string]string) ([]StockMovement, error) {
	var movements []StockMovement
	if err := c.do("GET", "/stock-movements", queryFrom(filter), nil, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// LowStockReport returns products below their reorder level.
func (c *Client) LowStockReport() ([]LowStockItem, error) {
	var items []LowStockItem
	if err := c.do("GET", "/reports/low-stock", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// StockValueReport returns the value of stock on hand, optionally limited
// to one warehouse.
func (c *Client) StockValueReport(warehouse string) (*StockValueReport, error) {
	var query url.Values
	if warehouse != "" {
		query = url.Values{"warehouse": {warehouse}}
	}

	var report StockValueReport
	if err := c.do("GET", "/reports/stock-value", query, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// MovementSummary returns movement totals for the optional date range.
func (c *Client) MovementSummary(startDate, endDate string) (*MovementSummary, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}

	var summary MovementSummary
	if err := c.do("GET", "/reports/movement-summary", query, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ImportProducts bulk-creates products.
func (c *Client) ImportProducts(products []Product) (*ImportResult, error) {
	reqBody := importRequest{Products: products}
	if err := c.validate.Struct(reqBody); err != nil {
		return nil, fmt.Errorf("invalid product import: %w", err)
	}

	var result ImportResult
	if err := c.do("POST", "/batch/import-products", nil, reqBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StockTake bulk-applies counted-quantity adjustments.
func (c *Client) StockTake(adjustments []Adjustment) (*StockTakeResult, error) {
	reqBody := stockTakeRequest{Adjustments: adjustments}
	if err := c.validate.Struct(reqBody); err != nil {
		return nil, fmt.Errorf("invalid stock take: %w", err)
	}

	var result StockTakeResult
	if err := c.do("POST", "/batch/stock-take", nil, reqBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do builds and sends one request. Content-Type is always JSON; the
// Authorization header is attached only when the token source currently
// holds a token.
func (c *Client) do(method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("sending API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorFrom normalizes a failed response. A body that fails to parse as
// JSON is treated as empty.
func (c *Client) errorFrom(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(data, &body)

	message := body.Error
	if message == "" {
		message = genericFailure
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("message", message).
		Msg("API request failed")

	return &APIError{Message: message}
}

func queryFrom(filter map[string]string) url.Values {
	if len(filter) == 0 {
		return nil
	}
	query := url.Values{}
	for key, value := range filter {
		query.Set(key, value)
	}
	return query
}
