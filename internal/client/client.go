package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tastykitchen/admin-api/internal/models"
	"github.com/tastykitchen/admin-api/internal/productcache"
)

const dateLayout = "2006-01-02"

// ErrNotFound is returned when the backend reports a missing record.
var ErrNotFound = errors.New("not found")

// FetchError wraps a network or decoding failure for a backend request.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RevenueFeed is the raw revenue payload for a date range. Total and Trend
// may be omitted by the backend; the aggregator handles both cases.
type RevenueFeed struct {
	Data  []models.RevenuePoint `json:"data"`
	Total *float64              `json:"total"`
	Trend *float64              `json:"trend"`
}

// Client is a typed REST client for the ordering backend. Responses are
// decoded at this boundary; undecodable payloads surface as FetchError.
type Client struct {
	base  string
	http  *http.Client
	cache productcache.Cache
}

// New creates a Client for the given base URL. cache may be nil to disable
// product lookup caching.
func New(baseURL string, timeout time.Duration, cache productcache.Cache) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:  strings.TrimSuffix(baseURL, "/"),
		http:  &http.Client{Timeout: timeout},
		cache: cache,
	}
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values, v any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FetchError{Resource: resource, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &FetchError{Resource: resource, Err: ErrNotFound}
	}
	if resp.StatusCode != http.StatusOK {
		return &FetchError{Resource: resource, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{Resource: resource, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// Orders fetches the full order collection.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "orders", "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Revenue fetches the revenue series for [start, end].
func (c *Client) Revenue(ctx context.Context, start, end time.Time) (RevenueFeed, error) {
	q := url.Values{}
	q.Set("start", start.Format(dateLayout))
	q.Set("end", end.Format(dateLayout))

	var feed RevenueFeed
	if err := c.get(ctx, "revenue", "/orders", q, &feed); err != nil {
		return RevenueFeed{}, err
	}
	return feed, nil
}

// Products fetches the full product catalog.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "products", "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id, consulting the cache first.
func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	if c.cache != nil {
		if p, ok := c.cache.Get(ctx, id); ok {
			return p, nil
		}
	}

	var p models.Product
	if err := c.get(ctx, "products", "/products/"+id, nil, &p); err != nil {
		return models.Product{}, err
	}
	if c.cache != nil {
		c.cache.Set(ctx, p)
	}
	return p, nil
}

// Categories fetches the menu categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "categories", "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Users fetches users, optionally narrowed by a search term.
func (c *Client) Users(ctx context.Context, search string) ([]models.User, error) {
	var q url.Values
	if search != "" {
		q = url.Values{"q": []string{search}}
	}
	var users []models.User
	if err := c.get(ctx, "users", "/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User fetches a single user by id.
func (c *Client) User(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := c.get(ctx, "users", "/users/"+id, nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UserOrders fetches all orders placed by one user.
func (c *Client) UserOrders(ctx context.Context, id string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "orders", "/users/"+id+"/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateProduct submits a new product to the backend.
func (c *Client) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	return c.send(ctx, http.MethodPost, "/products", p)
}

// UpdateProduct replaces an existing product on the backend.
func (c *Client) UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error) {
	return c.send(ctx, http.MethodPut, "/products/"+id, p)
}

func (c *Client) send(ctx context.Context, method, path string, p models.Product) (models.Product, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return models.Product{}, &FetchError{Resource: "products", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(body))
	if err != nil {
		return models.Product{}, &FetchError{Resource: "products", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Product{}, &FetchError{Resource: "products", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusNotFound:
		return models.Product{}, &FetchError{Resource: "products", Err: ErrNotFound}
	default:
		return models.Product{}, &FetchError{Resource: "products", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var out models.Product
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// Some backends reply with an empty body; the submitted payload is
		// still the authoritative state in that case.
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return models.Product{}, &FetchError{Resource: "products", Err: fmt.Errorf("decode response: %w", err)}
	}
	return out, nil
}
