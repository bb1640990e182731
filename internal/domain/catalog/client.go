// internal/domain/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/pkg/retry"
)

// ErrNotFound is returned when a product does not exist upstream or in the
// fallback catalog. Invalid identifiers (id <= 0) resolve to the same error.
var ErrNotFound = errors.New("product not found")

// Catalog is the read-only product catalog consumed by the storefront
type Catalog interface {
	ListProducts(ctx context.Context, limit int) ([]Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]Product, error)
	GetProduct(ctx context.Context, id int) (Product, error)
}

// Client fetches products from the upstream catalog API with retry, linear
// backoff and a per-attempt timeout. When every attempt fails, list
// operations resolve via the configured fallback policy instead of
// surfacing a network error to the storefront.
type Client struct {
	baseURL    string
	httpClient *http.Client
	backoff    retry.Config
	fallback   string
	logger     *logrus.Logger
	sleep      retry.SleepFunc
}

// NewClient creates a catalog client from configuration
func NewClient(cfg config.CatalogConfig, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		backoff:  retry.Config{Attempts: cfg.RetryAttempts, Backoff: cfg.RetryBackoff},
		fallback: cfg.FallbackPolicy,
		logger:   logger,
	}
}

// ListProducts returns the catalog in upstream order. A limit of zero or
// less returns the full catalog; a positive limit returns the first items.
func (c *Client) ListProducts(ctx context.Context, limit int) ([]Product, error) {
	path := "/products"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var products []Product
	if err := c.getJSON(ctx, path, &products); err != nil {
		if c.fallback == config.FallbackEmpty {
			return []Product{}, nil
		}
		return SampleProducts(limit), nil
	}

	normalize(products)
	return products, nil
}

// ListCategories returns the category labels in upstream order
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		if c.fallback == config.FallbackEmpty {
			return []string{}, nil
		}
		return SampleCategories(), nil
	}

	return categories, nil
}

// ListProductsByCategory returns the products whose category matches exactly
func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	path := "/products/category/" + url.PathEscape(category)

	var products []Product
	if err := c.getJSON(ctx, path, &products); err != nil {
		if c.fallback == config.FallbackEmpty {
			return []Product{}, nil
		}
		return SampleProductsByCategory(category), nil
	}

	normalize(products)
	return products, nil
}

// GetProduct returns a single product by identifier. Missing and invalid
// identifiers both resolve to ErrNotFound.
func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}

	var product Product
	if err := c.getJSON(ctx, "/products/"+strconv.Itoa(id), &product); err != nil {
		if c.fallback == config.FallbackSample {
			if p, ok := SampleProduct(id); ok {
				return p, nil
			}
		}
		return Product{}, ErrNotFound
	}

	// The upstream API answers missing ids with an empty body rather
	// than a 404
	if product.ID == 0 {
		return Product{}, ErrNotFound
	}

	product.Normalize()
	return product, nil
}

// getJSON performs a GET against the upstream API and decodes the response,
// retrying on network errors, timeouts, non-success statuses and undecodable
// bodies.
func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	fullURL := c.baseURL + path
	attempt := 0

	cfg := c.backoff
	cfg.Sleep = c.sleep

	return retry.Do(ctx, cfg, func(ctx context.Context) error {
		attempt++

		err := c.fetchOnce(ctx, fullURL, dest)
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"url":     fullURL,
				"attempt": attempt,
			}).WithError(err).Warn("Catalog fetch attempt failed")
		}

		return err
	})
}

func (c *Client) fetchOnce(ctx context.Context, fullURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func normalize(products []Product) {
	for i := range products {
		products[i].Normalize()
	}
}
