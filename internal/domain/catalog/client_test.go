package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/config"
)

func newTestClient(t *testing.T, baseURL, policy string, waits *[]time.Duration) *Client {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client := NewClient(config.CatalogConfig{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
		RetryAttempts:  3,
		RetryBackoff:   time.Second,
		FallbackPolicy: policy,
	}, logger)

	client.sleep = func(ctx context.Context, d time.Duration) error {
		if waits != nil {
			*waits = append(*waits, d)
		}
		return nil
	}

	return client
}

func TestListProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "4", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"id":1,"title":"Backpack","price":109.95,"category":"men's clothing","rating":{"rate":3.9,"count":120}}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	products, err := client.ListProducts(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.Equal(t, 109.95, products[0].Price)
}

func TestListProducts_NoLimitOmitsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	products, err := client.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProducts_SucceedsOnSecondAttempt(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"id":7,"title":"Ring","price":9.99,"category":"jewelery","rating":{"rate":3,"count":400}}]`))
	}))
	defer server.Close()

	var waits []time.Duration
	client := newTestClient(t, server.URL, config.FallbackSample, &waits)

	products, err := client.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 7, products[0].ID)

	// Exactly one backoff wait of the base unit before the retry
	assert.Equal(t, []time.Duration{time.Second}, waits)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestListProducts_AllAttemptsFail_SampleFallback(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	var waits []time.Duration
	client := newTestClient(t, server.URL, config.FallbackSample, &waits)

	products, err := client.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, products, 8)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, waits)
}

func TestListProducts_AllAttemptsFail_SampleFallbackHonorsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	products, err := client.ListProducts(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestListProducts_AllAttemptsFail_EmptyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackEmpty, nil)

	products, err := client.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProducts_MalformedPayloadRetriedThenFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{{{not json`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	products, err := client.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestListCategories_FallbackCoversBothCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"men's clothing", "jewelery"}, categories)
}

func TestListProductsByCategory_FallbackFiltersExactMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	products, err := client.ListProductsByCategory(context.Background(), "jewelery")
	require.NoError(t, err)
	require.Len(t, products, 4)
	for _, p := range products {
		assert.Equal(t, "jewelery", p.Category)
	}
}

func TestGetProduct_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/3", r.URL.Path)
		w.Write([]byte(`{"id":3,"title":"Jacket","price":55.99,"category":"men's clothing","rating":{"rate":4.7,"count":500}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	product, err := client.GetProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Jacket", product.Title)
}

func TestGetProduct_InvalidIDIsNotFound(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	_, err := client.GetProduct(context.Background(), -1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetProduct(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)

	// Invalid ids never reach the upstream
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestGetProduct_MissingUpstreamAndFallbackIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	_, err := client.GetProduct(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProduct_FallbackServesKnownProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	product, err := client.GetProduct(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "jewelery", product.Category)
}

func TestGetProduct_EmptyBodyIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackEmpty, nil)

	_, err := client.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProduct_MalformedFieldsGetSafeDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":9,"price":-4,"rating":{"rate":9.5,"count":-3}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.FallbackSample, nil)

	product, err := client.GetProduct(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Untitled Product", product.Title)
	assert.Equal(t, 0.0, product.Price)
	assert.Equal(t, 5.0, product.Rating.Rate)
	assert.Equal(t, 0, product.Rating.Count)
}
