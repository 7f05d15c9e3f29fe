package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch_ProductJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/ergo-chair.js" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title": "Ergo Chair", "price": 59900, "compare_at_price": 69900}`))
	}))
	defer srv.Close()

	c := NewClient(WithRateLimit(1000, 1000))
	price, err := c.Fetch(context.Background(), srv.URL+"/products/ergo-chair")
	require.NoError(t, err)
	assert.Equal(t, 599.00, price)
}

func TestClient_Fetch_SendsUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"price": 10000}`))
	}))
	defer srv.Close()

	c := NewClient(WithRateLimit(1000, 1000), WithUserAgent("guardian-test/1.0"))
	_, err := c.Fetch(context.Background(), srv.URL+"/products/desk")
	require.NoError(t, err)
	assert.Equal(t, "guardian-test/1.0", gotUA)
}

func TestClient_Fetch_ReaderFallback(t *testing.T) {
	t.Parallel()

	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer store.Close()

	reader := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"title": "Desk", "content": "Standing Desk — now $129.99 with free shipping"}}`))
	}))
	defer reader.Close()

	c := NewClient(WithRateLimit(1000, 1000), WithReaderProxy(reader.URL))
	price, err := c.Fetch(context.Background(), store.URL+"/products/desk")
	require.NoError(t, err)
	assert.Equal(t, 129.99, price)
}

func TestClient_Fetch_ReaderFlatPayload(t *testing.T) {
	t.Parallel()

	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer store.Close()

	reader := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": "Sale price $85"}`))
	}))
	defer reader.Close()

	c := NewClient(WithRateLimit(1000, 1000), WithReaderProxy(reader.URL))
	price, err := c.Fetch(context.Background(), store.URL+"/products/desk")
	require.NoError(t, err)
	assert.Equal(t, 85.0, price)
}

func TestClient_Fetch_PriceMissingEverywhere(t *testing.T) {
	t.Parallel()

	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Product JSON without a price field.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title": "Mystery Item"}`))
	}))
	defer store.Close()

	reader := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": "no price shown"}`))
	}))
	defer reader.Close()

	c := NewClient(WithRateLimit(1000, 1000), WithReaderProxy(reader.URL))
	_, err := c.Fetch(context.Background(), store.URL+"/products/mystery")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "price not found", fetchErr.Reason)
}

func TestClient_Fetch_EmptyURL(t *testing.T) {
	t.Parallel()

	c := NewClient()
	_, err := c.Fetch(context.Background(), "   ")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "empty url", fetchErr.Reason)
}

func TestClient_Fetch_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(WithRateLimit(1000, 1000), WithReaderProxy(srv.URL))
	_, err := c.Fetch(ctx, srv.URL+"/products/desk")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetchError_Error(t *testing.T) {
	t.Parallel()

	e := &FetchError{URL: "https://x.test", Reason: "price not found"}
	assert.Equal(t, "fetching https://x.test: price not found", e.Error())

	wrapped := &FetchError{URL: "https://x.test", Reason: "invalid url", Err: errors.New("boom")}
	assert.Contains(t, wrapped.Error(), "boom")
	assert.Equal(t, "boom", errors.Unwrap(wrapped).Error())
}
