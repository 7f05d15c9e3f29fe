package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

const (
	defaultPerSecond = 2.0
	defaultBurst     = 4
)

// Client implements PriceSource against storefront JSON endpoints.
// It first probes the Shopify product JSON endpoint (price in cents),
// then falls back to a reader proxy that renders the page to text and
// extracts the first dollar price from it.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	readerURL  string
	userAgent  string
}

// NewClient creates a new storefront price source client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(defaultPerSecond), defaultBurst),
		readerURL:  "https://r.jina.ai",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client (timeout lives here).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the outbound request rate.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithReaderProxy sets the reader proxy base URL used as a fallback.
func WithReaderProxy(baseURL string) ClientOption {
	return func(c *Client) {
		c.readerURL = baseURL
	}
}

// WithUserAgent sets the User-Agent header for storefront requests.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// Fetch resolves a product URL to its current price.
func (c *Client) Fetch(ctx context.Context, rawURL string) (float64, error) {
	full, ok := normalizeURL(rawURL)
	if !ok {
		return 0, &FetchError{URL: rawURL, Reason: "empty url"}
	}

	u, err := url.Parse(full)
	if err != nil {
		return 0, &FetchError{URL: rawURL, Reason: "invalid url", Err: err}
	}

	var lastErr error

	if handle := productHandle(u.Path); u.Host != "" && handle != "" {
		for _, host := range hostCandidates(u.Host) {
			for _, path := range handlePaths(handle) {
				price, jsErr := c.fetchProductJSON(ctx, u.Scheme+"://"+host+path)
				if jsErr == nil {
					return price, nil
				}
				lastErr = jsErr
			}
		}
	}

	price, readerErr := c.fetchViaReader(ctx, full)
	if readerErr == nil {
		return price, nil
	}
	if lastErr == nil {
		lastErr = readerErr
	}

	return 0, &FetchError{URL: rawURL, Reason: "price not found", Err: lastErr}
}

// productJSON is the subset of the Shopify product endpoint response we
// care about. Price is in cents.
type productJSON struct {
	Title string   `json:"title"`
	Price *float64 `json:"price"`
}

func (c *Client) fetchProductJSON(ctx context.Context, endpoint string) (float64, error) {
	body, err := c.get(ctx, endpoint, "")
	if err != nil {
		return 0, err
	}

	var product productJSON
	if err := json.Unmarshal(body, &product); err != nil {
		return 0, fmt.Errorf("decoding product JSON from %s: %w", endpoint, err)
	}
	if product.Price == nil {
		return 0, fmt.Errorf("product JSON from %s has no price", endpoint)
	}

	return *product.Price / 100, nil
}

// readerResponse is the reader proxy envelope; some deployments return the
// payload at the top level instead of under "data".
type readerResponse struct {
	Data    *readerPayload `json:"data"`
	Content string         `json:"content"`
}

type readerPayload struct {
	Content string `json:"content"`
	Title   string `json:"title"`
}

func (c *Client) fetchViaReader(ctx context.Context, pageURL string) (float64, error) {
	endpoint := c.readerURL + "/" + pageURL

	body, err := c.get(ctx, endpoint, "application/json")
	if err != nil {
		return 0, err
	}

	var resp readerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decoding reader response: %w", err)
	}

	content := resp.Content
	if resp.Data != nil {
		content = resp.Data.Content
	}

	price, ok := firstDollarPrice(content)
	if !ok {
		return 0, fmt.Errorf("no price found in rendered page %s", pageURL)
	}
	return price, nil
}

func (c *Client) get(ctx context.Context, endpoint, accept string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", endpoint, err)
	}
	return body, nil
}
