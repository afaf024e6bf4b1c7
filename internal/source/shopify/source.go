package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const (
	userAgent    = "ShopifyGoodBarberSync/1.0"
	maxErrorBody = 4096
)

// Config holds Shopify Admin API configuration.
type Config struct {
	APIVersion           string
	BaseURL              string // overrides https://{shop} when set
	PageSize             int
	CollectionsBatchSize int
	RequestsPerSecond    float64
	Timeout              time.Duration
	MaxAttempts          int
	InitialBackoff       time.Duration
	MaxBackoff           time.Duration
}

// Source reads a tenant's catalog from the Shopify Admin API.
type Source struct {
	httpClient           *http.Client
	limiter              *rate.Limiter
	apiVersion           string
	baseURL              string
	pageSize             int
	collectionsBatchSize int
	maxAttempts          int
	initialBackoff       time.Duration
	maxBackoff           time.Duration
	logger               *slog.Logger
}

// New creates a new Shopify source.
func New(cfg Config, logger *slog.Logger) *Source {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 250
	}
	if cfg.CollectionsBatchSize <= 0 {
		cfg.CollectionsBatchSize = 50
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:              rate.NewLimiter(limit, 1),
		apiVersion:           cfg.APIVersion,
		baseURL:              cfg.BaseURL,
		pageSize:             cfg.PageSize,
		collectionsBatchSize: cfg.CollectionsBatchSize,
		maxAttempts:          cfg.MaxAttempts,
		initialBackoff:       cfg.InitialBackoff,
		maxBackoff:           cfg.MaxBackoff,
		logger:               logger.With("component", "shopify"),
	}
}

// FetchProducts walks every page of the products endpoint and returns the
// whole catalog in upstream order. Any failed page fails the whole fetch.
func (s *Source) FetchProducts(ctx context.Context, cred domain.Credential) ([]domain.Product, error) {
	products := []domain.Product{}
	cursor := ""

	for page := 0; ; page++ {
		query := url.Values{}
		query.Set("limit", fmt.Sprint(s.pageSize))
		if cursor != "" {
			query.Set("page_info", cursor)
		}

		resp, err := s.do(ctx, cred, http.MethodGet, "/products.json", query, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		var body productsResponse
		if err := json.Unmarshal(resp.body, &body); err != nil {
			return nil, fmt.Errorf("decode page %d: %w", page, err)
		}
		products = append(products, body.Products...)

		s.logger.Debug("fetched page",
			"tenant", cred.TenantKey,
			"page", page,
			"products", len(body.Products),
			"total", len(products),
		)

		next := nextPageInfo(resp.header.Get("Link"))
		if next == "" {
			break
		}
		if next == cursor {
			return nil, fmt.Errorf("fetch page %d: pagination cursor did not advance", page)
		}
		cursor = next
	}

	return products, nil
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (s *Source) adminURL(shop, path string, query url.Values) string {
	base := s.baseURL
	if base == "" {
		base = "https://" + shop
	}
	u := fmt.Sprintf("%s/admin/api/%s%s", base, s.apiVersion, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends one Admin API request, retrying transport failures, throttling
// and server errors with exponential backoff. Other non-2xx statuses are
// returned immediately as *domain.UpstreamError.
func (s *Source) do(ctx context.Context, cred domain.Credential, method, path string, query url.Values, body []byte) (*response, error) {
	target := s.adminURL(cred.TenantKey, path, query)

	var resp *response
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, cred, method, target, body)
		if err == nil {
			return resp, nil
		}
		if !retryable(err) || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"tenant", cred.TenantKey,
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, err
}

func (s *Source) doRequest(ctx context.Context, cred domain.Credential, method, target string, body []byte) (*response, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Shopify-Access-Token", cred.AccessToken)

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		return nil, &domain.UpstreamError{Status: httpResp.StatusCode, Body: string(data)}
	}

	return &response{status: httpResp.StatusCode, header: httpResp.Header, body: data}, nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Status == http.StatusTooManyRequests || upErr.Status >= 500
	}
	return true
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
