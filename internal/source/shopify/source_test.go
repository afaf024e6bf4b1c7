package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const testVersion = "2025-10"

var testCred = domain.Credential{TenantKey: "acme.myshopify.com", AccessToken: "shpat_test"}

func newTestSource(baseURL string) *Source {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{
		APIVersion:           testVersion,
		BaseURL:              baseURL,
		PageSize:             2,
		CollectionsBatchSize: 50,
		Timeout:              5 * time.Second,
		MaxAttempts:          3,
		InitialBackoff:       time.Millisecond,
		MaxBackoff:           5 * time.Millisecond,
	}, logger)
}

// makePages builds n pages of size products each with sequential ids.
func makePages(n, size int) [][]domain.Product {
	pages := make([][]domain.Product, n)
	id := int64(1)
	for i := range pages {
		for j := 0; j < size; j++ {
			pages[i] = append(pages[i], domain.Product{ID: id, Title: fmt.Sprintf("Product %d", id)})
			id++
		}
	}
	return pages
}

func pagedServer(t *testing.T, pages [][]domain.Product) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/admin/api/"+testVersion+"/products.json", r.URL.Path)
		assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		idx := 0
		if cursor := r.URL.Query().Get("page_info"); cursor != "" {
			n, err := strconv.Atoi(strings.TrimPrefix(cursor, "p"))
			require.NoError(t, err)
			idx = n
		}

		products := []domain.Product{}
		if idx < len(pages) {
			products = pages[idx]
		}
		if idx+1 < len(pages) {
			next := fmt.Sprintf("%s%s?limit=2&page_info=p%d", srv.URL, r.URL.Path, idx+1)
			w.Header().Set("Link", fmt.Sprintf(`<%s>; rel="next"`, next))
		}
		_ = json.NewEncoder(w).Encode(productsResponse{Products: products})
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestFetchProducts_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		pages     int
		wantCalls int32
	}{
		{name: "empty catalog", pages: 0, wantCalls: 1},
		{name: "single page without cursor", pages: 1, wantCalls: 1},
		{name: "five pages", pages: 5, wantCalls: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := makePages(tt.pages, 2)
			srv, calls := pagedServer(t, pages)

			products, err := newTestSource(srv.URL).FetchProducts(context.Background(), testCred)

			require.NoError(t, err)
			require.NotNil(t, products)

			var want []int64
			for _, page := range pages {
				for _, p := range page {
					want = append(want, p.ID)
				}
			}
			var got []int64
			for _, p := range products {
				got = append(got, p.ID)
			}
			assert.Equal(t, want, got)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestFetchProducts_NonSuccessAborts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Link", fmt.Sprintf(`<http://%s%s?page_info=p1>; rel="next"`, r.Host, r.URL.Path))
			_ = json.NewEncoder(w).Encode(productsResponse{Products: makePages(1, 2)[0]})
			return
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"errors":"missing scope"}`)
	}))
	defer srv.Close()

	products, err := newTestSource(srv.URL).FetchProducts(context.Background(), testCred)

	require.Error(t, err)
	assert.Nil(t, products)
	assert.True(t, errors.Is(err, domain.ErrUpstream))

	var upErr *domain.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusForbidden, upErr.Status)
	assert.Contains(t, upErr.Body, "missing scope")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "4xx is not retried")
}

func TestFetchProducts_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(productsResponse{Products: []domain.Product{{ID: 9}}})
	}))
	defer srv.Close()

	products, err := newTestSource(srv.URL).FetchProducts(context.Background(), testCred)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchProducts_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL).FetchProducts(context.Background(), testCred)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchProducts_StuckCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", fmt.Sprintf(`<http://%s%s?page_info=same>; rel="next"`, r.Host, r.URL.Path))
		_ = json.NewEncoder(w).Encode(productsResponse{Products: []domain.Product{{ID: 1}}})
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL).FetchProducts(context.Background(), testCred)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not advance")
}

func TestResolveCollections_Batches(t *testing.T) {
	var batches [][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/"+testVersion+"/graphql.json", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Variables struct {
				IDs []string `json:"ids"`
			} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		batches = append(batches, req.Variables.IDs)

		nodes := make([]map[string]any, 0, len(req.Variables.IDs))
		for _, gid := range req.Variables.IDs {
			id := strings.TrimPrefix(gid, "gid://shopify/Product/")
			nodes = append(nodes, map[string]any{
				"legacyResourceId": id,
				"collections": map[string]any{
					"nodes": []map[string]string{{"title": "Col " + id, "handle": "col-" + id}},
				},
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"nodes": nodes}})
	}))
	defer srv.Close()

	ids := make([]int64, 0, 120)
	for i := int64(1); i <= 120; i++ {
		ids = append(ids, i)
	}
	ids = append(ids, 5, 0)

	result := newTestSource(srv.URL).ResolveCollections(context.Background(), testCred, ids)

	require.NoError(t, result.Warning)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 50)
	assert.Len(t, batches[1], 50)
	assert.Len(t, batches[2], 20)
	assert.Len(t, result.Collections, 120)
	assert.Equal(t, []domain.Collection{{Title: "Col 7", Handle: "col-7"}}, result.Collections[7])
}

func TestResolveCollections_WarningOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"errors":[{"message":"Throttled"}]}`)
	}))
	defer srv.Close()

	result := newTestSource(srv.URL).ResolveCollections(context.Background(), testCred, []int64{1, 2})

	require.Error(t, result.Warning)
	assert.Contains(t, result.Warning.Error(), "Throttled")
	assert.Empty(t, result.Collections)
}

func TestResolveCollections_NoIDs(t *testing.T) {
	result := newTestSource("http://127.0.0.1:0").ResolveCollections(context.Background(), testCred, nil)

	assert.NoError(t, result.Warning)
	assert.Empty(t, result.Collections)
}

func TestNextPageInfo(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: ""},
		{header: `<https://s/admin/api/x/products.json?limit=250&page_info=abc>; rel="next"`, want: "abc"},
		{header: `<https://s/p.json?page_info=prev>; rel="previous", <https://s/p.json?page_info=nxt>; rel="next"`, want: "nxt"},
		{header: `<https://s/p.json?page_info=prev>; rel="previous"`, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextPageInfo(tt.header), tt.header)
	}
}

func TestWebhooks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"webhooks":[{"id":1,"topic":"products/update","address":"https://app/webhooks/shopify"}]}`)
		case http.MethodPost:
			var env webhookEnvelope
			require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
			assert.Equal(t, "json", env.Webhook.Format)
			_ = json.NewEncoder(w).Encode(map[string]any{"webhook": map[string]any{"id": 2, "topic": env.Webhook.Topic, "address": env.Webhook.Address}})
		}
	}))
	defer srv.Close()

	src := newTestSource(srv.URL)

	hooks, err := src.ListWebhooks(context.Background(), testCred)
	require.NoError(t, err)
	require.Len(t, hooks, 1)
	assert.Equal(t, "products/update", hooks[0].Topic)

	created, err := src.CreateWebhook(context.Background(), testCred, "products/delete", "https://app/webhooks/shopify")
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.Equal(t, "products/delete", created.Topic)
}
