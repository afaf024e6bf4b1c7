package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const productCollectionsQuery = `query ProductCollections($ids: [ID!]!) {
  nodes(ids: $ids) {
    ... on Product {
      legacyResourceId
      collections(first: 250) {
        nodes { title handle }
      }
    }
  }
}`

// ResolveCollections looks up collection memberships for productIDs through
// the GraphQL nodes query, in batches. It never fails: batches that error are
// reported through the result's Warning and leave their products without
// collections.
func (s *Source) ResolveCollections(ctx context.Context, cred domain.Credential, productIDs []int64) domain.CollectionsResult {
	result := domain.CollectionsResult{Collections: make(map[int64][]domain.Collection)}

	ids := uniqueIDs(productIDs)
	var errs []error

	for start := 0; start < len(ids); start += s.collectionsBatchSize {
		end := min(start+s.collectionsBatchSize, len(ids))

		if err := s.resolveBatch(ctx, cred, ids[start:end], result.Collections); err != nil {
			s.logger.Warn("collections batch failed",
				"tenant", cred.TenantKey,
				"batch_start", start,
				"batch_size", end-start,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("collections batch %d-%d: %w", start, end-1, err))
		}
	}

	result.Warning = errors.Join(errs...)
	return result
}

func (s *Source) resolveBatch(ctx context.Context, cred domain.Credential, ids []int64, into map[int64][]domain.Collection) error {
	gids := make([]string, len(ids))
	for i, id := range ids {
		gids[i] = "gid://shopify/Product/" + strconv.FormatInt(id, 10)
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     productCollectionsQuery,
		Variables: map[string]any{"ids": gids},
	})
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	resp, err := s.do(ctx, cred, http.MethodPost, "/graphql.json", nil, payload)
	if err != nil {
		return err
	}

	var body collectionsResponse
	if err := json.Unmarshal(resp.body, &body); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(body.Errors) > 0 {
		msgs := make([]string, len(body.Errors))
		for i, e := range body.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("graphql: %s", strings.Join(msgs, "; "))
	}

	for _, node := range body.Data.Nodes {
		if node == nil {
			continue
		}
		id, err := strconv.ParseInt(node.LegacyResourceID, 10, 64)
		if err != nil {
			continue
		}
		cols := make([]domain.Collection, 0, len(node.Collections.Nodes))
		for _, c := range node.Collections.Nodes {
			cols = append(cols, domain.Collection{Title: c.Title, Handle: c.Handle})
		}
		into[id] = cols
	}

	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
