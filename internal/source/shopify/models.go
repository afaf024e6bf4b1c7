package shopify

import "github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

type webhooksResponse struct {
	Webhooks []domain.WebhookSubscription `json:"webhooks"`
}

type webhookEnvelope struct {
	Webhook webhookInput `json:"webhook"`
}

type webhookInput struct {
	Topic   string `json:"topic"`
	Address string `json:"address"`
	Format  string `json:"format"`
}

type createdWebhookResponse struct {
	Webhook domain.WebhookSubscription `json:"webhook"`
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type collectionsResponse struct {
	Data struct {
		Nodes []*productCollectionsNode `json:"nodes"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type productCollectionsNode struct {
	LegacyResourceID string `json:"legacyResourceId"`
	Collections      struct {
		Nodes []struct {
			Title  string `json:"title"`
			Handle string `json:"handle"`
		} `json:"nodes"`
	} `json:"collections"`
}
