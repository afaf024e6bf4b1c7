package domain

import "time"

// Product is an upstream catalog record with its variant and image
// sub-records. Collections is filled by enrichment, not by the product API.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	BodyHTML    string          `json:"body_html"`
	Vendor      string          `json:"vendor"`
	Handle      string          `json:"handle"`
	Status      string          `json:"status"`
	Tags        string          `json:"tags"`
	Options     []ProductOption `json:"options"`
	Variants    []Variant       `json:"variants"`
	Images      []Image         `json:"images"`
	Image       *Image          `json:"image"`
	Collections []Collection    `json:"-"`
}

type ProductOption struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type Variant struct {
	ID                  int64    `json:"id"`
	Title               string   `json:"title"`
	Option1             *string  `json:"option1"`
	Option2             *string  `json:"option2"`
	Option3             *string  `json:"option3"`
	Price               string   `json:"price"`
	SKU                 string   `json:"sku"`
	Weight              *float64 `json:"weight"`
	InventoryManagement *string  `json:"inventory_management"`
	InventoryQuantity   *int     `json:"inventory_quantity"`
	ImageID             *int64   `json:"image_id"`
}

type Image struct {
	ID       int64  `json:"id"`
	Src      string `json:"src"`
	Position int    `json:"position"`
}

type Collection struct {
	Title  string
	Handle string
}

// CollectionsResult carries enrichment data together with the reason it may
// be incomplete. A non-nil Warning never invalidates Collections.
type CollectionsResult struct {
	Collections map[int64][]Collection
	Warning     error
}

type EntryStatus string

const (
	EntryActive   EntryStatus = "active"
	EntryDisabled EntryStatus = "disabled"
)

// CatalogEntry tracks which products a tenant's feed has seen. Entries are
// disabled, never deleted.
type CatalogEntry struct {
	ShopDomain string      `db:"shop_domain"`
	ProductID  int64       `db:"product_id"`
	Handle     string      `db:"handle"`
	Title      string      `db:"title"`
	Status     EntryStatus `db:"status"`
	LastSeenAt time.Time   `db:"last_seen_at"`
	DisabledAt *time.Time  `db:"disabled_at"`
}

// WebhookSubscription is an upstream webhook registration.
type WebhookSubscription struct {
	ID      int64  `json:"id"`
	Topic   string `json:"topic"`
	Address string `json:"address"`
}
