// Package mapping turns upstream catalog records into GoodBarber import rows.
// Everything here is pure: the same product always yields the same rows.
package mapping

import (
	"strconv"
	"strings"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const StockUnlimited = "Unlimited"

// Columns is the fixed header of the export document.
var Columns = []string{
	"product_id",
	"variant_id",
	"product_title",
	"product_summary",
	"product_brand",
	"product_tags",
	"product_collections",
	"product_url_slug",
	"variant_options",
	"variant_stock",
	"variant_sku",
	"variant_price",
	"variant_weight",
	"product_pict_url",
	"product_pict_position",
	"variant_pict_url",
}

type Row struct {
	ProductID           string
	VariantID           string
	ProductTitle        string
	ProductSummary      string
	ProductBrand        string
	ProductTags         string
	ProductCollections  string
	ProductURLSlug      string
	VariantOptions      string
	VariantStock        string
	VariantSKU          string
	VariantPrice        string
	VariantWeight       string
	ProductPictURL      string
	ProductPictPosition string
	VariantPictURL      string
}

// Record returns the row values in Columns order.
func (r Row) Record() []string {
	return []string{
		r.ProductID,
		r.VariantID,
		r.ProductTitle,
		r.ProductSummary,
		r.ProductBrand,
		r.ProductTags,
		r.ProductCollections,
		r.ProductURLSlug,
		r.VariantOptions,
		r.VariantStock,
		r.VariantSKU,
		r.VariantPrice,
		r.VariantWeight,
		r.ProductPictURL,
		r.ProductPictPosition,
		r.VariantPictURL,
	}
}

// BuildRows maps one product to one row per variant. A product without
// variants still yields a single row carrying only product-level fields.
func BuildRows(p *domain.Product) []Row {
	base := Row{
		ProductTitle:       p.Title,
		ProductSummary:     Truncate(StripHTML(p.BodyHTML), SummaryLimit),
		ProductBrand:       p.Vendor,
		ProductTags:        joinCapped(ParseTags(p.Tags), MaxTags),
		ProductCollections: joinCapped(collectionTitles(p.Collections), MaxCollections),
		ProductURLSlug:     productSlug(p),
	}

	primary := primaryImage(p)

	if len(p.Variants) == 0 {
		row := base
		row.ProductPictURL, row.ProductPictPosition = rowImage(p, 0, primary)
		if primary != nil {
			row.VariantPictURL = primary.Src
		}
		return []Row{row}
	}

	rows := make([]Row, 0, len(p.Variants))
	for idx := range p.Variants {
		v := &p.Variants[idx]

		row := base
		row.VariantOptions = VariantOptions(p, v)
		row.VariantStock = stock(v)
		row.VariantSKU = v.SKU
		row.VariantPrice = v.Price
		row.VariantWeight = weight(v)
		row.ProductPictURL, row.ProductPictPosition = rowImage(p, idx, primary)
		row.VariantPictURL = variantImage(p, v, primary)

		rows = append(rows, row)
	}

	return rows
}

// BuildAllRows maps products in order.
func BuildAllRows(products []domain.Product) []Row {
	var rows []Row
	for i := range products {
		rows = append(rows, BuildRows(&products[i])...)
	}
	return rows
}

// VariantOptions renders the variant's option values as "[[key:value]]"
// tokens, pairing slot i of the product options with optionN of the variant.
func VariantOptions(p *domain.Product, v *domain.Variant) string {
	values := []*string{v.Option1, v.Option2, v.Option3}

	var sb strings.Builder
	for i := 0; i < len(values) && i < len(p.Options); i++ {
		key := NormalizeOptionKey(p.Options[i].Name)
		if key == "" || values[i] == nil {
			continue
		}
		val := strings.TrimSpace(*values[i])
		if val == "" {
			continue
		}
		sb.WriteString("[[")
		sb.WriteString(key)
		sb.WriteString(":")
		sb.WriteString(val)
		sb.WriteString("]]")
	}
	return sb.String()
}

func productSlug(p *domain.Product) string {
	if h := strings.TrimSpace(p.Handle); h != "" {
		return h
	}
	return Slugify(p.Title)
}

func collectionTitles(cols []domain.Collection) []string {
	var titles []string
	for _, c := range cols {
		if t := strings.TrimSpace(c.Title); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

func stock(v *domain.Variant) string {
	if v.InventoryManagement == nil || *v.InventoryManagement == "" {
		return StockUnlimited
	}
	if v.InventoryQuantity == nil {
		return "0"
	}
	return strconv.Itoa(*v.InventoryQuantity)
}

func weight(v *domain.Variant) string {
	if v.Weight == nil {
		return ""
	}
	return strconv.FormatFloat(*v.Weight, 'f', -1, 64)
}

func primaryImage(p *domain.Product) *domain.Image {
	if p.Image != nil && p.Image.Src != "" {
		return p.Image
	}
	if len(p.Images) > 0 && p.Images[0].Src != "" {
		return &p.Images[0]
	}
	return nil
}

// rowImage spreads product images across variant rows by index and falls
// back to the primary image once they run out.
func rowImage(p *domain.Product, idx int, primary *domain.Image) (string, string) {
	if idx < len(p.Images) && p.Images[idx].Src != "" {
		img := p.Images[idx]
		pos := img.Position
		if pos == 0 {
			pos = idx + 1
		}
		return img.Src, strconv.Itoa(pos)
	}
	if primary == nil {
		return "", ""
	}
	pos := primary.Position
	if pos == 0 {
		pos = 1
	}
	return primary.Src, strconv.Itoa(pos)
}

func variantImage(p *domain.Product, v *domain.Variant, primary *domain.Image) string {
	if v.ImageID != nil {
		for _, img := range p.Images {
			if img.ID == *v.ImageID && img.Src != "" {
				return img.Src
			}
		}
	}
	if primary == nil {
		return ""
	}
	return primary.Src
}
