package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
	"github.com/LegnaDivad/shopify-goodbarber-sync/testdata/utils"
)

func blueMug() *domain.Product {
	return &domain.Product{
		ID:       1,
		Title:    "Blue Mug",
		BodyHTML: "<p>A <b>sturdy</b>\n\n mug</p>",
		Vendor:   "Acme",
		Tags:     "a, b, c, d, e, f",
		Options:  []domain.ProductOption{{Name: "Size"}, {Name: "Color"}},
		Variants: []domain.Variant{
			{ID: 11, Option1: utils.Ptr("S"), Option2: utils.Ptr("Blue"), Price: "9.50", SKU: "MUG-S"},
			{ID: 12, Option1: utils.Ptr("L"), Option2: utils.Ptr("Blue"), Price: "12.00", SKU: "MUG-L"},
		},
	}
}

func TestBuildRows_BlueMugExample(t *testing.T) {
	rows := BuildRows(blueMug())

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "blue-mug", r.ProductURLSlug)
		assert.Equal(t, "a/b/c/d/e", r.ProductTags)
		assert.Equal(t, "A sturdy mug", r.ProductSummary)
		assert.Equal(t, "Acme", r.ProductBrand)
		assert.Empty(t, r.ProductID)
		assert.Empty(t, r.VariantID)
	}
	assert.Equal(t, "[[size:S]][[color:Blue]]", rows[0].VariantOptions)
	assert.Equal(t, "MUG-L", rows[1].VariantSKU)
	assert.Equal(t, "12.00", rows[1].VariantPrice)
}

func TestBuildRows_Deterministic(t *testing.T) {
	p := blueMug()
	p.Collections = []domain.Collection{{Title: "Kitchen"}, {Title: "Gifts"}}

	first := EncodeCSV(BuildRows(p))
	second := EncodeCSV(BuildRows(p))

	assert.Equal(t, first, second)
}

func TestBuildRows_NoVariantsYieldsPlaceholder(t *testing.T) {
	p := &domain.Product{
		Title:  "Gift Card",
		Handle: "gift-card",
		Image:  &domain.Image{ID: 5, Src: "https://cdn/gift.png", Position: 1},
	}

	rows := BuildRows(p)

	require.Len(t, rows, 1)
	assert.Equal(t, "gift-card", rows[0].ProductURLSlug)
	assert.Empty(t, rows[0].VariantStock)
	assert.Empty(t, rows[0].VariantOptions)
	assert.Equal(t, "https://cdn/gift.png", rows[0].ProductPictURL)
	assert.Equal(t, "1", rows[0].ProductPictPosition)
	assert.Equal(t, "https://cdn/gift.png", rows[0].VariantPictURL)
}

func TestBuildRows_Stock(t *testing.T) {
	p := &domain.Product{
		Title: "Socks",
		Variants: []domain.Variant{
			{ID: 1},
			{ID: 2, InventoryManagement: utils.Ptr("shopify"), InventoryQuantity: utils.Ptr(7)},
			{ID: 3, InventoryManagement: utils.Ptr("shopify")},
			{ID: 4, InventoryManagement: utils.Ptr("")},
		},
	}

	rows := BuildRows(p)

	require.Len(t, rows, 4)
	assert.Equal(t, StockUnlimited, rows[0].VariantStock)
	assert.Equal(t, "7", rows[1].VariantStock)
	assert.Equal(t, "0", rows[2].VariantStock)
	assert.Equal(t, StockUnlimited, rows[3].VariantStock)
}

func TestBuildRows_Weight(t *testing.T) {
	p := &domain.Product{
		Title: "Flour",
		Variants: []domain.Variant{
			{Weight: utils.Ptr(0.5)},
			{Weight: utils.Ptr(2.0)},
			{},
		},
	}

	rows := BuildRows(p)

	assert.Equal(t, "0.5", rows[0].VariantWeight)
	assert.Equal(t, "2", rows[1].VariantWeight)
	assert.Empty(t, rows[2].VariantWeight)
}

func TestBuildRows_Images(t *testing.T) {
	p := &domain.Product{
		Title: "Shirt",
		Images: []domain.Image{
			{ID: 100, Src: "https://cdn/front.png", Position: 1},
			{ID: 200, Src: "https://cdn/back.png"},
		},
		Variants: []domain.Variant{
			{ID: 1},
			{ID: 2, ImageID: utils.Ptr(int64(100))},
			{ID: 3, ImageID: utils.Ptr(int64(999))},
		},
	}

	rows := BuildRows(p)

	require.Len(t, rows, 3)

	assert.Equal(t, "https://cdn/front.png", rows[0].ProductPictURL)
	assert.Equal(t, "1", rows[0].ProductPictPosition)
	assert.Equal(t, "https://cdn/back.png", rows[1].ProductPictURL)
	assert.Equal(t, "2", rows[1].ProductPictPosition, "missing position falls back to index+1")
	assert.Equal(t, "https://cdn/front.png", rows[2].ProductPictURL, "falls back to primary image")
	assert.Equal(t, "1", rows[2].ProductPictPosition)

	assert.Equal(t, "https://cdn/front.png", rows[0].VariantPictURL)
	assert.Equal(t, "https://cdn/front.png", rows[1].VariantPictURL)
	assert.Equal(t, "https://cdn/front.png", rows[2].VariantPictURL, "unknown image id keeps primary")

	p.Image = &domain.Image{ID: 200, Src: "https://cdn/back.png", Position: 2}
	p.Variants[1].ImageID = utils.Ptr(int64(100))
	rows = BuildRows(p)
	assert.Equal(t, "https://cdn/back.png", rows[0].VariantPictURL)
	assert.Equal(t, "https://cdn/front.png", rows[1].VariantPictURL)
}

func TestBuildRows_NoImages(t *testing.T) {
	rows := BuildRows(&domain.Product{Title: "Ghost", Variants: []domain.Variant{{ID: 1}}})

	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].ProductPictURL)
	assert.Empty(t, rows[0].ProductPictPosition)
	assert.Empty(t, rows[0].VariantPictURL)
}

func TestBuildRows_CollectionsCapped(t *testing.T) {
	p := &domain.Product{
		Title: "Lamp",
		Collections: []domain.Collection{
			{Title: "One"}, {Title: " "}, {Title: "Two"}, {Title: "Three"},
			{Title: "Four"}, {Title: "Five"}, {Title: "Six"},
		},
	}

	rows := BuildRows(p)

	assert.Equal(t, "One/Two/Three/Four/Five", rows[0].ProductCollections)
}

func TestVariantOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []domain.ProductOption
		variant domain.Variant
		want    string
	}{
		{
			name:    "diacritics and spaces",
			options: []domain.ProductOption{{Name: "Tamaño de Vaso"}},
			variant: domain.Variant{Option1: utils.Ptr(" Grande ")},
			want:    "[[tamano_de_vaso:Grande]]",
		},
		{
			name:    "empty value skipped",
			options: []domain.ProductOption{{Name: "Size"}, {Name: "Color"}},
			variant: domain.Variant{Option1: utils.Ptr(""), Option2: utils.Ptr("Red")},
			want:    "[[color:Red]]",
		},
		{
			name:    "name that normalizes to nothing skipped",
			options: []domain.ProductOption{{Name: "¿?"}, {Name: "Material"}},
			variant: domain.Variant{Option1: utils.Ptr("x"), Option2: utils.Ptr("Wood")},
			want:    "[[material:Wood]]",
		},
		{
			name:    "at most three slots",
			options: []domain.ProductOption{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}},
			variant: domain.Variant{Option1: utils.Ptr("1"), Option2: utils.Ptr("2"), Option3: utils.Ptr("3")},
			want:    "[[a:1]][[b:2]][[c:3]]",
		},
		{
			name:    "value without option slot",
			options: nil,
			variant: domain.Variant{Option1: utils.Ptr("Default Title")},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Product{Options: tt.options}
			assert.Equal(t, tt.want, VariantOptions(p, &tt.variant))
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "blue-mug", Slugify("Blue Mug"))
	assert.Equal(t, "cafe-con-leche-2", Slugify("  Café con Leche #2! "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestTruncate(t *testing.T) {
	short := strings.Repeat("a", SummaryLimit)
	assert.Equal(t, short, Truncate(short, SummaryLimit))

	long := strings.Repeat("a", 238) + " bcd"
	got := Truncate(long, SummaryLimit)
	assert.Equal(t, strings.Repeat("a", 238)+"…", got)
	assert.LessOrEqual(t, len([]rune(got)), SummaryLimit)

	multibyte := strings.Repeat("ñ", 300)
	assert.Len(t, []rune(Truncate(multibyte, SummaryLimit)), SummaryLimit)
}

func TestTruncate_NonPositiveLimit(t *testing.T) {
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "", Truncate("anything", -5))
	assert.Equal(t, "…", Truncate("anything", 1))
	assert.Equal(t, "", Truncate("", 0))
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseTags(" a, ,b ,"))
	assert.Nil(t, ParseTags(""))
}

func TestEncodeCSV(t *testing.T) {
	rows := []Row{{
		ProductTitle:   `Mug "XL"`,
		ProductURLSlug: "mug-xl",
		VariantStock:   "Unlimited",
		VariantPrice:   "9.50",
	}}

	out := string(EncodeCSV(rows))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, `"product_id";"variant_id";"product_title";"product_summary";"product_brand";"product_tags";"product_collections";"product_url_slug";"variant_options";"variant_stock";"variant_sku";"variant_price";"variant_weight";"product_pict_url";"product_pict_position";"variant_pict_url"`, lines[0])
	assert.Equal(t, `;;"Mug ""XL""";;;;;"mug-xl";;"Unlimited";;"9.50";;;;`, lines[1])
}

func TestEncodeCSV_EmptyCatalog(t *testing.T) {
	out := EncodeCSV(nil)

	assert.Equal(t, 1, strings.Count(string(out), "\n"))
	assert.True(t, strings.HasPrefix(string(out), `"product_id";`))
}
