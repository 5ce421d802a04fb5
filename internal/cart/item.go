package cart

import (
	"fmt"
	"time"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// LineItem is one logical product entry in the shopping cart: a swatch
// sample, fabric yardage, or a shipping charge.
type LineItem struct {
	ID         string           `json:"id"`
	ProductID  string           `json:"product_id"`
	VariantID  string           `json:"variant_id"`
	Title      string           `json:"title"`
	Variant    string           `json:"variant"`
	PriceCents int              `json:"price_cents"`
	Quantity   int              `json:"quantity"`
	Yardage    *decimal.Decimal `json:"yardage,omitempty"`
	Thumbnail  *string          `json:"thumbnail,omitempty"`
	Type       enums.ItemType   `json:"type"`
	Metadata   ItemMetadata     `json:"metadata,omitempty"`
	AddedAt    time.Time        `json:"added_at"`
}

// ItemMetadata carries only the fields relevant to each item type. Exactly
// one branch is set, matching the item's Type.
type ItemMetadata struct {
	Swatch   *SwatchMeta   `json:"swatch,omitempty"`
	Fabric   *FabricMeta   `json:"fabric,omitempty"`
	Shipping *ShippingMeta `json:"shipping,omitempty"`
}

// SwatchMeta describes a sample order.
type SwatchMeta struct {
	SampleSize string `json:"sample_size,omitempty"`
}

// FabricMeta describes a by-the-yard order.
type FabricMeta struct {
	WidthInches     int    `json:"width_inches,omitempty"`
	Content         string `json:"content,omitempty"`
	CutInstructions string `json:"cut_instructions,omitempty"`
}

// ShippingMeta describes a shipping charge entry.
type ShippingMeta struct {
	Carrier string `json:"carrier,omitempty"`
	Service string `json:"service,omitempty"`
}

// StableID derives the cart entry id purely from the item's identity triple.
// Repeated adds of the same logical item therefore always hit the same entry.
func StableID(itemType enums.ItemType, productID, variantID string) string {
	return fmt.Sprintf("%s-%s-%s", itemType, productID, variantID)
}
