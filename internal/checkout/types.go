package checkout

import "github.com/Vamsi-027/fabric-commerce-backend/pkg/medusa"

// DraftItem is one requested line item in an order draft.
type DraftItem struct {
	ProductID string         `json:"product_id,omitempty"`
	VariantID string         `json:"variant_id" validate:"required"`
	Title     string         `json:"title,omitempty"`
	Quantity  int            `json:"quantity" validate:"required,min=1"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// OrderDraft is the client's requested order before any remote state exists.
type OrderDraft struct {
	Email           string          `json:"email" validate:"required,email"`
	Items           []DraftItem     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress *medusa.Address `json:"shipping_address" validate:"required"`
	BillingAddress  *medusa.Address `json:"billing_address,omitempty"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	RegionID        string          `json:"region_id,omitempty"`
}

// FailedItem reports one line item the backend refused. The order may still
// complete without it.
type FailedItem struct {
	VariantID string `json:"variant_id"`
	Title     string `json:"title,omitempty"`
	Reason    string `json:"reason"`
}

// Result is the workflow outcome: the completed order plus any items that
// did not make it in.
type Result struct {
	Order       *medusa.Order `json:"order"`
	FailedItems []FailedItem  `json:"failed_items,omitempty"`
}

// CompletionDebug is the diagnostic payload attached when cart completion
// fails, so operators can find the dangling remote cart.
type CompletionDebug struct {
	CartID    string `json:"cart_id"`
	CartItems int    `json:"cart_items"`
	CartTotal int    `json:"cart_total"`
}
