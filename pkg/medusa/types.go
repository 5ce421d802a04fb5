package medusa

// Address mirrors the commerce backend's address payload.
type Address struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Address1    string `json:"address_1"`
	Address2    string `json:"address_2,omitempty"`
	City        string `json:"city"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone,omitempty"`
}

// LineItem is a remote cart line item as returned by the backend.
type LineItem struct {
	ID        string         `json:"id"`
	VariantID string         `json:"variant_id"`
	Title     string         `json:"title"`
	Quantity  int            `json:"quantity"`
	UnitPrice int            `json:"unit_price"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Cart is the backend's server-side cart resource.
type Cart struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	RegionID     string     `json:"region_id"`
	CurrencyCode string     `json:"currency_code"`
	Items        []LineItem `json:"items"`
	Total        int        `json:"total"`
	Subtotal     int        `json:"subtotal"`
}

// Order is the completed order resource.
type Order struct {
	ID           string         `json:"id"`
	DisplayID    int            `json:"display_id"`
	Email        string         `json:"email"`
	CurrencyCode string         `json:"currency_code"`
	Total        int            `json:"total"`
	Items        []LineItem     `json:"items"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// ShippingOption is one of the region's available shipping methods.
type ShippingOption struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// CreateCartInput seeds a new remote cart.
type CreateCartInput struct {
	Email        string `json:"email"`
	RegionID     string `json:"region_id,omitempty"`
	CurrencyCode string `json:"currency_code,omitempty"`
}

// AddLineItemInput appends a variant to a remote cart.
type AddLineItemInput struct {
	VariantID string         `json:"variant_id"`
	Quantity  int            `json:"quantity"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// UpdateCartInput attaches addresses and contact info to a remote cart.
type UpdateCartInput struct {
	Email           string   `json:"email,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
	BillingAddress  *Address `json:"billing_address,omitempty"`
}

type cartEnvelope struct {
	Cart Cart `json:"cart"`
}

type orderEnvelope struct {
	Type  string `json:"type"`
	Order Order  `json:"order"`
	Data  *Order `json:"data"`
}

type shippingOptionsEnvelope struct {
	ShippingOptions []ShippingOption `json:"shipping_options"`
}

type errorEnvelope struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
