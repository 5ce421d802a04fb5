package orders

import (
	"context"
	"errors"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db/models"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateItemInput is one purchased line on a direct order.
type CreateItemInput struct {
	ProductID      string           `json:"product_id" validate:"required"`
	VariantID      string           `json:"variant_id" validate:"required"`
	Title          string           `json:"title"`
	Variant        string           `json:"variant"`
	Type           enums.ItemType   `json:"type" validate:"required"`
	UnitPriceCents int              `json:"unit_price_cents" validate:"min=0"`
	Quantity       int              `json:"quantity" validate:"required,min=1"`
	Yardage        *decimal.Decimal `json:"yardage,omitempty"`
}

// AddressInput carries the shopper's address fields.
type AddressInput struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Address1    string  `json:"address_1" validate:"required"`
	Address2    *string `json:"address_2,omitempty"`
	City        string  `json:"city" validate:"required"`
	Province    string  `json:"province"`
	PostalCode  string  `json:"postal_code" validate:"required"`
	CountryCode string  `json:"country_code" validate:"required"`
	Phone       *string `json:"phone,omitempty"`
}

// CreateOrderInput is the direct-path request body.
type CreateOrderInput struct {
	Email           string            `json:"email" validate:"required,email"`
	Items           []CreateItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress *AddressInput     `json:"shipping_address" validate:"required"`
	BillingAddress  *AddressInput     `json:"billing_address,omitempty"`
	PaymentIntentID *string           `json:"payment_intent_id,omitempty"`
	RegionID        *string           `json:"region_id,omitempty"`
	Currency        string            `json:"currency,omitempty"`
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service writes direct orders locally in one atomic transaction, unlike
// the multi-call saga against the commerce backend.
type Service interface {
	CreateDirect(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// ServiceParams groups dependencies for the direct order service.
type ServiceParams struct {
	Tx                    txRunner
	Repo                  *Repository
	LegacyCheckoutEnabled bool
	DefaultCurrency       string
	Logger                *logger.Logger
}

type service struct {
	tx       txRunner
	repo     *Repository
	enabled  bool
	currency string
	logg     *logger.Logger
}

// NewService builds the direct order service.
func NewService(params ServiceParams) (Service, error) {
	if params.Tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tx runner is required")
	}
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "orders repository is required")
	}
	if params.DefaultCurrency == "" {
		params.DefaultCurrency = "usd"
	}
	return &service{
		tx:       params.Tx,
		repo:     params.Repo,
		enabled:  params.LegacyCheckoutEnabled,
		currency: params.DefaultCurrency,
		logg:     params.Logger,
	}, nil
}

// CreateDirect writes the order row, line item rows, address rows and the
// linking update as one transaction. All rows commit or none do.
func (s *service) CreateDirect(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if !s.enabled {
		return nil, pkgerrors.New(pkgerrors.CodeFeatureDisabled, "legacy checkout is disabled")
	}
	if input.Email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order contains no items")
	}
	if input.ShippingAddress == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping address is required")
	}
	for _, item := range input.Items {
		if !item.Type.Valid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown item type")
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = s.currency
	}

	orderID := uuid.New()
	lineItems := make([]models.OrderLineItem, 0, len(input.Items))
	subtotal := 0
	for _, item := range input.Items {
		total := lineTotalCents(item)
		subtotal += total

		var yardage *string
		if item.Yardage != nil {
			value := item.Yardage.String()
			yardage = &value
		}
		lineItems = append(lineItems, models.OrderLineItem{
			ID:             uuid.New(),
			OrderID:        orderID,
			ProductID:      item.ProductID,
			VariantID:      item.VariantID,
			Title:          item.Title,
			Variant:        item.Variant,
			Type:           item.Type,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			Yardage:        yardage,
			TotalCents:     total,
		})
	}

	order := &models.Order{
		ID:              orderID,
		Email:           input.Email,
		Status:          enums.OrderStatusPending,
		Currency:        currency,
		RegionID:        input.RegionID,
		PaymentIntentID: input.PaymentIntentID,
		SubtotalCents:   subtotal,
		TotalCents:      subtotal,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := repo.CreateLineItems(ctx, lineItems); err != nil {
			return err
		}

		shipping := addressRow(orderID, "shipping", *input.ShippingAddress)
		if err := repo.CreateAddress(ctx, &shipping); err != nil {
			return err
		}
		if input.BillingAddress != nil {
			billing := addressRow(orderID, "billing", *input.BillingAddress)
			if err := repo.CreateAddress(ctx, &billing); err != nil {
				return err
			}
		}

		return repo.LinkAddress(ctx, orderID, shipping.ID)
	})
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "direct order transaction rolled back", err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "order could not be written")
	}

	return s.repo.FindByID(ctx, orderID)
}

// GetByID loads an order with associations.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, err
	}
	return order, nil
}

// lineTotalCents prices fabric-by-the-yard by yardage and everything else by
// unit quantity.
func lineTotalCents(item CreateItemInput) int {
	if item.Type == enums.ItemTypeFabric && item.Yardage != nil {
		total := decimal.NewFromInt(int64(item.UnitPriceCents)).Mul(*item.Yardage)
		return int(total.Round(0).IntPart())
	}
	return item.UnitPriceCents * item.Quantity
}

func addressRow(orderID uuid.UUID, kind string, input AddressInput) models.OrderAddress {
	return models.OrderAddress{
		ID:          uuid.New(),
		OrderID:     orderID,
		Kind:        kind,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Address1:    input.Address1,
		Address2:    input.Address2,
		City:        input.City,
		Province:    input.Province,
		PostalCode:  input.PostalCode,
		CountryCode: input.CountryCode,
		Phone:       input.Phone,
	}
}
