package checkout

import (
	"context"

	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/medusa"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/metrics"
	"go.uber.org/multierr"
)

// Workflow step names used for logging and metrics labels.
const (
	StepCreateCart     = "create_cart"
	StepAddLineItems   = "add_line_items"
	StepSetAddresses   = "set_addresses"
	StepSelectShipping = "select_shipping"
	StepCompleteCart   = "complete_cart"
	StepLinkPayment    = "link_payment"
)

// Backend is the slice of the commerce client the workflow drives.
type Backend interface {
	CreateCart(ctx context.Context, input medusa.CreateCartInput) (*medusa.Cart, error)
	AddLineItem(ctx context.Context, cartID string, input medusa.AddLineItemInput) (*medusa.Cart, error)
	UpdateCart(ctx context.Context, cartID string, input medusa.UpdateCartInput) (*medusa.Cart, error)
	ListShippingOptions(ctx context.Context, cartID string) ([]medusa.ShippingOption, error)
	AddShippingMethod(ctx context.Context, cartID, optionID string) (*medusa.Cart, error)
	CompleteCart(ctx context.Context, cartID string) (*medusa.Order, error)
	SetOrderMetadata(ctx context.Context, orderID string, metadata map[string]any) error
}

// Service executes the order composition workflow against the commerce
// backend.
type Service interface {
	Execute(ctx context.Context, draft OrderDraft) (*Result, error)
}

// ServiceParams groups dependencies for the workflow service.
type ServiceParams struct {
	Backend               Backend
	LegacyCheckoutEnabled bool
	DefaultRegionID       string
	DefaultCurrency       string
	Metrics               *metrics.Checkout
	Logger                *logger.Logger
}

type service struct {
	backend         Backend
	enabled         bool
	defaultRegionID string
	defaultCurrency string
	met             *metrics.Checkout
	logg            *logger.Logger
}

// NewService builds the workflow service.
func NewService(params ServiceParams) (Service, error) {
	if params.Backend == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "commerce backend client is required")
	}
	if params.DefaultCurrency == "" {
		params.DefaultCurrency = "usd"
	}
	return &service{
		backend:         params.Backend,
		enabled:         params.LegacyCheckoutEnabled,
		defaultRegionID: params.DefaultRegionID,
		defaultCurrency: params.DefaultCurrency,
		met:             params.Metrics,
		logg:            params.Logger,
	}, nil
}

// Execute runs the fixed call sequence: create cart, add items, attach
// addresses, pick shipping, complete, link payment. Cart creation and
// completion failures abort; item and address failures are tolerated and
// reported. There is no compensation: a completion failure leaves the remote
// cart dangling, and the error says where to find it.
func (s *service) Execute(ctx context.Context, draft OrderDraft) (*Result, error) {
	if !s.enabled {
		return nil, pkgerrors.New(pkgerrors.CodeFeatureDisabled, "legacy checkout is disabled")
	}
	if draft.Email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if len(draft.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order draft contains no items")
	}

	regionID := draft.RegionID
	if regionID == "" {
		regionID = s.defaultRegionID
	}

	s.met.ObserveStep(StepCreateCart)
	cart, err := s.backend.CreateCart(ctx, medusa.CreateCartInput{
		Email:        draft.Email,
		RegionID:     regionID,
		CurrencyCode: s.defaultCurrency,
	})
	if err != nil {
		s.met.ObserveStepFailure(StepCreateCart)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "commerce backend rejected cart creation")
	}
	ctx = s.withCartID(ctx, cart.ID)

	cart, failed := s.addLineItems(ctx, cart, draft.Items)
	cart = s.setAddresses(ctx, cart, draft)
	cart = s.selectShipping(ctx, cart)

	s.met.ObserveStep(StepCompleteCart)
	order, err := s.backend.CompleteCart(ctx, cart.ID)
	if err != nil {
		s.met.ObserveStepFailure(StepCompleteCart)
		s.error(ctx, "cart completion failed, remote cart left dangling", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeCheckoutFailed, err, "cart completion failed").
			WithDetails(CompletionDebug{
				CartID:    cart.ID,
				CartItems: len(cart.Items),
				CartTotal: cart.Total,
			})
	}

	s.linkPayment(ctx, order, draft.PaymentIntentID)
	return &Result{Order: order, FailedItems: failed}, nil
}

// addLineItems attaches each draft item, continuing past individual
// failures. The returned cart is the freshest snapshot the backend gave us.
func (s *service) addLineItems(ctx context.Context, cart *medusa.Cart, items []DraftItem) (*medusa.Cart, []FailedItem) {
	s.met.ObserveStep(StepAddLineItems)

	var failed []FailedItem
	var itemErrs error
	for _, item := range items {
		updated, err := s.backend.AddLineItem(ctx, cart.ID, medusa.AddLineItemInput{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			Metadata:  item.Metadata,
		})
		if err != nil {
			itemErrs = multierr.Append(itemErrs, err)
			failed = append(failed, FailedItem{
				VariantID: item.VariantID,
				Title:     item.Title,
				Reason:    err.Error(),
			})
			if s.met != nil {
				s.met.ItemFailures.Inc()
			}
			continue
		}
		cart = updated
	}

	if itemErrs != nil {
		s.met.ObserveStepFailure(StepAddLineItems)
		s.error(ctx, "some line items were rejected, continuing without them", itemErrs)
	}
	return cart, failed
}

// setAddresses attaches shipping and billing in one call, defaulting billing
// to shipping. Failure is tolerated.
func (s *service) setAddresses(ctx context.Context, cart *medusa.Cart, draft OrderDraft) *medusa.Cart {
	if draft.ShippingAddress == nil {
		return cart
	}
	s.met.ObserveStep(StepSetAddresses)

	billing := draft.BillingAddress
	if billing == nil {
		billing = draft.ShippingAddress
	}
	updated, err := s.backend.UpdateCart(ctx, cart.ID, medusa.UpdateCartInput{
		Email:           draft.Email,
		ShippingAddress: draft.ShippingAddress,
		BillingAddress:  billing,
	})
	if err != nil {
		s.met.ObserveStepFailure(StepSetAddresses)
		s.error(ctx, "address update failed, continuing without addresses", err)
		return cart
	}
	return updated
}

// selectShipping attaches the first available shipping option. No options is
// a silent skip, not an error.
func (s *service) selectShipping(ctx context.Context, cart *medusa.Cart) *medusa.Cart {
	s.met.ObserveStep(StepSelectShipping)

	options, err := s.backend.ListShippingOptions(ctx, cart.ID)
	if err != nil {
		s.met.ObserveStepFailure(StepSelectShipping)
		s.error(ctx, "shipping option lookup failed, continuing without shipping", err)
		return cart
	}
	if len(options) == 0 {
		return cart
	}

	updated, err := s.backend.AddShippingMethod(ctx, cart.ID, options[0].ID)
	if err != nil {
		s.met.ObserveStepFailure(StepSelectShipping)
		s.error(ctx, "shipping method attach failed, continuing without shipping", err)
		return cart
	}
	return updated
}

// linkPayment records the payment intent on the completed order. The order
// already exists, so failure here is logged only.
func (s *service) linkPayment(ctx context.Context, order *medusa.Order, paymentIntentID string) {
	if paymentIntentID == "" {
		return
	}
	s.met.ObserveStep(StepLinkPayment)

	err := s.backend.SetOrderMetadata(ctx, order.ID, map[string]any{
		"payment_intent_id": paymentIntentID,
	})
	if err != nil {
		s.met.ObserveStepFailure(StepLinkPayment)
		s.error(ctx, "payment intent linkage failed, order is unaffected", err)
	}
}

func (s *service) withCartID(ctx context.Context, cartID string) context.Context {
	if s.logg == nil {
		return ctx
	}
	return s.logg.WithCartID(ctx, cartID)
}

func (s *service) error(ctx context.Context, msg string, err error) {
	if s.logg != nil {
		s.logg.Error(ctx, msg, err)
	}
}
