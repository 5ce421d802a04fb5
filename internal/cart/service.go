package cart

import (
	"context"
	"errors"
	"time"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// AddItemInput describes an add-to-cart request before the stable id is
// computed.
type AddItemInput struct {
	ProductID  string
	VariantID  string
	Title      string
	Variant    string
	PriceCents int
	Quantity   int
	Yardage    *decimal.Decimal
	Thumbnail  *string
	Type       enums.ItemType
	Metadata   ItemMetadata
}

// Service is the single source of truth for a session's shopping cart.
type Service interface {
	Add(ctx context.Context, sessionID string, input AddItemInput) ([]LineItem, error)
	Get(ctx context.Context, sessionID string) ([]LineItem, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) ([]LineItem, error)
	Remove(ctx context.Context, sessionID, itemID string) ([]LineItem, error)
	Clear(ctx context.Context, sessionID string) ([]LineItem, error)
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Store  Store
	Bus    *Bus
	Logger *logger.Logger
}

type service struct {
	store Store
	bus   *Bus
	logg  *logger.Logger
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart store is required")
	}
	if params.Bus == nil {
		params.Bus = NewBus()
	}
	return &service{
		store: params.Store,
		bus:   params.Bus,
		logg:  params.Logger,
	}, nil
}

// Add merges the item into an existing entry with the same identity triple
// or appends a new one. The full list is persisted before the change event
// is broadcast.
func (s *service) Add(ctx context.Context, sessionID string, input AddItemInput) ([]LineItem, error) {
	if !input.Type.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown item type")
	}
	if input.ProductID == "" || input.VariantID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id and variant id are required")
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	items, ok := s.load(ctx, sessionID)
	if !ok {
		return []LineItem{}, nil
	}

	id := StableID(input.Type, input.ProductID, input.VariantID)
	merged := false
	var affected LineItem
	for i := range items {
		if items[i].ID != id {
			continue
		}
		mergeInto(&items[i], input)
		affected = items[i]
		merged = true
		break
	}
	if !merged {
		entry := newLineItem(id, input)
		items = append(items, entry)
		affected = entry
	}

	if !s.save(ctx, sessionID, items) {
		return []LineItem{}, nil
	}
	s.bus.Publish(Event{Action: ActionAdd, SessionID: sessionID, Item: &affected})
	return items, nil
}

// Get returns the current ordered list for the session.
func (s *service) Get(ctx context.Context, sessionID string) ([]LineItem, error) {
	items, _ := s.load(ctx, sessionID)
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}

// UpdateQuantity overwrites the entry's quantity, removing it when the new
// quantity drops to zero or below.
func (s *service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) ([]LineItem, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, itemID)
	}

	items, ok := s.load(ctx, sessionID)
	if !ok {
		return []LineItem{}, nil
	}

	var affected *LineItem
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			affected = &items[i]
			break
		}
	}
	if affected == nil {
		return items, nil
	}

	if !s.save(ctx, sessionID, items) {
		return []LineItem{}, nil
	}
	s.bus.Publish(Event{Action: ActionUpdate, SessionID: sessionID, Item: affected})
	return items, nil
}

// Remove filters out the entry by id. Removing an absent id leaves the cart
// unchanged and is not an error.
func (s *service) Remove(ctx context.Context, sessionID, itemID string) ([]LineItem, error) {
	items, ok := s.load(ctx, sessionID)
	if !ok {
		return []LineItem{}, nil
	}

	var removed *LineItem
	filtered := items[:0]
	for i := range items {
		if items[i].ID == itemID {
			entry := items[i]
			removed = &entry
			continue
		}
		filtered = append(filtered, items[i])
	}
	if removed == nil {
		return items, nil
	}

	if !s.save(ctx, sessionID, filtered) {
		return []LineItem{}, nil
	}
	s.bus.Publish(Event{Action: ActionRemove, SessionID: sessionID, Item: removed})
	return filtered, nil
}

// Clear resets the session's cart to an empty list.
func (s *service) Clear(ctx context.Context, sessionID string) ([]LineItem, error) {
	if !s.save(ctx, sessionID, []LineItem{}) {
		return []LineItem{}, nil
	}
	s.bus.Publish(Event{Action: ActionClear, SessionID: sessionID})
	return []LineItem{}, nil
}

// load reads the cart, degrading to an empty list when storage is down. The
// second return reports whether storage was reachable.
func (s *service) load(ctx context.Context, sessionID string) ([]LineItem, bool) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			s.warn(ctx, "cart storage unreachable, serving empty cart")
			return []LineItem{}, false
		}
		s.warn(ctx, "cart load failed, serving empty cart")
		return []LineItem{}, false
	}
	return items, true
}

func (s *service) save(ctx context.Context, sessionID string, items []LineItem) bool {
	if err := s.store.Save(ctx, sessionID, items); err != nil {
		s.warn(ctx, "cart save failed, mutation dropped")
		return false
	}
	return true
}

func (s *service) warn(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Warn(ctx, msg)
	}
}

func newLineItem(id string, input AddItemInput) LineItem {
	return LineItem{
		ID:         id,
		ProductID:  input.ProductID,
		VariantID:  input.VariantID,
		Title:      input.Title,
		Variant:    input.Variant,
		PriceCents: input.PriceCents,
		Quantity:   input.Quantity,
		Yardage:    input.Yardage,
		Thumbnail:  input.Thumbnail,
		Type:       input.Type,
		Metadata:   input.Metadata,
		AddedAt:    time.Now().UTC(),
	}
}

// mergeInto accumulates the new add into the existing entry. Fabric sold by
// the yard accumulates yardage, everything else accumulates unit quantity.
// Price and display fields keep their original values.
func mergeInto(existing *LineItem, input AddItemInput) {
	if existing.Type == enums.ItemTypeFabric && input.Yardage != nil {
		if existing.Yardage == nil {
			yardage := decimal.Zero
			existing.Yardage = &yardage
		}
		sum := existing.Yardage.Add(*input.Yardage)
		existing.Yardage = &sum
		return
	}
	existing.Quantity += input.Quantity
}
