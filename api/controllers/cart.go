package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Vamsi-027/fabric-commerce-backend/api/middleware"
	"github.com/Vamsi-027/fabric-commerce-backend/api/responses"
	"github.com/Vamsi-027/fabric-commerce-backend/api/validators"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/cart"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
)

type addCartItemPayload struct {
	ProductID  string            `json:"product_id" validate:"required"`
	VariantID  string            `json:"variant_id" validate:"required"`
	Title      string            `json:"title"`
	Variant    string            `json:"variant"`
	PriceCents int               `json:"price_cents" validate:"min=0"`
	Quantity   int               `json:"quantity"`
	Yardage    *decimal.Decimal  `json:"yardage,omitempty"`
	Thumbnail  *string           `json:"thumbnail,omitempty"`
	Type       enums.ItemType    `json:"type" validate:"required"`
	Metadata   cart.ItemMetadata `json:"metadata"`
}

type updateQuantityPayload struct {
	Quantity int `json:"quantity"`
}

func requireSession(r *http.Request) (string, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return sessionID, nil
}

// CartGet returns the session's cart contents.
func CartGet(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := requireSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.Get(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}

// CartAdd merges an item into the session's cart.
func CartAdd(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := requireSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.Add(ctx, sessionID, cart.AddItemInput{
			ProductID:  payload.ProductID,
			VariantID:  payload.VariantID,
			Title:      payload.Title,
			Variant:    payload.Variant,
			PriceCents: payload.PriceCents,
			Quantity:   payload.Quantity,
			Yardage:    payload.Yardage,
			Thumbnail:  payload.Thumbnail,
			Type:       payload.Type,
			Metadata:   payload.Metadata,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"items": items})
	}
}

// CartUpdateQuantity overwrites one entry's quantity; zero removes it.
func CartUpdateQuantity(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := requireSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		itemID := strings.TrimSpace(chi.URLParam(r, "itemId"))
		if itemID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		var payload updateQuantityPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.UpdateQuantity(ctx, sessionID, itemID, payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}

// CartRemove drops one entry from the session's cart.
func CartRemove(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := requireSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		itemID := strings.TrimSpace(chi.URLParam(r, "itemId"))
		if itemID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		items, err := svc.Remove(ctx, sessionID, itemID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}

// CartClear resets the session's cart.
func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := requireSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.Clear(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}
