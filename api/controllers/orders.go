package controllers

import (
	"net/http"

	"github.com/Vamsi-027/fabric-commerce-backend/api/responses"
	"github.com/Vamsi-027/fabric-commerce-backend/api/validators"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/checkout"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/orders"
	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/medusa"
)

type createOrderResponse struct {
	Success     bool                  `json:"success"`
	Order       *medusa.Order         `json:"order"`
	FailedItems []checkout.FailedItem `json:"failed_items,omitempty"`
}

type disabledResponse struct {
	Code string `json:"code"`
}

type checkoutFailureResponse struct {
	Error string                   `json:"error"`
	Debug checkout.CompletionDebug `json:"debug"`
}

// CreateOrder runs the legacy checkout workflow against the commerce
// backend. The response contract is fixed: 201 {success, order} on success,
// 501 {code} when the feature gate is off, 500 {debug} on completion
// failure.
func CreateOrder(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var draft checkout.OrderDraft
		if err := validators.DecodeJSONBody(r, &draft); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Execute(ctx, draft)
		if err != nil {
			typed := pkgerrors.As(err)
			switch {
			case typed != nil && typed.Code() == pkgerrors.CodeFeatureDisabled:
				responses.WriteJSON(w, http.StatusNotImplemented, disabledResponse{
					Code: string(pkgerrors.CodeFeatureDisabled),
				})
			case typed != nil && typed.Code() == pkgerrors.CodeCheckoutFailed:
				debug, _ := typed.Details().(checkout.CompletionDebug)
				if logg != nil {
					logg.Error(ctx, "order completion failed", err)
				}
				responses.WriteJSON(w, http.StatusInternalServerError, checkoutFailureResponse{
					Error: pkgerrors.MetadataFor(pkgerrors.CodeCheckoutFailed).PublicMessage,
					Debug: debug,
				})
			default:
				responses.WriteError(ctx, logg, w, err)
			}
			return
		}

		responses.WriteJSON(w, http.StatusCreated, createOrderResponse{
			Success:     true,
			Order:       result.Order,
			FailedItems: result.FailedItems,
		})
	}
}

// CreateOrderDirect writes the order locally in one atomic transaction.
func CreateOrderDirect(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var input orders.CreateOrderInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.CreateDirect(ctx, input)
		if err != nil {
			typed := pkgerrors.As(err)
			if typed != nil && typed.Code() == pkgerrors.CodeFeatureDisabled {
				responses.WriteJSON(w, http.StatusNotImplemented, disabledResponse{
					Code: string(pkgerrors.CodeFeatureDisabled),
				})
				return
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"order":   order,
		})
	}
}
