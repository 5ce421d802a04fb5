package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vamsi-027/fabric-commerce-backend/internal/checkout"
	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/medusa"
)

type stubCheckout struct {
	executeFn func(ctx context.Context, draft checkout.OrderDraft) (*checkout.Result, error)
}

func (s *stubCheckout) Execute(ctx context.Context, draft checkout.OrderDraft) (*checkout.Result, error) {
	return s.executeFn(ctx, draft)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

const validDraftBody = `{
	"email": "buyer@example.com",
	"items": [{"variant_id": "variant_1", "title": "Emerald Velvet", "quantity": 2}],
	"shipping_address": {"address_1": "1 Main St", "city": "Austin", "postal_code": "78701", "country_code": "us"}
}`

func postOrder(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/store/orders/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderSuccessShape(t *testing.T) {
	svc := &stubCheckout{
		executeFn: func(ctx context.Context, draft checkout.OrderDraft) (*checkout.Result, error) {
			return &checkout.Result{
				Order: &medusa.Order{ID: "order_1", Email: draft.Email, Total: 9400},
				FailedItems: []checkout.FailedItem{
					{VariantID: "variant_2", Title: "Navy Linen", Reason: "variant out of stock"},
				},
			}, nil
		},
	}

	rec := postOrder(t, CreateOrder(svc, testLogger()), validDraftBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Success     bool                  `json:"success"`
		Order       *medusa.Order         `json:"order"`
		FailedItems []checkout.FailedItem `json:"failed_items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success {
		t.Fatal("expected success true")
	}
	if payload.Order == nil || payload.Order.ID != "order_1" {
		t.Fatalf("expected order_1 in response got %+v", payload.Order)
	}
	if len(payload.FailedItems) != 1 || payload.FailedItems[0].Reason != "variant out of stock" {
		t.Fatalf("expected failed item report got %+v", payload.FailedItems)
	}
}

func TestCreateOrderOmitsFailedItemsWhenClean(t *testing.T) {
	svc := &stubCheckout{
		executeFn: func(ctx context.Context, draft checkout.OrderDraft) (*checkout.Result, error) {
			return &checkout.Result{Order: &medusa.Order{ID: "order_1"}}, nil
		},
	}

	rec := postOrder(t, CreateOrder(svc, testLogger()), validDraftBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := payload["failed_items"]; ok {
		t.Fatal("expected failed_items omitted when every item succeeds")
	}
}

func TestCreateOrderDisabledShape(t *testing.T) {
	svc := &stubCheckout{
		executeFn: func(ctx context.Context, draft checkout.OrderDraft) (*checkout.Result, error) {
			return nil, pkgerrors.New(pkgerrors.CodeFeatureDisabled, "legacy checkout is disabled")
		},
	}

	rec := postOrder(t, CreateOrder(svc, testLogger()), validDraftBody)
	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501 got %d", rec.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["code"] != string(pkgerrors.CodeFeatureDisabled) {
		t.Fatalf("expected code %q got %q", pkgerrors.CodeFeatureDisabled, payload["code"])
	}
	if len(payload) != 1 {
		t.Fatalf("expected single-key disabled response got %v", payload)
	}
}

func TestCreateOrderCompletionFailureShape(t *testing.T) {
	svc := &stubCheckout{
		executeFn: func(ctx context.Context, draft checkout.OrderDraft) (*checkout.Result, error) {
			return nil, pkgerrors.New(pkgerrors.CodeCheckoutFailed, "cart completion rejected").
				WithDetails(checkout.CompletionDebug{CartID: "cart_1", CartItems: 2, CartTotal: 9400})
		},
	}

	rec := postOrder(t, CreateOrder(svc, testLogger()), validDraftBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}

	var payload struct {
		Error string                   `json:"error"`
		Debug checkout.CompletionDebug `json:"debug"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error == "" {
		t.Fatal("expected public error message")
	}
	if payload.Debug.CartID != "cart_1" || payload.Debug.CartItems != 2 || payload.Debug.CartTotal != 9400 {
		t.Fatalf("expected cart debug context got %+v", payload.Debug)
	}
}

func TestCreateOrderRejectsInvalidDraft(t *testing.T) {
	svc := &stubCheckout{
		executeFn: func(ctx context.Context, draft checkout.OrderDraft) (*checkout.Result, error) {
			t.Fatal("service must not run for an invalid draft")
			return nil, nil
		},
	}

	rec := postOrder(t, CreateOrder(svc, testLogger()), `{"email":"not-an-email","items":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
