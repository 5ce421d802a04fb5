package medusa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), config.MedusaConfig{
		BackendURL:     server.URL,
		PublishableKey: "pk_test",
	}, nil)
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresBackendURL(t *testing.T) {
	_, err := NewClient(context.Background(), config.MedusaConfig{}, nil)
	require.Error(t, err)
}

func TestCreateCartSendsPublishableKey(t *testing.T) {
	var gotKey string
	var gotBody CreateCartInput
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/store/carts", r.URL.Path)
		gotKey = r.Header.Get("x-publishable-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"cart": map[string]any{"id": "cart_1", "email": gotBody.Email}})
	}))

	cart, err := client.CreateCart(context.Background(), CreateCartInput{
		Email:        "shopper@example.com",
		RegionID:     "reg_1",
		CurrencyCode: "usd",
	})
	require.NoError(t, err)
	assert.Equal(t, "cart_1", cart.ID)
	assert.Equal(t, "pk_test", gotKey)
	assert.Equal(t, "reg_1", gotBody.RegionID)
}

func TestAddLineItemPath(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store/carts/cart_1/line-items", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"cart": map[string]any{
			"id":    "cart_1",
			"items": []map[string]any{{"id": "item_1", "variant_id": "v1", "quantity": 2}},
		}})
	}))

	cart, err := client.AddLineItem(context.Background(), "cart_1", AddLineItemInput{VariantID: "v1", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "v1", cart.Items[0].VariantID)
}

func TestCompleteCartReadsOrderEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store/carts/cart_1/complete", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"type": "order", "order": map[string]any{"id": "order_1", "total": 4200}})
	}))

	order, err := client.CompleteCart(context.Background(), "cart_1")
	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, 4200, order.Total)
}

func TestCompleteCartReadsDataEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"type": "order", "data": map[string]any{"id": "order_2"}})
	}))

	order, err := client.CompleteCart(context.Background(), "cart_1")
	require.NoError(t, err)
	assert.Equal(t, "order_2", order.ID)
}

func TestAPIErrorMapping(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"code": "insufficient_inventory", "message": "variant out of stock"})
	}))

	_, err := client.CreateCart(context.Background(), CreateCartInput{Email: "a@b.c"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "insufficient_inventory", apiErr.Code)
	assert.Contains(t, apiErr.Message, "out of stock")
}

func TestListShippingOptions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/store/shipping-options/cart_1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"shipping_options": []map[string]any{
			{"id": "so_1", "name": "Standard", "amount": 500},
			{"id": "so_2", "name": "Express", "amount": 1500},
		}})
	}))

	options, err := client.ListShippingOptions(context.Background(), "cart_1")
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "so_1", options[0].ID)
}
