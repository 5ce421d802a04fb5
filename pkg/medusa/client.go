package medusa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/config"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
)

const publishableKeyHeader = "x-publishable-api-key"

var errBackendURLRequired = errors.New("medusa backend url is required")

// APIError carries the backend's structured error response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("medusa: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("medusa: %d: %s", e.Status, e.Message)
}

// Client talks to the external commerce backend's store API with centralized
// auth headers, logging, and error mapping.
type Client struct {
	baseURL        string
	publishableKey string
	httpClient     *http.Client
	logger         *logger.Logger
}

// NewClient validates the configuration and builds the wrapper. The HTTP
// timeout is whatever the config says; zero means requests wait on the
// caller's context alone.
func NewClient(ctx context.Context, cfg config.MedusaConfig, logg *logger.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	if baseURL == "" {
		return nil, errBackendURLRequired
	}

	c := &Client{
		baseURL:        baseURL,
		publishableKey: strings.TrimSpace(cfg.PublishableKey),
		httpClient:     &http.Client{Timeout: cfg.HTTPTimeout},
		logger:         logg,
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "backend_url", baseURL), "medusa client initialized")
	}
	return c, nil
}

// CreateCart starts a new remote cart.
func (c *Client) CreateCart(ctx context.Context, input CreateCartInput) (*Cart, error) {
	var envelope cartEnvelope
	if err := c.do(ctx, http.MethodPost, "/store/carts", input, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Cart, nil
}

// AddLineItem appends a single variant to the remote cart.
func (c *Client) AddLineItem(ctx context.Context, cartID string, input AddLineItemInput) (*Cart, error) {
	path := fmt.Sprintf("/store/carts/%s/line-items", cartID)
	var envelope cartEnvelope
	if err := c.do(ctx, http.MethodPost, path, input, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Cart, nil
}

// UpdateCart attaches addresses/email to the remote cart.
func (c *Client) UpdateCart(ctx context.Context, cartID string, input UpdateCartInput) (*Cart, error) {
	path := fmt.Sprintf("/store/carts/%s", cartID)
	var envelope cartEnvelope
	if err := c.do(ctx, http.MethodPost, path, input, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Cart, nil
}

// ListShippingOptions returns the shipping options available to the cart's region.
func (c *Client) ListShippingOptions(ctx context.Context, cartID string) ([]ShippingOption, error) {
	path := fmt.Sprintf("/store/shipping-options/%s", cartID)
	var envelope shippingOptionsEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.ShippingOptions, nil
}

// AddShippingMethod selects a shipping option for the cart.
func (c *Client) AddShippingMethod(ctx context.Context, cartID, optionID string) (*Cart, error) {
	path := fmt.Sprintf("/store/carts/%s/shipping-methods", cartID)
	body := map[string]string{"option_id": optionID}
	var envelope cartEnvelope
	if err := c.do(ctx, http.MethodPost, path, body, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Cart, nil
}

// CompleteCart turns the cart into an order.
func (c *Client) CompleteCart(ctx context.Context, cartID string) (*Order, error) {
	path := fmt.Sprintf("/store/carts/%s/complete", cartID)
	var envelope orderEnvelope
	if err := c.do(ctx, http.MethodPost, path, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data != nil && envelope.Data.ID != "" {
		return envelope.Data, nil
	}
	return &envelope.Order, nil
}

// SetOrderMetadata merges metadata onto an existing order. Used for the
// optional payment intent linkage after completion.
func (c *Client) SetOrderMetadata(ctx context.Context, orderID string, metadata map[string]any) error {
	path := fmt.Sprintf("/store/orders/%s", orderID)
	body := map[string]any{"metadata": metadata}
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.publishableKey != "" {
		req.Header.Set(publishableKeyHeader, c.publishableKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.apiError(resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) apiError(status int, payload []byte) error {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}
	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil {
		if envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		apiErr.Code = envelope.Code
	}
	return apiErr
}
