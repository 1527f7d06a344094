package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
)

// OrderConfirmationRequest is the body accepted by the mail gateway.
type OrderConfirmationRequest struct {
	OrderID string `json:"orderId"`
}

// Error is the gateway's error body.
type Error struct {
	Message *string `json:"message,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// Client talks to the mail gateway that renders and sends customer emails.
type Client struct {
	server     *url.URL
	httpClient *http.Client
}

// NewClient instantiates the gateway client with sane defaults.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("mail gateway base URL is required")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	server, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mail gateway URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{server: server, httpClient: httpClient}, nil
}

// SendOrderConfirmation asks the gateway to email an order confirmation.
func (c *Client) SendOrderConfirmation(ctx context.Context, customerID int64, body OrderConfirmationRequest) error {
	if c == nil || c.server == nil {
		return errors.New("mail gateway client not configured")
	}
	if strings.TrimSpace(body.OrderID) == "" {
		return errors.New("order id is required")
	}
	req, err := c.newSendOrderConfirmationRequest(ctx, customerID, body)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call mail gateway: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("mail gateway error: %s", errorMessage(resp))
	default:
		return fmt.Errorf("mail gateway unexpected status: %s", resp.Status)
	}
}

func (c *Client) newSendOrderConfirmationRequest(ctx context.Context, customerID int64, body OrderConfirmationRequest) (*http.Request, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, "customerId", runtime.ParamLocationPath, customerID)
	if err != nil {
		return nil, err
	}
	operationPath := fmt.Sprintf("v1/customers/%s/order-confirmations", pathParam)
	queryURL, err := c.server.Parse(operationPath)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, queryURL.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func errorMessage(resp *http.Response) string {
	var body Error
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.Status
	}
	if body.Message != nil {
		if msg := strings.TrimSpace(*body.Message); msg != "" {
			return msg
		}
	}
	if body.Status != nil {
		if msg := strings.TrimSpace(*body.Status); msg != "" {
			return msg
		}
	}
	return resp.Status
}
