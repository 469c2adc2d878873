// Package paymentgw is an HTTP client for the external payment processor.
// It implements the PaymentGateway port against the processor's JSON API.
//
// A declined charge or refund is a successful HTTP exchange whose body says
// success=false; only transport failures and non-2xx responses are errors.
package paymentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client calls the payment processor's HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a payment gateway client for the given endpoint.
// The API key is sent with every request in the X-Api-Key header.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type chargeRequest struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	CardToken string `json:"card_token"`
}

type refundRequest struct {
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
}

type paymentResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

type verifyResponse struct {
	Confirmed bool `json:"confirmed"`
}

// Charge captures a payment for the given amount.
func (c *Client) Charge(
	ctx context.Context, amount kernel.Money, currency, cardToken string,
) (ports.PaymentResult, error) {
	payload := chargeRequest{
		Amount:    amount.String(),
		Currency:  currency,
		CardToken: cardToken,
	}

	var resp paymentResponse
	if err := c.post(ctx, "/charges", payload, &resp); err != nil {
		return ports.PaymentResult{}, err
	}

	return ports.PaymentResult{
		Success:       resp.Success,
		TransactionID: resp.TransactionID,
		Message:       resp.Message,
	}, nil
}

// Refund returns a previously captured payment.
func (c *Client) Refund(
	ctx context.Context, transactionID string, amount kernel.Money,
) (ports.PaymentResult, error) {
	payload := refundRequest{
		TransactionID: transactionID,
		Amount:        amount.String(),
	}

	var resp paymentResponse
	if err := c.post(ctx, "/refunds", payload, &resp); err != nil {
		return ports.PaymentResult{}, err
	}

	return ports.PaymentResult{
		Success:       resp.Success,
		TransactionID: resp.TransactionID,
		Message:       resp.Message,
	}, nil
}

// Verify reports whether the given transaction is confirmed on the gateway side.
func (c *Client) Verify(ctx context.Context, transactionID string) (bool, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/charges/"+transactionID, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	var resp verifyResponse
	if err = c.do(req, &resp); err != nil {
		return false, err
	}

	return resp.Confirmed, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
