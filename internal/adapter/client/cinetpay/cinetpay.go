// Package cinetpay talks to the CinetPay checkout API. The settlement engine
// treats Verify responses and webhook payloads as equally authoritative and
// equally re-playable, so this client is stateless.
package cinetpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/valdes557/digitalmarket/internal/adapter/config"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

type Client struct {
	logger  *zap.Logger
	baseURL string
	apiKey  string
	siteID  string

	notifyURL string
	returnURL string
	cancelURL string
}

func NewClient(cfg *config.Gateway, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:    log,
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		siteID:    cfg.SiteID,
		notifyURL: cfg.NotifyURL,
		returnURL: cfg.ReturnURL,
		cancelURL: cfg.CancelURL,
	}, nil
}

func (c *Client) SiteID() string {
	return c.siteID
}

type initiateRequest struct {
	APIKey        string  `json:"apikey"`
	SiteID        string  `json:"site_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	NotifyURL     string  `json:"notify_url"`
	ReturnURL     string  `json:"return_url"`
	CancelURL     string  `json:"cancel_url"`
	Channels      string  `json:"channels"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone_number"`
}

type initiateResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		PaymentURL   string `json:"payment_url"`
		PaymentToken string `json:"payment_token"`
	} `json:"data"`
}

type verifyRequest struct {
	APIKey        string `json:"apikey"`
	SiteID        string `json:"site_id"`
	TransactionID string `json:"transaction_id"`
}

type verifyResponse struct {
	Code string `json:"code"`
	Data struct {
		Status        string `json:"status"`
		PaymentMethod string `json:"payment_method"`
	} `json:"data"`
}

func channelsFor(method domain.PaymentMethod) string {
	switch method {
	case domain.PaymentMethodCard:
		return "CREDIT_CARD"
	case domain.PaymentMethodMobileMoney:
		return "MOBILE_MONEY"
	default:
		return "ALL"
	}
}

func (c *Client) Initiate(ctx context.Context, req *port.InitiatePayment) (*port.InitiateResult, error) {
	amount, ok := req.Amount.Float64()
	if !ok {
		return nil, fmt.Errorf("amount %s is not representable", req.Amount)
	}

	body := initiateRequest{
		APIKey:        c.apiKey,
		SiteID:        c.siteID,
		TransactionID: req.OrderNumber,
		Amount:        amount,
		Currency:      req.Currency,
		Description:   req.Description,
		NotifyURL:     c.notifyURL,
		ReturnURL:     c.returnURL + "?order=" + req.OrderNumber,
		CancelURL:     c.cancelURL,
		Channels:      channelsFor(req.Method),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	}

	var result initiateResponse
	if err := c.post(ctx, "/v2/payment", body, &result); err != nil {
		return nil, err
	}

	if result.Code != "201" {
		c.logger.Warn("payment initialization refused",
			zap.String("order", req.OrderNumber),
			zap.String("code", result.Code),
			zap.String("message", result.Message))
		return nil, domain.ErrPaymentInitFailed
	}

	return &port.InitiateResult{
		PaymentURL:   result.Data.PaymentURL,
		PaymentToken: result.Data.PaymentToken,
	}, nil
}

func (c *Client) Verify(ctx context.Context, transactionID string) (*port.VerifyResult, error) {
	body := verifyRequest{
		APIKey:        c.apiKey,
		SiteID:        c.siteID,
		TransactionID: transactionID,
	}

	var result verifyResponse
	if err := c.post(ctx, "/v2/payment/check", body, &result); err != nil {
		return nil, err
	}

	status := port.GatewayStatus(result.Data.Status)
	switch status {
	case port.GatewayStatusAccepted, port.GatewayStatusRefused:
	default:
		status = port.GatewayStatusPending
	}

	return &port.VerifyResult{
		TransactionID: transactionID,
		Status:        status,
		Method:        result.Data.PaymentMethod,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding request: %w", err)
	}

	requestStr := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.logger.Error("gateway request failed", zap.String("path", path), zap.Error(err))
		return domain.ErrGatewayUnavailable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Error("unexpected status from gateway",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return domain.ErrGatewayUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	return nil
}
