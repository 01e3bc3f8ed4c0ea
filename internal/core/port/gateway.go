package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/valdes557/digitalmarket/internal/core/domain"
)

type GatewayStatus string

const (
	GatewayStatusAccepted GatewayStatus = "ACCEPTED"
	GatewayStatusRefused  GatewayStatus = "REFUSED"
	GatewayStatusPending  GatewayStatus = "PENDING"
)

type InitiatePayment struct {
	OrderNumber   string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	Method        domain.PaymentMethod
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type InitiateResult struct {
	PaymentURL   string
	PaymentToken string
}

type VerifyResult struct {
	TransactionID string
	Status        GatewayStatus
	Method        string
}

// PaymentGateway abstracts the external payment provider. Verify is
// re-playable: the settlement engine treats it and the webhook payload as
// equally authoritative.
//
//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	Initiate(ctx context.Context, req *InitiatePayment) (*InitiateResult, error)
	Verify(ctx context.Context, transactionID string) (*VerifyResult, error)
	SiteID() string
}
