package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/valdes557/digitalmarket/internal/core/domain"
)

type CheckoutItem struct {
	ProductID uint64
}

type CheckoutRequest struct {
	Items         []CheckoutItem
	PaymentMethod domain.PaymentMethod
	Phone         string
}

type CheckoutResult struct {
	OrderNumber  string
	PaymentURL   string
	PaymentToken string
}

// PaymentState is what the verify and poll endpoints report back.
// GatewayMethod is the provider's channel code (OM, MOMO, VISA and so on),
// known only once the gateway has seen the transaction.
type PaymentState struct {
	OrderNumber   string
	GatewayStatus GatewayStatus
	GatewayMethod string
	PaymentStatus domain.PaymentStatus
	OrderStatus   domain.OrderStatus
	TotalAmount   decimal.Decimal
}

type DownloadMeta struct {
	IPAddress string
	UserAgent string
}

type WithdrawalRequest struct {
	Amount      decimal.Decimal
	Method      domain.PayoutMethod
	Destination domain.PayoutDestination
	Notes       string
}

type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)

	Checkout(ctx context.Context, user *domain.User, req *CheckoutRequest) (*CheckoutResult, error)
	HandlePaymentWebhook(ctx context.Context, transactionID string, siteID string) error
	VerifyPayment(ctx context.Context, transactionID string) (*PaymentState, error)
	PaymentStatus(ctx context.Context, userID uint64, orderNumber string) (*PaymentState, error)
	GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)

	GenerateDownloadLink(ctx context.Context, userID uint64, orderItemID uint64, fileID *uint64) (*domain.DownloadGrant, error)
	RedeemDownload(ctx context.Context, token string, fileID *uint64, meta DownloadMeta) (string, error)
	GetDownloadHistory(ctx context.Context, userID uint64) ([]*domain.DownloadLog, error)

	GetVendorBalance(ctx context.Context, userID uint64) (*domain.VendorBalance, error)
	RequestWithdrawal(ctx context.Context, userID uint64, req *WithdrawalRequest) (*domain.Withdrawal, error)
	GetWithdrawalsByVendor(ctx context.Context, userID uint64) ([]*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]*domain.Withdrawal, error)
	ProcessWithdrawal(ctx context.Context, adminID uint64, withdrawalID uint64,
		outcome domain.WithdrawalOutcome, referenceOrReason string) (*domain.Withdrawal, error)
}
