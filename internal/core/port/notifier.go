package port

import (
	"context"

	"github.com/valdes557/digitalmarket/internal/core/domain"
)

// Notifier publishes outbound notifications. Calls are fire-and-forget:
// implementations log failures and never propagate them, so settlement and
// withdrawal transactions cannot be blocked by the broker.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	OrderConfirmed(ctx context.Context, order *domain.Order)
	SaleRecorded(ctx context.Context, order *domain.Order, item *domain.OrderItem)
	WithdrawalProcessed(ctx context.Context, withdrawal *domain.Withdrawal)
}
