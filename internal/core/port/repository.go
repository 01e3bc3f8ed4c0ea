package port

import (
	"context"

	"github.com/valdes557/digitalmarket/internal/core/domain"
)

// SettleFn computes the settlement side effects for an order while the
// repository holds the order row. The closure mutates items in place
// (auto-issued download tokens) and returns the commission rows to insert.
// Returning an error aborts the whole settlement transaction.
type SettleFn func(order *domain.Order, items []*domain.OrderItem) ([]*domain.Commission, error)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	GetVendorByUserID(ctx context.Context, userID uint64) (*domain.Vendor, error)

	// Catalog
	ListPublishedProducts(ctx context.Context, productIDs []uint64) ([]*domain.Product, error)
	GetProductFile(ctx context.Context, fileID uint64, productID uint64) (*domain.ProductFile, error)
	GetMainProductFile(ctx context.Context, productID uint64) (*domain.ProductFile, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, number string) (*domain.Order, error)
	ReadOrderByID(ctx context.Context, orderID uint64) (*domain.Order, error)
	ReadOrderItem(ctx context.Context, itemID uint64) (*domain.OrderItem, error)
	SetPaymentReference(ctx context.Context, orderID uint64, reference string) error
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListPurchasedProductIDs(ctx context.Context, userID uint64, productIDs []uint64) ([]uint64, error)

	// Settlement. SettleOrder applies the status transition, item token
	// columns, commission inserts and sales counters in one transaction,
	// or returns ErrOrderAlreadySettled without calling fn.
	SettleOrder(ctx context.Context, number string, transactionID string, fn SettleFn) (*domain.Order, error)
	FailOrder(ctx context.Context, number string) error

	// Entitlement. RedeemDownload increments the download counter only while
	// download_count < max_downloads and appends the audit row atomically.
	RedeemDownload(ctx context.Context, itemID uint64, log *domain.DownloadLog) (*domain.OrderItem, error)
	ListDownloadsByUser(ctx context.Context, userID uint64, limit int) ([]*domain.DownloadLog, error)

	// Commission ledger / withdrawals
	VendorBalance(ctx context.Context, vendorID uint64) (*domain.VendorBalance, error)
	ReserveWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	ResolveWithdrawal(ctx context.Context, withdrawalID uint64,
		outcome domain.WithdrawalOutcome, reference string, reason string, processedBy uint64) (*domain.Withdrawal, error)
	ListWithdrawalsByVendor(ctx context.Context, vendorID uint64) ([]*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]*domain.Withdrawal, error)
}
