package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCinetPay    PaymentMethod = "cinetpay"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
)

// Order is one checkout transaction. CommissionAmount plus VendorAmount
// always equals TotalAmount, and TotalAmount equals the sum of item prices.
type Order struct {
	ID               uint64
	Number           string
	UserID           uint64
	TotalAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	VendorAmount     decimal.Decimal
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	Status           OrderStatus
	PaymentReference string
	TransactionID    string
	Currency         string
	CustomerEmail    string
	CustomerPhone    string
	CreatedAt        time.Time
	Items            []*OrderItem
}

// OrderItem is one purchased product line. The commission/vendor split is
// fixed at checkout: commission = round(price * rate), vendor = price - commission.
type OrderItem struct {
	ID               uint64
	OrderID          uint64
	ProductID        uint64
	VendorID         uint64
	ProductName      string
	Price            decimal.Decimal
	CommissionAmount decimal.Decimal
	VendorAmount     decimal.Decimal
	DownloadCount    int32
	MaxDownloads     int32
	DownloadToken    string
	DownloadExpires  *time.Time
	CreatedAt        time.Time
}

// Settled reports whether settlement side effects were applied to the order.
func (o *Order) Settled() bool {
	return o.PaymentStatus == PaymentStatusCompleted
}

// DownloadsRemaining never goes below zero.
func (i *OrderItem) DownloadsRemaining() int32 {
	if r := i.MaxDownloads - i.DownloadCount; r > 0 {
		return r
	}
	return 0
}
