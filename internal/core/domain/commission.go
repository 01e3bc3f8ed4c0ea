package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type CommissionStatus string

const (
	CommissionStatusAvailable CommissionStatus = "available"
	CommissionStatusReserved  CommissionStatus = "reserved"
	CommissionStatusPaid      CommissionStatus = "paid"
	CommissionStatusVoided    CommissionStatus = "voided"
)

// Commission is one vendor's earned amount for one settled order item.
// Rows are created exactly once per settlement and are never deleted,
// only moved through available -> reserved -> paid (or back to available).
type Commission struct {
	ID               uint64
	OrderID          uint64
	OrderItemID      uint64
	VendorID         uint64
	TotalAmount      decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	VendorAmount     decimal.Decimal
	Status           CommissionStatus
	WithdrawalID     *uint64
	AvailableAt      time.Time
	ReservedAt       *time.Time
}

// VendorBalance aggregates a vendor's commission ledger by status.
type VendorBalance struct {
	Available      decimal.Decimal
	Reserved       decimal.Decimal
	TotalEarned    decimal.Decimal
	TotalWithdrawn decimal.Decimal
}
