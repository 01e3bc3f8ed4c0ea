package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalStatusRequested WithdrawalStatus = "requested"
	WithdrawalStatusReserved  WithdrawalStatus = "reserved"
	WithdrawalStatusPaid      WithdrawalStatus = "paid"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

type PayoutMethod string

const (
	PayoutMethodMobileMoney  PayoutMethod = "mobile_money"
	PayoutMethodBankTransfer PayoutMethod = "bank_transfer"
)

// WithdrawalOutcome is the terminal resolution of a reserved withdrawal.
type WithdrawalOutcome string

const (
	WithdrawalOutcomePaid     WithdrawalOutcome = "paid"
	WithdrawalOutcomeRejected WithdrawalOutcome = "rejected"
)

// PayoutDestination holds method-specific payout details. Which fields are
// required depends on the payout method.
type PayoutDestination struct {
	MobileNetwork string
	PhoneNumber   string
	BankName      string
	BankAccount   string
	BankIBAN      string
}

// Validate checks the destination fields required by the given method.
func (d PayoutDestination) Validate(method PayoutMethod) error {
	switch method {
	case PayoutMethodMobileMoney:
		if d.MobileNetwork == "" || d.PhoneNumber == "" {
			return ErrIncompleteWithdrawal
		}
	case PayoutMethodBankTransfer:
		if d.BankName == "" || d.BankAccount == "" {
			return ErrIncompleteWithdrawal
		}
	default:
		return ErrUnknownPayoutMethod
	}
	return nil
}

// Withdrawal is one vendor payout request. A persisted request is always
// reserved: validation and commission reservation happen in the same
// transaction at request time.
type Withdrawal struct {
	ID              uint64
	VendorID        uint64
	Amount          decimal.Decimal
	Method          PayoutMethod
	Destination     PayoutDestination
	Status          WithdrawalStatus
	RejectionReason string
	Reference       string
	Notes           string
	ProcessedBy     *uint64
	ProcessedAt     *time.Time
	CreatedAt       time.Time
}
