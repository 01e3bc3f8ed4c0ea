package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Checkout errors.
	ErrEmptyCart            = errors.New("no products selected")
	ErrProductUnavailable   = errors.New("some products are not available")
	ErrProductAlreadyOwned  = errors.New("product already purchased by user")
	ErrPaymentInitFailed    = errors.New("payment gateway rejected initialization")
	ErrGatewayUnavailable   = errors.New("payment gateway is unreachable")
	ErrUnknownPaymentMethod = errors.New("payment method is not supported")

	// * Settlement errors.
	ErrOrderAlreadySettled = errors.New("order settlement already applied")
	ErrLedgerInvariant     = errors.New("ledger invariant violation")

	// * Entitlement errors.
	ErrPaymentNotCompleted    = errors.New("payment is not confirmed")
	ErrQuotaExhausted         = errors.New("download limit reached")
	ErrInvalidDownloadToken   = errors.New("download link is invalid or expired")
	ErrFileNotFound           = errors.New("no file available for product")
	ErrStorageUnavailable     = errors.New("storage provider is unreachable")
	ErrDownloadRateLimited    = errors.New("too many download attempts")
	ErrFileNotOwnedByPurchase = errors.New("file does not belong to purchased product")

	// * Withdrawal errors.
	ErrInsufficientBalance  = errors.New("available balance is not enough")
	ErrBelowMinWithdrawal   = errors.New("amount is below the minimum withdrawal")
	ErrIncompleteWithdrawal = errors.New("payout destination details are incomplete")
	ErrWithdrawalProcessed  = errors.New("withdrawal request already processed")
	ErrUnknownPayoutMethod  = errors.New("payout method is not supported")
)
