package domain

import "time"

// DownloadLog is the immutable audit record of one successful redemption.
type DownloadLog struct {
	ID           uint64
	OrderItemID  uint64
	UserID       uint64
	ProductID    uint64
	IPAddress    string
	UserAgent    string
	DownloadedAt time.Time
}

// DownloadGrant is returned by the entitlement ledger when a link is issued.
type DownloadGrant struct {
	URL                string
	FileName           string
	ExpiresIn          int
	DownloadsRemaining int32
}

// DownloadClaims is the identity triple embedded in a capability token.
// The token proves who asked; quota and ownership are re-checked on redemption.
type DownloadClaims struct {
	OrderItemID uint64    `json:"order_item_id"`
	ProductID   uint64    `json:"product_id"`
	UserID      uint64    `json:"user_id"`
	IssuedAt    time.Time `json:"issued_at"`
}
