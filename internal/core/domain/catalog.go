package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPublished ProductStatus = "published"
	ProductStatusArchived  ProductStatus = "archived"
)

// Product carries the slice of the catalog the settlement engine reads:
// pricing, publication status and the sales/download counters it increments.
type Product struct {
	ID            uint64
	VendorID      uint64
	Name          string
	Price         decimal.Decimal
	SalePrice     *decimal.Decimal
	Status        ProductStatus
	SalesCount    int64
	DownloadCount int64
}

// EffectivePrice is the sale price when one is set, the list price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// ProductFile is one downloadable artifact of a product. ObjectKey points at
// managed storage; FilePath is the static fallback when no object store is
// configured.
type ProductFile struct {
	ID        uint64
	ProductID uint64
	FileName  string
	ObjectKey string
	FilePath  string
	FileSize  int64
	IsMain    bool
	SortOrder int32
	CreatedAt time.Time
}

// Vendor is a selling account. TotalSales accumulates the vendor side of
// every settled line.
type Vendor struct {
	ID         uint64
	UserID     uint64
	StoreName  string
	TotalSales decimal.Decimal
}
