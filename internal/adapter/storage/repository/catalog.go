package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	"github.com/valdes557/digitalmarket/internal/core/domain"
)

func (r *Repository) ListPublishedProducts(ctx context.Context, productIDs []uint64) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("id", "vendor_id", "name", "price", "sale_price", "status", "sales_count", "download_count").
		From("products").
		Where(sq.Eq{"id": productIDs, "status": domain.ProductStatusPublished})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Product, 0, len(productIDs))
	for rows.Next() {
		product := domain.Product{}
		salePrice := decimal.NullDecimal{}
		err := rows.Scan(
			&product.ID,
			&product.VendorID,
			&product.Name,
			&product.Price,
			&salePrice,
			&product.Status,
			&product.SalesCount,
			&product.DownloadCount,
		)
		if err != nil {
			return nil, err
		}
		if salePrice.Valid {
			d := salePrice.Decimal
			product.SalePrice = &d
		}
		list = append(list, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) GetProductFile(ctx context.Context, fileID uint64, productID uint64) (*domain.ProductFile, error) {
	return r.getProductFile(ctx, sq.Eq{"id": fileID, "product_id": productID}, "")
}

// GetMainProductFile selects the product's designated file: main flag first,
// then explicit sort order.
func (r *Repository) GetMainProductFile(ctx context.Context, productID uint64) (*domain.ProductFile, error) {
	return r.getProductFile(ctx, sq.Eq{"product_id": productID}, "is_main DESC, sort_order ASC")
}

func (r *Repository) getProductFile(ctx context.Context, where sq.Eq, orderBy string) (*domain.ProductFile, error) {
	statement := r.db.QueryBuilder.
		Select("id", "product_id", "file_name", "object_key", "file_path", "file_size", "is_main", "sort_order", "created_at").
		From("product_files").
		Where(where).
		Limit(1)
	if orderBy != "" {
		statement = statement.OrderBy(orderBy)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	file := domain.ProductFile{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&file.ID,
		&file.ProductID,
		&file.FileName,
		&file.ObjectKey,
		&file.FilePath,
		&file.FileSize,
		&file.IsMain,
		&file.SortOrder,
		&file.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &file, nil
}
