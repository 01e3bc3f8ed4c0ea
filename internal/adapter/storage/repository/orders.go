package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/valdes557/digitalmarket/internal/core/domain"
)

var orderColumns = []string{
	"id", "order_number", "user_id", "total_amount", "commission_amount", "vendor_amount",
	"payment_method", "payment_status", "status", "payment_reference", "transaction_id",
	"currency", "customer_email", "customer_phone", "created_at",
}

var orderItemColumns = []string{
	"id", "order_id", "product_id", "vendor_id", "product_name", "price",
	"commission_amount", "vendor_amount", "download_count", "max_downloads",
	"download_token", "download_expires", "created_at",
}

func scanOrder(row pgx.Row, order *domain.Order) error {
	return row.Scan(
		&order.ID,
		&order.Number,
		&order.UserID,
		&order.TotalAmount,
		&order.CommissionAmount,
		&order.VendorAmount,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.Status,
		&order.PaymentReference,
		&order.TransactionID,
		&order.Currency,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.CreatedAt,
	)
}

func scanOrderItem(row pgx.Row, item *domain.OrderItem) error {
	return row.Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.VendorID,
		&item.ProductName,
		&item.Price,
		&item.CommissionAmount,
		&item.VendorAmount,
		&item.DownloadCount,
		&item.MaxDownloads,
		&item.DownloadToken,
		&item.DownloadExpires,
		&item.CreatedAt,
	)
}

// CreateOrder inserts the order together with its lines in one transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("order_number", "user_id", "total_amount", "commission_amount", "vendor_amount",
				"payment_method", "payment_status", "status", "currency", "customer_email", "customer_phone").
			Values(order.Number, order.UserID, order.TotalAmount, order.CommissionAmount, order.VendorAmount,
				order.PaymentMethod, order.PaymentStatus, order.Status, order.Currency,
				order.CustomerEmail, order.CustomerPhone).
			Suffix("RETURNING id, created_at")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			item.OrderID = order.ID

			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "product_id", "vendor_id", "product_name", "price",
					"commission_amount", "vendor_amount", "max_downloads").
				Values(item.OrderID, item.ProductID, item.VendorID, item.ProductName, item.Price,
					item.CommissionAmount, item.VendorAmount, item.MaxDownloads).
				Suffix("RETURNING id, created_at")

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			err = tx.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.CreatedAt)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, number string) (*domain.Order, error) {
	return r.readOrder(ctx, sq.Eq{"order_number": number})
}

func (r *Repository) ReadOrderByID(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrder(ctx, sq.Eq{"id": orderID})
}

func (r *Repository) readOrder(ctx context.Context, where sq.Eq) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	err = scanOrder(r.db.QueryRow(ctx, sql, args...), &order)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.Items, err = r.listOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) listOrderItems(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		if err := scanOrderItem(rows, &item); err != nil {
			return nil, err
		}
		list = append(list, &item)
	}

	return list, rows.Err()
}

func (r *Repository) ReadOrderItem(ctx context.Context, itemID uint64) (*domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"id": itemID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	item := domain.OrderItem{}
	err = scanOrderItem(r.db.QueryRow(ctx, sql, args...), &item)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &item, nil
}

// SetPaymentReference stores the gateway token and moves a freshly created
// order to processing.
func (r *Repository) SetPaymentReference(ctx context.Context, orderID uint64, reference string) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("payment_reference", reference).
		Set("status", domain.OrderStatusProcessing).
		Set("payment_status", domain.PaymentStatusProcessing).
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		if err := scanOrder(rows, &order); err != nil {
			return nil, err
		}
		list = append(list, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Items, err = r.listOrderItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}

// ListPurchasedProductIDs returns which of the given products the user
// already bought through a completed order.
func (r *Repository) ListPurchasedProductIDs(ctx context.Context, userID uint64, productIDs []uint64) ([]uint64, error) {
	statement := r.db.QueryBuilder.
		Select("DISTINCT oi.product_id").
		From("order_items oi").
		Join("orders o ON o.id = oi.order_id").
		Where(sq.Eq{
			"o.user_id":        userID,
			"o.payment_status": domain.PaymentStatusCompleted,
			"oi.product_id":    productIDs,
		})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	owned := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		owned = append(owned, id)
	}

	return owned, rows.Err()
}
