package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
)

// SettleOrder applies settlement exactly once. The order row is locked for
// the duration of the transaction and the status transition is additionally
// guarded by its pre-state, so two concurrent triggers cannot both apply.
func (r *Repository) SettleOrder(ctx context.Context, number string, transactionID string, fn port.SettleFn) (*domain.Order, error) {
	var settled *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		selectSt := r.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"order_number": number}).
			Suffix("FOR UPDATE")

		sql, args, err := selectSt.ToSql()
		if err != nil {
			return err
		}

		order := domain.Order{}
		err = scanOrder(tx.QueryRow(ctx, sql, args...), &order)
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrDataNotFound
			}
			return err
		}

		if order.Settled() {
			return domain.ErrOrderAlreadySettled
		}

		items, err := r.listOrderItemsTx(ctx, tx, order.ID)
		if err != nil {
			return err
		}

		commissions, err := fn(&order, items)
		if err != nil {
			return err
		}

		updateSt := r.db.QueryBuilder.
			Update("orders").
			Set("payment_status", domain.PaymentStatusCompleted).
			Set("status", domain.OrderStatusCompleted).
			Set("transaction_id", transactionID).
			Where(sq.Eq{"id": order.ID}).
			Where(sq.NotEq{"payment_status": domain.PaymentStatusCompleted})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrOrderAlreadySettled
		}

		for _, item := range items {
			itemSt := r.db.QueryBuilder.
				Update("order_items").
				Set("download_token", item.DownloadToken).
				Set("download_expires", item.DownloadExpires).
				Where(sq.Eq{"id": item.ID})

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}

			productSt := r.db.QueryBuilder.
				Update("products").
				Set("sales_count", sq.Expr("sales_count + 1")).
				Where(sq.Eq{"id": item.ProductID})

			sql, args, err = productSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}

			vendorSt := r.db.QueryBuilder.
				Update("vendors").
				Set("total_sales", sq.Expr("total_sales + ?", item.VendorAmount)).
				Where(sq.Eq{"id": item.VendorID})

			sql, args, err = vendorSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		for _, commission := range commissions {
			commissionSt := r.db.QueryBuilder.
				Insert("commissions").
				Columns("order_id", "order_item_id", "vendor_id", "total_amount", "commission_rate",
					"commission_amount", "vendor_amount", "status", "available_at").
				Values(commission.OrderID, commission.OrderItemID, commission.VendorID,
					commission.TotalAmount, commission.CommissionRate,
					commission.CommissionAmount, commission.VendorAmount,
					commission.Status, commission.AvailableAt).
				Suffix("RETURNING id")

			sql, args, err := commissionSt.ToSql()
			if err != nil {
				return err
			}
			if err := tx.QueryRow(ctx, sql, args...).Scan(&commission.ID); err != nil {
				if isUniqueViolation(err) {
					// one commission row per order item
					return domain.ErrOrderAlreadySettled
				}
				return err
			}
		}

		order.PaymentStatus = domain.PaymentStatusCompleted
		order.Status = domain.OrderStatusCompleted
		order.TransactionID = transactionID
		order.Items = items
		settled = &order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return settled, nil
}

// FailOrder records an explicit payment failure. A no-op when settlement
// already went through or the failure was already recorded.
func (r *Repository) FailOrder(ctx context.Context, number string) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("payment_status", domain.PaymentStatusFailed).
		Set("status", domain.OrderStatusCancelled).
		Where(sq.Eq{"order_number": number}).
		Where(sq.NotEq{"payment_status": []domain.PaymentStatus{
			domain.PaymentStatusCompleted,
			domain.PaymentStatusFailed,
		}})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		_, err := r.ReadOrder(ctx, number)
		return err
	}
	return nil
}

func (r *Repository) listOrderItemsTx(ctx context.Context, tx pgx.Tx, orderID uint64) ([]*domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, sql, args...)
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
