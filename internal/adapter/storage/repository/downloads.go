package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/valdes557/digitalmarket/internal/core/domain"
)

// RedeemDownload consumes one download attempt. The conditional increment
// serializes concurrent redemptions: whoever loses the race gets
// ErrQuotaExhausted and no audit row is written.
func (r *Repository) RedeemDownload(ctx context.Context, itemID uint64, log *domain.DownloadLog) (*domain.OrderItem, error) {
	var item *domain.OrderItem

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		updateSt := r.db.QueryBuilder.
			Update("order_items").
			Set("download_count", sq.Expr("download_count + 1")).
			Where(sq.Eq{"id": itemID}).
			Where(sq.Expr("download_count < max_downloads")).
			Suffix("RETURNING " + strings.Join(orderItemColumns, ", "))

		sql, args, err := updateSt.ToSql()
		if err != nil {
			return err
		}

		updated := domain.OrderItem{}
		err = scanOrderItem(tx.QueryRow(ctx, sql, args...), &updated)
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrQuotaExhausted
			}
			return err
		}

		logSt := r.db.QueryBuilder.
			Insert("download_logs").
			Columns("order_item_id", "user_id", "product_id", "ip_address", "user_agent").
			Values(log.OrderItemID, log.UserID, log.ProductID, log.IPAddress, log.UserAgent).
			Suffix("RETURNING id, downloaded_at")

		sql, args, err = logSt.ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&log.ID, &log.DownloadedAt); err != nil {
			return err
		}

		productSt := r.db.QueryBuilder.
			Update("products").
			Set("download_count", sq.Expr("download_count + 1")).
			Where(sq.Eq{"id": updated.ProductID})

		sql, args, err = productSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		item = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *Repository) ListDownloadsByUser(ctx context.Context, userID uint64, limit int) ([]*domain.DownloadLog, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_item_id", "user_id", "product_id", "ip_address", "user_agent", "downloaded_at").
		From("download_logs").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("downloaded_at DESC").
		Limit(uint64(limit))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.DownloadLog, 0)
	for rows.Next() {
		log := domain.DownloadLog{}
		err := rows.Scan(
			&log.ID,
			&log.OrderItemID,
			&log.UserID,
			&log.ProductID,
			&log.IPAddress,
			&log.UserAgent,
			&log.DownloadedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &log)
	}

	return list, rows.Err()
}
