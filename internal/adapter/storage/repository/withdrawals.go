package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	"github.com/valdes557/digitalmarket/internal/core/domain"
)

var withdrawalColumns = []string{
	"id", "vendor_id", "amount", "payment_method", "mobile_network", "phone_number",
	"bank_name", "bank_account", "bank_iban", "status", "rejection_reason",
	"reference", "notes", "processed_by", "processed_at", "created_at",
}

func scanWithdrawal(row pgx.Row, w *domain.Withdrawal) error {
	return row.Scan(
		&w.ID,
		&w.VendorID,
		&w.Amount,
		&w.Method,
		&w.Destination.MobileNetwork,
		&w.Destination.PhoneNumber,
		&w.Destination.BankName,
		&w.Destination.BankAccount,
		&w.Destination.BankIBAN,
		&w.Status,
		&w.RejectionReason,
		&w.Reference,
		&w.Notes,
		&w.ProcessedBy,
		&w.ProcessedAt,
		&w.CreatedAt,
	)
}

// VendorBalance aggregates the vendor's commission ledger in one pass.
func (r *Repository) VendorBalance(ctx context.Context, vendorID uint64) (*domain.VendorBalance, error) {
	statement := r.db.QueryBuilder.
		Select(
			"COALESCE(SUM(vendor_amount) FILTER (WHERE status = 'available'), 0)",
			"COALESCE(SUM(vendor_amount) FILTER (WHERE status = 'reserved'), 0)",
			"COALESCE(SUM(vendor_amount), 0)",
			"COALESCE(SUM(vendor_amount) FILTER (WHERE status = 'paid'), 0)",
		).
		From("commissions").
		Where(sq.Eq{"vendor_id": vendorID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	balance := domain.VendorBalance{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&balance.Available,
		&balance.Reserved,
		&balance.TotalEarned,
		&balance.TotalWithdrawn,
	)
	if err != nil {
		return nil, err
	}

	return &balance, nil
}

// commissionLine is one available ledger row as seen by the reservation
// sweep, in the order the sweep visits them.
type commissionLine struct {
	ID     uint64
	Amount decimal.Decimal
}

// planReservation walks the lines in order and picks rows until the
// requested amount is covered. Rows are never split, so the reserved total
// can exceed the request by part of the last row picked; the withdrawal
// stores the reserved total, not the request.
func planReservation(lines []commissionLine, requested decimal.Decimal) ([]uint64, decimal.Decimal, error) {
	ids := make([]uint64, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		sum, err := total.Add(line.Amount)
		if err != nil {
			return nil, decimal.Zero, err
		}
		total = sum
		ids = append(ids, line.ID)
		if total.Cmp(requested) >= 0 {
			return ids, total, nil
		}
	}
	return nil, decimal.Zero, domain.ErrInsufficientBalance
}

// ReserveWithdrawal creates the payout request and sweeps available
// commission rows, oldest first, until the requested amount is covered.
// All of it happens in one transaction: a persisted withdrawal is always
// backed by its reserved rows. The stored amount is the reserved total.
func (r *Repository) ReserveWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		selectSt := r.db.QueryBuilder.
			Select("id", "vendor_amount").
			From("commissions").
			Where(sq.Eq{"vendor_id": withdrawal.VendorID, "status": domain.CommissionStatusAvailable}).
			OrderBy("available_at ASC", "id ASC").
			Suffix("FOR UPDATE")

		sql, args, err := selectSt.ToSql()
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return err
		}

		lines := make([]commissionLine, 0)
		for rows.Next() {
			line := commissionLine{}
			if err := rows.Scan(&line.ID, &line.Amount); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, line)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		reservedIDs, reservedTotal, err := planReservation(lines, withdrawal.Amount)
		if err != nil {
			return err
		}

		withdrawal.Amount = reservedTotal
		withdrawal.Status = domain.WithdrawalStatusReserved

		insertSt := r.db.QueryBuilder.
			Insert("withdrawals").
			Columns("vendor_id", "amount", "payment_method", "mobile_network", "phone_number",
				"bank_name", "bank_account", "bank_iban", "status", "notes").
			Values(withdrawal.VendorID, withdrawal.Amount, withdrawal.Method,
				withdrawal.Destination.MobileNetwork, withdrawal.Destination.PhoneNumber,
				withdrawal.Destination.BankName, withdrawal.Destination.BankAccount,
				withdrawal.Destination.BankIBAN, withdrawal.Status, withdrawal.Notes).
			Suffix("RETURNING id, created_at")

		sql, args, err = insertSt.ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&withdrawal.ID, &withdrawal.CreatedAt); err != nil {
			return err
		}

		updateSt := r.db.QueryBuilder.
			Update("commissions").
			Set("status", domain.CommissionStatusReserved).
			Set("withdrawal_id", withdrawal.ID).
			Set("reserved_at", time.Now()).
			Where(sq.Eq{"id": reservedIDs, "status": domain.CommissionStatusAvailable})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != int64(len(reservedIDs)) {
			// a row changed state under the lock, should not happen
			return domain.ErrLedgerInvariant
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return withdrawal, nil
}

// ResolveWithdrawal is only valid from reserved. Outcome paid moves the
// reserved rows to paid; rejected releases them back to available.
func (r *Repository) ResolveWithdrawal(ctx context.Context, withdrawalID uint64,
	outcome domain.WithdrawalOutcome, reference string, reason string, processedBy uint64) (*domain.Withdrawal, error) {
	var resolved *domain.Withdrawal

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		status := domain.WithdrawalStatusPaid
		if outcome == domain.WithdrawalOutcomeRejected {
			status = domain.WithdrawalStatusRejected
		}

		updateSt := r.db.QueryBuilder.
			Update("withdrawals").
			Set("status", status).
			Set("reference", reference).
			Set("rejection_reason", reason).
			Set("processed_by", processedBy).
			Set("processed_at", time.Now()).
			Where(sq.Eq{"id": withdrawalID, "status": domain.WithdrawalStatusReserved}).
			Suffix("RETURNING " + strings.Join(withdrawalColumns, ", "))

		sql, args, err := updateSt.ToSql()
		if err != nil {
			return err
		}

		w := domain.Withdrawal{}
		err = scanWithdrawal(tx.QueryRow(ctx, sql, args...), &w)
		if err != nil {
			if err == pgx.ErrNoRows {
				return r.classifyWithdrawalMiss(ctx, tx, withdrawalID)
			}
			return err
		}

		var commissionSt sq.UpdateBuilder
		if outcome == domain.WithdrawalOutcomePaid {
			commissionSt = r.db.QueryBuilder.
				Update("commissions").
				Set("status", domain.CommissionStatusPaid).
				Where(sq.Eq{"withdrawal_id": withdrawalID, "status": domain.CommissionStatusReserved})
		} else {
			commissionSt = r.db.QueryBuilder.
				Update("commissions").
				Set("status", domain.CommissionStatusAvailable).
				Set("withdrawal_id", nil).
				Set("reserved_at", nil).
				Where(sq.Eq{"withdrawal_id": withdrawalID, "status": domain.CommissionStatusReserved})
		}

		sql, args, err = commissionSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		resolved = &w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

func (r *Repository) classifyWithdrawalMiss(ctx context.Context, tx pgx.Tx, withdrawalID uint64) error {
	statement := r.db.QueryBuilder.
		Select("status").
		From("withdrawals").
		Where(sq.Eq{"id": withdrawalID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	var status domain.WithdrawalStatus
	err = tx.QueryRow(ctx, sql, args...).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrDataNotFound
		}
		return err
	}
	return domain.ErrWithdrawalProcessed
}

func (r *Repository) ListWithdrawalsByVendor(ctx context.Context, vendorID uint64) ([]*domain.Withdrawal, error) {
	return r.listWithdrawals(ctx, sq.Eq{"vendor_id": vendorID})
}

func (r *Repository) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]*domain.Withdrawal, error) {
	where := sq.Eq{}
	if status != "" {
		where["status"] = status
	}
	return r.listWithdrawals(ctx, where)
}

func (r *Repository) listWithdrawals(ctx context.Context, where sq.Eq) ([]*domain.Withdrawal, error) {
	statement := r.db.QueryBuilder.
		Select(withdrawalColumns...).
		From("withdrawals").
		OrderBy("created_at DESC")
	if len(where) > 0 {
		statement = statement.Where(where)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Withdrawal, 0)
	for rows.Next() {
		w := domain.Withdrawal{}
		if err := scanWithdrawal(rows, &w); err != nil {
			return nil, err
		}
		list = append(list, &w)
	}

	return list, rows.Err()
}
