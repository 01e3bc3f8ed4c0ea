package service

import (
	"context"
	"errors"

	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

func (s *Service) GetVendorBalance(ctx context.Context, userID uint64) (*domain.VendorBalance, error) {
	vendor, err := s.repo.GetVendorByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := s.repo.VendorBalance(ctx, vendor.ID)
	if err != nil {
		s.logger.Error("Vendor balance", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return balance, nil
}

// RequestWithdrawal validates a payout request and reserves commissions for
// it in one transaction. Reservation covers the requested amount with the
// oldest available commissions; the stored amount is the reserved total, so
// it may exceed the request by at most one commission line.
func (s *Service) RequestWithdrawal(ctx context.Context, userID uint64, req *port.WithdrawalRequest) (*domain.Withdrawal, error) {
	vendor, err := s.repo.GetVendorByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount.Cmp(s.conf.MinWithdrawal) < 0 {
		return nil, domain.ErrBelowMinWithdrawal
	}
	if err := req.Destination.Validate(req.Method); err != nil {
		return nil, err
	}

	balance, err := s.repo.VendorBalance(ctx, vendor.ID)
	if err != nil {
		s.logger.Error("Vendor balance", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if balance.Available.Cmp(req.Amount) < 0 {
		return nil, domain.ErrInsufficientBalance
	}

	withdrawal, err := s.repo.ReserveWithdrawal(ctx, &domain.Withdrawal{
		VendorID:    vendor.ID,
		Amount:      req.Amount,
		Method:      req.Method,
		Destination: req.Destination,
		Status:      domain.WithdrawalStatusReserved,
		Notes:       req.Notes,
	})
	if err != nil {
		// the balance check above is advisory, reservation is the arbiter
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return nil, err
		}
		s.logger.Error("Reserve withdrawal", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.logger.Info("withdrawal reserved",
		zap.Uint64("withdrawal", withdrawal.ID),
		zap.Uint64("vendor", vendor.ID))

	return withdrawal, nil
}

func (s *Service) GetWithdrawalsByVendor(ctx context.Context, userID uint64) ([]*domain.Withdrawal, error) {
	vendor, err := s.repo.GetVendorByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListWithdrawalsByVendor(ctx, vendor.ID)
	if err != nil {
		s.logger.Error("List withdrawals", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]*domain.Withdrawal, error) {
	list, err := s.repo.ListWithdrawals(ctx, status)
	if err != nil {
		s.logger.Error("List withdrawals", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

// ProcessWithdrawal resolves a reserved withdrawal. Paid moves the reserved
// commissions to paid; rejected releases them back to available. Either way
// the withdrawal leaves the reserved state exactly once.
func (s *Service) ProcessWithdrawal(ctx context.Context, adminID uint64, withdrawalID uint64,
	outcome domain.WithdrawalOutcome, referenceOrReason string) (*domain.Withdrawal, error) {
	var reference, reason string
	switch outcome {
	case domain.WithdrawalOutcomePaid:
		reference = referenceOrReason
	case domain.WithdrawalOutcomeRejected:
		reason = referenceOrReason
	default:
		return nil, domain.ErrBadRequest
	}

	withdrawal, err := s.repo.ResolveWithdrawal(ctx, withdrawalID, outcome, reference, reason, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) || errors.Is(err, domain.ErrWithdrawalProcessed) {
			return nil, err
		}
		s.logger.Error("Resolve withdrawal", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.notifier.WithdrawalProcessed(ctx, withdrawal)

	s.logger.Info("withdrawal resolved",
		zap.Uint64("withdrawal", withdrawal.ID),
		zap.String("outcome", string(outcome)))

	return withdrawal, nil
}
