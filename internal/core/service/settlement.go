package service

import (
	"context"
	"errors"
	"time"

	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

// ApplySettlement converts a confirmed payment into its side effects exactly
// once: order transition, one commission row per line, auto-issued download
// tokens and sales counters. It is invoked from three independent triggers
// (webhook, verify call, status poll) and is safe to call redundantly:
// every call after the first returns ErrOrderAlreadySettled.
func (s *Service) ApplySettlement(ctx context.Context, orderNumber string, transactionID string) (*domain.Order, error) {
	now := time.Now()
	expires := now.Add(s.conf.LinkTTL)

	order, err := s.repo.SettleOrder(ctx, orderNumber, transactionID,
		func(order *domain.Order, items []*domain.OrderItem) ([]*domain.Commission, error) {
			if err := s.checkLedger(order, items); err != nil {
				return nil, err
			}

			commissions := make([]*domain.Commission, 0, len(items))
			for _, item := range items {
				token, err := s.dlTokens.Issue(domain.DownloadClaims{
					OrderItemID: item.ID,
					ProductID:   item.ProductID,
					UserID:      order.UserID,
				}, s.conf.LinkTTL)
				if err != nil {
					return nil, err
				}
				item.DownloadToken = token
				exp := expires
				item.DownloadExpires = &exp

				commissions = append(commissions, &domain.Commission{
					OrderID:          order.ID,
					OrderItemID:      item.ID,
					VendorID:         item.VendorID,
					TotalAmount:      item.Price,
					CommissionRate:   s.ratePercent,
					CommissionAmount: item.CommissionAmount,
					VendorAmount:     item.VendorAmount,
					Status:           domain.CommissionStatusAvailable,
					AvailableAt:      now,
				})
			}

			return commissions, nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrLedgerInvariant) {
			s.logger.Error("settlement aborted on ledger inconsistency",
				zap.String("order", orderNumber))
		}
		return nil, err
	}

	// notifications are fire-and-forget, never part of the transaction
	s.notifier.OrderConfirmed(ctx, order)
	for _, item := range order.Items {
		s.notifier.SaleRecorded(ctx, order, item)
	}

	s.logger.Info("settlement applied",
		zap.String("order", order.Number),
		zap.Int("items", len(order.Items)))

	return order, nil
}

// checkLedger verifies conservation before any money is written: each line's
// split sums to its price and the lines sum to the order totals.
func (s *Service) checkLedger(order *domain.Order, items []*domain.OrderItem) error {
	lineTotal := order.TotalAmount
	for _, item := range items {
		sum, err := item.CommissionAmount.Add(item.VendorAmount)
		if err != nil {
			return domain.ErrLedgerInvariant
		}
		if sum.Cmp(item.Price) != 0 {
			return domain.ErrLedgerInvariant
		}
		lineTotal, err = lineTotal.Sub(item.Price)
		if err != nil {
			return domain.ErrLedgerInvariant
		}
	}
	if !lineTotal.IsZero() {
		return domain.ErrLedgerInvariant
	}

	orderSum, err := order.CommissionAmount.Add(order.VendorAmount)
	if err != nil || orderSum.Cmp(order.TotalAmount) != 0 {
		return domain.ErrLedgerInvariant
	}
	return nil
}

// HandlePaymentWebhook is the asynchronous trigger: verify the transaction
// with the gateway, then settle or fail the order. Replays are harmless.
func (s *Service) HandlePaymentWebhook(ctx context.Context, transactionID string, siteID string) error {
	if transactionID == "" || siteID != s.gateway.SiteID() {
		return domain.ErrBadRequest
	}

	verified, err := s.gateway.Verify(ctx, transactionID)
	if err != nil {
		return err
	}

	switch verified.Status {
	case port.GatewayStatusAccepted:
		_, err := s.ApplySettlement(ctx, transactionID, transactionID)
		if err != nil && !errors.Is(err, domain.ErrOrderAlreadySettled) {
			return err
		}
		return nil
	case port.GatewayStatusRefused:
		return s.repo.FailOrder(ctx, transactionID)
	default:
		return nil
	}
}

// VerifyPayment is the synchronous trigger used right after the checkout
// redirect. Same convergence rules as the webhook.
func (s *Service) VerifyPayment(ctx context.Context, transactionID string) (*port.PaymentState, error) {
	verified, err := s.gateway.Verify(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.ReadOrder(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if verified.Status == port.GatewayStatusAccepted && !order.Settled() {
		settled, err := s.ApplySettlement(ctx, transactionID, transactionID)
		if err == nil {
			order = settled
		} else if !errors.Is(err, domain.ErrOrderAlreadySettled) {
			return nil, err
		}
	}
	if verified.Status == port.GatewayStatusRefused && !order.Settled() {
		if err := s.repo.FailOrder(ctx, transactionID); err != nil {
			return nil, err
		}
		order.PaymentStatus = domain.PaymentStatusFailed
		order.Status = domain.OrderStatusCancelled
	}

	return &port.PaymentState{
		OrderNumber:   order.Number,
		GatewayStatus: verified.Status,
		GatewayMethod: verified.Method,
		PaymentStatus: order.PaymentStatus,
		OrderStatus:   order.Status,
		TotalAmount:   order.TotalAmount,
	}, nil
}

// PaymentStatus is the client-side poll. A still-pending order is
// re-verified opportunistically; upstream failures leave the stored state
// untouched and the caller retries.
func (s *Service) PaymentStatus(ctx context.Context, userID uint64, orderNumber string) (*port.PaymentState, error) {
	order, err := s.repo.ReadOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrDataNotFound
	}

	gatewayStatus := port.GatewayStatusPending
	gatewayMethod := ""
	if order.PaymentStatus == domain.PaymentStatusPending || order.PaymentStatus == domain.PaymentStatusProcessing {
		verified, err := s.gateway.Verify(ctx, orderNumber)
		if err != nil {
			s.logger.Debug("poll verification skipped", zap.String("order", orderNumber), zap.Error(err))
		} else {
			gatewayStatus = verified.Status
			gatewayMethod = verified.Method
			if verified.Status == port.GatewayStatusAccepted {
				settled, err := s.ApplySettlement(ctx, orderNumber, orderNumber)
				if err == nil {
					order = settled
				} else if !errors.Is(err, domain.ErrOrderAlreadySettled) {
					return nil, err
				}
			}
		}
	} else if order.Settled() {
		gatewayStatus = port.GatewayStatusAccepted
	} else if order.PaymentStatus == domain.PaymentStatusFailed {
		gatewayStatus = port.GatewayStatusRefused
	}

	return &port.PaymentState{
		OrderNumber:   order.Number,
		GatewayStatus: gatewayStatus,
		GatewayMethod: gatewayMethod,
		PaymentStatus: order.PaymentStatus,
		OrderStatus:   order.Status,
		TotalAmount:   order.TotalAmount,
	}, nil
}
