package service

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"github.com/valdes557/digitalmarket/internal/core/utils"
	"go.uber.org/zap"
)

const moneyScale = 2

// splitPrice fixes the commission/vendor split for one line. The commission
// side is rounded; the vendor side absorbs the rounding remainder, so the
// platform never earns more than rate * price.
func (s *Service) splitPrice(price decimal.Decimal) (commission decimal.Decimal, vendor decimal.Decimal, err error) {
	commission, err = price.Mul(s.conf.CommissionRate)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	commission = commission.Round(moneyScale)

	vendor, err = price.Sub(commission)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error:%w", err)
	}

	return commission, vendor, nil
}

// Checkout creates the provisional order with its lines and initiates the
// external payment. The order stays pending until the gateway confirms.
func (s *Service) Checkout(ctx context.Context, user *domain.User, req *port.CheckoutRequest) (*port.CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	switch req.PaymentMethod {
	case domain.PaymentMethodCinetPay, domain.PaymentMethodCard, domain.PaymentMethodMobileMoney:
	default:
		return nil, domain.ErrUnknownPaymentMethod
	}

	productIDs := make([]uint64, 0, len(req.Items))
	seen := make(map[uint64]struct{}, len(req.Items))
	for _, item := range req.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.repo.ListPublishedProducts(ctx, productIDs)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if len(products) != len(productIDs) {
		return nil, domain.ErrProductUnavailable
	}

	owned, err := s.repo.ListPurchasedProductIDs(ctx, user.ID, productIDs)
	if err != nil {
		s.logger.Error("List purchased products", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if len(owned) > 0 {
		return nil, domain.ErrProductAlreadyOwned
	}

	total := decimal.Zero
	commissionTotal := decimal.Zero
	items := make([]*domain.OrderItem, 0, len(products))
	for _, product := range products {
		price := product.EffectivePrice()

		commission, vendor, err := s.splitPrice(price)
		if err != nil {
			return nil, err
		}

		total, err = total.Add(price)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		commissionTotal, err = commissionTotal.Add(commission)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}

		items = append(items, &domain.OrderItem{
			ProductID:        product.ID,
			VendorID:         product.VendorID,
			ProductName:      product.Name,
			Price:            price,
			CommissionAmount: commission,
			VendorAmount:     vendor,
			MaxDownloads:     s.conf.MaxDownloadsDefault,
		})
	}

	vendorTotal, err := total.Sub(commissionTotal)
	if err != nil {
		return nil, fmt.Errorf("math error:%w", err)
	}

	number, err := utils.GenerateOrderNumber()
	if err != nil {
		s.logger.Error("Generate order number", zap.Error(err))
		return nil, domain.ErrInternal
	}

	order := &domain.Order{
		Number:           number,
		UserID:           user.ID,
		TotalAmount:      total,
		CommissionAmount: commissionTotal,
		VendorAmount:     vendorTotal,
		PaymentMethod:    req.PaymentMethod,
		PaymentStatus:    domain.PaymentStatusPending,
		Status:           domain.OrderStatusPending,
		Currency:         s.conf.Currency,
		CustomerEmail:    user.Login,
		CustomerPhone:    req.Phone,
		Items:            items,
	}

	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	initiated, err := s.gateway.Initiate(ctx, &port.InitiatePayment{
		OrderNumber:   order.Number,
		Amount:        order.TotalAmount,
		Currency:      order.Currency,
		Description:   fmt.Sprintf("Commande %s - DigitalMarket", order.Number),
		Method:        req.PaymentMethod,
		CustomerName:  user.Login,
		CustomerEmail: user.Login,
		CustomerPhone: req.Phone,
	})
	if err != nil {
		if failErr := s.repo.FailOrder(ctx, order.Number); failErr != nil {
			s.logger.Error("Cancel order after gateway failure",
				zap.String("order", order.Number), zap.Error(failErr))
		}
		return nil, err
	}

	err = s.repo.SetPaymentReference(ctx, order.ID, initiated.PaymentToken)
	if err != nil {
		s.logger.Error("Store payment reference",
			zap.String("order", order.Number), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &port.CheckoutResult{
		OrderNumber:  order.Number,
		PaymentURL:   initiated.PaymentURL,
		PaymentToken: initiated.PaymentToken,
	}, nil
}
