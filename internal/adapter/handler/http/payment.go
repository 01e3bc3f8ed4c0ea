package http

import (
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// webhookRequest carries the provider notification. CinetPay posts form
// fields; JSON is accepted for provider sandboxes that send it.
type webhookRequest struct {
	TransactionID string `form:"cpm_trans_id" json:"cpm_trans_id"`
	SiteID        string `form:"cpm_site_id" json:"cpm_site_id"`
}

// Webhook is unauthenticated by design: it never trusts the payload status
// and answers the provider with 200 whenever the notification was consumed,
// including on replays.
func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	req := webhookRequest{}
	if err := ctx.ShouldBind(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	err := ph.service.HandlePaymentWebhook(ctx, req.TransactionID, req.SiteID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{"status": "OK"})
}

type paymentStateResponse struct {
	OrderNumber   string          `json:"order_number"`
	GatewayStatus string          `json:"gateway_status"`
	GatewayMethod string          `json:"gateway_method,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	OrderStatus   string          `json:"order_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

func paymentStateResp(state *port.PaymentState) paymentStateResponse {
	return paymentStateResponse{
		OrderNumber:   state.OrderNumber,
		GatewayStatus: string(state.GatewayStatus),
		GatewayMethod: state.GatewayMethod,
		PaymentStatus: string(state.PaymentStatus),
		OrderStatus:   string(state.OrderStatus),
		TotalAmount:   state.TotalAmount,
	}
}

// Verify re-checks a transaction with the gateway and settles when accepted.
// Used by the client right after the payment redirect.
func (ph *PaymentHandler) Verify(ctx *gin.Context) {
	transactionID := ctx.Param("transaction_id")
	if transactionID == "" {
		ph.handleError(ctx, domain.ErrBadRequest)
		return
	}

	state, err := ph.service.VerifyPayment(ctx, transactionID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, paymentStateResp(state))
}

// Status reports the stored payment state of the caller's own order.
func (ph *PaymentHandler) Status(ctx *gin.Context) {
	orderNumber := ctx.Param("order_number")
	if orderNumber == "" {
		ph.handleError(ctx, domain.ErrBadRequest)
		return
	}

	userID := getAuthPayload(ctx).UserID

	state, err := ph.service.PaymentStatus(ctx, userID, orderNumber)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, paymentStateResp(state))
}
