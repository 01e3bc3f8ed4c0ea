package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type checkoutRequest struct {
	Items []struct {
		ProductID uint64 `json:"product_id" binding:"required"`
	} `json:"items" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Phone         string `json:"phone"`
}

type checkoutResponse struct {
	OrderNumber  string `json:"order_number"`
	PaymentURL   string `json:"payment_url"`
	PaymentToken string `json:"payment_token"`
}

// Checkout creates a pending order and returns the gateway redirect.
func (oh *OrderHandler) Checkout(ctx *gin.Context) {
	req := checkoutRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	payload := getAuthPayload(ctx)
	user := &domain.User{ID: payload.UserID, Login: payload.Login, Role: payload.Role}

	items := make([]port.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, port.CheckoutItem{ProductID: item.ProductID})
	}

	result, err := oh.service.Checkout(ctx, user, &port.CheckoutRequest{
		Items:         items,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Phone:         req.Phone,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, checkoutResponse{
		OrderNumber:  result.OrderNumber,
		PaymentURL:   result.PaymentURL,
		PaymentToken: result.PaymentToken,
	}, http.StatusCreated)
}

type orderItemResponse struct {
	ID                 uint64          `json:"id"`
	ProductID          uint64          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	Price              decimal.Decimal `json:"price"`
	DownloadsRemaining int32           `json:"downloads_remaining"`
	DownloadExpires    *time.Time      `json:"download_expires,omitempty"`
}

type orderResponse struct {
	Number        string              `json:"number"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Currency      string              `json:"currency"`
	PaymentStatus string              `json:"payment_status"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []orderItemResponse `json:"items"`
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := oh.service.GetOrdersByUser(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		items := make([]orderItemResponse, 0, len(o.Items))
		for _, i := range o.Items {
			items = append(items, orderItemResponse{
				ID:                 i.ID,
				ProductID:          i.ProductID,
				ProductName:        i.ProductName,
				Price:              i.Price,
				DownloadsRemaining: i.DownloadsRemaining(),
				DownloadExpires:    i.DownloadExpires,
			})
		}
		result = append(result, orderResponse{
			Number:        o.Number,
			TotalAmount:   o.TotalAmount,
			Currency:      o.Currency,
			PaymentStatus: string(o.PaymentStatus),
			Status:        string(o.Status),
			CreatedAt:     o.CreatedAt,
			Items:         items,
		})
	}

	oh.handleSuccess(ctx, result)
}
