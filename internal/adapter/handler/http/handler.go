package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,
	domain.ErrBadRequest:      http.StatusBadRequest,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrEmptyCart:            http.StatusBadRequest,
	domain.ErrUnknownPaymentMethod: http.StatusBadRequest,
	domain.ErrProductUnavailable:   http.StatusUnprocessableEntity,
	domain.ErrProductAlreadyOwned:  http.StatusConflict,
	domain.ErrPaymentInitFailed:    http.StatusBadGateway,
	domain.ErrGatewayUnavailable:   http.StatusBadGateway,

	domain.ErrOrderAlreadySettled: http.StatusOK,
	domain.ErrLedgerInvariant:     http.StatusInternalServerError,

	domain.ErrPaymentNotCompleted:    http.StatusPaymentRequired,
	domain.ErrQuotaExhausted:         http.StatusForbidden,
	domain.ErrInvalidDownloadToken:   http.StatusNotFound,
	domain.ErrFileNotFound:           http.StatusNotFound,
	domain.ErrFileNotOwnedByPurchase: http.StatusUnprocessableEntity,
	domain.ErrStorageUnavailable:     http.StatusServiceUnavailable,
	domain.ErrDownloadRateLimited:    http.StatusTooManyRequests,

	domain.ErrInsufficientBalance:  http.StatusPaymentRequired,
	domain.ErrBelowMinWithdrawal:   http.StatusUnprocessableEntity,
	domain.ErrIncompleteWithdrawal: http.StatusUnprocessableEntity,
	domain.ErrWithdrawalProcessed:  http.StatusConflict,
	domain.ErrUnknownPayoutMethod:  http.StatusBadRequest,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
