package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

type WithdrawalHandler struct {
	Handler
	service port.Service
}

func NewWithdrawalHandler(service port.Service, logger *zap.Logger) (*WithdrawalHandler, error) {
	return &WithdrawalHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type balanceResponse struct {
	Available      decimal.Decimal `json:"available"`
	Reserved       decimal.Decimal `json:"reserved"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
}

func (wh *WithdrawalHandler) Balance(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	balance, err := wh.service.GetVendorBalance(ctx, userID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, balanceResponse{
		Available:      balance.Available,
		Reserved:       balance.Reserved,
		TotalEarned:    balance.TotalEarned,
		TotalWithdrawn: balance.TotalWithdrawn,
	})
}

type withdrawalRequest struct {
	Amount  float64 `json:"amount" binding:"required"`
	Method  string  `json:"method" binding:"required"`
	Details struct {
		MobileNetwork string `json:"mobile_network"`
		PhoneNumber   string `json:"phone_number"`
		BankName      string `json:"bank_name"`
		BankAccount   string `json:"bank_account"`
		BankIBAN      string `json:"bank_iban"`
	} `json:"details"`
	Notes string `json:"notes"`
}

type withdrawalResponse struct {
	ID              uint64          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Method          string          `json:"method"`
	Status          string          `json:"status"`
	Reference       string          `json:"reference,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func withdrawalResp(w *domain.Withdrawal) withdrawalResponse {
	return withdrawalResponse{
		ID:              w.ID,
		Amount:          w.Amount,
		Method:          string(w.Method),
		Status:          string(w.Status),
		Reference:       w.Reference,
		RejectionReason: w.RejectionReason,
		ProcessedAt:     w.ProcessedAt,
		CreatedAt:       w.CreatedAt,
	}
}

// Request reserves commissions for a payout. The response amount is the
// reserved total, which can exceed the requested figure by one commission line.
func (wh *WithdrawalHandler) Request(ctx *gin.Context) {
	req := withdrawalRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	withdrawal, err := wh.service.RequestWithdrawal(ctx, userID, &port.WithdrawalRequest{
		Amount: amount,
		Method: domain.PayoutMethod(req.Method),
		Destination: domain.PayoutDestination{
			MobileNetwork: req.Details.MobileNetwork,
			PhoneNumber:   req.Details.PhoneNumber,
			BankName:      req.Details.BankName,
			BankAccount:   req.Details.BankAccount,
			BankIBAN:      req.Details.BankIBAN,
		},
		Notes: req.Notes,
	})
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, withdrawalResp(withdrawal))
}

func (wh *WithdrawalHandler) ListByVendor(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := wh.service.GetWithdrawalsByVendor(ctx, userID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	result := make([]withdrawalResponse, 0, len(list))
	for _, w := range list {
		result = append(result, withdrawalResp(w))
	}

	wh.handleSuccess(ctx, result)
}

// ListAll is the admin view, optionally filtered by status.
func (wh *WithdrawalHandler) ListAll(ctx *gin.Context) {
	status := domain.WithdrawalStatus(ctx.Query("status"))

	list, err := wh.service.ListWithdrawals(ctx, status)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	result := make([]withdrawalResponse, 0, len(list))
	for _, w := range list {
		result = append(result, withdrawalResp(w))
	}

	wh.handleSuccess(ctx, result)
}

type processRequest struct {
	Outcome         string `json:"outcome" binding:"required"`
	Reference       string `json:"reference"`
	RejectionReason string `json:"rejection_reason"`
}

// Process resolves a reserved withdrawal as paid or rejected.
func (wh *WithdrawalHandler) Process(ctx *gin.Context) {
	withdrawalID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		wh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	req := processRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	outcome := domain.WithdrawalOutcome(req.Outcome)
	referenceOrReason := req.Reference
	if outcome == domain.WithdrawalOutcomeRejected {
		referenceOrReason = req.RejectionReason
	}

	adminID := getAuthPayload(ctx).UserID

	withdrawal, err := wh.service.ProcessWithdrawal(ctx, adminID, withdrawalID, outcome, referenceOrReason)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, withdrawalResp(withdrawal))
}
