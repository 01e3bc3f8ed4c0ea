package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

type DownloadHandler struct {
	Handler
	service port.Service
}

func NewDownloadHandler(service port.Service, logger *zap.Logger) (*DownloadHandler, error) {
	return &DownloadHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type generateRequest struct {
	OrderItemID uint64  `json:"order_item_id" binding:"required"`
	FileID      *uint64 `json:"file_id"`
}

type grantResponse struct {
	DownloadURL        string `json:"download_url"`
	FileName           string `json:"file_name"`
	ExpiresIn          int    `json:"expires_in"`
	DownloadsRemaining int32  `json:"downloads_remaining"`
}

// Generate issues a capability link for an order item the caller owns.
func (dh *DownloadHandler) Generate(ctx *gin.Context) {
	req := generateRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		dh.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	grant, err := dh.service.GenerateDownloadLink(ctx, userID, req.OrderItemID, req.FileID)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	dh.handleSuccess(ctx, grantResponse{
		DownloadURL:        grant.URL,
		FileName:           grant.FileName,
		ExpiresIn:          grant.ExpiresIn,
		DownloadsRemaining: grant.DownloadsRemaining,
	})
}

// Redeem exchanges the capability token for the file and redirects to it.
// The endpoint is unauthenticated: the token is the whole credential.
func (dh *DownloadHandler) Redeem(ctx *gin.Context) {
	token := ctx.Param("token")
	if token == "" {
		dh.handleError(ctx, domain.ErrInvalidDownloadToken)
		return
	}

	var fileID *uint64
	if raw := ctx.Query("file"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			dh.handleError(ctx, domain.ErrBadRequest)
			return
		}
		fileID = &id
	}

	url, err := dh.service.RedeemDownload(ctx, token, fileID, port.DownloadMeta{
		IPAddress: ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	})
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, url)
}

type downloadLogResponse struct {
	ID           uint64    `json:"id"`
	OrderItemID  uint64    `json:"order_item_id"`
	ProductID    uint64    `json:"product_id"`
	IPAddress    string    `json:"ip_address"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

func (dh *DownloadHandler) History(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := dh.service.GetDownloadHistory(ctx, userID)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	result := make([]downloadLogResponse, 0, len(list))
	for _, l := range list {
		result = append(result, downloadLogResponse{
			ID:           l.ID,
			OrderItemID:  l.OrderItemID,
			ProductID:    l.ProductID,
			IPAddress:    l.IPAddress,
			DownloadedAt: l.DownloadedAt,
		})
	}

	dh.handleSuccess(ctx, result)
}
