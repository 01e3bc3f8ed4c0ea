package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

// GenerateDownloadLink issues a fresh capability token for an order item the
// user owns. Preconditions are checked in a fixed order so the caller always
// learns the first failing one: existence, ownership, payment, quota.
// Issuing a link does not consume quota; only redemption does.
func (s *Service) GenerateDownloadLink(ctx context.Context, userID uint64, orderItemID uint64, fileID *uint64) (*domain.DownloadGrant, error) {
	item, err := s.repo.ReadOrderItem(ctx, orderItemID)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.ReadOrderByID(ctx, item.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if !order.Settled() {
		return nil, domain.ErrPaymentNotCompleted
	}
	if item.DownloadsRemaining() == 0 {
		return nil, domain.ErrQuotaExhausted
	}

	file, err := s.resolveFile(ctx, item.ProductID, fileID)
	if err != nil {
		return nil, err
	}

	token, err := s.dlTokens.Issue(domain.DownloadClaims{
		OrderItemID: item.ID,
		ProductID:   item.ProductID,
		UserID:      userID,
		IssuedAt:    time.Now(),
	}, s.conf.LinkTTL)
	if err != nil {
		s.logger.Error("Issue download token", zap.Error(err))
		return nil, domain.ErrInternal
	}

	url := fmt.Sprintf("%s/api/downloads/file/%s", s.conf.PublicURL, token)
	if fileID != nil {
		url = fmt.Sprintf("%s?file=%d", url, *fileID)
	}

	return &domain.DownloadGrant{
		URL:                url,
		FileName:           file.FileName,
		ExpiresIn:          int(s.conf.LinkTTL.Seconds()),
		DownloadsRemaining: item.DownloadsRemaining(),
	}, nil
}

// RedeemDownload exchanges a capability token for a short-lived file URL and
// consumes one unit of quota. The token only names the entitlement; ownership,
// payment state and quota are all re-checked against current data, so a token
// minted before a refund or after exhaustion is worthless.
func (s *Service) RedeemDownload(ctx context.Context, token string, fileID *uint64, meta port.DownloadMeta) (string, error) {
	claims, err := s.dlTokens.Verify(token)
	if err != nil {
		return "", domain.ErrInvalidDownloadToken
	}

	item, err := s.repo.ReadOrderItem(ctx, claims.OrderItemID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidDownloadToken
		}
		return "", err
	}
	if item.ProductID != claims.ProductID {
		return "", domain.ErrInvalidDownloadToken
	}

	order, err := s.repo.ReadOrderByID(ctx, item.OrderID)
	if err != nil {
		return "", err
	}
	if order.UserID != claims.UserID {
		return "", domain.ErrInvalidDownloadToken
	}
	if !order.Settled() {
		return "", domain.ErrPaymentNotCompleted
	}

	file, err := s.resolveFile(ctx, item.ProductID, fileID)
	if err != nil {
		return "", err
	}

	// resolve the URL before touching the counter so a storage failure
	// never costs the user a download
	url, err := s.fileURL(ctx, file)
	if err != nil {
		return "", err
	}

	_, err = s.repo.RedeemDownload(ctx, item.ID, &domain.DownloadLog{
		OrderItemID: item.ID,
		UserID:      claims.UserID,
		ProductID:   item.ProductID,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("download redeemed",
		zap.Uint64("order_item", item.ID),
		zap.Uint64("user", claims.UserID))

	return url, nil
}

func (s *Service) GetDownloadHistory(ctx context.Context, userID uint64) ([]*domain.DownloadLog, error) {
	list, err := s.repo.ListDownloadsByUser(ctx, userID, downloadHistoryLimit)
	if err != nil {
		s.logger.Error("List downloads", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

const downloadHistoryLimit = 50

// resolveFile picks the requested file, verifying it belongs to the
// purchased product, or falls back to the product's main file.
func (s *Service) resolveFile(ctx context.Context, productID uint64, fileID *uint64) (*domain.ProductFile, error) {
	if fileID != nil {
		file, err := s.repo.GetProductFile(ctx, *fileID, productID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrFileNotOwnedByPurchase
			}
			return nil, err
		}
		return file, nil
	}

	file, err := s.repo.GetMainProductFile(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return file, nil
}

// fileURL prefers managed storage with a presigned URL; files uploaded before
// the object store existed still carry only a static path.
func (s *Service) fileURL(ctx context.Context, file *domain.ProductFile) (string, error) {
	if file.ObjectKey != "" {
		url, err := s.files.PresignDownload(ctx, file.ObjectKey, s.conf.RedirectTTL)
		if err != nil {
			s.logger.Error("Presign download", zap.Error(err))
			return "", domain.ErrStorageUnavailable
		}
		return url, nil
	}
	if file.FilePath != "" {
		return fmt.Sprintf("%s%s", s.conf.PublicURL, file.FilePath), nil
	}
	return "", domain.ErrFileNotFound
}
