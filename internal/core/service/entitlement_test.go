package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
)

func purchased() (*domain.Order, *domain.OrderItem, *domain.ProductFile) {
	order := &domain.Order{
		ID:            100,
		Number:        "DM1TEST01AB",
		UserID:        1,
		TotalAmount:   decimal.MustParse("10000"),
		PaymentStatus: domain.PaymentStatusCompleted,
		Status:        domain.OrderStatusCompleted,
	}
	item := &domain.OrderItem{
		ID:            200,
		OrderID:       100,
		ProductID:     10,
		VendorID:      3,
		Price:         decimal.MustParse("10000"),
		DownloadCount: 0,
		MaxDownloads:  5,
	}
	file := &domain.ProductFile{
		ID:        300,
		ProductID: 10,
		FileName:  "template-pack.zip",
		ObjectKey: "products/10/template-pack.zip",
		IsMain:    true,
	}
	return order, item, file
}

func TestService_GenerateDownloadLink(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		userID   uint64
		mock     func(m *testMocks)
		expError error
	}{
		{
			name:   "Unknown item",
			userID: 1,
			mock: func(m *testMocks) {
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name:   "Foreign order",
			userID: 42,
			mock: func(m *testMocks) {
				order, item, _ := purchased()
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name:   "Payment not completed",
			userID: 1,
			mock: func(m *testMocks) {
				order, item, _ := purchased()
				order.PaymentStatus = domain.PaymentStatusProcessing
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
			},
			expError: domain.ErrPaymentNotCompleted,
		},
		{
			name:   "Quota exhausted",
			userID: 1,
			mock: func(m *testMocks) {
				order, item, _ := purchased()
				item.DownloadCount = 5
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
			},
			expError: domain.ErrQuotaExhausted,
		},
		{
			name:   "No file",
			userID: 1,
			mock: func(m *testMocks) {
				order, item, _ := purchased()
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
				m.repo.EXPECT().GetMainProductFile(gomock.Any(), uint64(10)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrFileNotFound,
		},
		{
			name:   "Good",
			userID: 1,
			mock: func(m *testMocks) {
				order, item, file := purchased()
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
				m.repo.EXPECT().GetMainProductFile(gomock.Any(), uint64(10)).Return(file, nil)
				m.dlTokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("cap-token", nil)
			},
			expError: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newTestService(t, mockCtrl)
			test.mock(m)

			grant, err := s.GenerateDownloadLink(context.Background(), test.userID, 200, nil)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Contains(t, grant.URL, "/api/downloads/file/cap-token")
				assert.Equal(t, "template-pack.zip", grant.FileName)
				assert.Equal(t, int32(5), grant.DownloadsRemaining)
			}
		})
	}
}

func TestService_RedeemDownload(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	claims := &domain.DownloadClaims{OrderItemID: 200, ProductID: 10, UserID: 1}
	meta := port.DownloadMeta{IPAddress: "10.0.0.1", UserAgent: "curl/8"}

	tests := []struct {
		name     string
		mock     func(m *testMocks)
		expError error
		expURL   string
	}{
		{
			name: "Bad token",
			mock: func(m *testMocks) {
				m.dlTokens.EXPECT().Verify("token").Return(nil, domain.ErrInvalidDownloadToken)
			},
			expError: domain.ErrInvalidDownloadToken,
		},
		{
			name: "Product mismatch",
			mock: func(m *testMocks) {
				_, item, _ := purchased()
				item.ProductID = 99
				m.dlTokens.EXPECT().Verify("token").Return(claims, nil)
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
			},
			expError: domain.ErrInvalidDownloadToken,
		},
		{
			name: "Foreign user",
			mock: func(m *testMocks) {
				order, item, _ := purchased()
				order.UserID = 42
				m.dlTokens.EXPECT().Verify("token").Return(claims, nil)
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
			},
			expError: domain.ErrInvalidDownloadToken,
		},
		{
			name: "Quota exhausted on redeem",
			mock: func(m *testMocks) {
				order, item, file := purchased()
				m.dlTokens.EXPECT().Verify("token").Return(claims, nil)
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
				m.repo.EXPECT().GetMainProductFile(gomock.Any(), uint64(10)).Return(file, nil)
				m.files.EXPECT().PresignDownload(gomock.Any(), file.ObjectKey, gomock.Any()).
					Return("https://store.test/signed", nil)
				m.repo.EXPECT().RedeemDownload(gomock.Any(), uint64(200), gomock.Any()).
					Return(nil, domain.ErrQuotaExhausted)
			},
			expError: domain.ErrQuotaExhausted,
		},
		{
			name: "Storage failure keeps quota",
			mock: func(m *testMocks) {
				order, item, file := purchased()
				m.dlTokens.EXPECT().Verify("token").Return(claims, nil)
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
				m.repo.EXPECT().GetMainProductFile(gomock.Any(), uint64(10)).Return(file, nil)
				m.files.EXPECT().PresignDownload(gomock.Any(), file.ObjectKey, gomock.Any()).
					Return("", domain.ErrStorageUnavailable)
			},
			expError: domain.ErrStorageUnavailable,
		},
		{
			name: "Good",
			mock: func(m *testMocks) {
				order, item, file := purchased()
				m.dlTokens.EXPECT().Verify("token").Return(claims, nil)
				m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
				m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
				m.repo.EXPECT().GetMainProductFile(gomock.Any(), uint64(10)).Return(file, nil)
				m.files.EXPECT().PresignDownload(gomock.Any(), file.ObjectKey, gomock.Any()).
					Return("https://store.test/signed", nil)
				m.repo.EXPECT().RedeemDownload(gomock.Any(), uint64(200), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, log *domain.DownloadLog) (*domain.OrderItem, error) {
						ok := log.UserID == 1 && log.IPAddress == "10.0.0.1" && log.UserAgent == "curl/8"
						if !ok {
							return nil, domain.ErrInternal
						}
						item.DownloadCount++
						return item, nil
					})
			},
			expError: nil,
			expURL:   "https://store.test/signed",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newTestService(t, mockCtrl)
			test.mock(m)

			url, err := s.RedeemDownload(context.Background(), "token", nil, meta)

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expURL, url)
		})
	}
}

func TestService_RedeemDownloadStaticFallback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newTestService(t, mockCtrl)

	order, item, file := purchased()
	file.ObjectKey = ""
	file.FilePath = "/uploads/products/template-pack.zip"
	claims := &domain.DownloadClaims{OrderItemID: 200, ProductID: 10, UserID: 1}

	m.dlTokens.EXPECT().Verify("token").Return(claims, nil)
	m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
	m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
	m.repo.EXPECT().GetMainProductFile(gomock.Any(), uint64(10)).Return(file, nil)
	m.repo.EXPECT().RedeemDownload(gomock.Any(), uint64(200), gomock.Any()).Return(item, nil)

	url, err := s.RedeemDownload(context.Background(), "token", nil, port.DownloadMeta{})

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/products/template-pack.zip", url)
}

func TestService_RedeemDownloadSpecificFile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newTestService(t, mockCtrl)

	order, item, _ := purchased()
	claims := &domain.DownloadClaims{OrderItemID: 200, ProductID: 10, UserID: 1}
	fileID := uint64(301)

	m.dlTokens.EXPECT().Verify("token").Return(claims, nil)
	m.repo.EXPECT().ReadOrderItem(gomock.Any(), uint64(200)).Return(item, nil)
	m.repo.EXPECT().ReadOrderByID(gomock.Any(), uint64(100)).Return(order, nil)
	m.repo.EXPECT().GetProductFile(gomock.Any(), fileID, uint64(10)).
		Return(nil, domain.ErrDataNotFound)

	_, err := s.RedeemDownload(context.Background(), "token", &fileID, port.DownloadMeta{})

	assert.ErrorIs(t, err, domain.ErrFileNotOwnedByPurchase)
}
