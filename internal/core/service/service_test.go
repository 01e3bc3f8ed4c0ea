package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"github.com/valdes557/digitalmarket/internal/core/port/mock"
	"github.com/valdes557/digitalmarket/internal/core/service"
	"github.com/valdes557/digitalmarket/internal/core/utils"
	"go.uber.org/zap"
)

type testMocks struct {
	repo     *mock.MockRepository
	tokens   *mock.MockTokenService
	dlTokens *mock.MockDownloadTokenService
	gateway  *mock.MockPaymentGateway
	files    *mock.MockFileStore
	notifier *mock.MockNotifier
}

func newTestService(t *testing.T, ctrl *gomock.Controller) (*service.Service, *testMocks) {
	t.Helper()

	m := &testMocks{
		repo:     mock.NewMockRepository(ctrl),
		tokens:   mock.NewMockTokenService(ctrl),
		dlTokens: mock.NewMockDownloadTokenService(ctrl),
		gateway:  mock.NewMockPaymentGateway(ctrl),
		files:    mock.NewMockFileStore(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
	}

	logger, _ := zap.NewProduction()

	s, err := service.NewService(m.repo, m.tokens, m.dlTokens, m.gateway, m.files, m.notifier,
		service.Config{
			CommissionRate:      decimal.MustParse("0.10"),
			MaxDownloadsDefault: 5,
			LinkTTL:             time.Hour,
			RedirectTTL:         5 * time.Minute,
			MinWithdrawal:       decimal.MustParse("5000"),
			Currency:            "XOF",
			PublicURL:           "http://localhost:8080",
		}, logger)
	assert.NoError(t, err)

	return s, m
}

func TestService_UserRegister(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type userRegisterTest struct {
		name      string
		user      domain.User
		mock      func(m *testMocks)
		expError  error
		expResult *domain.User
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		Login:    "test",
		Password: hashedPass,
		Role:     domain.UserRoleCustomer,
		ID:       1,
	}

	tests := []userRegisterTest{
		{
			name: "Register good",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, domain.ErrDataNotFound)
				m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			expError:  nil,
			expResult: &user,
		},
		{
			name: "Register already exists",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newTestService(t, mockCtrl)
			test.mock(m)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_UserLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		Login:    "test",
		Password: hashedPass,
		ID:       1,
	}

	tests := []struct {
		name     string
		login    string
		password string
		mock     func(m *testMocks)
		expError error
	}{
		{
			name:     "Login good",
			login:    user.Login,
			password: "test",
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
				m.tokens.EXPECT().CreateToken(gomock.Any()).Return("token", nil)
			},
			expError: nil,
		},
		{
			name:     "Password bad",
			login:    user.Login,
			password: "hacker",
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login unknown",
			login:    "ghost",
			password: "test",
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetUserByLogin(gomock.Any(), "ghost").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newTestService(t, mockCtrl)
			test.mock(m)

			token, err := s.LoginUser(context.Background(), test.login, test.password)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestService_Checkout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	user := &domain.User{ID: 1, Login: "buyer@test.dev", Role: domain.UserRoleCustomer}

	products := []*domain.Product{
		{ID: 10, VendorID: 3, Name: "Template pack", Price: decimal.MustParse("10000"), Status: domain.ProductStatusPublished},
		{ID: 11, VendorID: 4, Name: "Icon set", Price: decimal.MustParse("5000"), Status: domain.ProductStatusPublished},
	}

	request := func(ids ...uint64) *port.CheckoutRequest {
		items := make([]port.CheckoutItem, 0, len(ids))
		for _, id := range ids {
			items = append(items, port.CheckoutItem{ProductID: id})
		}
		return &port.CheckoutRequest{Items: items, PaymentMethod: domain.PaymentMethodMobileMoney, Phone: "+22501020304"}
	}

	tests := []struct {
		name     string
		req      *port.CheckoutRequest
		mock     func(m *testMocks)
		expError error
	}{
		{
			name:     "Empty cart",
			req:      &port.CheckoutRequest{PaymentMethod: domain.PaymentMethodCinetPay},
			mock:     func(m *testMocks) {},
			expError: domain.ErrEmptyCart,
		},
		{
			name:     "Unknown payment method",
			req:      &port.CheckoutRequest{Items: []port.CheckoutItem{{ProductID: 10}}, PaymentMethod: "crypto"},
			mock:     func(m *testMocks) {},
			expError: domain.ErrUnknownPaymentMethod,
		},
		{
			name: "Product not published",
			req:  request(10, 11),
			mock: func(m *testMocks) {
				m.repo.EXPECT().ListPublishedProducts(gomock.Any(), []uint64{10, 11}).
					Return(products[:1], nil)
			},
			expError: domain.ErrProductUnavailable,
		},
		{
			name: "Product already owned",
			req:  request(10),
			mock: func(m *testMocks) {
				m.repo.EXPECT().ListPublishedProducts(gomock.Any(), []uint64{10}).
					Return(products[:1], nil)
				m.repo.EXPECT().ListPurchasedProductIDs(gomock.Any(), user.ID, []uint64{10}).
					Return([]uint64{10}, nil)
			},
			expError: domain.ErrProductAlreadyOwned,
		},
		{
			name: "Gateway rejects",
			req:  request(10),
			mock: func(m *testMocks) {
				m.repo.EXPECT().ListPublishedProducts(gomock.Any(), []uint64{10}).
					Return(products[:1], nil)
				m.repo.EXPECT().ListPurchasedProductIDs(gomock.Any(), user.ID, []uint64{10}).
					Return(nil, nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						order.ID = 100
						return order, nil
					})
				m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrPaymentInitFailed)
				m.repo.EXPECT().FailOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			expError: domain.ErrPaymentInitFailed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newTestService(t, mockCtrl)
			test.mock(m)

			_, err := s.Checkout(context.Background(), user, test.req)

			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_CheckoutSplit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newTestService(t, mockCtrl)

	user := &domain.User{ID: 1, Login: "buyer@test.dev"}
	products := []*domain.Product{
		{ID: 10, VendorID: 3, Name: "Template pack", Price: decimal.MustParse("10000"), Status: domain.ProductStatusPublished},
		{ID: 11, VendorID: 4, Name: "Icon set", Price: decimal.MustParse("5000"), Status: domain.ProductStatusPublished},
	}

	var created *domain.Order

	m.repo.EXPECT().ListPublishedProducts(gomock.Any(), []uint64{10, 11}).Return(products, nil)
	m.repo.EXPECT().ListPurchasedProductIDs(gomock.Any(), user.ID, []uint64{10, 11}).Return(nil, nil)
	m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			order.ID = 100
			created = order
			return order, nil
		})
	m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		Return(&port.InitiateResult{PaymentURL: "https://pay.test/abc", PaymentToken: "abc"}, nil)
	m.repo.EXPECT().SetPaymentReference(gomock.Any(), uint64(100), "abc").Return(nil)

	result, err := s.Checkout(context.Background(), user, &port.CheckoutRequest{
		Items:         []port.CheckoutItem{{ProductID: 10}, {ProductID: 11}},
		PaymentMethod: domain.PaymentMethodCard,
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.test/abc", result.PaymentURL)
	assert.NotEmpty(t, result.OrderNumber)

	assert.Equal(t, 0, created.TotalAmount.Cmp(decimal.MustParse("15000")))
	assert.Equal(t, 0, created.CommissionAmount.Cmp(decimal.MustParse("1500")))
	assert.Equal(t, 0, created.VendorAmount.Cmp(decimal.MustParse("13500")))

	assert.Len(t, created.Items, 2)
	for _, item := range created.Items {
		sum, serr := item.CommissionAmount.Add(item.VendorAmount)
		assert.NoError(t, serr)
		assert.Equal(t, 0, sum.Cmp(item.Price))
		assert.Equal(t, int32(5), item.MaxDownloads)
	}
	assert.Equal(t, 0, created.Items[0].CommissionAmount.Cmp(decimal.MustParse("1000")))
	assert.Equal(t, 0, created.Items[1].CommissionAmount.Cmp(decimal.MustParse("500")))
}
