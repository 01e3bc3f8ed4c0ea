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

func mobileMoneyRequest(amount string) *port.WithdrawalRequest {
	return &port.WithdrawalRequest{
		Amount: decimal.MustParse(amount),
		Method: domain.PayoutMethodMobileMoney,
		Destination: domain.PayoutDestination{
			MobileNetwork: "orange",
			PhoneNumber:   "+22501020304",
		},
	}
}

func TestService_RequestWithdrawal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	vendor := &domain.Vendor{ID: 3, UserID: 7, StoreName: "templates"}

	tests := []struct {
		name     string
		req      *port.WithdrawalRequest
		mock     func(m *testMocks)
		expError error
	}{
		{
			name: "Not a vendor",
			req:  mobileMoneyRequest("6000"),
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetVendorByUserID(gomock.Any(), uint64(7)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name: "Below minimum",
			req:  mobileMoneyRequest("4999"),
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetVendorByUserID(gomock.Any(), uint64(7)).Return(vendor, nil)
			},
			expError: domain.ErrBelowMinWithdrawal,
		},
		{
			name: "Incomplete destination",
			req: &port.WithdrawalRequest{
				Amount:      decimal.MustParse("6000"),
				Method:      domain.PayoutMethodBankTransfer,
				Destination: domain.PayoutDestination{BankName: "ecobank"},
			},
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetVendorByUserID(gomock.Any(), uint64(7)).Return(vendor, nil)
			},
			expError: domain.ErrIncompleteWithdrawal,
		},
		{
			name: "Unknown payout method",
			req: &port.WithdrawalRequest{
				Amount: decimal.MustParse("6000"),
				Method: "cheque",
			},
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetVendorByUserID(gomock.Any(), uint64(7)).Return(vendor, nil)
			},
			expError: domain.ErrUnknownPayoutMethod,
		},
		{
			name: "Insufficient balance",
			req:  mobileMoneyRequest("6000"),
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetVendorByUserID(gomock.Any(), uint64(7)).Return(vendor, nil)
				m.repo.EXPECT().VendorBalance(gomock.Any(), vendor.ID).
					Return(&domain.VendorBalance{Available: decimal.MustParse("5999")}, nil)
			},
			expError: domain.ErrInsufficientBalance,
		},
		{
			name: "Race loses to a concurrent reservation",
			req:  mobileMoneyRequest("6000"),
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetVendorByUserID(gomock.Any(), uint64(7)).Return(vendor, nil)
				m.repo.EXPECT().VendorBalance(gomock.Any(), vendor.ID).
					Return(&domain.VendorBalance{Available: decimal.MustParse("9000")}, nil)
				m.repo.EXPECT().ReserveWithdrawal(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInsufficientBalance)
			},
			expError: domain.ErrInsufficientBalance,
		},
		{
			name: "Good",
			req:  mobileMoneyRequest("6000"),
			mock: func(m *testMocks) {
				m.repo.EXPECT().GetVendorByUserID(gomock.Any(), uint64(7)).Return(vendor, nil)
				m.repo.EXPECT().VendorBalance(gomock.Any(), vendor.ID).
					Return(&domain.VendorBalance{Available: decimal.MustParse("9000")}, nil)
				m.repo.EXPECT().ReserveWithdrawal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						// reservation snaps the amount to the covered total
						w.ID = 500
						w.Amount = decimal.MustParse("6500")
						return w, nil
					})
			},
			expError: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newTestService(t, mockCtrl)
			test.mock(m)

			withdrawal, err := s.RequestWithdrawal(context.Background(), 7, test.req)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, domain.WithdrawalStatusReserved, withdrawal.Status)
				assert.Equal(t, vendor.ID, withdrawal.VendorID)
				assert.Equal(t, 0, withdrawal.Amount.Cmp(decimal.MustParse("6500")))
			}
		})
	}
}

func TestService_ProcessWithdrawal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		outcome  domain.WithdrawalOutcome
		detail   string
		mock     func(m *testMocks)
		expError error
	}{
		{
			name:     "Unknown outcome",
			outcome:  "maybe",
			mock:     func(m *testMocks) {},
			expError: domain.ErrBadRequest,
		},
		{
			name:    "Paid stores reference",
			outcome: domain.WithdrawalOutcomePaid,
			detail:  "OM-2024-001",
			mock: func(m *testMocks) {
				m.repo.EXPECT().ResolveWithdrawal(gomock.Any(), uint64(500),
					domain.WithdrawalOutcomePaid, "OM-2024-001", "", uint64(9)).
					Return(&domain.Withdrawal{ID: 500, Status: domain.WithdrawalStatusPaid, Reference: "OM-2024-001"}, nil)
				m.notifier.EXPECT().WithdrawalProcessed(gomock.Any(), gomock.Any())
			},
			expError: nil,
		},
		{
			name:    "Rejected stores reason",
			outcome: domain.WithdrawalOutcomeRejected,
			detail:  "account name mismatch",
			mock: func(m *testMocks) {
				m.repo.EXPECT().ResolveWithdrawal(gomock.Any(), uint64(500),
					domain.WithdrawalOutcomeRejected, "", "account name mismatch", uint64(9)).
					Return(&domain.Withdrawal{ID: 500, Status: domain.WithdrawalStatusRejected}, nil)
				m.notifier.EXPECT().WithdrawalProcessed(gomock.Any(), gomock.Any())
			},
			expError: nil,
		},
		{
			name:    "Already processed",
			outcome: domain.WithdrawalOutcomePaid,
			detail:  "OM-2024-001",
			mock: func(m *testMocks) {
				m.repo.EXPECT().ResolveWithdrawal(gomock.Any(), uint64(500),
					domain.WithdrawalOutcomePaid, "OM-2024-001", "", uint64(9)).
					Return(nil, domain.ErrWithdrawalProcessed)
			},
			expError: domain.ErrWithdrawalProcessed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newTestService(t, mockCtrl)
			test.mock(m)

			_, err := s.ProcessWithdrawal(context.Background(), 9, 500, test.outcome, test.detail)

			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_GetVendorBalance(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newTestService(t, mockCtrl)

	vendor := &domain.Vendor{ID: 3, UserID: 7}
	balance := &domain.VendorBalance{
		Available:      decimal.MustParse("9000"),
		Reserved:       decimal.MustParse("4500"),
		TotalEarned:    decimal.MustParse("20000"),
		TotalWithdrawn: decimal.MustParse("6500"),
	}

	m.repo.EXPECT().GetVendorByUserID(gomock.Any(), uint64(7)).Return(vendor, nil)
	m.repo.EXPECT().VendorBalance(gomock.Any(), vendor.ID).Return(balance, nil)

	result, err := s.GetVendorBalance(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, balance, result)
}
