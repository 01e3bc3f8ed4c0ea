package repository

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valdes557/digitalmarket/internal/core/domain"
)

func ledgerLines(amounts ...string) []commissionLine {
	lines := make([]commissionLine, 0, len(amounts))
	for i, amount := range amounts {
		lines = append(lines, commissionLine{
			ID:     uint64(i + 1),
			Amount: decimal.MustParse(amount),
		})
	}
	return lines
}

func TestPlanReservation(t *testing.T) {
	testCases := []struct {
		name      string
		lines     []commissionLine
		requested string
		expIDs    []uint64
		expTotal  string
		expErr    error
	}{
		{
			name:      "Exact cover",
			lines:     ledgerLines("4500", "9000", "2000"),
			requested: "13500",
			expIDs:    []uint64{1, 2},
			expTotal:  "13500",
		},
		{
			name:      "Last row overshoots, total snaps to reserved sum",
			lines:     ledgerLines("4500", "9000", "2000"),
			requested: "5000",
			expIDs:    []uint64{1, 2},
			expTotal:  "13500",
		},
		{
			name:      "Single row covers, later rows untouched",
			lines:     ledgerLines("9000", "4500", "2000"),
			requested: "8000",
			expIDs:    []uint64{1},
			expTotal:  "9000",
		},
		{
			name:      "All rows together still short",
			lines:     ledgerLines("4500", "9000"),
			requested: "14000",
			expErr:    domain.ErrInsufficientBalance,
		},
		{
			name:      "Empty ledger",
			lines:     ledgerLines(),
			requested: "5000",
			expErr:    domain.ErrInsufficientBalance,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids, total, err := planReservation(tc.lines, decimal.MustParse(tc.requested))

			if tc.expErr != nil {
				assert.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expIDs, ids)
			assert.Zero(t, total.Cmp(decimal.MustParse(tc.expTotal)))
			assert.GreaterOrEqual(t, total.Cmp(decimal.MustParse(tc.requested)), 0)
		})
	}
}
