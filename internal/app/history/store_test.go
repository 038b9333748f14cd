package history

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymakhloufi/loancalc/internal/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

func testLoan(amount int64) model.LoanInput {
	return model.LoanInput{
		ID:           99,
		StartDate:    civil.Date{Year: 2025, Month: 1, Day: 1},
		EndDate:      civil.Date{Year: 2026, Month: 1, Day: 1},
		Amount:       decimal.NewFromInt(amount),
		Currency:     currency.EUR,
		InterestRate: decimal.RequireFromString("0.04"),
		Margin:       decimal.Zero,
	}
}

func TestStore_Empty(t *testing.T) {
	s := NewStore(zap.NewNop())

	_, err := s.List()
	assert.ErrorIs(t, err, ErrNoLoans)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, model.LoanID(0), s.NextID())

	_, err = s.Get(0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	s := NewStore(zap.NewNop())

	first := s.Add(testLoan(100), nil)
	second := s.Add(testLoan(200), nil)

	assert.Equal(t, model.LoanID(0), first.Input.ID)
	assert.Equal(t, model.LoanID(1), second.Input.ID)
	assert.Equal(t, model.LoanID(2), s.NextID())

	recs, err := s.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.True(t, recs[1].Input.Amount.Equal(decimal.NewFromInt(200)))
}

func TestStore_Update(t *testing.T) {
	s := NewStore(zap.NewNop())
	rec := s.Add(testLoan(100), nil)

	rec.Input.Amount = decimal.NewFromInt(150)
	rec.Output = &model.LoanOutput{TotalInterest: decimal.NewFromInt(6)}
	require.NoError(t, s.Update(rec))

	got, err := s.Get(rec.Input.ID)
	require.NoError(t, err)
	assert.True(t, got.Input.Amount.Equal(decimal.NewFromInt(150)))
	require.NotNil(t, got.Output)
	assert.True(t, got.Output.TotalInterest.Equal(decimal.NewFromInt(6)))

	missing := rec
	missing.Input.ID = 7
	assert.ErrorIs(t, s.Update(missing), ErrNotFound)
}

func TestStore_ListIsACopy(t *testing.T) {
	s := NewStore(zap.NewNop())
	s.Add(testLoan(100), nil)

	recs, err := s.List()
	require.NoError(t, err)
	recs[0].Input.Amount = decimal.NewFromInt(1)

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.True(t, got.Input.Amount.Equal(decimal.NewFromInt(100)))
}
