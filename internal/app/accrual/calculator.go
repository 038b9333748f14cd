package accrual

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/ymakhloufi/loancalc/internal/pkg/model"
	"go.uber.org/zap"
)

// Policy decides what happens when the accrual date lies before the loan start date.
type Policy string

const (
	PolicyReject Policy = "reject"
	PolicyClamp  Policy = "clamp"
	PolicyAllow  Policy = "allow"
)

// divisionPrecision is far beyond display precision, so nothing visible is lost dividing by 365.
const divisionPrecision = 28

var (
	daysPerYear = decimal.NewFromInt(365)

	ErrAccrualBeforeStart = errors.New("* accrual date cannot be before the start date of the loan")
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyReject, PolicyClamp, PolicyAllow:
		return p, nil
	default:
		return "", fmt.Errorf("unknown negative span policy '%s'", s)
	}
}

// ElapsedDays is the signed number of calendar days from the loan start to accrualDate.
func ElapsedDays(loan model.LoanInput, accrualDate civil.Date) int {
	return accrualDate.DaysSince(loan.StartDate)
}

func DailyInterestWithMargin(loan model.LoanInput) decimal.Decimal {
	return loan.Amount.Mul(loan.InterestRate.Add(loan.Margin)).DivRound(daysPerYear, divisionPrecision)
}

func DailyInterestWithoutMargin(loan model.LoanInput) decimal.Decimal {
	return loan.Amount.Mul(loan.InterestRate).DivRound(daysPerYear, divisionPrecision)
}

// TotalInterest is simple interest including margin over a flat 365-day year.
func TotalInterest(loan model.LoanInput, accrualDate civil.Date) decimal.Decimal {
	return interestOver(loan, ElapsedDays(loan, accrualDate))
}

func interestOver(loan model.LoanInput, days int) decimal.Decimal {
	return loan.Amount.
		Mul(loan.InterestRate.Add(loan.Margin)).
		Mul(decimal.NewFromInt(int64(days))).
		DivRound(daysPerYear, divisionPrecision)
}

type Calculator struct {
	policy Policy
	logger *zap.Logger
}

func NewCalculator(policy Policy, logger *zap.Logger) *Calculator {
	return &Calculator{policy: policy, logger: logger}
}

// Calculate produces the full output for loan as of accrualDate, applying the negative span policy.
func (c Calculator) Calculate(loan model.LoanInput, accrualDate civil.Date) (model.LoanOutput, error) {
	days := ElapsedDays(loan, accrualDate)
	if days < 0 {
		switch c.policy {
		case PolicyAllow:
		case PolicyClamp:
			c.logger.Debug("clamping negative span", zap.Int("elapsedDays", days))
			days = 0
		default:
			return model.LoanOutput{}, ErrAccrualBeforeStart
		}
	}

	out := model.LoanOutput{
		AccrualDate:                accrualDate,
		ElapsedDays:                decimal.NewFromInt(int64(days)),
		DailyInterestWithMargin:    DailyInterestWithMargin(loan),
		DailyInterestWithoutMargin: DailyInterestWithoutMargin(loan),
		TotalInterest:              interestOver(loan, days),
	}
	c.logger.Info("calculated accrual",
		zap.Int("loanID", int(loan.ID)),
		zap.Stringer("accrualDate", accrualDate),
		zap.Int("elapsedDays", days),
		zap.Stringer("totalInterest", out.TotalInterest),
	)
	return out, nil
}
