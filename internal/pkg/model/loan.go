package model

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type LoanID int

// LoanInput is a validated loan. InterestRate and Margin are fractions (0.05 == 5%).
type LoanInput struct {
	ID           LoanID
	StartDate    civil.Date
	EndDate      civil.Date
	Amount       decimal.Decimal
	Currency     currency.Unit
	InterestRate decimal.Decimal
	Margin       decimal.Decimal
}

// Equal compares decimals by value, so 5 and 5.00 are the same rate.
func (l LoanInput) Equal(o LoanInput) bool {
	return l.ID == o.ID &&
		l.StartDate == o.StartDate &&
		l.EndDate == o.EndDate &&
		l.Amount.Equal(o.Amount) &&
		l.Currency == o.Currency &&
		l.InterestRate.Equal(o.InterestRate) &&
		l.Margin.Equal(o.Margin)
}

type LoanOutput struct {
	AccrualDate                civil.Date
	ElapsedDays                decimal.Decimal
	DailyInterestWithMargin    decimal.Decimal
	DailyInterestWithoutMargin decimal.Decimal
	TotalInterest              decimal.Decimal
}

// LoanRecord is a history entry. Output is nil until the loan has been analysed.
type LoanRecord struct {
	Input  LoanInput
	Output *LoanOutput
}
