package cli

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/ymakhloufi/loancalc/internal/app/validator"
	"github.com/ymakhloufi/loancalc/internal/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// LoanForm collects the six loan fields in order: start, end, amount, currency, rate, margin.
type LoanForm struct {
	console   *Console
	validator *validator.Validator
	logger    *zap.Logger
}

func NewLoanForm(console *Console, v *validator.Validator, logger *zap.Logger) *LoanForm {
	return &LoanForm{console: console, validator: v, logger: logger}
}

// Collect asks for every field. With existing set, blank answers keep the existing value.
func (f LoanForm) Collect(id model.LoanID, existing *model.LoanInput) (model.LoanInput, error) {
	v := f.validator
	var (
		defStart, defEnd   *civil.Date
		defAmount          *decimal.Decimal
		defCurrency        *currency.Unit
		defRate, defMargin *decimal.Decimal

		startP    = "Start date (YYYY-MM-DD)"
		endP      = "End date (YYYY-MM-DD)"
		amountP   = "Loan amount (XXXX.XX)"
		currencyP = "Currency (USD, EUR, GBP, etc.)"
		rateP     = "Interest rate in % (XX.XX)"
		marginP   = "Margin in % (XX.XX)"
	)
	if existing != nil {
		f.console.Println("Please enter the following details for the loan (leave blank to keep existing values):")
		defStart, defEnd = &existing.StartDate, &existing.EndDate
		defAmount, defCurrency = &existing.Amount, &existing.Currency
		defRate, defMargin = &existing.InterestRate, &existing.Margin

		startP = withDefault(startP, existing.StartDate.String())
		endP = withDefault(endP, existing.EndDate.String())
		amountP = withDefault(amountP, existing.Amount.String())
		currencyP = withDefault(currencyP, existing.Currency.String())
		rateP = withDefault(rateP, asPercentage(existing.InterestRate))
		marginP = withDefault(marginP, asPercentage(existing.Margin))
	} else {
		f.console.Println("Please enter the following details for the loan:")
	}

	start, err := ask(f.console, startP, func(s string) (civil.Date, error) {
		return validator.OrExisting(s, defStart, v.ParseDate)
	})
	if err != nil {
		return model.LoanInput{}, err
	}

	// a kept end date still has to follow a possibly edited start date
	end, err := ask(f.console, endP, func(s string) (civil.Date, error) {
		if defEnd != nil && validator.IsBlank(s) {
			return *defEnd, v.CheckEndDate(*defEnd, start)
		}
		return v.ParseEndDate(s, start)
	})
	if err != nil {
		return model.LoanInput{}, err
	}

	amount, err := ask(f.console, amountP, func(s string) (decimal.Decimal, error) {
		return validator.OrExisting(s, defAmount, v.ParseAmount)
	})
	if err != nil {
		return model.LoanInput{}, err
	}

	unit, err := ask(f.console, currencyP, func(s string) (currency.Unit, error) {
		return validator.OrExisting(s, defCurrency, v.ParseCurrency)
	})
	if err != nil {
		return model.LoanInput{}, err
	}

	rate, err := ask(f.console, rateP, func(s string) (decimal.Decimal, error) {
		return validator.OrExisting(s, defRate, v.ParsePercentage)
	})
	if err != nil {
		return model.LoanInput{}, err
	}

	margin, err := ask(f.console, marginP, func(s string) (decimal.Decimal, error) {
		return validator.OrExisting(s, defMargin, v.ParsePercentage)
	})
	if err != nil {
		return model.LoanInput{}, err
	}

	loan := model.LoanInput{
		ID:           id,
		StartDate:    start,
		EndDate:      end,
		Amount:       amount,
		Currency:     unit,
		InterestRate: rate,
		Margin:       margin,
	}
	f.logger.Debug("collected loan", zap.Int("loanID", int(id)), zap.Bool("edit", existing != nil))
	return loan, nil
}

func withDefault(prompt, def string) string {
	return fmt.Sprintf("%s (default: %s)", prompt, def)
}

func asPercentage(fraction decimal.Decimal) string {
	return fraction.Shift(2).StringFixed(2)
}
