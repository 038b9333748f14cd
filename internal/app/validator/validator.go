package validator

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// ValidationError is a recoverable, field-local failure meant to be shown to the user as is.
type ValidationError string

func (e ValidationError) Error() string {
	return "* " + string(e)
}

const (
	ErrInvalidDate       ValidationError = "invalid date, expected YYYY-MM-DD"
	ErrDateInPast        ValidationError = "date cannot be in the past"
	ErrEndNotAfterStart  ValidationError = "the end date of the loan must be after the start date"
	ErrInvalidNumber     ValidationError = "invalid number"
	ErrInvalidCurrency   ValidationError = "invalid currency"
	ErrNonPositiveAmount ValidationError = "amount must be greater than zero"
	ErrNegativeRate      ValidationError = "rate cannot be negative"
)

type Option func(*Validator)

// WithToday replaces the clock used for the "not in the past" rule.
func WithToday(today func() civil.Date) Option {
	return func(v *Validator) {
		v.today = today
	}
}

type Validator struct {
	today  func() civil.Date
	logger *zap.Logger
}

func New(logger *zap.Logger, opts ...Option) *Validator {
	v := &Validator{
		today:  func() civil.Date { return civil.DateOf(time.Now()) },
		logger: logger,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ParseDate accepts an ISO date that is today or later.
func (v Validator) ParseDate(text string) (civil.Date, error) {
	date, ok := parseISODate(text)
	if !ok {
		return civil.Date{}, v.reject("date", text, ErrInvalidDate)
	}
	if date.Before(v.today()) {
		return civil.Date{}, v.reject("date", text, ErrDateInPast)
	}
	return date, nil
}

func (v Validator) ParseEndDate(text string, start civil.Date) (civil.Date, error) {
	end, ok := parseISODate(text)
	if !ok {
		return civil.Date{}, v.reject("end date", text, ErrInvalidDate)
	}
	if err := v.CheckEndDate(end, start); err != nil {
		return civil.Date{}, err
	}
	return end, nil
}

// CheckEndDate enforces end > start for an already parsed end date.
func (v Validator) CheckEndDate(end, start civil.Date) error {
	if !end.After(start) {
		return v.reject("end date", end.String(), ErrEndNotAfterStart)
	}
	return nil
}

func (v Validator) ParseDecimal(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	// exponent notation ("1e3") is not a plain decimal
	if strings.ContainsAny(trimmed, "eE") {
		return decimal.Decimal{}, v.reject("number", text, ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, v.reject("number", text, ErrInvalidNumber)
	}
	return d, nil
}

func (v Validator) ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := v.ParseDecimal(text)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, v.reject("amount", text, ErrNonPositiveAmount)
	}
	return amount, nil
}

// ParseCurrency accepts any ISO 4217 code except XXX (no currency) and XTS (testing).
func (v Validator) ParseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil || unit == currency.XXX || unit == currency.XTS {
		return currency.Unit{}, v.reject("currency", code, ErrInvalidCurrency)
	}
	return unit, nil
}

// ParsePercentage turns a user-entered percentage ("5.25") into a fraction (0.0525).
func (v Validator) ParsePercentage(text string) (decimal.Decimal, error) {
	pct, err := v.ParseDecimal(text)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if pct.IsNegative() {
		return decimal.Decimal{}, v.reject("percentage", text, ErrNegativeRate)
	}
	return pct.Shift(-2), nil
}

func (v Validator) reject(field, text string, err ValidationError) ValidationError {
	v.logger.Debug("rejected input", zap.String("field", field), zap.String("input", text), zap.Error(err))
	return err
}

func parseISODate(text string) (civil.Date, bool) {
	date, err := civil.ParseDate(strings.TrimSpace(text))
	if err != nil {
		return civil.Date{}, false
	}
	return date, true
}
