package cli

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/ymakhloufi/loancalc/internal/app/history"
	"github.com/ymakhloufi/loancalc/internal/app/validator"
	"github.com/ymakhloufi/loancalc/internal/pkg/model"
	"go.uber.org/zap"
)

type Store interface {
	NextID() model.LoanID
	Add(input model.LoanInput, output *model.LoanOutput) model.LoanRecord
	Update(rec model.LoanRecord) error
	List() ([]model.LoanRecord, error)
}

type Calculator interface {
	Calculate(loan model.LoanInput, accrualDate civil.Date) (model.LoanOutput, error)
}

type menuChoice int

const (
	choiceAddLoan menuChoice = iota
	choiceEditLoan
	choiceExit
)

var menuOptions = []string{"Add loan", "Edit loan", "Exit"}

// Session is the interactive add/edit/exit loop.
type Session struct {
	console    *Console
	form       *LoanForm
	validator  *validator.Validator
	calculator Calculator
	store      Store
	logger     *zap.Logger
}

func NewSession(console *Console, v *validator.Validator, calculator Calculator, store Store, logger *zap.Logger) *Session {
	return &Session{
		console:    console,
		form:       NewLoanForm(console, v, logger.Named("LoanForm")),
		validator:  v,
		calculator: calculator,
		store:      store,
		logger:     logger,
	}
}

// Run loops until the operator exits. Only input failures end it early.
func (s *Session) Run() error {
	for {
		idx, err := s.console.Select("Please select an option:", menuOptions)
		if err != nil {
			return err
		}

		switch menuChoice(idx) {
		case choiceAddLoan:
			if err := s.addLoan(); err != nil {
				return err
			}
		case choiceEditLoan:
			err := s.editLoan()
			if errors.Is(err, history.ErrNoLoans) {
				s.console.Println(err)
				continue
			}
			if err != nil {
				return err
			}
		case choiceExit:
			s.logger.Info("session finished")
			return nil
		}
	}
}

func (s *Session) addLoan() error {
	input, err := s.form.Collect(s.store.NextID(), nil)
	if err != nil {
		return err
	}
	output, err := s.analyse(input)
	if err != nil {
		return err
	}
	s.store.Add(input, &output)
	return nil
}

func (s *Session) editLoan() error {
	records, err := s.store.List()
	if err != nil {
		return err
	}

	options := make([]string, 0, len(records))
	for _, rec := range records {
		options = append(options, describe(rec))
	}
	idx, err := s.console.Select("Select a loan to edit:", options)
	if err != nil {
		return err
	}

	current := records[idx].Input
	input, err := s.form.Collect(current.ID, &current)
	if err != nil {
		return err
	}
	output, err := s.analyse(input)
	if err != nil {
		return err
	}
	return s.store.Update(model.LoanRecord{Input: input, Output: &output})
}

// analyse asks for the accrual date, prints the summary and waits for the operator.
func (s *Session) analyse(loan model.LoanInput) (model.LoanOutput, error) {
	prompt := "Accrual date (YYYY-MM-DD, leave empty for end of loan)"
	output, err := ask(s.console, prompt, func(text string) (model.LoanOutput, error) {
		accrualDate := loan.EndDate
		if !validator.IsBlank(text) {
			d, err := s.validator.ParseDate(text)
			if err != nil {
				return model.LoanOutput{}, err
			}
			accrualDate = d
		}
		return s.calculator.Calculate(loan, accrualDate)
	})
	if err != nil {
		return model.LoanOutput{}, err
	}

	printSummary(s.console, loan, output)
	if _, err := s.console.ReadLine("Press Enter to continue..."); err != nil {
		return model.LoanOutput{}, err
	}
	return output, nil
}

func describe(rec model.LoanRecord) string {
	in := rec.Input
	desc := fmt.Sprintf("#%d %s %s, %s to %s, %s%% + %s%%",
		in.ID, in.Amount.StringFixed(2), in.Currency, in.StartDate, in.EndDate,
		asPercentage(in.InterestRate), asPercentage(in.Margin))
	if rec.Output != nil {
		desc += fmt.Sprintf(", %s %s interest by %s", rec.Output.TotalInterest.StringFixed(2), in.Currency, rec.Output.AccrualDate)
	}
	return desc
}
