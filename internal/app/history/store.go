package history

import (
	"errors"
	"fmt"

	"github.com/ymakhloufi/loancalc/internal/pkg/model"
	"go.uber.org/zap"
)

var (
	ErrNoLoans  = errors.New("* no loans found")
	ErrNotFound = errors.New("loan not found")
)

// Store keeps the loans of one session. It is not safe for concurrent use.
type Store struct {
	records []model.LoanRecord
	byID    map[model.LoanID]int
	logger  *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{
		byID:   make(map[model.LoanID]int),
		logger: logger,
	}
}

// NextID is the id the next added loan will receive.
func (s *Store) NextID() model.LoanID {
	return model.LoanID(s.Len())
}

// Add appends the loan under NextID, overriding whatever ID the input carries.
func (s *Store) Add(input model.LoanInput, output *model.LoanOutput) model.LoanRecord {
	input.ID = s.NextID()
	rec := model.LoanRecord{Input: input, Output: output}
	s.byID[input.ID] = len(s.records)
	s.records = append(s.records, rec)
	s.logger.Info("added loan", zap.Int("loanID", int(input.ID)))
	return rec
}

func (s *Store) Get(id model.LoanID) (model.LoanRecord, error) {
	idx, ok := s.byID[id]
	if !ok {
		return model.LoanRecord{}, fmt.Errorf("get loan %d: %w", id, ErrNotFound)
	}
	return s.records[idx], nil
}

// Update replaces the record with the same loan ID.
func (s *Store) Update(rec model.LoanRecord) error {
	idx, ok := s.byID[rec.Input.ID]
	if !ok {
		return fmt.Errorf("update loan %d: %w", rec.Input.ID, ErrNotFound)
	}
	s.records[idx] = rec
	s.logger.Info("updated loan", zap.Int("loanID", int(rec.Input.ID)))
	return nil
}

// List returns a copy of all records in insertion order, or ErrNoLoans when empty.
func (s *Store) List() ([]model.LoanRecord, error) {
	if len(s.records) == 0 {
		return nil, ErrNoLoans
	}
	out := make([]model.LoanRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Store) Len() int {
	return len(s.records)
}
