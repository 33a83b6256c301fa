package seed

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Outcome reports how a single write resolved.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeAlreadyExists
)

// Writer persists one row at a time and treats duplicate-key rejections
// as an expected steady-state outcome rather than an error. The fixture
// references the same user from many places; instead of pre-deduplicating
// we let the unique indexes absorb the repeats.
type Writer struct {
	db *gorm.DB
}

func NewWriter(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

// Write inserts one record. A uniqueness violation resolves to
// OutcomeAlreadyExists with no error; any other store failure comes back
// as an error and the row is not written.
func (w *Writer) Write(record interface{}) (Outcome, error) {
	err := w.db.Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return OutcomeAlreadyExists, nil
	}
	if err != nil {
		return OutcomeCreated, fmt.Errorf("write record: %w", err)
	}
	return OutcomeCreated, nil
}
