package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
)

var (
	ErrNotFound               = errors.New("record not found")
	ErrJobRequirementNotFound = errors.New("job requirement not found")
	ErrInvalidInput           = errors.New("invalid input")
	// ErrIdentifierConflict is returned when every allocation attempt lost
	// the race for a job identifier to a concurrent writer.
	ErrIdentifierConflict = errors.New("could not allocate a unique job identifier")
)

func parseDate(s string) (*time.Time, error) {
	t, err := dtos.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return t, nil
}

func wrapLookup(err error, what, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("loading %s %s: %w", what, id, err)
}

// isDuplicateKey matches translated unique violations and, for drivers that
// do not translate, the raw postgres and sqlite messages.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
