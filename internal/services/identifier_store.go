package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/justsurfingit/staffing-crm/internal/jobid"
	"github.com/justsurfingit/staffing-crm/internal/models"
)

// IdentifierStore reads the job identifiers issued under Prefix from the
// job_requirements table. Soft-deleted rows are included: numbers are
// reserved forever.
type IdentifierStore struct {
	DB     *gorm.DB
	Prefix string
	// ScanAll returns every identifier of the tenant instead of only those of
	// the requested category.
	ScanAll bool
}

var _ jobid.Provider = (*IdentifierStore)(nil)

func NewIdentifierStore(db *gorm.DB, prefix string, scanAll bool) *IdentifierStore {
	return &IdentifierStore{DB: db, Prefix: prefix, ScanAll: scanAll}
}

func (s *IdentifierStore) Identifiers(ctx context.Context, code jobid.Code) ([]string, error) {
	q := s.DB.WithContext(ctx).Unscoped().Model(&models.JobRequirement{})
	if s.ScanAll {
		q = q.Where("job_id LIKE ?", s.Prefix+"-%")
	} else {
		q = q.Where("job_id LIKE ?", s.Prefix+"-"+string(code)+"-%")
	}

	var ids []string
	if err := q.Pluck("job_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("listing job identifiers: %w", err)
	}
	return ids, nil
}
