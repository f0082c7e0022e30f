package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/justsurfingit/staffing-crm/internal/jobid"
	"github.com/justsurfingit/staffing-crm/internal/models"
)

// CategoryService keeps the job title classification rules in the
// job_categories table so they can be changed without a release.
type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

// Seed stores rules when the table is empty. Existing rules are left alone.
func (s *CategoryService) Seed(ctx context.Context, rules []jobid.Rule) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.JobCategory{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting job categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.JobCategory, 0, len(rules))
	for i, r := range rules {
		if err := jobid.ValidateCode(r.Code); err != nil {
			return err
		}
		rows = append(rows, models.JobCategory{
			Code:     string(r.Code),
			Keywords: r.Keywords,
			Position: i + 1,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	if err := s.DB.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("seeding job categories: %w", err)
	}

	slog.InfoContext(ctx, "seeded job categories", "count", len(rows))
	return nil
}

// List returns the stored categories in match order.
func (s *CategoryService) List(ctx context.Context) ([]models.JobCategory, error) {
	var categories []models.JobCategory
	if err := s.DB.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("listing job categories: %w", err)
	}
	return categories, nil
}

// Classifier builds a classifier from the stored rules, falling back to
// fallback for titles no rule matches.
func (s *CategoryService) Classifier(ctx context.Context, fallback jobid.Code) (*jobid.Classifier, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	rules := make([]jobid.Rule, 0, len(categories))
	for _, c := range categories {
		code := jobid.Code(c.Code)
		if err := jobid.ValidateCode(code); err != nil {
			return nil, fmt.Errorf("job category %d: %w", c.ID, err)
		}
		rules = append(rules, jobid.Rule{Code: code, Keywords: c.Keywords})
	}

	return jobid.NewClassifier(rules, fallback), nil
}
