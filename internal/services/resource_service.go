package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
	"github.com/justsurfingit/staffing-crm/internal/models"
)

type ResourceService struct {
	DB *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{DB: db}
}

func (s *ResourceService) Create(ctx context.Context, req *dtos.ResourceRequest) (*models.Resource, error) {
	resource := &models.Resource{}
	applyResource(resource, req)

	if err := s.DB.WithContext(ctx).Create(resource).Error; err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return resource, nil
}

// List filters by availability when f.Status is set.
func (s *ResourceService) List(ctx context.Context, f dtos.ListFilter) ([]models.Resource, error) {
	var resources []models.Resource
	q := applyFilter(s.DB.WithContext(ctx), f, "availability", "name", "contact", "tech_stack")
	if err := q.Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	return resources, nil
}

func (s *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	var resource models.Resource
	if err := s.DB.WithContext(ctx).First(&resource, "id = ?", id).Error; err != nil {
		return nil, wrapLookup(err, "resource", id)
	}
	return &resource, nil
}

func (s *ResourceService) Update(ctx context.Context, id string, req *dtos.ResourceRequest) (*models.Resource, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyResource(resource, req)
	if err := s.DB.WithContext(ctx).Save(resource).Error; err != nil {
		return nil, fmt.Errorf("updating resource %s: %w", id, err)
	}
	return resource, nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.Resource{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting resource %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	return nil
}

func applyResource(r *models.Resource, req *dtos.ResourceRequest) {
	r.Name = req.Name
	r.TechStack = nonNil(req.TechStack)
	r.Type = req.Type
	r.Source = req.Source
	r.Contact = req.Contact
	r.Phone = req.Phone
	r.Experience = req.Experience
	r.Availability = req.Availability
	r.HourlyRate = req.HourlyRate
	r.ResumeURL = req.ResumeURL
	r.Notes = req.Notes
}
