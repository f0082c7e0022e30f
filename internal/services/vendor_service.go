package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
	"github.com/justsurfingit/staffing-crm/internal/models"
)

type VendorService struct {
	DB *gorm.DB
}

func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{DB: db}
}

func (s *VendorService) Create(ctx context.Context, req *dtos.VendorRequest) (*models.Vendor, error) {
	vendor := &models.Vendor{Contacts: contactsFromRequest(req.Contacts)}
	applyVendor(vendor, req)

	if err := s.DB.WithContext(ctx).Create(vendor).Error; err != nil {
		return nil, fmt.Errorf("creating vendor: %w", err)
	}
	return vendor, nil
}

func (s *VendorService) List(ctx context.Context, f dtos.ListFilter) ([]models.Vendor, error) {
	var vendors []models.Vendor
	q := applyFilter(s.DB.WithContext(ctx).Preload("Contacts"), f, "status", "name", "company", "industry")
	if err := q.Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}
	return vendors, nil
}

func (s *VendorService) Get(ctx context.Context, id string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.DB.WithContext(ctx).Preload("Contacts").First(&vendor, "id = ?", id).Error; err != nil {
		return nil, wrapLookup(err, "vendor", id)
	}
	return &vendor, nil
}

// Update overwrites the vendor and replaces its contact list.
func (s *VendorService) Update(ctx context.Context, id string, req *dtos.VendorRequest) (*models.Vendor, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vendor models.Vendor
		if err := tx.First(&vendor, "id = ?", id).Error; err != nil {
			return wrapLookup(err, "vendor", id)
		}

		applyVendor(&vendor, req)
		if err := tx.Omit(clause.Associations).Save(&vendor).Error; err != nil {
			return fmt.Errorf("updating vendor %s: %w", id, err)
		}

		if err := tx.Where("vendor_id = ?", id).Delete(&models.Contact{}).Error; err != nil {
			return fmt.Errorf("removing contacts of vendor %s: %w", id, err)
		}

		contacts := contactsFromRequest(req.Contacts)
		if len(contacts) == 0 {
			return nil
		}
		for i := range contacts {
			contacts[i].VendorID = id
		}
		if err := tx.Create(&contacts).Error; err != nil {
			return fmt.Errorf("creating contacts of vendor %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *VendorService) Delete(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Vendor{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("deleting vendor %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("vendor %s: %w", id, ErrNotFound)
		}

		if err := tx.Where("vendor_id = ?", id).Delete(&models.Contact{}).Error; err != nil {
			return fmt.Errorf("removing contacts of vendor %s: %w", id, err)
		}
		return nil
	})
}

func applyVendor(v *models.Vendor, req *dtos.VendorRequest) {
	v.Name = req.Name
	v.Company = req.Company
	v.Industry = req.Industry
	v.Status = req.Status
	v.Notes = req.Notes
}

func contactsFromRequest(in []dtos.ContactRequest) []models.Contact {
	out := make([]models.Contact, 0, len(in))
	for _, c := range in {
		out = append(out, models.Contact{
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Position:  c.Position,
			IsPrimary: c.IsPrimary,
		})
	}
	return out
}
