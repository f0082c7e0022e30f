package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
	"github.com/justsurfingit/staffing-crm/internal/models"
)

const systemUser = "system"

type ProcessFlowService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewProcessFlowService(db *gorm.DB) *ProcessFlowService {
	return &ProcessFlowService{DB: db, Now: time.Now}
}

// Create links the flow to the job requirement named by req.JobID and opens
// the history entry for its first stage.
func (s *ProcessFlowService) Create(ctx context.Context, req *dtos.ProcessFlowRequest) (*models.ProcessFlow, error) {
	var flow models.ProcessFlow

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := findByJobID(tx, req.JobID)
		if err != nil {
			return err
		}

		if err := applyProcessFlow(&flow, req); err != nil {
			return err
		}
		flow.JobRequirementID = job.ID
		flow.History = []models.ProcessFlowHistory{{
			StageName:   req.CurrentStage,
			EnteredDate: flow.StartDate,
			UpdatedBy:   updatedBy(req),
		}}

		if err := tx.Omit("JobRequirement").Create(&flow).Error; err != nil {
			return fmt.Errorf("creating process flow: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, flow.ID)
}

func (s *ProcessFlowService) List(ctx context.Context, f dtos.ListFilter) ([]models.ProcessFlow, error) {
	var flows []models.ProcessFlow
	q := applyFilter(s.preload(s.DB.WithContext(ctx)), f, "status", "candidate_name", "current_stage")
	if err := q.Find(&flows).Error; err != nil {
		return nil, fmt.Errorf("listing process flows: %w", err)
	}
	return flows, nil
}

func (s *ProcessFlowService) Get(ctx context.Context, id string) (*models.ProcessFlow, error) {
	var flow models.ProcessFlow
	if err := s.preload(s.DB.WithContext(ctx)).First(&flow, "id = ?", id).Error; err != nil {
		return nil, wrapLookup(err, "process flow", id)
	}
	return &flow, nil
}

// Update overwrites the flow. When the stage changes, the open history
// entry is closed with its duration in days and a new one is opened.
func (s *ProcessFlowService) Update(ctx context.Context, id string, req *dtos.ProcessFlowRequest) (*models.ProcessFlow, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var flow models.ProcessFlow
		if err := tx.Preload("JobRequirement", unscoped).First(&flow, "id = ?", id).Error; err != nil {
			return wrapLookup(err, "process flow", id)
		}

		if req.JobID != flow.JobRequirement.JobID {
			job, err := findByJobID(tx, req.JobID)
			if err != nil {
				return err
			}
			flow.JobRequirementID = job.ID
		}

		previousStage := flow.CurrentStage
		if err := applyProcessFlow(&flow, req); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(&flow).Error; err != nil {
			return fmt.Errorf("updating process flow %s: %w", id, err)
		}

		if previousStage == req.CurrentStage {
			return nil
		}
		return s.advanceStage(ctx, tx, &flow, previousStage, updatedBy(req))
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *ProcessFlowService) advanceStage(ctx context.Context, tx *gorm.DB, flow *models.ProcessFlow, from, by string) error {
	now := s.Now().UTC()

	var open []models.ProcessFlowHistory
	if err := tx.Where("process_flow_id = ? AND completed_date IS NULL", flow.ID).Find(&open).Error; err != nil {
		return fmt.Errorf("loading open history of process flow %s: %w", flow.ID, err)
	}
	for i := range open {
		days := DaysBetween(open[i].EnteredDate, now)
		open[i].CompletedDate = &now
		open[i].DurationDays = &days
		if err := tx.Save(&open[i]).Error; err != nil {
			return fmt.Errorf("closing history entry %s: %w", open[i].ID, err)
		}
	}

	entry := models.ProcessFlowHistory{
		ProcessFlowID: flow.ID,
		StageName:     flow.CurrentStage,
		EnteredDate:   now,
		UpdatedBy:     by,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("opening history entry for process flow %s: %w", flow.ID, err)
	}

	slog.InfoContext(ctx, "process flow stage changed", "id", flow.ID, "from", from, "to", flow.CurrentStage)
	return nil
}

func (s *ProcessFlowService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.ProcessFlow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting process flow %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("process flow %s: %w", id, ErrNotFound)
	}
	return nil
}

// preload keeps the link to soft-deleted job requirements so a flow still
// shows which requirement it belonged to.
func (s *ProcessFlowService) preload(q *gorm.DB) *gorm.DB {
	return q.
		Preload("JobRequirement", unscoped).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("entered_date ASC")
		})
}

func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// DaysBetween returns the number of calendar days from from to to, never
// negative.
func DaysBetween(from, to time.Time) int {
	y1, m1, d1 := from.UTC().Date()
	y2, m2, d2 := to.UTC().Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)

	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func applyProcessFlow(flow *models.ProcessFlow, req *dtos.ProcessFlowRequest) error {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	if start == nil {
		return fmt.Errorf("%w: start_date is required", ErrInvalidInput)
	}
	expected, err := parseDate(req.ExpectedCompletionDate)
	if err != nil {
		return err
	}

	flow.CandidateName = req.CandidateName
	flow.CurrentStage = req.CurrentStage
	flow.StartDate = *start
	flow.ExpectedCompletionDate = expected
	flow.Status = req.Status
	flow.Priority = req.Priority
	flow.Notes = req.Notes
	return nil
}

func updatedBy(req *dtos.ProcessFlowRequest) string {
	if req.UpdatedBy != "" {
		return req.UpdatedBy
	}
	return systemUser
}
