package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
	"github.com/justsurfingit/staffing-crm/internal/jobid"
	"github.com/justsurfingit/staffing-crm/internal/models"
)

const defaultAllocationBackoff = 25 * time.Millisecond

type JobRequirementService struct {
	DB        *gorm.DB
	Generator *jobid.Generator

	// MaxAttempts bounds the number of inserts tried when the allocated
	// identifier is taken by a concurrent writer.
	MaxAttempts int
	Backoff     time.Duration
}

func NewJobRequirementService(db *gorm.DB, gen *jobid.Generator, maxAttempts int) *JobRequirementService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &JobRequirementService{
		DB:          db,
		Generator:   gen,
		MaxAttempts: maxAttempts,
		Backoff:     defaultAllocationBackoff,
	}
}

// Create allocates a job identifier for the requirement and stores it. If
// the insert hits the unique index on job_id, the identifier set is read
// again and allocation is repeated, up to MaxAttempts times.
func (s *JobRequirementService) Create(ctx context.Context, req *dtos.JobRequirementRequest) (*models.JobRequirement, error) {
	job := &models.JobRequirement{}
	if err := applyJobRequirement(job, req); err != nil {
		return nil, err
	}

	err := retry(ctx, s.MaxAttempts, s.Backoff, isDuplicateKey, func(attempt int) error {
		id, err := s.Generator.Next(ctx, req.Title)
		if err != nil {
			return err
		}

		job.ID = ""
		job.JobID = id.String()

		if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
			if isDuplicateKey(err) {
				slog.WarnContext(ctx, "job identifier already taken", "job_id", job.JobID, "attempt", attempt)
			}
			return err
		}
		return nil
	})
	switch {
	case isDuplicateKey(err):
		return nil, fmt.Errorf("%w after %d attempts: %w", ErrIdentifierConflict, s.MaxAttempts, err)
	case err != nil:
		return nil, fmt.Errorf("creating job requirement: %w", err)
	}

	slog.InfoContext(ctx, "job requirement created", "id", job.ID, "job_id", job.JobID, "title", job.Title)
	return job, nil
}

// PreviewID returns the identifier the next requirement with title would
// get, without reserving it.
func (s *JobRequirementService) PreviewID(ctx context.Context, title string) (jobid.Identifier, error) {
	return s.Generator.Next(ctx, title)
}

func (s *JobRequirementService) List(ctx context.Context, f dtos.ListFilter) ([]models.JobRequirement, error) {
	var jobs []models.JobRequirement
	q := applyFilter(s.DB.WithContext(ctx), f, "status", "job_id", "title", "client", "location")
	if err := q.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("listing job requirements: %w", err)
	}
	return jobs, nil
}

func (s *JobRequirementService) Get(ctx context.Context, id string) (*models.JobRequirement, error) {
	var job models.JobRequirement
	if err := s.DB.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, wrapLookup(err, "job requirement", id)
	}
	return &job, nil
}

func (s *JobRequirementService) GetByJobID(ctx context.Context, jobID string) (*models.JobRequirement, error) {
	return findByJobID(s.DB.WithContext(ctx), jobID)
}

func findByJobID(db *gorm.DB, jobID string) (*models.JobRequirement, error) {
	var job models.JobRequirement
	err := db.First(&job, "job_id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", jobID, ErrJobRequirementNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading job requirement %s: %w", jobID, err)
	}
	return &job, nil
}

// Update overwrites the editable fields. The job identifier is kept even
// when the title moves the requirement to another category.
func (s *JobRequirementService) Update(ctx context.Context, id string, req *dtos.JobRequirementRequest) (*models.JobRequirement, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyJobRequirement(job, req); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, fmt.Errorf("updating job requirement %s: %w", id, err)
	}
	return job, nil
}

// Delete soft-deletes the requirement. Its identifier stays reserved.
func (s *JobRequirementService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.JobRequirement{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting job requirement %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job requirement %s: %w", id, ErrNotFound)
	}
	return nil
}

func applyJobRequirement(job *models.JobRequirement, req *dtos.JobRequirementRequest) error {
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return err
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}

	job.Title = req.Title
	job.Client = req.Client
	job.Vendor = req.Vendor
	job.Description = req.Description
	job.TechStack = nonNil(req.TechStack)
	job.Experience = req.Experience
	job.Location = req.Location
	job.Status = req.Status
	job.Priority = req.Priority
	job.Budget = req.Budget
	job.Deadline = deadline
	job.StartDate = start
	job.EndDate = end
	job.AssignedResources = nonNil(req.AssignedResources)
	job.Notes = req.Notes

	job.SalaryMin, job.SalaryMax, job.SalaryCurrency = nil, nil, "USD"
	if req.Salary != nil {
		lo, hi := req.Salary.Min, req.Salary.Max
		job.SalaryMin, job.SalaryMax = &lo, &hi
		if req.Salary.Currency != "" {
			job.SalaryCurrency = req.Salary.Currency
		}
	}

	return nil
}
