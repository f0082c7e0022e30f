package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

type Vendor struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Company  string `gorm:"not null" json:"company"`
	Industry string `json:"industry,omitempty"`
	Status   string `gorm:"not null;default:'active'" json:"status"`
	Notes    string `gorm:"type:text" json:"notes,omitempty"`

	Contacts []Contact `gorm:"constraint:OnDelete:CASCADE" json:"contacts"`
}

func (v *Vendor) BeforeCreate(*gorm.DB) error {
	assignID(&v.ID)
	return nil
}

type Contact struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	VendorID string `gorm:"size:36;index;not null" json:"vendor_id"`

	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`
	Position  string `json:"position,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

func (c *Contact) BeforeCreate(*gorm.DB) error {
	assignID(&c.ID)
	return nil
}

// Resource is a candidate that can be placed on a job requirement.
type Resource struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string   `gorm:"not null" json:"name"`
	TechStack    []string `gorm:"serializer:json;type:text" json:"tech_stack"`
	Type         string   `gorm:"not null" json:"type"`
	Source       string   `json:"source"`
	Contact      string   `gorm:"not null" json:"contact"`
	Phone        string   `json:"phone,omitempty"`
	Experience   *int     `json:"experience,omitempty"`
	Availability string   `gorm:"not null" json:"availability"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty"`
	ResumeURL    string   `json:"resume_url,omitempty"`
	Notes        string   `gorm:"type:text" json:"notes,omitempty"`
}

func (r *Resource) BeforeCreate(*gorm.DB) error {
	assignID(&r.ID)
	return nil
}

// JobRequirement is an open client position. JobID is assigned once at
// creation and never changes; the unique index also covers soft-deleted
// rows so a number is never issued twice.
type JobRequirement struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID string `gorm:"uniqueIndex;not null;size:32" json:"job_id"`

	Title             string     `gorm:"not null" json:"title"`
	Client            string     `gorm:"not null" json:"client"`
	Vendor            string     `json:"vendor,omitempty"`
	Description       string     `gorm:"type:text;not null" json:"description"`
	TechStack         []string   `gorm:"serializer:json;type:text" json:"tech_stack"`
	Experience        int        `json:"experience"`
	Location          string     `gorm:"not null" json:"location"`
	SalaryMin         *float64   `json:"salary_min,omitempty"`
	SalaryMax         *float64   `json:"salary_max,omitempty"`
	SalaryCurrency    string     `gorm:"default:'USD'" json:"salary_currency"`
	Budget            *float64   `json:"budget,omitempty"`
	Status            string     `gorm:"not null" json:"status"`
	Priority          string     `gorm:"not null" json:"priority"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	AssignedResources []string   `gorm:"serializer:json;type:text" json:"assigned_resources"`
	Notes             string     `gorm:"type:text" json:"notes,omitempty"`
}

func (j *JobRequirement) BeforeCreate(*gorm.DB) error {
	assignID(&j.ID)
	return nil
}

// ProcessFlow tracks one candidate through the recruitment stages of a job
// requirement.
type ProcessFlow struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobRequirementID string         `gorm:"size:36;index;not null" json:"job_requirement_id"`
	JobRequirement   JobRequirement `json:"job_requirement"`

	CandidateName          string     `gorm:"not null" json:"candidate_name"`
	CurrentStage           string     `gorm:"not null" json:"current_stage"`
	StartDate              time.Time  `gorm:"not null" json:"start_date"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`
	Status                 string     `gorm:"not null" json:"status"`
	Priority               string     `gorm:"not null" json:"priority"`
	Notes                  string     `gorm:"type:text" json:"notes,omitempty"`

	History []ProcessFlowHistory `gorm:"constraint:OnDelete:CASCADE" json:"history"`
}

func (p *ProcessFlow) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	return nil
}

type ProcessFlowHistory struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	ProcessFlowID string `gorm:"size:36;index;not null" json:"process_flow_id"`

	StageName     string     `gorm:"not null" json:"stage_name"`
	EnteredDate   time.Time  `gorm:"not null" json:"entered_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	DurationDays  *int       `json:"duration,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	UpdatedBy     string     `gorm:"not null" json:"updated_by"`
}

func (h *ProcessFlowHistory) BeforeCreate(*gorm.DB) error {
	assignID(&h.ID)
	return nil
}

// JobCategory is a persisted classification rule. Rules are evaluated in
// ascending Position.
type JobCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Code     string   `gorm:"uniqueIndex;not null;size:3" json:"code"`
	Keywords []string `gorm:"serializer:json;type:text" json:"keywords"`
	Position int      `gorm:"not null" json:"position"`
}
