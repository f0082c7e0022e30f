package dtos

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by every date field.
const DateLayout = "2006-01-02"

type ContactRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Position  string `json:"position"`
	IsPrimary bool   `json:"is_primary"`
}

type VendorRequest struct {
	Name     string           `json:"name" binding:"required"`
	Company  string           `json:"company" binding:"required"`
	Industry string           `json:"industry"`
	Status   string           `json:"status" binding:"required,oneof=active inactive pending"`
	Notes    string           `json:"notes"`
	Contacts []ContactRequest `json:"contacts" binding:"dive"`
}

type ResourceRequest struct {
	Name         string   `json:"name" binding:"required"`
	TechStack    []string `json:"tech_stack"`
	Type         string   `json:"type" binding:"required,oneof=In-house External"`
	Source       string   `json:"source" binding:"required,oneof=Internal LinkedIn Email Friend Referral"`
	Contact      string   `json:"contact" binding:"required"`
	Phone        string   `json:"phone"`
	Experience   *int     `json:"experience" binding:"omitempty,gte=0"`
	Availability string   `json:"availability" binding:"required,oneof=Available Busy 'On Project'"`
	HourlyRate   *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	ResumeURL    string   `json:"resume_url" binding:"omitempty,url"`
	Notes        string   `json:"notes"`
}

// ProcessFlowRequest references its job requirement by job identifier
// (e.g. DZ-DS-0001), not by record id.
type ProcessFlowRequest struct {
	JobID                  string `json:"job_id" binding:"required"`
	CandidateName          string `json:"candidate_name" binding:"required"`
	CurrentStage           string `json:"current_stage" binding:"required"`
	StartDate              string `json:"start_date" binding:"required,datetime=2006-01-02"`
	ExpectedCompletionDate string `json:"expected_completion_date" binding:"omitempty,datetime=2006-01-02"`
	Status                 string `json:"status" binding:"required,oneof=Active Completed OnHold Cancelled"`
	Priority               string `json:"priority" binding:"required,oneof=Low Medium High Urgent"`
	Notes                  string `json:"notes"`
	UpdatedBy              string `json:"updated_by"`
}

// ListFilter narrows list endpoints. Query matches case-insensitively
// anywhere in the entity's text columns.
type ListFilter struct {
	Query  string `form:"q"`
	Status string `form:"status"`
}

// ParseDate parses an optional calendar date; empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}
