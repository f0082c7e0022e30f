package dtos

type SalaryRange struct {
	Min      float64 `json:"min" binding:"gte=0"`
	Max      float64 `json:"max" binding:"gtefield=Min"`
	Currency string  `json:"currency"`
}

// JobRequirementRequest is the body of create and update calls. The job
// identifier is never accepted from clients.
type JobRequirementRequest struct {
	Title       string   `json:"title" binding:"required"`
	Client      string   `json:"client" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Status      string   `json:"status" binding:"required,oneof=Active Closed Inactive OnHold"`
	Priority    string   `json:"priority" binding:"required,oneof=Low Medium High Urgent"`
	Experience  int      `json:"experience" binding:"gte=0"`
	TechStack   []string `json:"tech_stack"`

	// Optional Fields
	Vendor            string       `json:"vendor"`
	Salary            *SalaryRange `json:"salary"`
	Budget            *float64     `json:"budget" binding:"omitempty,gte=0"`
	Deadline          string       `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	StartDate         string       `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate           string       `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	AssignedResources []string     `json:"assigned_resources"`
	Notes             string       `json:"notes"`
}
