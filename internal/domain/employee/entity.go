package employee

import "time"

type Employee struct {
	ID               string
	CompanyID        string
	FullName         string
	Email            string
	Department       string
	Designation      string
	EmploymentStatus EmploymentStatus
	Currency         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
