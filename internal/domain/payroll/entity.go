package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionSettings - Company-wide attendance deduction policy.
// Each percent is the share of one day's salary deducted per occurrence
// of that attendance category.
type DeductionSettings struct {
	ID               string
	CompanyID        string
	PaidLeavePercent decimal.Decimal
	HalfDayPercent   decimal.Decimal
	LatePercent      decimal.Decimal
	AbsentPercent    decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultDeductionSettings returns the policy used when a company has never
// saved one: paid leave free, half days at 50%, lateness free, absences at 100%.
func DefaultDeductionSettings(companyID string) DeductionSettings {
	return DeductionSettings{
		CompanyID:        companyID,
		PaidLeavePercent: decimal.Zero,
		HalfDayPercent:   decimal.NewFromInt(50),
		LatePercent:      decimal.Zero,
		AbsentPercent:    decimal.NewFromInt(100),
	}
}

// SalaryStatus enum
type SalaryStatus string

const (
	SalaryStatusPending   SalaryStatus = "pending"
	SalaryStatusPaid      SalaryStatus = "paid"
	SalaryStatusOnHold    SalaryStatus = "on-hold"
	SalaryStatusCancelled SalaryStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses. Any valid status may
// transition to any other; there is no enforced ordering.
func (s SalaryStatus) Valid() bool {
	switch s {
	case SalaryStatusPending, SalaryStatusPaid, SalaryStatusOnHold, SalaryStatusCancelled:
		return true
	}
	return false
}

// AttendanceBreakdown - Working-day breakdown for one employee and period,
// as reported by the attendance source.
type AttendanceBreakdown struct {
	TotalWorkingDays int
	DaysPresent      int
	PaidLeaveDays    int
	HalfDayCount     int
	LateCount        int
	AbsentDays       int
}

// IncentiveDetail - One itemized incentive entry. Order is preserved.
type IncentiveDetail struct {
	Title  string          `json:"title"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// EmployeeSnapshot - Directory fields captured when the record is created,
// never live-joined afterwards.
type EmployeeSnapshot struct {
	FullName    string
	Email       string
	Department  string
	Designation string
}

// FixedInputs - The manually-set compensation components of a salary record.
// Everything else on the record is derived from these plus attendance,
// incentives and the deduction policy.
type FixedInputs struct {
	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	Allowances      decimal.Decimal
	Bonus           decimal.Decimal
	Overtime        decimal.Decimal
	OtherEarnings   decimal.Decimal
	Tax             decimal.Decimal
	ProvidentFund   decimal.Decimal
	Insurance       decimal.Decimal
	LoanDeduction   decimal.Decimal
	OtherDeductions decimal.Decimal
}

// SalaryRecord - One per (employee, period month, period year).
type SalaryRecord struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	PeriodMonth int
	PeriodYear  int
	Employee    EmployeeSnapshot

	FixedInputs

	// Derived fields. NetSalary always equals
	// GrossEarnings + IncentiveAmount - TotalDeductions - AttendanceDeduction;
	// every mutation of an input goes through the calculator.
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal

	Attendance          AttendanceBreakdown
	PaidLeaveDeduction  decimal.Decimal
	HalfDayDeduction    decimal.Decimal
	LateDeduction       decimal.Decimal
	AbsentDeduction     decimal.Decimal
	AttendanceDeduction decimal.Decimal

	IncentiveAmount  decimal.Decimal
	IncentiveDetails []IncentiveDetail

	NetSalary decimal.Decimal

	Currency      string
	PayPeriod     string
	PaymentMethod string
	Status        SalaryStatus
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
