package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

// ========== SETTINGS DTOs ==========

type DeductionSettingsResponse struct {
	ID               string          `json:"id,omitempty"`
	CompanyID        string          `json:"company_id"`
	PaidLeavePercent decimal.Decimal `json:"paid_leave_percent"`
	HalfDayPercent   decimal.Decimal `json:"half_day_percent"`
	LatePercent      decimal.Decimal `json:"late_percent"`
	AbsentPercent    decimal.Decimal `json:"absent_percent"`
}

type UpdateDeductionSettingsRequest struct {
	PaidLeavePercent *decimal.Decimal `json:"paid_leave_percent,omitempty"`
	HalfDayPercent   *decimal.Decimal `json:"half_day_percent,omitempty"`
	LatePercent      *decimal.Decimal `json:"late_percent,omitempty"`
	AbsentPercent    *decimal.Decimal `json:"absent_percent,omitempty"`
}

var percentCeiling = decimal.NewFromInt(100)

func validPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(percentCeiling)
}

func (r *UpdateDeductionSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PaidLeavePercent != nil && !validPercent(*r.PaidLeavePercent) {
		errs = append(errs, validator.ValidationError{Field: "paid_leave_percent", Message: "must be between 0 and 100"})
	}
	if r.HalfDayPercent != nil && !validPercent(*r.HalfDayPercent) {
		errs = append(errs, validator.ValidationError{Field: "half_day_percent", Message: "must be between 0 and 100"})
	}
	if r.LatePercent != nil && !validPercent(*r.LatePercent) {
		errs = append(errs, validator.ValidationError{Field: "late_percent", Message: "must be between 0 and 100"})
	}
	if r.AbsentPercent != nil && !validPercent(*r.AbsentPercent) {
		errs = append(errs, validator.ValidationError{Field: "absent_percent", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== GENERATION DTOs ==========

type GenerateSalariesRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *GenerateSalariesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SkippedEmployee - One employee the generation run left alone, with the reason.
type SkippedEmployee struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type GenerateSalariesResponse struct {
	PeriodMonth int               `json:"period_month"`
	PeriodYear  int               `json:"period_year"`
	Generated   int               `json:"generated"`
	Skipped     []SkippedEmployee `json:"skipped"`
}

// ========== RECORD DTOs ==========

type FixedInputsPayload struct {
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	Allowances      decimal.Decimal `json:"allowances"`
	Bonus           decimal.Decimal `json:"bonus"`
	Overtime        decimal.Decimal `json:"overtime"`
	OtherEarnings   decimal.Decimal `json:"other_earnings"`
	Tax             decimal.Decimal `json:"tax"`
	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	Insurance       decimal.Decimal `json:"insurance"`
	LoanDeduction   decimal.Decimal `json:"loan_deduction"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func (p FixedInputsPayload) ToFixedInputs() FixedInputs {
	return FixedInputs{
		BasicSalary:     p.BasicSalary,
		HRA:             p.HRA,
		Allowances:      p.Allowances,
		Bonus:           p.Bonus,
		Overtime:        p.Overtime,
		OtherEarnings:   p.OtherEarnings,
		Tax:             p.Tax,
		ProvidentFund:   p.ProvidentFund,
		Insurance:       p.Insurance,
		LoanDeduction:   p.LoanDeduction,
		OtherDeductions: p.OtherDeductions,
	}
}

func (p FixedInputsPayload) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	fields := map[string]decimal.Decimal{
		"basic_salary":     p.BasicSalary,
		"hra":              p.HRA,
		"allowances":       p.Allowances,
		"bonus":            p.Bonus,
		"overtime":         p.Overtime,
		"other_earnings":   p.OtherEarnings,
		"tax":              p.Tax,
		"provident_fund":   p.ProvidentFund,
		"insurance":        p.Insurance,
		"loan_deduction":   p.LoanDeduction,
		"other_deductions": p.OtherDeductions,
	}
	for field, amount := range fields {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	return errs
}

type CreateSalaryRecordRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	FixedInputsPayload
	Currency      string  `json:"currency"`
	PayPeriod     string  `json:"pay_period,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *CreateSalaryRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	if r.BasicSalary.IsZero() && r.HRA.IsZero() && r.Allowances.IsZero() &&
		r.Bonus.IsZero() && r.Overtime.IsZero() && r.OtherEarnings.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "at least one earnings component is required"})
	}
	// empty currency falls back to the employee directory's
	if !validator.IsEmpty(r.Currency) && !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a three-letter ISO 4217 code"})
	}
	errs = r.FixedInputsPayload.validate(errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRecordRequest struct {
	ID              string           `json:"-"`
	BasicSalary     *decimal.Decimal `json:"basic_salary,omitempty"`
	HRA             *decimal.Decimal `json:"hra,omitempty"`
	Allowances      *decimal.Decimal `json:"allowances,omitempty"`
	Bonus           *decimal.Decimal `json:"bonus,omitempty"`
	Overtime        *decimal.Decimal `json:"overtime,omitempty"`
	OtherEarnings   *decimal.Decimal `json:"other_earnings,omitempty"`
	Tax             *decimal.Decimal `json:"tax,omitempty"`
	ProvidentFund   *decimal.Decimal `json:"provident_fund,omitempty"`
	Insurance       *decimal.Decimal `json:"insurance,omitempty"`
	LoanDeduction   *decimal.Decimal `json:"loan_deduction,omitempty"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`
	Currency        *string          `json:"currency,omitempty"`
	PayPeriod       *string          `json:"pay_period,omitempty"`
	PaymentMethod   *string          `json:"payment_method,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

func (r *UpdateSalaryRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := map[string]*decimal.Decimal{
		"basic_salary":     r.BasicSalary,
		"hra":              r.HRA,
		"allowances":       r.Allowances,
		"bonus":            r.Bonus,
		"overtime":         r.Overtime,
		"other_earnings":   r.OtherEarnings,
		"tax":              r.Tax,
		"provident_fund":   r.ProvidentFund,
		"insurance":        r.Insurance,
		"loan_deduction":   r.LoanDeduction,
		"other_deductions": r.OtherDeductions,
	}
	for field, amount := range fields {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.Currency != nil && !validator.IsValidCurrency(*r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a three-letter ISO 4217 code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status SalaryStatus `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "must be one of pending, paid, on-hold, cancelled"}}
	}
	return nil
}

type BulkStatusRequest struct {
	IDs    []string     `json:"ids"`
	Status SalaryStatus `json:"status"`
}

func (r *BulkStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "at least one record id is required"})
	}
	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, paid, on-hold, cancelled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkStatusOutcome - Per-record result of a bulk status update. Failures on
// one id never block the others.
type BulkStatusOutcome struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
	Reason  string `json:"reason,omitempty"`
}

type BulkStatusResponse struct {
	Updated  int                 `json:"updated"`
	Failed   int                 `json:"failed"`
	Outcomes []BulkStatusOutcome `json:"outcomes"`
}

type AttendanceBreakdownPayload struct {
	TotalWorkingDays int `json:"total_working_days"`
	DaysPresent      int `json:"days_present"`
	PaidLeaveDays    int `json:"paid_leave_days"`
	HalfDayCount     int `json:"half_day_count"`
	LateCount        int `json:"late_count"`
	AbsentDays       int `json:"absent_days"`
}

type SalaryRecordResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`

	EmployeeName        string `json:"employee_name"`
	EmployeeEmail       string `json:"employee_email"`
	EmployeeDepartment  string `json:"employee_department,omitempty"`
	EmployeeDesignation string `json:"employee_designation,omitempty"`

	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	Allowances      decimal.Decimal `json:"allowances"`
	Bonus           decimal.Decimal `json:"bonus"`
	Overtime        decimal.Decimal `json:"overtime"`
	OtherEarnings   decimal.Decimal `json:"other_earnings"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`
	Tax             decimal.Decimal `json:"tax"`
	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	Insurance       decimal.Decimal `json:"insurance"`
	LoanDeduction   decimal.Decimal `json:"loan_deduction"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	Attendance          AttendanceBreakdownPayload `json:"attendance_breakdown"`
	PaidLeaveDeduction  decimal.Decimal            `json:"paid_leave_deduction"`
	HalfDayDeduction    decimal.Decimal            `json:"half_day_deduction"`
	LateDeduction       decimal.Decimal            `json:"late_deduction"`
	AbsentDeduction     decimal.Decimal            `json:"absent_deduction"`
	AttendanceDeduction decimal.Decimal            `json:"attendance_deduction"`

	IncentiveAmount  decimal.Decimal   `json:"incentive_amount"`
	IncentiveDetails []IncentiveDetail `json:"incentive_details"`

	NetSalary decimal.Decimal `json:"net_salary"`

	Currency      string  `json:"currency"`
	PayPeriod     string  `json:"pay_period,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
}

type SalaryFilter struct {
	PeriodMonth *int
	PeriodYear  *int
	Status      *string
	EmployeeID  *string
	Page        int
	Limit       int
	SortBy      string
	SortOrder   string
}

type ListSalaryRecordsResponse struct {
	Data       []SalaryRecordResponse `json:"data"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}

type SalaryStatsResponse struct {
	PeriodMonth               int             `json:"period_month"`
	PeriodYear                int             `json:"period_year"`
	TotalRecords              int             `json:"total_records"`
	TotalGross                decimal.Decimal `json:"total_gross"`
	TotalNet                  decimal.Decimal `json:"total_net"`
	TotalDeductions           decimal.Decimal `json:"total_deductions"`
	TotalAttendanceDeductions decimal.Decimal `json:"total_attendance_deductions"`
	TotalIncentives           decimal.Decimal `json:"total_incentives"`
	PaidCount                 int             `json:"paid_count"`
	PendingCount              int             `json:"pending_count"`
}
