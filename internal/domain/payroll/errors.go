package payroll

import "errors"

var (
	ErrDeductionSettingsNotFound = errors.New("deduction settings not found")
	ErrSalaryRecordNotFound      = errors.New("salary record not found")
	ErrSalaryRecordAlreadyExists = errors.New("salary record already exists for this period")
	ErrInvalidPeriod             = errors.New("invalid payroll period")
	ErrInvalidStatus             = errors.New("invalid salary status")
	ErrUpstreamUnavailable       = errors.New("attendance or incentive source unavailable")
)
