package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrDeductionSettingsNotFound):
		NotFound(w, "Deduction settings not found")
	case errors.Is(err, payroll.ErrSalaryRecordAlreadyExists):
		Conflict(w, "Salary record already exists for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrInvalidStatus):
		BadRequest(w, "Invalid salary status", nil)
	case errors.Is(err, payroll.ErrUpstreamUnavailable):
		ServiceUnavailable(w, "Attendance or incentive data is temporarily unavailable")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
