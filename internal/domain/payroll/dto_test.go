package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestUpdateDeductionSettingsRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       UpdateDeductionSettingsRequest
		wantField string
	}{
		{
			name: "all fields in range",
			req: UpdateDeductionSettingsRequest{
				PaidLeavePercent: d("0"),
				HalfDayPercent:   d("50"),
				LatePercent:      d("100"),
				AbsentPercent:    d("99.5"),
			},
		},
		{
			name: "empty request is valid",
			req:  UpdateDeductionSettingsRequest{},
		},
		{
			name:      "negative percent",
			req:       UpdateDeductionSettingsRequest{LatePercent: d("-1")},
			wantField: "late_percent",
		},
		{
			name:      "over one hundred",
			req:       UpdateDeductionSettingsRequest{AbsentPercent: d("100.01")},
			wantField: "absent_percent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Contains(t, validationErrs.ToMap(), tt.wantField)
		})
	}
}

func TestGenerateSalariesRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       GenerateSalariesRequest
		wantField string
	}{
		{name: "valid period", req: GenerateSalariesRequest{PeriodMonth: 12, PeriodYear: 2025}},
		{name: "month too low", req: GenerateSalariesRequest{PeriodMonth: 0, PeriodYear: 2025}, wantField: "period_month"},
		{name: "month too high", req: GenerateSalariesRequest{PeriodMonth: 13, PeriodYear: 2025}, wantField: "period_month"},
		{name: "year before range", req: GenerateSalariesRequest{PeriodMonth: 6, PeriodYear: 1999}, wantField: "period_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Contains(t, validationErrs.ToMap(), tt.wantField)
		})
	}
}

func TestCreateSalaryRecordRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateSalaryRecordRequest{
		EmployeeID:  "emp-1",
		PeriodMonth: 3,
		PeriodYear:  2025,
		FixedInputsPayload: FixedInputsPayload{
			BasicSalary: decimal.RequireFromString("3000"),
		},
	}
	assert.NoError(t, valid.Validate())

	missingEmployee := valid
	missingEmployee.EmployeeID = "  "
	err := missingEmployee.Validate()
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "employee_id")

	noEarnings := CreateSalaryRecordRequest{EmployeeID: "emp-1", PeriodMonth: 3, PeriodYear: 2025}
	err = noEarnings.Validate()
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "basic_salary")

	negative := valid
	negative.Tax = decimal.RequireFromString("-10")
	err = negative.Validate()
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "tax")

	withCurrency := valid
	withCurrency.Currency = "USD"
	assert.NoError(t, withCurrency.Validate())

	badCurrency := valid
	badCurrency.Currency = "dollars"
	err = badCurrency.Validate()
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "currency")
}

func TestUpdateSalaryRecordRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&UpdateSalaryRecordRequest{}).Validate())
	assert.NoError(t, (&UpdateSalaryRecordRequest{Bonus: d("100")}).Validate())

	err := (&UpdateSalaryRecordRequest{LoanDeduction: d("-5")}).Validate()
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "loan_deduction")

	lower := "usd"
	err = (&UpdateSalaryRecordRequest{Currency: &lower}).Validate()
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "currency")

	upper := "IDR"
	assert.NoError(t, (&UpdateSalaryRecordRequest{Currency: &upper}).Validate())
}

func TestBulkStatusRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&BulkStatusRequest{IDs: []string{"a"}, Status: SalaryStatusPaid}).Validate())

	err := (&BulkStatusRequest{Status: "archived"}).Validate()
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "ids")
	assert.Contains(t, validationErrs.ToMap(), "status")
}

func TestSalaryStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, status := range []SalaryStatus{SalaryStatusPending, SalaryStatusPaid, SalaryStatusOnHold, SalaryStatusCancelled} {
		assert.True(t, status.Valid(), "%s", status)
	}
	assert.False(t, SalaryStatus("archived").Valid())
	assert.False(t, SalaryStatus("").Valid())
}

func TestDefaultDeductionSettings(t *testing.T) {
	t.Parallel()

	s := DefaultDeductionSettings("company-1")
	assert.Equal(t, "company-1", s.CompanyID)
	assert.True(t, s.PaidLeavePercent.IsZero())
	assert.True(t, s.HalfDayPercent.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.LatePercent.IsZero())
	assert.True(t, s.AbsentPercent.Equal(decimal.NewFromInt(100)))
}
