package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
)

// CalculationResult carries every derived field of a salary record. All
// monetary values are rounded to 2 decimal places.
type CalculationResult struct {
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal

	PaidLeaveDeduction  decimal.Decimal
	HalfDayDeduction    decimal.Decimal
	LateDeduction       decimal.Decimal
	AbsentDeduction     decimal.Decimal
	AttendanceDeduction decimal.Decimal

	IncentiveAmount decimal.Decimal
	NetSalary       decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Calculate derives a full salary computation from fixed inputs, an attendance
// breakdown, incentive entries and the current deduction policy. It is
// deterministic and side-effect free: identical inputs always produce an
// identical result, which is what makes recalculation idempotent.
//
// Attendance penalties are priced against a per-day rate of
// basicSalary / totalWorkingDays; with zero working days every attendance
// deduction is zero. Each derived field is rounded half-up to 2 decimal places
// exactly once, after its terms are summed, so rounding never compounds
// per-term. Absences are charged through the policy's absent percent as an
// explicit line item.
func Calculate(
	inputs payroll.FixedInputs,
	att payroll.AttendanceBreakdown,
	incentives []payroll.IncentiveDetail,
	settings payroll.DeductionSettings,
) CalculationResult {
	gross := inputs.BasicSalary.
		Add(inputs.HRA).
		Add(inputs.Allowances).
		Add(inputs.Bonus).
		Add(inputs.Overtime).
		Add(inputs.OtherEarnings).
		Round(2)

	totalDeductions := inputs.Tax.
		Add(inputs.ProvidentFund).
		Add(inputs.Insurance).
		Add(inputs.LoanDeduction).
		Add(inputs.OtherDeductions).
		Round(2)

	perDay := decimal.Zero
	if att.TotalWorkingDays > 0 {
		perDay = inputs.BasicSalary.Div(decimal.NewFromInt(int64(att.TotalWorkingDays)))
	}

	paidLeave := attendanceCharge(perDay, settings.PaidLeavePercent, att.PaidLeaveDays)
	halfDay := attendanceCharge(perDay, settings.HalfDayPercent, att.HalfDayCount)
	late := attendanceCharge(perDay, settings.LatePercent, att.LateCount)
	absent := attendanceCharge(perDay, settings.AbsentPercent, att.AbsentDays)

	// The total is rounded from the unrounded terms; the line items re-round
	// individually for display.
	attendanceDeduction := paidLeave.Add(halfDay).Add(late).Add(absent).Round(2)

	incentiveAmount := decimal.Zero
	for _, inc := range incentives {
		incentiveAmount = incentiveAmount.Add(inc.Amount)
	}
	incentiveAmount = incentiveAmount.Round(2)

	// Net is computed from the already-rounded derived fields so that the
	// stored record satisfies net == gross + incentives - deductions -
	// attendance deduction exactly.
	net := gross.Add(incentiveAmount).Sub(totalDeductions).Sub(attendanceDeduction)

	return CalculationResult{
		GrossEarnings:       gross,
		TotalDeductions:     totalDeductions,
		PaidLeaveDeduction:  paidLeave.Round(2),
		HalfDayDeduction:    halfDay.Round(2),
		LateDeduction:       late.Round(2),
		AbsentDeduction:     absent.Round(2),
		AttendanceDeduction: attendanceDeduction,
		IncentiveAmount:     incentiveAmount,
		NetSalary:           net,
	}
}

// attendanceCharge prices one attendance category: per-day rate times the
// policy percent, per occurrence. Returned unrounded.
func attendanceCharge(perDay, percent decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return perDay.Mul(percent).Div(hundred).Mul(decimal.NewFromInt(int64(count)))
}

// applyCalculation stamps derived fields onto a record alongside the
// attendance and incentive data they were computed from.
func applyCalculation(
	rec *payroll.SalaryRecord,
	att payroll.AttendanceBreakdown,
	incentives []payroll.IncentiveDetail,
	res CalculationResult,
) {
	rec.GrossEarnings = res.GrossEarnings
	rec.TotalDeductions = res.TotalDeductions
	rec.Attendance = att
	rec.PaidLeaveDeduction = res.PaidLeaveDeduction
	rec.HalfDayDeduction = res.HalfDayDeduction
	rec.LateDeduction = res.LateDeduction
	rec.AbsentDeduction = res.AbsentDeduction
	rec.AttendanceDeduction = res.AttendanceDeduction
	rec.IncentiveAmount = res.IncentiveAmount
	rec.IncentiveDetails = incentives
	rec.NetSalary = res.NetSalary
}
