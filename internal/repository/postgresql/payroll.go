package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepository{db: db}
}

// ========== SETTINGS ==========

func (r *salaryRepository) GetSettings(ctx context.Context, companyID string) (payroll.DeductionSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, paid_leave_percent, half_day_percent,
			   late_percent, absent_percent, created_at, updated_at
		FROM deduction_settings
		WHERE company_id = $1
	`

	var s payroll.DeductionSettings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.PaidLeavePercent, &s.HalfDayPercent,
		&s.LatePercent, &s.AbsentPercent, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.DeductionSettings{}, payroll.ErrDeductionSettingsNotFound
		}
		return payroll.DeductionSettings{}, fmt.Errorf("failed to get deduction settings: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) UpsertSettings(ctx context.Context, settings payroll.DeductionSettings) (payroll.DeductionSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_settings (
			company_id, paid_leave_percent, half_day_percent, late_percent, absent_percent
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id) DO UPDATE SET
			paid_leave_percent = EXCLUDED.paid_leave_percent,
			half_day_percent = EXCLUDED.half_day_percent,
			late_percent = EXCLUDED.late_percent,
			absent_percent = EXCLUDED.absent_percent,
			updated_at = NOW()
		RETURNING id, company_id, paid_leave_percent, half_day_percent,
			late_percent, absent_percent, created_at, updated_at
	`

	var s payroll.DeductionSettings
	err := q.QueryRow(ctx, query,
		settings.CompanyID, settings.PaidLeavePercent, settings.HalfDayPercent,
		settings.LatePercent, settings.AbsentPercent,
	).Scan(
		&s.ID, &s.CompanyID, &s.PaidLeavePercent, &s.HalfDayPercent,
		&s.LatePercent, &s.AbsentPercent, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.DeductionSettings{}, fmt.Errorf("failed to upsert deduction settings: %w", err)
	}

	return s, nil
}

// ========== SALARY RECORDS ==========

const salaryRecordColumns = `
	id, employee_id, company_id, period_month, period_year,
	employee_name, employee_email, employee_department, employee_designation,
	basic_salary, hra, allowances, bonus, overtime, other_earnings, gross_earnings,
	tax, provident_fund, insurance, loan_deduction, other_deductions, total_deductions,
	total_working_days, days_present, paid_leave_days, half_day_count, late_count, absent_days,
	paid_leave_deduction, half_day_deduction, late_deduction, absent_deduction, attendance_deduction,
	incentive_amount, incentive_details, net_salary,
	currency, pay_period, payment_method, status, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSalaryRecord(row rowScanner) (payroll.SalaryRecord, error) {
	var rec payroll.SalaryRecord
	var incentiveDetails []byte

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.Employee.FullName, &rec.Employee.Email, &rec.Employee.Department, &rec.Employee.Designation,
		&rec.BasicSalary, &rec.HRA, &rec.Allowances, &rec.Bonus, &rec.Overtime, &rec.OtherEarnings, &rec.GrossEarnings,
		&rec.Tax, &rec.ProvidentFund, &rec.Insurance, &rec.LoanDeduction, &rec.OtherDeductions, &rec.TotalDeductions,
		&rec.Attendance.TotalWorkingDays, &rec.Attendance.DaysPresent, &rec.Attendance.PaidLeaveDays,
		&rec.Attendance.HalfDayCount, &rec.Attendance.LateCount, &rec.Attendance.AbsentDays,
		&rec.PaidLeaveDeduction, &rec.HalfDayDeduction, &rec.LateDeduction, &rec.AbsentDeduction, &rec.AttendanceDeduction,
		&rec.IncentiveAmount, &incentiveDetails, &rec.NetSalary,
		&rec.Currency, &rec.PayPeriod, &rec.PaymentMethod, &rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.SalaryRecord{}, err
	}

	if len(incentiveDetails) > 0 {
		if err := json.Unmarshal(incentiveDetails, &rec.IncentiveDetails); err != nil {
			return payroll.SalaryRecord{}, fmt.Errorf("failed to decode incentive details: %w", err)
		}
	}

	return rec, nil
}

func (r *salaryRepository) CreateSalaryRecord(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	incentiveDetails, err := json.Marshal(record.IncentiveDetails)
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to encode incentive details: %w", err)
	}

	query := `
		INSERT INTO salary_records (
			id, employee_id, company_id, period_month, period_year,
			employee_name, employee_email, employee_department, employee_designation,
			basic_salary, hra, allowances, bonus, overtime, other_earnings, gross_earnings,
			tax, provident_fund, insurance, loan_deduction, other_deductions, total_deductions,
			total_working_days, days_present, paid_leave_days, half_day_count, late_count, absent_days,
			paid_leave_deduction, half_day_deduction, late_deduction, absent_deduction, attendance_deduction,
			incentive_amount, incentive_details, net_salary,
			currency, pay_period, payment_method, status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41
		)
		RETURNING ` + salaryRecordColumns

	row := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.CompanyID, record.PeriodMonth, record.PeriodYear,
		record.Employee.FullName, record.Employee.Email, record.Employee.Department, record.Employee.Designation,
		record.BasicSalary, record.HRA, record.Allowances, record.Bonus, record.Overtime, record.OtherEarnings, record.GrossEarnings,
		record.Tax, record.ProvidentFund, record.Insurance, record.LoanDeduction, record.OtherDeductions, record.TotalDeductions,
		record.Attendance.TotalWorkingDays, record.Attendance.DaysPresent, record.Attendance.PaidLeaveDays,
		record.Attendance.HalfDayCount, record.Attendance.LateCount, record.Attendance.AbsentDays,
		record.PaidLeaveDeduction, record.HalfDayDeduction, record.LateDeduction, record.AbsentDeduction, record.AttendanceDeduction,
		record.IncentiveAmount, incentiveDetails, record.NetSalary,
		record.Currency, record.PayPeriod, record.PaymentMethod, record.Status, record.Notes,
	)

	created, err := scanSalaryRecord(row)
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_record_employee_period") {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordAlreadyExists
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return created, nil
}

func (r *salaryRepository) GetSalaryRecordByID(ctx context.Context, id string, companyID string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryRecordColumns + `
		FROM salary_records
		WHERE id = $1 AND company_id = $2`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) GetLatestPriorRecord(ctx context.Context, employeeID string, month, year int, companyID string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryRecordColumns + `
		FROM salary_records
		WHERE employee_id = $1 AND company_id = $2
		  AND (period_year < $3 OR (period_year = $3 AND period_month < $4))
		ORDER BY period_year DESC, period_month DESC
		LIMIT 1`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, employeeID, companyID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get prior salary record: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) ListPeriodEmployeeIDs(ctx context.Context, companyID string, month, year int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id
		FROM salary_records
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	rows, err := q.Query(ctx, query, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list period employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

var salarySortColumns = map[string]string{
	"created_at":    "created_at",
	"net_salary":    "net_salary",
	"gross":         "gross_earnings",
	"employee_name": "employee_name",
	"period":        "period_year, period_month",
}

func (r *salaryRepository) ListSalaryRecords(ctx context.Context, companyID string, filter payroll.SalaryFilter) ([]payroll.SalaryRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}
	argPos := 2

	if filter.PeriodMonth != nil {
		conditions = append(conditions, fmt.Sprintf("period_month = $%d", argPos))
		args = append(args, *filter.PeriodMonth)
		argPos++
	}
	if filter.PeriodYear != nil {
		conditions = append(conditions, fmt.Sprintf("period_year = $%d", argPos))
		args = append(args, *filter.PeriodYear)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM salary_records WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	// Sort column is resolved through an allowlist; user input never reaches
	// the query text directly.
	orderBy, ok := salarySortColumns[filter.SortBy]
	if !ok {
		orderBy = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`SELECT %s
		FROM salary_records
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`,
		salaryRecordColumns, where, orderBy, direction, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		rec, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

func (r *salaryRepository) UpdateSalaryRecord(ctx context.Context, record payroll.SalaryRecord) error {
	q := GetQuerier(ctx, r.db)

	incentiveDetails, err := json.Marshal(record.IncentiveDetails)
	if err != nil {
		return fmt.Errorf("failed to encode incentive details: %w", err)
	}

	query := `
		UPDATE salary_records SET
			basic_salary = $3, hra = $4, allowances = $5, bonus = $6, overtime = $7,
			other_earnings = $8, gross_earnings = $9,
			tax = $10, provident_fund = $11, insurance = $12, loan_deduction = $13,
			other_deductions = $14, total_deductions = $15,
			total_working_days = $16, days_present = $17, paid_leave_days = $18,
			half_day_count = $19, late_count = $20, absent_days = $21,
			paid_leave_deduction = $22, half_day_deduction = $23, late_deduction = $24,
			absent_deduction = $25, attendance_deduction = $26,
			incentive_amount = $27, incentive_details = $28, net_salary = $29,
			currency = $30, pay_period = $31, payment_method = $32, notes = $33,
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.CompanyID,
		record.BasicSalary, record.HRA, record.Allowances, record.Bonus, record.Overtime,
		record.OtherEarnings, record.GrossEarnings,
		record.Tax, record.ProvidentFund, record.Insurance, record.LoanDeduction,
		record.OtherDeductions, record.TotalDeductions,
		record.Attendance.TotalWorkingDays, record.Attendance.DaysPresent, record.Attendance.PaidLeaveDays,
		record.Attendance.HalfDayCount, record.Attendance.LateCount, record.Attendance.AbsentDays,
		record.PaidLeaveDeduction, record.HalfDayDeduction, record.LateDeduction,
		record.AbsentDeduction, record.AttendanceDeduction,
		record.IncentiveAmount, incentiveDetails, record.NetSalary,
		record.Currency, record.PayPeriod, record.PaymentMethod, record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryRecordNotFound
	}

	return nil
}

func (r *salaryRepository) UpdateStatus(ctx context.Context, id string, companyID string, status payroll.SalaryStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID, status)
	if err != nil {
		return fmt.Errorf("failed to update salary status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryRecordNotFound
	}

	return nil
}

func (r *salaryRepository) DeleteSalaryRecord(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_records WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryRecordNotFound
	}

	return nil
}

// ========== AGGREGATIONS ==========

func (r *salaryRepository) GetSalaryStats(ctx context.Context, companyID string, month, year int) (payroll.SalaryStatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(gross_earnings), 0),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(total_deductions), 0),
			COALESCE(SUM(attendance_deduction), 0),
			COALESCE(SUM(incentive_amount), 0),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'pending')
		FROM salary_records
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	stats := payroll.SalaryStatsResponse{PeriodMonth: month, PeriodYear: year}
	err := q.QueryRow(ctx, query, companyID, month, year).Scan(
		&stats.TotalRecords,
		&stats.TotalGross,
		&stats.TotalNet,
		&stats.TotalDeductions,
		&stats.TotalAttendanceDeductions,
		&stats.TotalIncentives,
		&stats.PaidCount,
		&stats.PendingCount,
	)
	if err != nil {
		return payroll.SalaryStatsResponse{}, fmt.Errorf("failed to get salary stats: %w", err)
	}

	return stats, nil
}
