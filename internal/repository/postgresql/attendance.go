package postgresql

import (
	"context"
	"fmt"

	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

// attendanceProvider derives the monthly breakdown from the per-day
// attendance log kept by the attendance module.
type attendanceProvider struct {
	db *database.DB
}

func NewAttendanceProvider(db *database.DB) payroll.AttendanceProvider {
	return &attendanceProvider{db: db}
}

func (p *attendanceProvider) GetBreakdown(ctx context.Context, companyID, employeeID string, month, year int) (payroll.AttendanceBreakdown, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'paid_leave'),
			COUNT(*) FILTER (WHERE status = 'half_day'),
			COUNT(*) FILTER (WHERE status = 'late'),
			COUNT(*) FILTER (WHERE status = 'absent')
		FROM attendance_days
		WHERE company_id = $1 AND employee_id = $2
		  AND work_date >= make_date($3, $4, 1)
		  AND work_date < make_date($3, $4, 1) + INTERVAL '1 month'
	`

	var b payroll.AttendanceBreakdown
	err := q.QueryRow(ctx, query, companyID, employeeID, year, month).Scan(
		&b.TotalWorkingDays,
		&b.DaysPresent,
		&b.PaidLeaveDays,
		&b.HalfDayCount,
		&b.LateCount,
		&b.AbsentDays,
	)
	if err != nil {
		return payroll.AttendanceBreakdown{}, fmt.Errorf("failed to get attendance breakdown: %w", err)
	}

	return b, nil
}
