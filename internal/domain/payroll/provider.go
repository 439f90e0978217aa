package payroll

import "context"

// AttendanceProvider supplies the per-period working-day breakdown for one
// employee. Implementations wrap external sources; failures should surface as
// errors (wrapped with ErrUpstreamUnavailable where transient) rather than
// zero-valued breakdowns.
type AttendanceProvider interface {
	GetBreakdown(ctx context.Context, companyID, employeeID string, month, year int) (AttendanceBreakdown, error)
}

// IncentiveProvider supplies the itemized incentive entries for one employee
// and period, in a stable order.
type IncentiveProvider interface {
	GetIncentives(ctx context.Context, companyID, employeeID string, month, year int) ([]IncentiveDetail, error)
}
