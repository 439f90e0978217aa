package payroll

import "context"

// SalaryRepository defines data access for deduction settings and salary
// records. All methods take companyID to prevent cross-company access.
// The store owns the one-record-per-(employee, period) invariant: CreateSalaryRecord
// returns ErrSalaryRecordAlreadyExists on a duplicate instead of overwriting.
type SalaryRepository interface {
	// Settings
	GetSettings(ctx context.Context, companyID string) (DeductionSettings, error)
	UpsertSettings(ctx context.Context, settings DeductionSettings) (DeductionSettings, error)

	// Salary records
	CreateSalaryRecord(ctx context.Context, record SalaryRecord) (SalaryRecord, error)
	GetSalaryRecordByID(ctx context.Context, id string, companyID string) (SalaryRecord, error)
	// GetLatestPriorRecord returns the employee's most recent record strictly
	// before (month, year), for carrying fixed inputs forward.
	GetLatestPriorRecord(ctx context.Context, employeeID string, month, year int, companyID string) (SalaryRecord, error)
	// ListPeriodEmployeeIDs returns the ids of employees that already have a
	// record for the period.
	ListPeriodEmployeeIDs(ctx context.Context, companyID string, month, year int) ([]string, error)
	ListSalaryRecords(ctx context.Context, companyID string, filter SalaryFilter) ([]SalaryRecord, int64, error)
	// UpdateSalaryRecord rewrites every mutable column from the given record,
	// derived fields included. Callers recompute through the calculator first.
	UpdateSalaryRecord(ctx context.Context, record SalaryRecord) error
	UpdateStatus(ctx context.Context, id string, companyID string, status SalaryStatus) error
	DeleteSalaryRecord(ctx context.Context, id string, companyID string) error

	// Aggregations
	GetSalaryStats(ctx context.Context, companyID string, month, year int) (SalaryStatsResponse, error)
}
