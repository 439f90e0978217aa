package payroll

import "context"

type SalaryService interface {
	// Settings
	GetSettings(ctx context.Context) (DeductionSettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateDeductionSettingsRequest) (DeductionSettingsResponse, error)

	// Generation and recalculation
	Generate(ctx context.Context, req GenerateSalariesRequest) (GenerateSalariesResponse, error)
	Recalculate(ctx context.Context, recordID string) (SalaryRecordResponse, error)

	// Records
	CreateRecord(ctx context.Context, req CreateSalaryRecordRequest) (SalaryRecordResponse, error)
	GetRecord(ctx context.Context, id string) (SalaryRecordResponse, error)
	ListRecords(ctx context.Context, filter SalaryFilter) (ListSalaryRecordsResponse, error)
	UpdateRecord(ctx context.Context, req UpdateSalaryRecordRequest) (SalaryRecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error

	// Status
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (SalaryRecordResponse, error)
	BulkUpdateStatus(ctx context.Context, req BulkStatusRequest) (BulkStatusResponse, error)

	// Aggregations
	GetStats(ctx context.Context, month, year int) (SalaryStatsResponse, error)
}
