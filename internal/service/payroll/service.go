package payroll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/staffdesk/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
	"github.com/staffdesk/payroll-backend-go/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	defaultUpstreamTimeout  = 5 * time.Second
	defaultUpstreamRetries  = 3
	defaultGenerateParallel = 8
	defaultRetryBackoff     = 200 * time.Millisecond

	defaultPayPeriod     = "monthly"
	defaultPaymentMethod = "bank_transfer"
)

// Options tunes the generation batch and the upstream lookups it makes.
type Options struct {
	UpstreamTimeout  time.Duration
	UpstreamRetries  int
	GenerateParallel int
	RetryBackoff     time.Duration
}

func (o Options) withDefaults() Options {
	if o.UpstreamTimeout <= 0 {
		o.UpstreamTimeout = defaultUpstreamTimeout
	}
	if o.UpstreamRetries <= 0 {
		o.UpstreamRetries = defaultUpstreamRetries
	}
	if o.GenerateParallel <= 0 {
		o.GenerateParallel = defaultGenerateParallel
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = defaultRetryBackoff
	}
	return o
}

type SalaryServiceImpl struct {
	db           *database.DB
	salaryRepo   payroll.SalaryRepository
	employeeRepo employee.EmployeeRepository
	attendance   payroll.AttendanceProvider
	incentives   payroll.IncentiveProvider
	opts         Options
}

func NewSalaryService(
	db *database.DB,
	salaryRepo payroll.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendance payroll.AttendanceProvider,
	incentives payroll.IncentiveProvider,
	opts Options,
) payroll.SalaryService {
	return &SalaryServiceImpl{
		db:           db,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		attendance:   attendance,
		incentives:   incentives,
		opts:         opts.withDefaults(),
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// ========== SETTINGS ==========

func (s *SalaryServiceImpl) GetSettings(ctx context.Context) (payroll.DeductionSettingsResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}

	settings, err := s.currentSettings(ctx, companyID)
	if err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}

	return mapToSettingsResponse(settings), nil
}

func (s *SalaryServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateDeductionSettingsRequest) (payroll.DeductionSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}

	current, err := s.currentSettings(ctx, companyID)
	if err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}

	if req.PaidLeavePercent != nil {
		current.PaidLeavePercent = *req.PaidLeavePercent
	}
	if req.HalfDayPercent != nil {
		current.HalfDayPercent = *req.HalfDayPercent
	}
	if req.LatePercent != nil {
		current.LatePercent = *req.LatePercent
	}
	if req.AbsentPercent != nil {
		current.AbsentPercent = *req.AbsentPercent
	}

	updated, err := s.salaryRepo.UpsertSettings(ctx, current)
	if err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}

	return mapToSettingsResponse(updated), nil
}

// currentSettings returns the company's stored policy, or the defaults when
// none has ever been saved. Settings are read fresh on every computation;
// there is no snapshotting.
func (s *SalaryServiceImpl) currentSettings(ctx context.Context, companyID string) (payroll.DeductionSettings, error) {
	settings, err := s.salaryRepo.GetSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, payroll.ErrDeductionSettingsNotFound) {
			return payroll.DefaultDeductionSettings(companyID), nil
		}
		return payroll.DeductionSettings{}, err
	}
	return settings, nil
}

// ========== GENERATION ==========

func (s *SalaryServiceImpl) Generate(ctx context.Context, req payroll.GenerateSalariesRequest) (payroll.GenerateSalariesResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateSalariesResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.GenerateSalariesResponse{}, err
	}

	settings, err := s.currentSettings(ctx, companyID)
	if err != nil {
		return payroll.GenerateSalariesResponse{}, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.GenerateSalariesResponse{}, fmt.Errorf("failed to load employee roster: %w", err)
	}

	existingIDs, err := s.salaryRepo.ListPeriodEmployeeIDs(ctx, companyID, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return payroll.GenerateSalariesResponse{}, fmt.Errorf("failed to load existing records: %w", err)
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	resp := payroll.GenerateSalariesResponse{
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Skipped:     []payroll.SkippedEmployee{},
	}
	var mu sync.Mutex

	// Per-employee builds are independent; the unique (employee, period)
	// constraint at the store is what resolves races with concurrent
	// generate or recalculate calls. A failed employee is reported and the
	// batch continues, so goroutines never return an error here.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.GenerateParallel)

	for _, emp := range employees {
		if existing[emp.ID] {
			mu.Lock()
			resp.Skipped = append(resp.Skipped, payroll.SkippedEmployee{
				EmployeeID: emp.ID,
				Reason:     "record already exists for period",
			})
			mu.Unlock()
			continue
		}

		emp := emp
		g.Go(func() error {
			generated, skipReason := s.generateForEmployee(gctx, companyID, emp, req.PeriodMonth, req.PeriodYear, settings)

			mu.Lock()
			defer mu.Unlock()
			if generated {
				resp.Generated++
			} else {
				resp.Skipped = append(resp.Skipped, payroll.SkippedEmployee{EmployeeID: emp.ID, Reason: skipReason})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payroll.GenerateSalariesResponse{}, err
	}

	return resp, nil
}

func (s *SalaryServiceImpl) generateForEmployee(
	ctx context.Context,
	companyID string,
	emp employee.Employee,
	month, year int,
	settings payroll.DeductionSettings,
) (generated bool, skipReason string) {
	inputs, currency, err := s.carryForwardInputs(ctx, companyID, emp, month, year)
	if err != nil {
		return false, fmt.Sprintf("prior record lookup failed: %v", err)
	}

	att, err := s.fetchAttendance(ctx, companyID, emp.ID, month, year)
	if err != nil {
		return false, fmt.Sprintf("attendance lookup failed: %v", err)
	}

	incentives, err := s.fetchIncentives(ctx, companyID, emp.ID, month, year)
	if err != nil {
		return false, fmt.Sprintf("incentive lookup failed: %v", err)
	}

	rec := payroll.SalaryRecord{
		ID:          uuid.NewString(),
		EmployeeID:  emp.ID,
		CompanyID:   companyID,
		PeriodMonth: month,
		PeriodYear:  year,
		Employee: payroll.EmployeeSnapshot{
			FullName:    emp.FullName,
			Email:       emp.Email,
			Department:  emp.Department,
			Designation: emp.Designation,
		},
		FixedInputs:   inputs,
		Currency:      currency,
		PayPeriod:     defaultPayPeriod,
		PaymentMethod: defaultPaymentMethod,
		Status:        payroll.SalaryStatusPending,
	}
	applyCalculation(&rec, att, incentives, Calculate(inputs, att, incentives, settings))

	if _, err := s.salaryRepo.CreateSalaryRecord(ctx, rec); err != nil {
		if errors.Is(err, payroll.ErrSalaryRecordAlreadyExists) {
			return false, "record already exists for period"
		}
		return false, fmt.Sprintf("persist failed: %v", err)
	}

	return true, ""
}

// carryForwardInputs copies the recurring fixed fields (basic, hra,
// allowances, tax, provident fund, insurance) and the currency from the
// employee's most recent prior record. One-off components (bonus, overtime,
// other earnings, loan and other deductions) always start at zero for a new
// period. Without a prior record everything starts at zero and the currency
// falls back to the directory's. Only a confirmed absence defaults to zero;
// a failed lookup propagates so the caller skips the employee instead of
// persisting a fabricated zero-salary record that would block regeneration.
func (s *SalaryServiceImpl) carryForwardInputs(ctx context.Context, companyID string, emp employee.Employee, month, year int) (payroll.FixedInputs, string, error) {
	prior, err := s.salaryRepo.GetLatestPriorRecord(ctx, emp.ID, month, year, companyID)
	if err != nil {
		if errors.Is(err, payroll.ErrSalaryRecordNotFound) {
			return payroll.FixedInputs{}, emp.Currency, nil
		}
		return payroll.FixedInputs{}, "", err
	}

	inputs := payroll.FixedInputs{
		BasicSalary:   prior.BasicSalary,
		HRA:           prior.HRA,
		Allowances:    prior.Allowances,
		Tax:           prior.Tax,
		ProvidentFund: prior.ProvidentFund,
		Insurance:     prior.Insurance,
	}
	currency := prior.Currency
	if currency == "" {
		currency = emp.Currency
	}
	return inputs, currency, nil
}

// ========== RECALCULATION ==========

func (s *SalaryServiceImpl) Recalculate(ctx context.Context, recordID string) (payroll.SalaryRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	rec, err := s.salaryRepo.GetSalaryRecordByID(ctx, recordID, companyID)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	settings, err := s.currentSettings(ctx, companyID)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	att, err := s.fetchAttendance(ctx, companyID, rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	incentives, err := s.fetchIncentives(ctx, companyID, rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	// Fixed inputs, status and admin fields stay untouched; only the
	// derived fields are refreshed.
	applyCalculation(&rec, att, incentives, Calculate(rec.FixedInputs, att, incentives, settings))

	if err := s.salaryRepo.UpdateSalaryRecord(ctx, rec); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return mapToRecordResponse(rec), nil
}

// ========== RECORDS ==========

func (s *SalaryServiceImpl) CreateRecord(ctx context.Context, req payroll.CreateSalaryRecordRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	settings, err := s.currentSettings(ctx, companyID)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	att, err := s.fetchAttendance(ctx, companyID, emp.ID, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	incentives, err := s.fetchIncentives(ctx, companyID, emp.ID, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = emp.Currency
	}
	payPeriod := req.PayPeriod
	if payPeriod == "" {
		payPeriod = defaultPayPeriod
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	inputs := req.ToFixedInputs()
	rec := payroll.SalaryRecord{
		ID:          uuid.NewString(),
		EmployeeID:  emp.ID,
		CompanyID:   companyID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Employee: payroll.EmployeeSnapshot{
			FullName:    emp.FullName,
			Email:       emp.Email,
			Department:  emp.Department,
			Designation: emp.Designation,
		},
		FixedInputs:   inputs,
		Currency:      currency,
		PayPeriod:     payPeriod,
		PaymentMethod: paymentMethod,
		Status:        payroll.SalaryStatusPending,
		Notes:         req.Notes,
	}
	applyCalculation(&rec, att, incentives, Calculate(inputs, att, incentives, settings))

	created, err := s.salaryRepo.CreateSalaryRecord(ctx, rec)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

func (s *SalaryServiceImpl) GetRecord(ctx context.Context, id string) (payroll.SalaryRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	rec, err := s.salaryRepo.GetSalaryRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return mapToRecordResponse(rec), nil
}

func (s *SalaryServiceImpl) ListRecords(ctx context.Context, filter payroll.SalaryFilter) (payroll.ListSalaryRecordsResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListSalaryRecordsResponse{}, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, totalCount, err := s.salaryRepo.ListSalaryRecords(ctx, companyID, filter)
	if err != nil {
		return payroll.ListSalaryRecordsResponse{}, err
	}

	return payroll.ListSalaryRecordsResponse{
		Data:       mapToRecordResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *SalaryServiceImpl) UpdateRecord(ctx context.Context, req payroll.UpdateSalaryRecordRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	var rec payroll.SalaryRecord
	err = s.inTransaction(ctx, func(ctx context.Context) error {
		rec, err = s.salaryRepo.GetSalaryRecordByID(ctx, req.ID, companyID)
		if err != nil {
			return err
		}

		applyFixedInputUpdates(&rec, req)

		// Any fixed-input change invalidates every derived figure (the
		// per-day rate rides on basic salary), so the whole record goes back
		// through the calculator against its stored attendance and incentives.
		settings, err := s.currentSettings(ctx, companyID)
		if err != nil {
			return err
		}
		applyCalculation(&rec, rec.Attendance, rec.IncentiveDetails, Calculate(rec.FixedInputs, rec.Attendance, rec.IncentiveDetails, settings))

		return s.salaryRepo.UpdateSalaryRecord(ctx, rec)
	})
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return mapToRecordResponse(rec), nil
}

// inTransaction wraps fn in a database transaction. Without a pool attached
// (unit tests run on in-memory stores) fn runs directly.
func (s *SalaryServiceImpl) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

func applyFixedInputUpdates(rec *payroll.SalaryRecord, req payroll.UpdateSalaryRecordRequest) {
	if req.BasicSalary != nil {
		rec.BasicSalary = *req.BasicSalary
	}
	if req.HRA != nil {
		rec.HRA = *req.HRA
	}
	if req.Allowances != nil {
		rec.Allowances = *req.Allowances
	}
	if req.Bonus != nil {
		rec.Bonus = *req.Bonus
	}
	if req.Overtime != nil {
		rec.Overtime = *req.Overtime
	}
	if req.OtherEarnings != nil {
		rec.OtherEarnings = *req.OtherEarnings
	}
	if req.Tax != nil {
		rec.Tax = *req.Tax
	}
	if req.ProvidentFund != nil {
		rec.ProvidentFund = *req.ProvidentFund
	}
	if req.Insurance != nil {
		rec.Insurance = *req.Insurance
	}
	if req.LoanDeduction != nil {
		rec.LoanDeduction = *req.LoanDeduction
	}
	if req.OtherDeductions != nil {
		rec.OtherDeductions = *req.OtherDeductions
	}
	if req.Currency != nil {
		rec.Currency = *req.Currency
	}
	if req.PayPeriod != nil {
		rec.PayPeriod = *req.PayPeriod
	}
	if req.PaymentMethod != nil {
		rec.PaymentMethod = *req.PaymentMethod
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}
}

func (s *SalaryServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.salaryRepo.DeleteSalaryRecord(ctx, id, companyID)
}

// ========== STATUS ==========

func (s *SalaryServiceImpl) UpdateStatus(ctx context.Context, id string, req payroll.UpdateStatusRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	if err := s.salaryRepo.UpdateStatus(ctx, id, companyID, req.Status); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return s.GetRecord(ctx, id)
}

func (s *SalaryServiceImpl) BulkUpdateStatus(ctx context.Context, req payroll.BulkStatusRequest) (payroll.BulkStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkStatusResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BulkStatusResponse{}, err
	}

	resp := payroll.BulkStatusResponse{Outcomes: make([]payroll.BulkStatusOutcome, 0, len(req.IDs))}
	for _, id := range req.IDs {
		if err := s.salaryRepo.UpdateStatus(ctx, id, companyID, req.Status); err != nil {
			resp.Failed++
			resp.Outcomes = append(resp.Outcomes, payroll.BulkStatusOutcome{ID: id, Reason: err.Error()})
			continue
		}
		resp.Updated++
		resp.Outcomes = append(resp.Outcomes, payroll.BulkStatusOutcome{ID: id, Updated: true})
	}

	return resp, nil
}

// ========== AGGREGATIONS ==========

func (s *SalaryServiceImpl) GetStats(ctx context.Context, month, year int) (payroll.SalaryStatsResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryStatsResponse{}, err
	}

	return s.salaryRepo.GetSalaryStats(ctx, companyID, month, year)
}

// ========== UPSTREAM LOOKUPS ==========

func (s *SalaryServiceImpl) fetchAttendance(ctx context.Context, companyID, employeeID string, month, year int) (payroll.AttendanceBreakdown, error) {
	var att payroll.AttendanceBreakdown
	err := s.withRetry(ctx, func(callCtx context.Context) error {
		var err error
		att, err = s.attendance.GetBreakdown(callCtx, companyID, employeeID, month, year)
		return err
	})
	return att, err
}

func (s *SalaryServiceImpl) fetchIncentives(ctx context.Context, companyID, employeeID string, month, year int) ([]payroll.IncentiveDetail, error) {
	var incentives []payroll.IncentiveDetail
	err := s.withRetry(ctx, func(callCtx context.Context) error {
		var err error
		incentives, err = s.incentives.GetIncentives(callCtx, companyID, employeeID, month, year)
		return err
	})
	return incentives, err
}

// withRetry runs fn with a per-attempt timeout and a small linear backoff.
// Exhausted retries surface as ErrUpstreamUnavailable; callers skip the
// employee rather than defaulting the data to zero.
func (s *SalaryServiceImpl) withRetry(ctx context.Context, fn func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= s.opts.UpstreamRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.opts.UpstreamTimeout)
		err = fn(callCtx)
		cancel()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			break
		}
		if attempt < s.opts.UpstreamRetries {
			select {
			case <-time.After(time.Duration(attempt) * s.opts.RetryBackoff):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", payroll.ErrUpstreamUnavailable, err)
			}
		}
	}
	return fmt.Errorf("%w: %v", payroll.ErrUpstreamUnavailable, err)
}

// ========== HELPERS ==========

func mapToSettingsResponse(s payroll.DeductionSettings) payroll.DeductionSettingsResponse {
	return payroll.DeductionSettingsResponse{
		ID:               s.ID,
		CompanyID:        s.CompanyID,
		PaidLeavePercent: s.PaidLeavePercent,
		HalfDayPercent:   s.HalfDayPercent,
		LatePercent:      s.LatePercent,
		AbsentPercent:    s.AbsentPercent,
	}
}

func mapToRecordResponse(r payroll.SalaryRecord) payroll.SalaryRecordResponse {
	details := r.IncentiveDetails
	if details == nil {
		details = []payroll.IncentiveDetail{}
	}

	return payroll.SalaryRecordResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		PeriodMonth: r.PeriodMonth,
		PeriodYear:  r.PeriodYear,

		EmployeeName:        r.Employee.FullName,
		EmployeeEmail:       r.Employee.Email,
		EmployeeDepartment:  r.Employee.Department,
		EmployeeDesignation: r.Employee.Designation,

		BasicSalary:     r.BasicSalary,
		HRA:             r.HRA,
		Allowances:      r.Allowances,
		Bonus:           r.Bonus,
		Overtime:        r.Overtime,
		OtherEarnings:   r.OtherEarnings,
		GrossEarnings:   r.GrossEarnings,
		Tax:             r.Tax,
		ProvidentFund:   r.ProvidentFund,
		Insurance:       r.Insurance,
		LoanDeduction:   r.LoanDeduction,
		OtherDeductions: r.OtherDeductions,
		TotalDeductions: r.TotalDeductions,

		Attendance: payroll.AttendanceBreakdownPayload{
			TotalWorkingDays: r.Attendance.TotalWorkingDays,
			DaysPresent:      r.Attendance.DaysPresent,
			PaidLeaveDays:    r.Attendance.PaidLeaveDays,
			HalfDayCount:     r.Attendance.HalfDayCount,
			LateCount:        r.Attendance.LateCount,
			AbsentDays:       r.Attendance.AbsentDays,
		},
		PaidLeaveDeduction:  r.PaidLeaveDeduction,
		HalfDayDeduction:    r.HalfDayDeduction,
		LateDeduction:       r.LateDeduction,
		AbsentDeduction:     r.AbsentDeduction,
		AttendanceDeduction: r.AttendanceDeduction,

		IncentiveAmount:  r.IncentiveAmount,
		IncentiveDetails: details,

		NetSalary: r.NetSalary,

		Currency:      r.Currency,
		PayPeriod:     r.PayPeriod,
		PaymentMethod: r.PaymentMethod,
		Status:        string(r.Status),
		Notes:         r.Notes,
	}
}

func mapToRecordResponses(records []payroll.SalaryRecord) []payroll.SalaryRecordResponse {
	result := make([]payroll.SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result
}
