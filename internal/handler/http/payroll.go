package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler struct {
	salaryService payroll.SalaryService
}

func NewPayrollHandler(salaryService payroll.SalaryService) *PayrollHandler {
	return &PayrollHandler{salaryService: salaryService}
}

// ========== SETTINGS ==========

// GetSettings handles GET /api/v1/payroll/settings
func (h *PayrollHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.salaryService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateSettings handles PUT /api/v1/payroll/settings
func (h *PayrollHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateDeductionSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	settings, err := h.salaryService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction settings updated", settings)
}

// ========== GENERATION ==========

// Generate handles POST /api/v1/payroll/generate
func (h *PayrollHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateSalariesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary generation completed", result)
}

// Recalculate handles POST /api/v1/payroll/records/{id}/recalculate
func (h *PayrollHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.salaryService.Recalculate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record recalculated", record)
}

// ========== RECORDS ==========

// CreateRecord handles POST /api/v1/payroll/records
func (h *PayrollHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalaryRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.salaryService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary record created", record)
}

// GetRecord handles GET /api/v1/payroll/records/{id}
func (h *PayrollHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.salaryService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// ListRecords handles GET /api/v1/payroll/records
func (h *PayrollHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := parseSalaryFilter(r)

	result, err := h.salaryService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// UpdateRecord handles PUT /api/v1/payroll/records/{id}
func (h *PayrollHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateSalaryRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	record, err := h.salaryService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record updated", record)
}

// DeleteRecord handles DELETE /api/v1/payroll/records/{id}
func (h *PayrollHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.salaryService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record deleted", nil)
}

// ========== STATUS ==========

// UpdateStatus handles PATCH /api/v1/payroll/records/{id}/status
func (h *PayrollHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	id := chi.URLParam(r, "id")

	record, err := h.salaryService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary status updated", record)
}

// BulkUpdateStatus handles POST /api/v1/payroll/bulk-status
func (h *PayrollHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.BulkUpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk status update completed", result)
}

// ========== AGGREGATIONS ==========

// GetStats handles GET /api/v1/payroll/stats
func (h *PayrollHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}

	stats, err := h.salaryService.GetStats(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func parseSalaryFilter(r *http.Request) payroll.SalaryFilter {
	q := r.URL.Query()
	filter := payroll.SalaryFilter{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if v, err := strconv.Atoi(q.Get("month")); err == nil {
		filter.PeriodMonth = &v
	}
	if v, err := strconv.Atoi(q.Get("year")); err == nil {
		filter.PeriodYear = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		filter.Limit = v
	}

	return filter
}
