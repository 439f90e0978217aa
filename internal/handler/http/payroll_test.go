package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSalaryService returns canned values; handler tests only exercise
// routing, decoding and error mapping.
type stubSalaryService struct {
	settings payroll.DeductionSettingsResponse
	record   payroll.SalaryRecordResponse
	generate payroll.GenerateSalariesResponse
	list     payroll.ListSalaryRecordsResponse
	bulk     payroll.BulkStatusResponse
	stats    payroll.SalaryStatsResponse
	err      error
}

func (s *stubSalaryService) GetSettings(context.Context) (payroll.DeductionSettingsResponse, error) {
	return s.settings, s.err
}

func (s *stubSalaryService) UpdateSettings(_ context.Context, req payroll.UpdateDeductionSettingsRequest) (payroll.DeductionSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionSettingsResponse{}, err
	}
	return s.settings, s.err
}

func (s *stubSalaryService) Generate(_ context.Context, req payroll.GenerateSalariesRequest) (payroll.GenerateSalariesResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateSalariesResponse{}, err
	}
	return s.generate, s.err
}

func (s *stubSalaryService) Recalculate(context.Context, string) (payroll.SalaryRecordResponse, error) {
	return s.record, s.err
}

func (s *stubSalaryService) CreateRecord(context.Context, payroll.CreateSalaryRecordRequest) (payroll.SalaryRecordResponse, error) {
	return s.record, s.err
}

func (s *stubSalaryService) GetRecord(context.Context, string) (payroll.SalaryRecordResponse, error) {
	return s.record, s.err
}

func (s *stubSalaryService) ListRecords(context.Context, payroll.SalaryFilter) (payroll.ListSalaryRecordsResponse, error) {
	return s.list, s.err
}

func (s *stubSalaryService) UpdateRecord(context.Context, payroll.UpdateSalaryRecordRequest) (payroll.SalaryRecordResponse, error) {
	return s.record, s.err
}

func (s *stubSalaryService) DeleteRecord(context.Context, string) error {
	return s.err
}

func (s *stubSalaryService) UpdateStatus(context.Context, string, payroll.UpdateStatusRequest) (payroll.SalaryRecordResponse, error) {
	return s.record, s.err
}

func (s *stubSalaryService) BulkUpdateStatus(context.Context, payroll.BulkStatusRequest) (payroll.BulkStatusResponse, error) {
	return s.bulk, s.err
}

func (s *stubSalaryService) GetStats(context.Context, int, int) (payroll.SalaryStatsResponse, error) {
	return s.stats, s.err
}

func newTestServer(t *testing.T, svc payroll.SalaryService) (*httptest.Server, string) {
	t.Helper()

	jwtService := jwt.NewJWTService("handler-test-secret")
	router := NewRouter(RouterConfig{Env: "test", FrontendURL: "http://localhost:3000"}, jwtService, NewPayrollHandler(svc))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, err := jwtService.AccessToken("user-1", "admin@example.com", "company-1", time.Hour)
	require.NoError(t, err)

	return server, token
}

func doRequest(t *testing.T, server *httptest.Server, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestPayrollRoutes_RequireAuthentication(t *testing.T) {
	t.Parallel()
	server, _ := newTestServer(t, &stubSalaryService{})

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/payroll/settings"},
		{http.MethodPost, "/api/v1/payroll/generate"},
		{http.MethodGet, "/api/v1/payroll/records"},
		{http.MethodGet, "/api/v1/payroll/stats?month=3&year=2025"},
	}

	for _, p := range paths {
		resp := doRequest(t, server, p.method, p.path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestPayrollRoutes_RejectsNonAccessToken(t *testing.T) {
	t.Parallel()
	server, _ := newTestServer(t, &stubSalaryService{})

	jwtService := jwt.NewJWTService("handler-test-secret")
	ja := jwtService.JWTAuth()
	_, refreshToken, err := ja.Encode(map[string]interface{}{
		"user_id":    "user-1",
		"company_id": "company-1",
		"type":       "refresh",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	resp := doRequest(t, server, http.MethodGet, "/api/v1/payroll/settings", refreshToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetSettings_ReturnsPolicy(t *testing.T) {
	t.Parallel()
	svc := &stubSalaryService{
		settings: payroll.DeductionSettingsResponse{
			CompanyID:        "company-1",
			PaidLeavePercent: decimal.Zero,
			HalfDayPercent:   decimal.NewFromInt(50),
			LatePercent:      decimal.NewFromInt(25),
			AbsentPercent:    decimal.NewFromInt(100),
		},
	}
	server, token := newTestServer(t, svc)

	resp := doRequest(t, server, http.MethodGet, "/api/v1/payroll/settings", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "company-1", data["company_id"])
	assert.Equal(t, "25", data["late_percent"])
}

func TestUpdateSettings_ValidationFailure(t *testing.T) {
	t.Parallel()
	server, token := newTestServer(t, &stubSalaryService{})

	resp := doRequest(t, server, http.MethodPut, "/api/v1/payroll/settings", token, map[string]interface{}{
		"absent_percent": "150",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "absent_percent")
}

func TestGenerate_ReturnsSummary(t *testing.T) {
	t.Parallel()
	svc := &stubSalaryService{
		generate: payroll.GenerateSalariesResponse{
			PeriodMonth: 3,
			PeriodYear:  2025,
			Generated:   3,
			Skipped: []payroll.SkippedEmployee{
				{EmployeeID: "emp-1", Reason: "record already exists for period"},
			},
		},
	}
	server, token := newTestServer(t, svc)

	resp := doRequest(t, server, http.MethodPost, "/api/v1/payroll/generate", token, map[string]interface{}{
		"period_month": 3,
		"period_year":  2025,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["generated"])
	assert.Len(t, data["skipped"], 1)
}

func TestGenerate_InvalidPeriod(t *testing.T) {
	t.Parallel()
	server, token := newTestServer(t, &stubSalaryService{})

	resp := doRequest(t, server, http.MethodPost, "/api/v1/payroll/generate", token, map[string]interface{}{
		"period_month": 13,
		"period_year":  2025,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGenerate_MalformedBody(t *testing.T) {
	t.Parallel()
	server, token := newTestServer(t, &stubSalaryService{})

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/payroll/generate", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetRecord_NotFound(t *testing.T) {
	t.Parallel()
	server, token := newTestServer(t, &stubSalaryService{err: payroll.ErrSalaryRecordNotFound})

	resp := doRequest(t, server, http.MethodGet, "/api/v1/payroll/records/unknown-id", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

func TestCreateRecord_Conflict(t *testing.T) {
	t.Parallel()
	server, token := newTestServer(t, &stubSalaryService{err: payroll.ErrSalaryRecordAlreadyExists})

	resp := doRequest(t, server, http.MethodPost, "/api/v1/payroll/records", token, map[string]interface{}{
		"employee_id":  "emp-1",
		"period_month": 3,
		"period_year":  2025,
		"basic_salary": "3000",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRecalculate_UpstreamUnavailable(t *testing.T) {
	t.Parallel()
	server, token := newTestServer(t, &stubSalaryService{err: payroll.ErrUpstreamUnavailable})

	resp := doRequest(t, server, http.MethodPost, "/api/v1/payroll/records/rec-1/recalculate", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestListRecords_ReturnsMeta(t *testing.T) {
	t.Parallel()
	svc := &stubSalaryService{
		list: payroll.ListSalaryRecordsResponse{
			Data:       []payroll.SalaryRecordResponse{{ID: "rec-1"}, {ID: "rec-2"}},
			TotalCount: 42,
			Page:       2,
			Limit:      2,
		},
	}
	server, token := newTestServer(t, svc)

	resp := doRequest(t, server, http.MethodGet, "/api/v1/payroll/records?page=2&limit=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(42), meta["total_items"])
	assert.Equal(t, float64(21), meta["total_pages"])
}

func TestGetStats_RequiresPeriodParams(t *testing.T) {
	t.Parallel()
	server, token := newTestServer(t, &stubSalaryService{})

	resp := doRequest(t, server, http.MethodGet, "/api/v1/payroll/stats", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, server, http.MethodGet, "/api/v1/payroll/stats?month=3&year=2025", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateStatus_ServiceValidation(t *testing.T) {
	t.Parallel()
	server, token := newTestServer(t, &stubSalaryService{err: validator.ValidationErrors{{Field: "status", Message: "must be one of pending, paid, on-hold, cancelled"}}})

	resp := doRequest(t, server, http.MethodPatch, "/api/v1/payroll/records/rec-1/status", token, map[string]interface{}{
		"status": "archived",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestBulkUpdateStatus_ReturnsOutcomes(t *testing.T) {
	t.Parallel()
	svc := &stubSalaryService{
		bulk: payroll.BulkStatusResponse{
			Updated: 2,
			Failed:  1,
			Outcomes: []payroll.BulkStatusOutcome{
				{ID: "rec-1", Updated: true},
				{ID: "rec-2", Updated: true},
				{ID: "rec-3", Reason: "salary record not found"},
			},
		},
	}
	server, token := newTestServer(t, svc)

	resp := doRequest(t, server, http.MethodPost, "/api/v1/payroll/bulk-status", token, map[string]interface{}{
		"ids":    []string{"rec-1", "rec-2", "rec-3"},
		"status": "paid",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["updated"])
	assert.Equal(t, float64(1), data["failed"])
	assert.Len(t, data["outcomes"], 3)
}
