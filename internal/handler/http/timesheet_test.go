package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/jwt"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// fakeTimesheetService returns canned responses so the tests cover routing,
// auth middleware, and error mapping without a database.
type fakeTimesheetService struct {
	generateResp timesheet.GenerateWeekResponse
	generateErr  error
}

func (f *fakeTimesheetService) GenerateWeek(ctx context.Context, req timesheet.GenerateWeekRequest) (timesheet.GenerateWeekResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.GenerateWeekResponse{}, err
	}
	return f.generateResp, f.generateErr
}

func (f *fakeTimesheetService) GenerateWeekForCompany(ctx context.Context, companyID string, weekStart time.Time) (timesheet.GenerateWeekResponse, error) {
	return f.generateResp, f.generateErr
}

func (f *fakeTimesheetService) ListSnapshots(ctx context.Context, filter timesheet.SnapshotFilter) (timesheet.ListSnapshotsResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.ListSnapshotsResponse{}, err
	}
	return timesheet.ListSnapshotsResponse{
		Week:      timesheet.WeekWindow{Start: filter.WeekStart},
		Snapshots: []timesheet.SnapshotResponse{},
	}, nil
}

func (f *fakeTimesheetService) ListSummaries(ctx context.Context, weekStart string) (timesheet.ListSummariesResponse, error) {
	filter := timesheet.SnapshotFilter{WeekStart: weekStart}
	if err := filter.Validate(); err != nil {
		return timesheet.ListSummariesResponse{}, err
	}
	return timesheet.ListSummariesResponse{
		Week:      timesheet.WeekWindow{Start: weekStart},
		Summaries: []timesheet.SummaryResponse{},
	}, nil
}

func newTestRouter(svc timesheet.TimesheetService) (http.Handler, string) {
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	token, _, err := jwtService.GenerateAccessToken("user-1", "co-1", "admin")
	if err != nil {
		panic("failed to mint test token: " + err.Error())
	}
	return NewRouter(jwtService, NewTimesheetHandler(svc)), token
}

func TestTimesheetHandler_GenerateWeek(t *testing.T) {
	svc := &fakeTimesheetService{
		generateResp: timesheet.GenerateWeekResponse{
			RunID:              "run-1",
			EmployeesProcessed: 3,
			SnapshotsCreated:   15,
			Week:               timesheet.WeekWindow{Start: "2026-03-02", End: "2026-03-08"},
		},
	}
	router, token := newTestRouter(svc)

	body, _ := json.Marshal(map[string]string{"week_start": "2026-03-02"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payweek/generate", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			RunID            string `json:"run_id"`
			SnapshotsCreated int    `json:"snapshots_created"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "run-1", resp.Data.RunID)
	assert.Equal(t, 15, resp.Data.SnapshotsCreated)
}

func TestTimesheetHandler_GenerateWeekRejectsNonMonday(t *testing.T) {
	router, token := newTestRouter(&fakeTimesheetService{})

	body, _ := json.Marshal(map[string]string{"week_start": "2026-03-03"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payweek/generate", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "week_start")
}

func TestTimesheetHandler_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(&fakeTimesheetService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payweek/summaries?week_start=2026-03-02", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTimesheetHandler_ListSnapshots(t *testing.T) {
	router, token := newTestRouter(&fakeTimesheetService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payweek/snapshots?week_start=2026-03-02&employee_id=emp-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2026-03-02")
}

func TestTimesheetHandler_ListSnapshotsMissingWeek(t *testing.T) {
	router, token := newTestRouter(&fakeTimesheetService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payweek/snapshots", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
