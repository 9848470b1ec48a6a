package http

import (
	"encoding/json"
	"net/http"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
	"github.com/wagewise-hq/payweek-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GenerateWeek(w http.ResponseWriter, r *http.Request)
	ListSnapshots(w http.ResponseWriter, r *http.Request)
	ListSummaries(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// GenerateWeek implements TimesheetHandler.
func (h *timesheetHandlerImpl) GenerateWeek(w http.ResponseWriter, r *http.Request) {
	var req timesheet.GenerateWeekRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.GenerateWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay week generated successfully", result)
}

// ListSnapshots implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.SnapshotFilter{
		WeekStart: r.URL.Query().Get("week_start"),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.ListSnapshots(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSummaries implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListSummaries(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.SnapshotFilter{
		WeekStart: r.URL.Query().Get("week_start"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.ListSummaries(r.Context(), filter.WeekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
