package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/attendance"
	"github.com/shairahamancsc/labourpro-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	UpsertDay(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	ListRange(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	FaceCheckin(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// UpsertDay implements AttendanceHandler. PUT is deliberate: the payload is
// the complete sheet for the date and replaces whatever was there.
func (h *attendanceHandlerImpl) UpsertDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req attendance.UpsertDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Date = date

	result, err := h.attendanceService.UpsertDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", result)
}

// GetDay implements AttendanceHandler
func (h *attendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetDay(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRange implements AttendanceHandler
func (h *attendanceHandlerImpl) ListRange(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	result, err := h.attendanceService.ListRange(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements AttendanceHandler
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	result, err := h.attendanceService.Summary(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// FaceCheckin implements AttendanceHandler
func (h *attendanceHandlerImpl) FaceCheckin(w http.ResponseWriter, r *http.Request) {
	var req attendance.FaceCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.FaceCheckin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labourer checked in", result)
}
