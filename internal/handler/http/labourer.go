package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/handler/http/response"
)

type LabourerHandler interface {
	CreateLabourer(w http.ResponseWriter, r *http.Request)
	GetLabourer(w http.ResponseWriter, r *http.Request)
	ListLabourers(w http.ResponseWriter, r *http.Request)
	UpdateLabourer(w http.ResponseWriter, r *http.Request)
	DeleteLabourer(w http.ResponseWriter, r *http.Request)
}

type labourerHandlerImpl struct {
	labourerService labourer.LabourerService
}

func NewLabourerHandler(labourerService labourer.LabourerService) LabourerHandler {
	return &labourerHandlerImpl{labourerService: labourerService}
}

// CreateLabourer implements LabourerHandler
func (h *labourerHandlerImpl) CreateLabourer(w http.ResponseWriter, r *http.Request) {
	var req labourer.CreateLabourerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.labourerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Labourer created", result)
}

// GetLabourer implements LabourerHandler
func (h *labourerHandlerImpl) GetLabourer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Labourer ID is required", nil)
		return
	}

	result, err := h.labourerService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListLabourers implements LabourerHandler
func (h *labourerHandlerImpl) ListLabourers(w http.ResponseWriter, r *http.Request) {
	filter := labourer.LabourerFilter{
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if group := r.URL.Query().Get("group"); group != "" {
		filter.CohortGroup = &group
	}

	result, err := h.labourerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// UpdateLabourer implements LabourerHandler
func (h *labourerHandlerImpl) UpdateLabourer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Labourer ID is required", nil)
		return
	}

	var req labourer.UpdateLabourerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.labourerService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labourer updated", result)
}

// DeleteLabourer implements LabourerHandler
func (h *labourerHandlerImpl) DeleteLabourer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Labourer ID is required", nil)
		return
	}

	if err := h.labourerService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labourer deleted", nil)
}

func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
