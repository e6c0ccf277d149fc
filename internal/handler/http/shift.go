package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	CreateRule(w http.ResponseWriter, r *http.Request)
	GetRule(w http.ResponseWriter, r *http.Request)
	GetDefaultRule(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	ruleService shift.RuleService
}

func NewShiftHandler(ruleService shift.RuleService) ShiftHandler {
	return &shiftHandlerImpl{
		ruleService: ruleService,
	}
}

// CreateRule implements ShiftHandler.
func (h *shiftHandlerImpl) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ruleService.CreateRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift rule created", created)
}

// GetRule implements ShiftHandler.
func (h *shiftHandlerImpl) GetRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "ruleID")
	if id == "" {
		response.BadRequest(w, "Rule ID is required", nil)
		return
	}

	rule, err := h.ruleService.GetRule(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rule)
}

// GetDefaultRule implements ShiftHandler.
func (h *shiftHandlerImpl) GetDefaultRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.ruleService.GetDefaultRule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rule)
}
