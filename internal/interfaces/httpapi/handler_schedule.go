package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-registry/internal/usecase"
)

func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedules")
	defer span.End()

	items, err := h.scheduleService.ListSchedules(ctx)
	if err != nil {
		h.logFailure(ctx, "list schedules failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, schedulesToDTO(items))
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	scheduleID := strings.TrimSpace(r.PathValue("scheduleID"))
	item, err := h.scheduleService.GetSchedule(ctx, scheduleID)
	if err != nil {
		h.logFailure(ctx, "get schedule failed", err, "schedule_id", scheduleID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleDetailToDTO(item))
}

func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSchedule")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	scheduleID := strings.TrimSpace(r.PathValue("scheduleID"))

	var req scheduleRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scheduleService.UpdateSchedule(ctx, principal, scheduleID, req.toInput())
	if err != nil {
		h.logFailure(ctx, "update schedule failed", err, "user_id", principal.UserID, "schedule_id", scheduleID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleDetailToDTO(item))
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSchedule")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	scheduleID := strings.TrimSpace(r.PathValue("scheduleID"))
	if err := h.scheduleService.DeleteSchedule(ctx, principal, scheduleID); err != nil {
		h.logFailure(ctx, "delete schedule failed", err, "user_id", principal.UserID, "schedule_id", scheduleID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"deleted": true, "id": scheduleID})
}
