package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	"github.com/riskibarqy/league-registry/internal/usecase"
)

type teamCreator func(ctx context.Context, principal user.Principal, input usecase.CreateTeamInput) (team.Team, error)

type teamUpdater func(ctx context.Context, principal user.Principal, teamID string, input usecase.UpdateTeamInput) (team.Team, error)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	h.serveCreateTeam(ctx, w, r, h.teamService.CreateTeam)
}

func (h *Handler) AdminCreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateTeam")
	defer span.End()

	h.serveCreateTeam(ctx, w, r, h.teamService.AdminCreateTeam)
}

func (h *Handler) serveCreateTeam(ctx context.Context, w http.ResponseWriter, r *http.Request, create teamCreator) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	var req createTeamRequest
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

	item, err := create(ctx, principal, usecase.CreateTeamInput{
		Name:            req.Name,
		City:            req.City,
		Stadium:         req.Stadium,
		Sport:           req.Sport,
		StadiumPhoto:    req.StadiumPhoto,
		TeamType:        req.TeamType,
		StadiumLocation: req.StadiumLocation,
		StadiumCapacity: req.StadiumCapacity,
		ManagerID:       req.ManagerID,
	})
	if err != nil {
		h.logFailure(ctx, "create team failed", err, "user_id", principal.UserID, "team_name", req.Name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	page, err := parsePageRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamService.ListTeams(ctx, usecase.ListTeamsInput{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Page:   page,
	})
	if err != nil {
		h.logFailure(ctx, "list teams failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDetailDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, teamDetailToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, pageDTO[teamDetailDTO]{
		Items:      items,
		Pagination: paginationToDTO(result.Page),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logFailure(ctx, "get team failed", err, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailToDTO(ctx, item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	h.serveUpdateTeam(ctx, w, r, h.teamService.UpdateTeam)
}

func (h *Handler) AdminUpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateTeam")
	defer span.End()

	h.serveUpdateTeam(ctx, w, r, h.teamService.AdminUpdateTeam)
}

func (h *Handler) serveUpdateTeam(ctx context.Context, w http.ResponseWriter, r *http.Request, update teamUpdater) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req updateTeamRequest
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

	item, err := update(ctx, principal, teamID, req.toInput())
	if err != nil {
		h.logFailure(ctx, "update team failed", err, "user_id", principal.UserID, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	result, err := h.teamService.DeleteTeam(ctx, principal, teamID)
	if err != nil {
		h.logFailure(ctx, "delete team failed", err, "user_id", principal.UserID, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"deleted":         true,
		"id":              result.TeamID,
		"cleared_players": result.ClearedPlayers,
	})
}

func (h *Handler) AddPlayerToTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayerToTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req addPlayerRequest
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

	item, err := h.playerService.AddPlayer(ctx, principal, teamID, req.toInput())
	if err != nil {
		h.logFailure(ctx, "add player to team failed", err, "user_id", principal.UserID, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerDetailToDTO(item))
}

func (h *Handler) CreateTeamSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeamSchedule")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))

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

	item, err := h.scheduleService.CreateSchedule(ctx, principal, teamID, req.toInput())
	if err != nil {
		h.logFailure(ctx, "create schedule failed", err, "user_id", principal.UserID, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, scheduleDetailToDTO(item))
}

func (h *Handler) ListTeamSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamSchedules")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	items, err := h.teamService.ListTeamSchedules(ctx, teamID)
	if err != nil {
		h.logFailure(ctx, "list team schedules failed", err, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, schedulesToDTO(items))
}
