package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
	"github.com/riskibarqy/league-registry/internal/usecase"
)

type Handler struct {
	authService     *usecase.AuthService
	teamService     *usecase.TeamService
	playerService   *usecase.PlayerService
	scheduleService *usecase.ScheduleService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	scheduleService *usecase.ScheduleService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:     authService,
		teamService:     teamService,
		playerService:   playerService,
		scheduleService: scheduleService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure logs client errors at warn and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

func parsePageRequest(r *http.Request) (usecase.PageRequest, error) {
	page, err := parseOptionalInt(r, "page")
	if err != nil {
		return usecase.PageRequest{}, err
	}
	limit, err := parseOptionalInt(r, "limit")
	if err != nil {
		return usecase.PageRequest{}, err
	}
	return usecase.PageRequest{Page: page, Limit: limit}, nil
}

func parseOptionalInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}
