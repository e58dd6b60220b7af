package dnd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/urbanshade/notify-center/internal/api/dto"
	"github.com/urbanshade/notify-center/internal/api/respond"
	"github.com/urbanshade/notify-center/internal/config"
	"github.com/urbanshade/notify-center/internal/model"
	dndsvc "github.com/urbanshade/notify-center/internal/service/dnd"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/dnd/mock.go -package=mocks

// dndService defines the interface that the Handler depends on.
type dndService interface {
	State() dndsvc.State
	Settings() model.DndSettings
	TimeUntilEnd() (string, bool)
	Toggle(ctx context.Context, strategy retry.Strategy) (dndsvc.State, error)
	Set(ctx context.Context, strategy retry.Strategy, enabled bool) (dndsvc.State, error)
	UpdateSchedule(ctx context.Context, strategy retry.Strategy, patch model.DndSchedulePatch) (dndsvc.State, error)
	UpdateSettings(ctx context.Context, strategy retry.Strategy, patch model.DndSettingsPatch) (dndsvc.State, error)
}

// Handler handles HTTP requests for the Do Not Disturb state and settings.
type Handler struct {
	service   dndService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s dndService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// stateResponse is the DND status payload returned by every endpoint.
type stateResponse struct {
	State    dndsvc.State      `json:"state"`
	Settings model.DndSettings `json:"settings"`
}

// Get handles HTTP GET requests for the current DND state and settings.
func (h *Handler) Get(c *ginext.Context) {
	respond.OK(c.Writer, stateResponse{
		State:    h.service.State(),
		Settings: h.service.Settings(),
	})
}

// Toggle handles HTTP POST requests flipping the manual override.
func (h *Handler) Toggle(c *ginext.Context) {
	state, err := h.service.Toggle(c.Request.Context(), h.cfg.Retry)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to toggle dnd")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stateResponse{State: state, Settings: h.service.Settings()})
}

// Set handles HTTP PUT requests forcing the manual override.
func (h *Handler) Set(c *ginext.Context) {
	var req dto.SetDndRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	state, err := h.service.Set(c.Request.Context(), h.cfg.Retry, *req.Enabled)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to set dnd")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stateResponse{State: state, Settings: h.service.Settings()})
}

// UpdateSchedule handles HTTP PATCH requests merging a partial schedule
// update. Hour/minute/day ranges are validated here; stored schedules are
// never re-checked on read.
func (h *Handler) UpdateSchedule(c *ginext.Context) {
	var req dto.UpdateScheduleRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	patch := model.DndSchedulePatch{
		Enabled:     req.Enabled,
		StartHour:   req.StartHour,
		StartMinute: req.StartMinute,
		EndHour:     req.EndHour,
		EndMinute:   req.EndMinute,
		Days:        req.Days,
	}

	state, err := h.service.UpdateSchedule(c.Request.Context(), h.cfg.Retry, patch)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to update schedule")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stateResponse{State: state, Settings: h.service.Settings()})
}

// UpdateSettings handles HTTP PATCH requests merging a partial settings
// update.
func (h *Handler) UpdateSettings(c *ginext.Context) {
	var req dto.UpdateDndSettingsRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	patch := model.DndSettingsPatch{
		Enabled:            req.Enabled,
		AllowPriority:      req.AllowPriority,
		AllowAlarms:        req.AllowAlarms,
		AllowRepeatCallers: req.AllowRepeatCallers,
	}

	state, err := h.service.UpdateSettings(c.Request.Context(), h.cfg.Retry, patch)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to update dnd settings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stateResponse{State: state, Settings: h.service.Settings()})
}

// TimeUntilEnd handles HTTP GET requests for the remaining DND time label.
func (h *Handler) TimeUntilEnd(c *ginext.Context) {
	remaining, active := h.service.TimeUntilEnd()
	respond.OK(c.Writer, map[string]interface{}{
		"active":    active,
		"remaining": remaining,
	})
}
