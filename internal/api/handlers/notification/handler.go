package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/urbanshade/notify-center/internal/api/dto"
	"github.com/urbanshade/notify-center/internal/api/respond"
	"github.com/urbanshade/notify-center/internal/config"
	"github.com/urbanshade/notify-center/internal/model"
	"github.com/urbanshade/notify-center/internal/repository/notification"
	notifsvc "github.com/urbanshade/notify-center/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

// notificationService defines the interface that the Handler depends on.
//
// It abstracts creation with delivery decisions, the read/dismiss
// lifecycle, bulk clears and the derived views.
type notificationService interface {
	Add(ctx context.Context, strategy retry.Strategy, in notifsvc.Input) (notifsvc.Delivery, error)
	All() []model.SystemNotification
	Filtered(f model.Filters) []model.SystemNotification
	GroupedByTime(f model.Filters) map[string][]model.SystemNotification
	GroupedByApp(f model.Filters) map[string][]model.SystemNotification
	AvailableApps() []string
	UnreadCount() int
	PersistentCount() int
	MarkAsRead(ctx context.Context, strategy retry.Strategy, id string) error
	MarkAllAsRead(ctx context.Context, strategy retry.Strategy) error
	Dismiss(ctx context.Context, strategy retry.Strategy, id string) error
	Delete(ctx context.Context, strategy retry.Strategy, id string) error
	ClearAll(ctx context.Context, strategy retry.Strategy) error
	ClearByApp(ctx context.Context, strategy retry.Strategy, app string) error
	ClearByType(ctx context.Context, strategy retry.Strategy, typ model.NotificationType) error
	ExecuteAction(ctx context.Context, strategy retry.Strategy, id, action string) error
}

// Handler handles HTTP requests related to notifications.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create handles HTTP POST requests to create a new notification.
//
// It validates the request body, stores the notification and returns it
// together with the delivery decision (shouldShow / shouldPlaySound).
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateNotificationRequest

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

	actions := make([]model.NotificationAction, 0, len(req.Actions))
	for _, a := range req.Actions {
		actions = append(actions, model.NotificationAction{
			Label:   a.Label,
			Action:  a.Action,
			Primary: a.Primary,
		})
	}

	in := notifsvc.Input{
		Title:      req.Title,
		Message:    req.Message,
		Type:       model.NotificationType(req.Type),
		App:        req.App,
		Priority:   model.NotificationPriority(req.Priority),
		Behavior:   model.NotificationBehavior(req.Behavior),
		Actions:    actions,
		Persistent: req.Persistent,
		GroupID:    req.GroupID,
		Sound:      req.Sound,
	}

	delivery, err := h.service.Add(c.Request.Context(), h.cfg.Retry, in)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", req.Title).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, delivery)
}

// List handles HTTP GET requests for notification views. Filters come from
// query parameters; group=time or group=app returns the partitioned view.
func (h *Handler) List(c *ginext.Context) {
	filters := model.Filters{
		Type:       model.NotificationType(c.Query("type")),
		App:        c.Query("app"),
		TimeRange:  model.TimeRange(c.Query("time_range")),
		UnreadOnly: c.Query("unread_only") == "true",
	}

	switch c.Query("group") {
	case "time":
		respond.OK(c.Writer, h.service.GroupedByTime(filters))
	case "app":
		respond.OK(c.Writer, h.service.GroupedByApp(filters))
	default:
		respond.OK(c.Writer, h.service.Filtered(filters))
	}
}

// Apps handles HTTP GET requests for the set of producers present in the
// store.
func (h *Handler) Apps(c *ginext.Context) {
	respond.OK(c.Writer, h.service.AvailableApps())
}

// Counts handles HTTP GET requests for the unread and persistent badges.
func (h *Handler) Counts(c *ginext.Context) {
	respond.OK(c.Writer, map[string]int{
		"unread":     h.service.UnreadCount(),
		"persistent": h.service.PersistentCount(),
	})
}

// MarkAsRead handles HTTP POST requests marking one notification read.
func (h *Handler) MarkAsRead(c *ginext.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), h.cfg.Retry, id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to mark notification as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification marked as read")
}

// MarkAllAsRead handles HTTP POST requests marking every notification read.
func (h *Handler) MarkAllAsRead(c *ginext.Context) {
	if err := h.service.MarkAllAsRead(c.Request.Context(), h.cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to mark all notifications as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "all notifications marked as read")
}

// Dismiss handles HTTP POST requests hiding a notification from active
// views while keeping it stored.
func (h *Handler) Dismiss(c *ginext.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}

	if err := h.service.Dismiss(c.Request.Context(), h.cfg.Retry, id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to dismiss notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification dismissed")
}

// Delete handles HTTP DELETE requests removing a notification permanently.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.cfg.Retry, id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to delete notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification deleted")
}

// Clear handles HTTP DELETE requests for bulk removal. With no query
// parameters it clears everything except persistent notifications; app= or
// type= narrows the clear to one producer or one type.
func (h *Handler) Clear(c *ginext.Context) {
	ctx := c.Request.Context()

	if app := c.Query("app"); app != "" {
		if err := h.service.ClearByApp(ctx, h.cfg.Retry, app); err != nil {
			zlog.Logger.Error().Err(err).Str("app", app).Msg("failed to clear notifications by app")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
			return
		}

		respond.OK(c.Writer, "notifications cleared")
		return
	}

	if typ := c.Query("type"); typ != "" {
		if err := h.service.ClearByType(ctx, h.cfg.Retry, model.NotificationType(typ)); err != nil {
			zlog.Logger.Error().Err(err).Str("type", typ).Msg("failed to clear notifications by type")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
			return
		}

		respond.OK(c.Writer, "notifications cleared")
		return
	}

	if err := h.service.ClearAll(ctx, h.cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to clear notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notifications cleared")
}

// ExecuteAction handles HTTP POST requests dispatching a named action for a
// notification to the system event bus.
func (h *Handler) ExecuteAction(c *ginext.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}

	var req dto.ExecuteActionRequest
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

	err := h.service.ExecuteAction(c.Request.Context(), h.cfg.Retry, id, req.Action)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to execute action")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "action dispatched")
}

// notificationID extracts and validates the id URL parameter. It writes the
// error response itself when the id is missing or malformed.
func (h *Handler) notificationID(c *ginext.Context) (string, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return "", false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return "", false
	}

	return id.String(), true
}
