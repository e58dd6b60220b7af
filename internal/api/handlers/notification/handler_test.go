package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/api/dto"
	"github.com/urbanshade/notify-center/internal/config"
	mocks "github.com/urbanshade/notify-center/internal/mocks/api/handlers/notification"
	"github.com/urbanshade/notify-center/internal/model"
	"github.com/urbanshade/notify-center/internal/repository/notification"
	notifsvc "github.com/urbanshade/notify-center/internal/service/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotificationService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	handler := NewHandler(mockService, validator.New(), cfg)
	return handler, mockService, cfg
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.CreateNotificationRequest{
		Title:   "Low oxygen",
		Message: "Oxygen level critical",
		Type:    "warning",
		App:     "Life Support",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Add(gomock.Any(), cfg.Retry, gomock.AssignableToTypeOf(notifsvc.Input{})).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, in notifsvc.Input) (notifsvc.Delivery, error) {
			assert.Equal(t, "Low oxygen", in.Title)
			assert.Equal(t, model.TypeWarning, in.Type)
			return notifsvc.Delivery{ShouldShow: true}, nil
		})

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_InvalidType(t *testing.T) {
	handler, _, _ := setupHandler(t)

	body := []byte(`{"title":"t","message":"m","type":"shout"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_MissingTitle(t *testing.T) {
	handler, _, _ := setupHandler(t)

	body := []byte(`{"message":"m"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_List_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications?type=warning&unread_only=true", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	expected := model.Filters{Type: model.TypeWarning, UnreadOnly: true}
	mockService.EXPECT().
		Filtered(expected).
		Return([]model.SystemNotification{{Title: "t"}})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_List_GroupedByTime(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications?group=time", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		GroupedByTime(model.Filters{}).
		Return(map[string][]model.SystemNotification{"Just now": {}})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "Just now")
}

func TestHandler_MarkAsRead_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+id.String()+"/read", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().MarkAsRead(gomock.Any(), cfg.Retry, id.String()).Return(nil)

	handler.MarkAsRead(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_MarkAsRead_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/not-a-uuid/read", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.MarkAsRead(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Clear_ByApp(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/notifications?app=Radio", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().ClearByApp(gomock.Any(), cfg.Retry, "Radio").Return(nil)

	handler.Clear(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Clear_ByType(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/notifications?type=error", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().ClearByType(gomock.Any(), cfg.Retry, model.TypeError).Return(nil)

	handler.Clear(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Clear_All(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/notifications", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().ClearAll(gomock.Any(), cfg.Retry).Return(nil)

	handler.Clear(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_ExecuteAction_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	body := []byte(`{"action":"open-map"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+id.String()+"/actions", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().ExecuteAction(gomock.Any(), cfg.Retry, id.String(), "open-map").Return(nil)

	handler.ExecuteAction(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_ExecuteAction_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	body := []byte(`{"action":"open-map"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+id.String()+"/actions", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		ExecuteAction(gomock.Any(), cfg.Retry, id.String(), "open-map").
		Return(notification.ErrNotificationNotFound)

	handler.ExecuteAction(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Counts(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/counts", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().UnreadCount().Return(2)
	mockService.EXPECT().PersistentCount().Return(1)

	handler.Counts(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data["unread"])
	assert.Equal(t, 1, resp.Data["persistent"])
}
