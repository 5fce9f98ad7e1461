package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/guest_safety_system/internal/config"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service"
	"github.com/shenikar/guest_safety_system/internal/service/mocks"
)

const (
	testJWTSecret = "test-jwt-secret"
	testAPIKey    = "test-api-key"
)

type handlerMocks struct {
	incidents  *mocks.MockIncidentService
	messages   *mocks.MockMessageService
	evacuation *mocks.MockEvacuationService
	settings   *mocks.MockSettingsService
	sensors    *mocks.MockSensorService
	accounts   *mocks.MockAccountService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		incidents:  mocks.NewMockIncidentService(ctrl),
		messages:   mocks.NewMockMessageService(ctrl),
		evacuation: mocks.NewMockEvacuationService(ctrl),
		settings:   mocks.NewMockSettingsService(ctrl),
		sensors:    mocks.NewMockSensorService(ctrl),
		accounts:   mocks.NewMockAccountService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret: testJWTSecret,
		APIKeys:   []string{testAPIKey},
	}

	handler := NewHandler(m.incidents, m.messages, m.evacuation, m.settings, m.sensors, m.accounts, nil, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// staffAuth выписывает тестовый Bearer-токен с указанной ролью
func staffAuth(t *testing.T, role string) map[string]string {
	claims := service.Claims{
		Role: role,
		Name: "Test Staff",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}
}

func apiKeyAuth() map[string]string {
	return map[string]string{"X-API-Key": testAPIKey}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := CreateIncidentRequest{
		Title:    "Guest injured near the pool",
		Location: "Pool deck",
		Severity: "high",
	}

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			inc.Status = models.IncidentStatusReported
			inc.Type = models.IncidentTypeMedical
			inc.ReportedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, reqBody.Title, resp.Title)
	assert.Equal(t, models.IncidentTypeMedical, resp.Type)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Отсутствует Title
		Location: "Lobby",
	}

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Title' failed on the 'required' tag")
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`), staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_NoToken(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateIncidentRequest{Title: "Test", Location: "Lobby"})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestCreateIncident_APIKeyNotAcceptedOnStaffRoute(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateIncidentRequest{Title: "Test", Location: "Lobby"})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), apiKeyAuth())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetIncident_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil, staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(nil, fmt.Errorf("service: could not get incident: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestListIncidents_ForwardsFilter(t *testing.T) {
	m, router := newTestHandler(t)
	expected := []*models.Incident{
		{ID: uuid.New(), Title: "Incident 1", Status: models.IncidentStatusReported, Severity: models.SeverityHigh},
	}

	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{Status: "reported", Severity: "high"}, 2, 10).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?page=2&pageSize=10&status=reported&severity=high", nil, staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, expected[0].Title, resp[0].Title)
}

func TestAssignTeam_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	teamID := uuid.New()

	m.incidents.EXPECT().
		AssignTeam(gomock.Any(), models.RoleManager, incidentID, teamID).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(AssignTeamRequest{TeamID: teamID})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/assign", incidentID.String()), bytes.NewBuffer(bodyBytes), staffAuth(t, models.RoleManager))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignTeam_NonManagerForbidden(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	teamID := uuid.New()

	// Роль берётся из токена и проверяется в сервисном слое
	m.incidents.EXPECT().
		AssignTeam(gomock.Any(), models.RoleAgent, incidentID, teamID).
		Return(fmt.Errorf("service: assign team requires manager role: %w", service.ErrPermission)).
		Times(1)

	bodyBytes, _ := json.Marshal(AssignTeamRequest{TeamID: teamID})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/assign", incidentID.String()), bytes.NewBuffer(bodyBytes), staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "permission denied")
}

func TestAssignTeam_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	teamID := uuid.New()

	m.incidents.EXPECT().
		AssignTeam(gomock.Any(), models.RoleManager, incidentID, teamID).
		Return(fmt.Errorf("service: incident already assigned or resolved: %w", service.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(AssignTeamRequest{TeamID: teamID})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/assign", incidentID.String()), bytes.NewBuffer(bodyBytes), staffAuth(t, models.RoleManager))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "conflict with current state")
}

func TestResolveIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().
		ResolveIncident(gomock.Any(), models.RoleManager, incidentID).
		Return(nil).
		Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/resolve", incidentID.String()), nil, staffAuth(t, models.RoleManager))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPushIncident_Accepted(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := PushIncidentRequest{
		ID:         uuid.New(),
		Title:      "Smoke detected",
		Location:   "Kitchen",
		ReportedAt: time.Now(),
		Source:     models.SourceHardwareDevice,
	}

	m.incidents.EXPECT().
		ApplyPushedIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, reqBody.ID, inc.ID)
			assert.Equal(t, models.SourceHardwareDevice, inc.Source)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ingest/incidents", bytes.NewBuffer(bodyBytes), apiKeyAuth())

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestPushIncident_NoAPIKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().ApplyPushedIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(PushIncidentRequest{
		ID:         uuid.New(),
		Title:      "Smoke detected",
		Location:   "Kitchen",
		ReportedAt: time.Now(),
		Source:     models.SourceHardwareDevice,
	})
	w := makeRequest(router, "POST", "/api/v1/ingest/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestPushIncidentUpdate_Stale(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().
		ApplyPushedUpdate(gomock.Any(), gomock.Any()).
		Return(service.ErrStaleUpdate).
		Times(1)

	bodyBytes, _ := json.Marshal(PushIncidentRequest{
		ID:         incidentID,
		Title:      "Late update",
		Location:   "Kitchen",
		ReportedAt: time.Now().Add(-time.Hour),
		Source:     models.SourceMobileAgent,
	})
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/ingest/incidents/%s", incidentID.String()), bytes.NewBuffer(bodyBytes), apiKeyAuth())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "stale update discarded")
}

func TestSaveSettings_RequiresManagerRole(t *testing.T) {
	m, router := newTestHandler(t)

	m.settings.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(SettingsRequest{
		AlertThresholdMinutes: 30,
		TeamAssignment:        models.AssignmentManual,
	})
	w := makeRequest(router, "PUT", "/api/v1/settings", bytes.NewBuffer(bodyBytes), staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient role")
}

func TestSaveSettings_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.settings.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.GuestSafetySettings) error {
			assert.Equal(t, 30, s.AlertThresholdMinutes)
			assert.Equal(t, models.AssignmentRoundRobin, s.TeamAssignment)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(SettingsRequest{
		AlertThresholdMinutes: 30,
		AutoEscalation:        true,
		TeamAssignment:        models.AssignmentRoundRobin,
	})
	w := makeRequest(router, "PUT", "/api/v1/settings", bytes.NewBuffer(bodyBytes), staffAuth(t, models.RoleManager))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkMessageRead_Success(t *testing.T) {
	m, router := newTestHandler(t)
	messageID := uuid.New()

	m.messages.EXPECT().MarkRead(gomock.Any(), messageID).Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/messages/%s/read", messageID.String()), nil, staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIngestSensorReading_Accepted(t *testing.T) {
	m, router := newTestHandler(t)
	sensorID := uuid.New()

	m.sensors.EXPECT().
		IngestReading(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reading *models.SensorReading) error {
			assert.Equal(t, sensorID, reading.SensorID)
			assert.Equal(t, models.SensorStatusAlarm, reading.Status)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(SensorReadingRequest{
		Status:  models.SensorStatusAlarm,
		Battery: 80,
	})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/ingest/sensors/%s/reading", sensorID.String()), bytes.NewBuffer(bodyBytes), apiKeyAuth())

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestCreateAccount_RequiresManagerRole(t *testing.T) {
	m, router := newTestHandler(t)

	m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateAccountRequest{
		Email:    "agent@hotel.example",
		Name:     "New Agent",
		Role:     models.RoleAgent,
		Password: "long-enough-password",
	})
	w := makeRequest(router, "POST", "/api/v1/accounts", bytes.NewBuffer(bodyBytes), staffAuth(t, models.RoleAgent))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogin_Success(t *testing.T) {
	m, router := newTestHandler(t)
	account := &models.StaffAccount{
		ID:     uuid.New(),
		Email:  "manager@hotel.example",
		Name:   "Manager",
		Role:   models.RoleManager,
		Active: true,
	}

	m.accounts.EXPECT().
		Login(gomock.Any(), account.Email, "secret-password").
		Return("signed-token", account, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Email: account.Email, Password: "secret-password"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	require.NotNil(t, resp.Account)
	assert.Equal(t, account.Email, resp.Account.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	m, router := newTestHandler(t)

	m.accounts.EXPECT().
		Login(gomock.Any(), "ghost@hotel.example", "wrong").
		Return("", nil, fmt.Errorf("service: invalid credentials: %w", service.ErrPermission)).
		Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Email: "ghost@hotel.example", Password: "wrong"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{JWTSecret: testJWTSecret}

	router.Use(JWTAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	claims := service.Claims{
		Role: models.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer " + signed})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{JWTSecret: testJWTSecret}

	router.Use(JWTAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	claims := service.Claims{
		Role: models.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer " + signed})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}
