package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/tailyapp/taily-api/internal/models"
	"github.com/tailyapp/taily-api/internal/server/middleware"
	"github.com/tailyapp/taily-api/internal/usecase"
)

// stubPetUsecase overrides only the methods a test cares about; calling an
// unstubbed method panics through the nil embedded interface.
type stubPetUsecase struct {
	usecase.PetUsecase

	getPet           func(ctx context.Context, id string) (*models.Pet, error)
	createPet        func(ctx context.Context, req models.CreatePetRequest) (*models.Pet, error)
	deletePet        func(ctx context.Context, id string) (*models.Pet, error)
	addSchedule      func(ctx context.Context, petID string, req models.ScheduleRequest) (*models.Schedule, error)
	updateCareRecord func(ctx context.Context, petID, careID string, req models.CareRecordRequest) (*models.Pet, error)
	listPetsByOwner  func(ctx context.Context, userID string) ([]*models.Pet, error)
}

func (s *stubPetUsecase) GetPet(ctx context.Context, id string) (*models.Pet, error) {
	return s.getPet(ctx, id)
}

func (s *stubPetUsecase) CreatePet(ctx context.Context, req models.CreatePetRequest) (*models.Pet, error) {
	return s.createPet(ctx, req)
}

func (s *stubPetUsecase) DeletePet(ctx context.Context, id string) (*models.Pet, error) {
	return s.deletePet(ctx, id)
}

func (s *stubPetUsecase) AddSchedule(ctx context.Context, petID string, req models.ScheduleRequest) (*models.Schedule, error) {
	return s.addSchedule(ctx, petID, req)
}

func (s *stubPetUsecase) UpdateCareRecord(ctx context.Context, petID, careID string, req models.CareRecordRequest) (*models.Pet, error) {
	return s.updateCareRecord(ctx, petID, careID, req)
}

func (s *stubPetUsecase) ListPetsByOwner(ctx context.Context, userID string) ([]*models.Pet, error) {
	return s.listPetsByOwner(ctx, userID)
}

type stubUserUsecase struct {
	usecase.UserUsecase

	getUser    func(ctx context.Context, id string) (*models.User, error)
	createUser func(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	deleteUser func(ctx context.Context, id string) error
}

func (s *stubUserUsecase) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, id)
}

func (s *stubUserUsecase) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	return s.createUser(ctx, req)
}

func (s *stubUserUsecase) DeleteUser(ctx context.Context, id string) error {
	return s.deleteUser(ctx, id)
}

func newTestServer(pets usecase.PetUsecase, users usecase.UserUsecase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = middleware.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(logger.MustNamed("test"), true)
	registerRoutes(e, NewPetController(pets), NewUserController(users))
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	e := echo.New()
	e.GET("/health", health)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "healthy", body["status"])
}
