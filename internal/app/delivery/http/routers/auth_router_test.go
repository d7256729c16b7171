package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/auth"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/responses"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterUser), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, sessionID string, session *models.Session) error {
	args := m.Called(ctx, sessionID, session)
	return args.Error(0)
}

func newAuthTestRouter(mockAuthUsecase *MockAuthUsecase) *chi.Mux {
	logger := zap.NewNop()

	authController := auth.NewAuthController(logger, mockAuthUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: &config.InternalConfig{},
	}

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)
	return router
}

func TestAuthRouter_Register(t *testing.T) {
	t.Run("Register with Valid Payload", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		mockAuthUsecase.On("RegisterUser", mock.Anything, mock.AnythingOfType("*requests.RegisterUser")).
			Return(&responses.RegisterUser{UserID: "507f1f77bcf86cd799439011"}, nil).Once()

		requestBody := requests.RegisterUser{
			Email:    "surveyor@atlaskeswa.id",
			Password: "Sup3rSecret!",
			FullName: "Budi Santoso",
			Role:     constvars.RoleSurveyor,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created for valid registration")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Register with Invalid JSON Body", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		req := httptest.NewRequest("POST", "/register", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
		mockAuthUsecase.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
	})

	t.Run("Register with Weak Password", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		requestBody := requests.RegisterUser{
			Email:    "surveyor@atlaskeswa.id",
			Password: "weak",
			FullName: "Budi Santoso",
			Role:     constvars.RoleSurveyor,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for weak password")
		mockAuthUsecase.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
	})

	t.Run("Register with Duplicate Email", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		mockAuthUsecase.On("RegisterUser", mock.Anything, mock.AnythingOfType("*requests.RegisterUser")).
			Return(nil, exceptions.ErrEmailAlreadyExist(nil)).Once()

		requestBody := requests.RegisterUser{
			Email:    "taken@atlaskeswa.id",
			Password: "Sup3rSecret!",
			FullName: "Budi Santoso",
			Role:     constvars.RoleSurveyor,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for duplicate email")
		mockAuthUsecase.AssertExpectations(t)
	})
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("Login with Valid Credentials", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		mockAuthUsecase.On("LoginUser", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).
			Return(&responses.LoginUser{Token: "test-jwt-token"}, nil).Once()

		requestBody := requests.LoginUser{
			Email:    "surveyor@atlaskeswa.id",
			Password: "Sup3rSecret!",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid credentials")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Login with Wrong Credentials", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		mockAuthUsecase.On("LoginUser", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).
			Return(nil, exceptions.ErrInvalidEmailOrPassword(nil)).Once()

		requestBody := requests.LoginUser{
			Email:    "surveyor@atlaskeswa.id",
			Password: "WrongSecret!",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for wrong credentials")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Login with Missing Email", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		requestBody := requests.LoginUser{
			Password: "Sup3rSecret!",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for missing email")
		mockAuthUsecase.AssertNotCalled(t, "LoginUser", mock.Anything, mock.Anything)
	})
}

func TestAuthRouter_LoginRateLimit(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(mockAuthUsecase)

	mockAuthUsecase.On("LoginUser", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).
		Return(nil, exceptions.ErrInvalidEmailOrPassword(nil))

	requestBody := requests.LoginUser{
		Email:    "surveyor@atlaskeswa.id",
		Password: "WrongSecret!",
	}
	jsonBody, _ := json.Marshal(requestBody)

	var last *httptest.ResponseRecorder
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.0.0.7:51234"

		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code, "should return 429 after exhausting the login limiter")
	assert.Equal(t, constvars.MIMEApplicationJSON, last.Header().Get(constvars.HeaderContentType), "blocked response should use the JSON error envelope")

	var blockedResponse exceptions.CustomError
	err := json.Unmarshal(last.Body.Bytes(), &blockedResponse)
	assert.NoError(t, err, "blocked response body should decode as the error envelope")
	assert.False(t, blockedResponse.Success)
	assert.Equal(t, constvars.ErrClientTooManyRequests, blockedResponse.ClientMessage, "blocked response should carry the rate limit client message")
}

func TestAuthRouter_Logout(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(mockAuthUsecase)

	t.Run("Logout without Authorization Header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/logout", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without a token")
		mockAuthUsecase.AssertNotCalled(t, "LogoutUser", mock.Anything, mock.Anything, mock.Anything)
	})
}
