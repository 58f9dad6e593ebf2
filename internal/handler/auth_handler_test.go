package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "wisekey/internal/errors"
	"wisekey/internal/model"
	"wisekey/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, fullName, role string) (*model.User, *service.TokenPair, error) {
	args := m.Called(ctx, email, password, fullName, role)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Get(1).(*service.TokenPair), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, *service.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Get(1).(*service.TokenPair), args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Register", mock.Anything, "a@x.com", "secret1", "A", "").
		Return(
			&model.User{ID: 1, Email: "a@x.com", FullName: "A", Role: "buyer"},
			&service.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
			nil,
		)

	e := newTestEcho()
	e.POST("/auth/register", NewAuthHandler(svc).Register)

	rec := postJSON(e, "/auth/register", `{"email":"a@x.com","password":"secret1","full_name":"A"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"acc"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"ref"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	assert.Contains(t, rec.Body.String(), `"role":"buyer"`)
	svc.AssertExpectations(t)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Register", mock.Anything, "a@x.com", "secret1", "A", "").
		Return(nil, nil, apperrors.ErrUserAlreadyExists)

	e := newTestEcho()
	e.POST("/auth/register", NewAuthHandler(svc).Register)

	rec := postJSON(e, "/auth/register", `{"email":"a@x.com","password":"secret1","full_name":"A"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed email", `{"email":"not-an-email","password":"secret1","full_name":"A"}`},
		{"short password", `{"email":"a@x.com","password":"abc","full_name":"A"}`},
		{"missing full name", `{"email":"a@x.com","password":"secret1"}`},
		{"not json", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)

			e := newTestEcho()
			e.POST("/auth/register", NewAuthHandler(svc).Register)

			rec := postJSON(e, "/auth/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// The service is never reached with malformed input.
			svc.AssertNotCalled(t, "Register")
		})
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "a@x.com", "wrong").
		Return(nil, nil, apperrors.ErrInvalidCredentials)

	e := newTestEcho()
	e.POST("/auth/login", NewAuthHandler(svc).Login)

	rec := postJSON(e, "/auth/login", `{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "a@x.com", "secret1").
		Return(
			&model.User{ID: 1, Email: "a@x.com", Role: "seller"},
			&service.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
			nil,
		)

	e := newTestEcho()
	e.POST("/auth/login", NewAuthHandler(svc).Login)

	rec := postJSON(e, "/auth/login", `{"email":"a@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"seller"`)
}

func TestAuthHandler_Refresh_NotSupported(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Refresh", mock.Anything, "some-refresh-token").
		Return(nil, apperrors.ErrRefreshNotSupported)

	e := newTestEcho()
	e.POST("/auth/refresh", NewAuthHandler(svc).Refresh)

	rec := postJSON(e, "/auth/refresh", `{"refresh_token":"some-refresh-token"}`)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_SUPPORTED")
}
