package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/pkg/customvalidator"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type fakeAuthService struct {
	signupResp   dto.AuthResponseDTO
	signupErr    error
	validateResp dto.ValidateResponseDTO
	validateErr  error
	gotToken     string
}

func (s *fakeAuthService) Signup(context.Context, dto.SignupDTO) (dto.AuthResponseDTO, error) {
	return s.signupResp, s.signupErr
}

func (s *fakeAuthService) Login(context.Context, dto.LoginDTO) (dto.AuthResponseDTO, error) {
	return s.signupResp, s.signupErr
}

func (s *fakeAuthService) Validate(_ context.Context, token string) (dto.ValidateResponseDTO, error) {
	s.gotToken = token
	return s.validateResp, s.validateErr
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	return e
}

func TestSignupCreated(t *testing.T) {
	svc := &fakeAuthService{signupResp: dto.AuthResponseDTO{
		Message: "User created successfully",
		Token:   "signed-token",
	}}
	controller := NewAuthController(svc, zap.NewNop())

	body := `{"fullName":"Mika Tanaka","email":"mika@example.com","password":"Str0ng!pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := newTestEcho(t).NewContext(req, rec)

	require.NoError(t, controller.Signup(ctx))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.AuthResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp.Message)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestSignupWeakPasswordRejected(t *testing.T) {
	controller := NewAuthController(&fakeAuthService{}, zap.NewNop())

	body := `{"fullName":"Mika Tanaka","email":"mika@example.com","password":"weak"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := newTestEcho(t).NewContext(req, rec)

	require.NoError(t, controller.Signup(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "password", payload["field"])
}

func TestSignupConflictPassedThrough(t *testing.T) {
	svc := &fakeAuthService{signupErr: apperrors.NewConflictError("Email already registered", "email")}
	controller := NewAuthController(svc, zap.NewNop())

	body := `{"fullName":"Mika Tanaka","email":"mika@example.com","password":"Str0ng!pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := newTestEcho(t).NewContext(req, rec)

	require.NoError(t, controller.Signup(ctx))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Email already registered", payload["error"])
}

func TestValidateMissingHeader(t *testing.T) {
	controller := NewAuthController(&fakeAuthService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil)
	rec := httptest.NewRecorder()
	ctx := newTestEcho(t).NewContext(req, rec)

	require.NoError(t, controller.Validate(ctx))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "No token provided", payload["error"])
}

func TestValidatePassesBearerToken(t *testing.T) {
	svc := &fakeAuthService{validateResp: dto.ValidateResponseDTO{Valid: true}}
	controller := NewAuthController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer abc.def.ghi")
	rec := httptest.NewRecorder()
	ctx := newTestEcho(t).NewContext(req, rec)

	require.NoError(t, controller.Validate(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc.def.ghi", svc.gotToken)
}

func TestValidateInvalidToken(t *testing.T) {
	svc := &fakeAuthService{validateErr: apperrors.ErrUnauthorized}
	controller := NewAuthController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	rec := httptest.NewRecorder()
	ctx := newTestEcho(t).NewContext(req, rec)

	require.NoError(t, controller.Validate(ctx))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Invalid token", payload["error"])
}
