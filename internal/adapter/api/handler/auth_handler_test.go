package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/internal/adapter/api"
	localrepo "feriavirtual/internal/adapter/repository"
	"feriavirtual/internal/infrastructure/localstore"
	"feriavirtual/internal/usecase"
)

func newAuthHandler() *AuthHandler {
	store := localstore.NewMemStore()
	accountRepo := localrepo.NewLocalAccountRepository(store)
	sessionRepo := localrepo.NewLocalSessionRepository(store)
	resetTokenRepo := localrepo.NewLocalResetTokenRepository(store)
	return NewAuthHandler(usecase.NewAuthUseCase(accountRepo, sessionRepo, resetTokenRepo, 15*time.Minute))
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterCreatesAccountWithoutEchoingPassword(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	h := newAuthHandler()

	c, rec := postJSON(e, "/v1/auth/register", `{"email":"buyer@x.com","name":"Ana","password":"secret","role":"buyer"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"buyer@x.com"`)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	h := newAuthHandler()

	c, rec := postJSON(e, "/v1/auth/register", `{"email":"x@x.com","password":"secret","role":"moderator"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLoginReturnsSessionEnvelope(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	h := newAuthHandler()

	c, _ := postJSON(e, "/v1/auth/register", `{"email":"buyer@x.com","password":"secret","role":"buyer"}`)
	require.NoError(t, h.Register(c))

	c, rec := postJSON(e, "/v1/auth/login", `{"email":"buyer@x.com","password":"secret"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"role":"buyer"`)
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	h := newAuthHandler()

	c, _ := postJSON(e, "/v1/auth/register", `{"email":"buyer@x.com","password":"secret","role":"buyer"}`)
	require.NoError(t, h.Register(c))

	c, rec := postJSON(e, "/v1/auth/login", `{"email":"buyer@x.com","password":"nope"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}
