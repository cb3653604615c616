package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runMiddleware(t *testing.T, headers map[string]string) (core.AuthSession, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured core.AuthSession
	handler := SessionMiddleware()(func(c echo.Context) error {
		captured = core.GetSession(c)
		return nil
	})
	return captured, handler(c)
}

func TestSessionMiddlewareBuildsSession(t *testing.T) {
	userID := uuid.New()

	session, err := runMiddleware(t, map[string]string{
		"X-User-Id":   userID.String(),
		"X-User-Role": "AUDITOR",
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, session.GetUserID())
	assert.Equal(t, models.RoleAuditor, session.GetRole())
}

func TestSessionMiddlewareRejectsMissingIdentity(t *testing.T) {
	_, err := runMiddleware(t, nil)

	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Code)
}

func TestSessionMiddlewareRejectsUnknownRole(t *testing.T) {
	_, err := runMiddleware(t, map[string]string{
		"X-User-Id":   uuid.NewString(),
		"X-User-Role": "SUPERUSER",
	})

	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Code)
}
