package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bill-printing-app/models"
)

func TestLoginAndProfile(t *testing.T) {
	app := setupApp(t)

	w := app.do(t, http.MethodPost, "/login", map[string]string{"email": adminEmail, "password": adminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token    string `json:"token"`
		UserRole string `json:"user_role"`
	}
	decodeEnvelope(t, w, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, models.RoleAdmin, login.UserRole)

	var profile map[string]string
	w = app.do(t, http.MethodGet, "/admin/profile", nil, login.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeEnvelope(t, w, &profile)
	assert.Equal(t, adminEmail, profile["email"])
	assert.NotContains(t, profile, "password")
}

func TestLogin_Failures(t *testing.T) {
	app := setupApp(t)

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/login",
		map[string]string{"email": adminEmail, "password": "wrong"}, "").Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/login",
		map[string]string{"email": "nobody@bistro.test", "password": adminPassword}, "").Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/login",
		map[string]string{"email": adminEmail}, "").Code)
}

func TestLogin_RateLimited(t *testing.T) {
	app := setupApp(t)
	app.Config.RateLimitRPS = 0.001
	app.Config.RateLimitBurst = 2
	app = rebuild(t, app)

	body := map[string]string{"email": adminEmail, "password": "wrong"}
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/login", body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/login", body, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, app.do(t, http.MethodPost, "/login", body, "").Code)
}
