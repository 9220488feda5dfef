package controllers

import (
	"net/http"
	"testing"

	testutils "github.com/Shashwata32/EcoLeague/api/controllers/testing"
	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	_, r, _ := newTestEnv(t)

	controller := NewAuthController("admin", "TeamZyrox", testAdminToken)
	controller.RegisterRoutes(r)

	return r
}

func TestLogin(t *testing.T) {
	router := setupAuthTest(t)

	t.Run("Happy path - correct credentials return the admin token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/login",
			models.LoginRequest{Username: "admin", Password: "TeamZyrox"}, nil)
		require.Equal(t, http.StatusOK, res.Code)

		login := decodeJSON[models.LoginResponse](t, res.Body.Bytes())
		assert.Equal(t, testAdminToken, login.Token)
	})

	t.Run("Unhappy path - wrong password is denied", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/login",
			models.LoginRequest{Username: "admin", Password: "nope"}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - unknown username is denied", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/login",
			models.LoginRequest{Username: "root", Password: "TeamZyrox"}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - malformed body is a bad request", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/login", "not-json", nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}
