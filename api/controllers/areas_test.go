package controllers

import (
	"net/http"
	"testing"

	testutils "github.com/Shashwata32/EcoLeague/api/controllers/testing"
	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAreasTest(t *testing.T) (*testEnv, *gin.Engine) {
	t.Helper()
	env, r, adminAuth := newTestEnv(t)

	controller := NewAreasController(env.areas, env.hub)
	controller.RegisterRoutes(r, adminAuth)

	return env, r
}

func TestCreateArea(t *testing.T) {
	t.Run("Happy path - starts at zero with the default badge", func(t *testing.T) {
		env, router := setupAreasTest(t)

		res := testutils.PerformRequest(router, http.MethodPost, "/api/admin/areas",
			models.CreateAreaRequest{Name: "Harbor District"}, adminHeaders)

		require.Equal(t, http.StatusOK, res.Code)
		created := decodeJSON[models.AreaResponse](t, res.Body.Bytes())
		assert.Equal(t, "Harbor District", created.Name)
		assert.Equal(t, 0, created.Score)
		assert.Equal(t, storage.DefaultBadge, created.Badge)
		assert.NotEmpty(t, created.ID)
		assert.Len(t, env.areas.areas, 1)
	})

	t.Run("Unhappy path - empty name", func(t *testing.T) {
		env, router := setupAreasTest(t)

		res := testutils.PerformRequest(router, http.MethodPost, "/api/admin/areas",
			models.CreateAreaRequest{}, adminHeaders)

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Empty(t, env.areas.areas)
	})

	t.Run("Unhappy path - missing admin token", func(t *testing.T) {
		_, router := setupAreasTest(t)

		res := testutils.PerformRequest(router, http.MethodPost, "/api/admin/areas",
			models.CreateAreaRequest{Name: "Harbor District"}, nil)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestRenameArea(t *testing.T) {
	t.Run("Happy path", func(t *testing.T) {
		env, router := setupAreasTest(t)
		env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "Old Name"}

		res := testutils.PerformRequest(router, http.MethodPut, "/api/admin/areas/a1",
			models.RenameAreaRequest{Name: "New Name"}, adminHeaders)

		require.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "New Name", env.areas.areas["a1"].Name)
	})

	t.Run("Unhappy path - unknown area", func(t *testing.T) {
		_, router := setupAreasTest(t)

		res := testutils.PerformRequest(router, http.MethodPut, "/api/admin/areas/ghost",
			models.RenameAreaRequest{Name: "New Name"}, adminHeaders)

		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestDeleteArea(t *testing.T) {
	env, router := setupAreasTest(t)
	env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "Green Valley"}
	seedPending(env, "s1", "a1")

	res := testutils.PerformRequest(router, http.MethodDelete, "/api/admin/areas/a1", nil, adminHeaders)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Empty(t, env.areas.areas)
	// no cascade: the submission stays, now orphaned
	assert.Len(t, env.submissions.submissions, 1)
}

func TestListAreas(t *testing.T) {
	env, router := setupAreasTest(t)
	env.areas.areas["a2"] = &storage.Area{ID: "a2", Name: "B", Score: 3, Badge: storage.DefaultBadge}
	env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "A", Score: 9, Badge: storage.DefaultBadge}

	res := testutils.PerformRequest(router, http.MethodGet, "/api/areas", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	areas := decodeJSON[[]models.AreaResponse](t, res.Body.Bytes())
	require.Len(t, areas, 2)
	assert.Equal(t, "a1", areas[0].ID)
	assert.Equal(t, "a2", areas[1].ID)
}
