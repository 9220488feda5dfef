package controllers

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"strings"
	"testing"

	testutils "github.com/Shashwata32/EcoLeague/api/controllers/testing"
	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/Shashwata32/EcoLeague/media"
	"github.com/Shashwata32/EcoLeague/scoring"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubmissionsTest(t *testing.T) (*testEnv, *gin.Engine) {
	t.Helper()
	env, r, adminAuth := newTestEnv(t)

	compressor := &media.Compressor{MaxBytes: 800 * 1024, MaxDimension: 1200}
	controller := NewSubmissionsController(env.submissions, env.areas, compressor, env.hub)
	controller.RegisterRoutes(r, adminAuth)

	return env, r
}

func testImagePayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestSubmitReport(t *testing.T) {
	t.Run("Happy path - pending submission with session identity", func(t *testing.T) {
		env, router := setupSubmissionsTest(t)
		env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "Green Valley"}

		res := testutils.PerformRequest(router, http.MethodPost, "/api/submissions",
			models.SubmitReportRequest{AreaID: "a1", Description: "swept the playground"},
			map[string]string{"x-session-id": "user-42"})

		require.Equal(t, http.StatusOK, res.Code)
		created := decodeJSON[models.SubmissionResponse](t, res.Body.Bytes())
		assert.Equal(t, storage.StatusPending, created.Status)
		assert.Equal(t, "user-42", created.UserID)
		assert.Equal(t, "Green Valley", created.AreaName)
		assert.False(t, created.HallOfFame)
		require.Len(t, env.submissions.submissions, 1)
	})

	t.Run("Missing session falls back to anonymous", func(t *testing.T) {
		env, router := setupSubmissionsTest(t)
		env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "Green Valley"}

		res := testutils.PerformRequest(router, http.MethodPost, "/api/submissions",
			models.SubmitReportRequest{AreaID: "a1", Description: "picked up litter"}, nil)

		require.Equal(t, http.StatusOK, res.Code)
		created := decodeJSON[models.SubmissionResponse](t, res.Body.Bytes())
		assert.Equal(t, models.AnonymousUserID, created.UserID)
	})

	t.Run("Happy path - image goes through the pipeline", func(t *testing.T) {
		env, router := setupSubmissionsTest(t)
		env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "Green Valley"}

		res := testutils.PerformRequest(router, http.MethodPost, "/api/submissions",
			models.SubmitReportRequest{AreaID: "a1", Description: "with photo", Image: testImagePayload(t)}, nil)

		require.Equal(t, http.StatusOK, res.Code)
		require.Len(t, env.submissions.submissions, 1)
		for _, sub := range env.submissions.submissions {
			assert.True(t, strings.HasPrefix(sub.Image, "data:image/jpeg;base64,"))
		}
	})

	t.Run("Unhappy path - empty description creates nothing", func(t *testing.T) {
		env, router := setupSubmissionsTest(t)
		env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "Green Valley"}

		res := testutils.PerformRequest(router, http.MethodPost, "/api/submissions",
			models.SubmitReportRequest{AreaID: "a1"}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Empty(t, env.submissions.submissions)
	})

	t.Run("Unhappy path - missing area", func(t *testing.T) {
		env, router := setupSubmissionsTest(t)

		res := testutils.PerformRequest(router, http.MethodPost, "/api/submissions",
			models.SubmitReportRequest{Description: "no area"}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Empty(t, env.submissions.submissions)
	})

	t.Run("Unhappy path - unprocessable image creates nothing", func(t *testing.T) {
		env, router := setupSubmissionsTest(t)
		env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "Green Valley"}

		res := testutils.PerformRequest(router, http.MethodPost, "/api/submissions",
			models.SubmitReportRequest{AreaID: "a1", Description: "bad photo", Image: base64.StdEncoding.EncodeToString([]byte("not an image"))}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
		assert.Empty(t, env.submissions.submissions)
	})
}

func TestGetPendingQueue(t *testing.T) {
	env, router := setupSubmissionsTest(t)
	env.areas.areas["a1"] = &storage.Area{ID: "a1", Name: "Green Valley"}
	seedPending(env, "s1", "a1")
	graded := seedPending(env, "s2", "a1")
	graded.Status = storage.StatusApproved
	rejected := seedPending(env, "s3", "a1")
	rejected.Status = storage.StatusRejected

	res := testutils.PerformRequest(router, http.MethodGet, "/api/admin/submissions/pending", nil, adminHeaders)
	require.Equal(t, http.StatusOK, res.Code)

	queue := decodeJSON[[]models.SubmissionResponse](t, res.Body.Bytes())
	require.Len(t, queue, 1)
	assert.Equal(t, "s1", queue[0].ID)
}

func TestGetAllSubmissionsOrphanLabel(t *testing.T) {
	env, router := setupSubmissionsTest(t)
	seedPending(env, "s1", "deleted-area")

	res := testutils.PerformRequest(router, http.MethodGet, "/api/submissions", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	all := decodeJSON[[]models.SubmissionResponse](t, res.Body.Bytes())
	require.Len(t, all, 1)
	assert.Equal(t, scoring.FallbackAreaName, all[0].AreaName)
}
