package controllers

import (
	"errors"
	"net/http"

	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/Shashwata32/EcoLeague/api/realtime"
	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/Shashwata32/EcoLeague/scoring"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/gin-gonic/gin"
)

type ModerationController struct {
	submissionsStorage storage.SubmissionStorage
	transactor         storage.CompetitionTransactor
	hub                *realtime.Hub
}

func NewModerationController(submissionStorage storage.SubmissionStorage, transactor storage.CompetitionTransactor, hub *realtime.Hub) *ModerationController {
	return &ModerationController{
		submissionsStorage: submissionStorage,
		transactor:         transactor,
		hub:                hub,
	}
}

func (c *ModerationController) RegisterRoutes(engine *gin.Engine, adminAuth gin.HandlerFunc) {
	group := engine.Group("/api/admin/submissions", adminAuth)

	group.POST("/:id/grade", c.grade)
	group.POST("/:id/reject", c.reject)
	group.POST("/:id/unfame", c.removeFromWall)
}

// @Security AdminToken
// grade godoc
// @Summary Grade a pending submission
// @Description Awards 1-10 points to the submission's area and approves it in one atomic unit. A 9 or a 10 publishes it to the wall of fame.
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param grade body models.GradeRequest true "Points"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} models.ErrorResponse "Points out of range"
// @Failure 404 {object} models.ErrorResponse "Submission or its area missing"
// @Failure 409 {object} models.ErrorResponse "Submission already graded or rejected"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/submissions/{id}/grade [post]
func (c *ModerationController) grade(g *gin.Context) {
	id := g.Param("id")

	var req models.GradeRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	// Validate before any write
	if req.Points < scoring.MinPoints || req.Points > scoring.MaxPoints {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "points must be between 1 and 10"})
		return
	}

	submission, err := c.submissionsStorage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("MODERATION: failed to load submission %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load submission"})
		return
	}
	if submission == nil {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "submission not found"})
		return
	}
	if submission.Status != storage.StatusPending {
		g.JSON(http.StatusConflict, models.ErrorResponse{Error: "submission was already graded or rejected"})
		return
	}

	hallOfFame := req.Points > scoring.FameThreshold
	if err := c.transactor.GradeSubmission(g.Request.Context(), id, submission.AreaID, req.Points, hallOfFame); err != nil {
		switch {
		case errors.Is(err, storage.ErrAreaNotFound):
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "area no longer exists"})
		case errors.Is(err, storage.ErrSubmissionNotPending):
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "submission was already graded or rejected"})
		default:
			logging.Log.Errorf("MODERATION: grade failed for %s: %v", id, err)
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not grade submission"})
		}
		return
	}

	c.hub.NotifyChanged(realtime.CollectionAreas)
	c.hub.NotifyChanged(realtime.CollectionSubmissions)

	submission.Status = storage.StatusApproved
	submission.PointsAwarded = req.Points
	submission.HallOfFame = hallOfFame
	g.JSON(http.StatusOK, models.TransformSubmissionFromStorage(submission, ""))
}

// @Security AdminToken
// reject godoc
// @Summary Reject a pending submission
// @Description Terminal transition with no score effect.
// @Tags moderation
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.MessageResponse
// @Failure 409 {object} models.ErrorResponse "Submission already graded or rejected"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/submissions/{id}/reject [post]
func (c *ModerationController) reject(g *gin.Context) {
	id := g.Param("id")

	if err := c.submissionsStorage.Reject(g.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrSubmissionNotPending) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "submission was already graded or rejected"})
			return
		}
		logging.Log.Errorf("MODERATION: reject failed for %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not reject submission"})
		return
	}

	c.hub.NotifyChanged(realtime.CollectionSubmissions)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "submission rejected"})
}

// @Security AdminToken
// removeFromWall godoc
// @Summary Remove a submission from the wall of fame
// @Description Clears the flag only; status and scores stay untouched.
// @Tags moderation
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/submissions/{id}/unfame [post]
func (c *ModerationController) removeFromWall(g *gin.Context) {
	id := g.Param("id")

	if err := c.submissionsStorage.ClearHallOfFame(g.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrSubmissionNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "submission not found"})
			return
		}
		logging.Log.Errorf("MODERATION: remove from wall failed for %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not update submission"})
		return
	}

	c.hub.NotifyChanged(realtime.CollectionSubmissions)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "removed from wall of fame"})
}
