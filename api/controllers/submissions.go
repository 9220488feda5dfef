package controllers

import (
	"net/http"
	"time"

	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/Shashwata32/EcoLeague/api/realtime"
	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/Shashwata32/EcoLeague/media"
	"github.com/Shashwata32/EcoLeague/scoring"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type SubmissionsController struct {
	submissionsStorage storage.SubmissionStorage
	areasStorage       storage.AreaStorage
	compressor         *media.Compressor
	hub                *realtime.Hub
}

func NewSubmissionsController(submissionStorage storage.SubmissionStorage, areaStorage storage.AreaStorage, compressor *media.Compressor, hub *realtime.Hub) *SubmissionsController {
	return &SubmissionsController{
		submissionsStorage: submissionStorage,
		areasStorage:       areaStorage,
		compressor:         compressor,
		hub:                hub,
	}
}

func (c *SubmissionsController) RegisterRoutes(engine *gin.Engine, adminAuth gin.HandlerFunc) {
	engine.POST("/api/submissions", c.submit)
	engine.GET("/api/submissions", c.getAll)
	engine.GET("/api/admin/submissions/pending", adminAuth, c.getPending)
}

// submit godoc
// @Summary Submit a cleanliness report
// @Description Creates a pending submission for moderation. Session identity comes from the x-session-id header.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body models.SubmitReportRequest true "Report"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} models.ErrorResponse "Missing area or empty description"
// @Failure 422 {object} models.ErrorResponse "Image could not be processed"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/submissions [post]
func (c *SubmissionsController) submit(g *gin.Context) {
	var req models.SubmitReportRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if req.AreaID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "area is required"})
		return
	}
	if req.Description == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "description is required"})
		return
	}

	var image string
	if req.Image != "" {
		raw, err := media.DecodePayload(req.Image)
		if err == nil {
			image, err = c.compressor.Process(raw)
		}
		if err != nil {
			logging.Log.Warnf("SUBMISSION: image rejected by pipeline: %v", err)
			g.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "could not process image"})
			return
		}
	}

	userID := g.GetHeader("x-session-id")
	if userID == "" {
		userID = models.AnonymousUserID
	}

	id, err := gonanoid.New()
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to generate submission id: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save submission"})
		return
	}

	submission := &storage.Submission{
		ID:          id,
		AreaID:      req.AreaID,
		UserID:      userID,
		Description: req.Description,
		Image:       image,
		Status:      storage.StatusPending,
		HallOfFame:  false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := c.submissionsStorage.Create(g.Request.Context(), submission); err != nil {
		logging.Log.Errorf("SUBMISSION: failed to create submission: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save submission"})
		return
	}

	c.hub.NotifyChanged(realtime.CollectionSubmissions)

	areaName := scoring.FallbackAreaName
	if area, err := c.areasStorage.Get(g.Request.Context(), req.AreaID); err == nil && area != nil {
		areaName = area.Name
	}
	g.JSON(http.StatusOK, models.TransformSubmissionFromStorage(submission, areaName))
}

// getAll godoc
// @Summary List all submissions with resolved area names
// @Tags submissions
// @Produce json
// @Success 200 {array} models.SubmissionResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/submissions [get]
func (c *SubmissionsController) getAll(g *gin.Context) {
	submissions, areas, err := c.loadSnapshot(g)
	if err != nil {
		return
	}

	responses := make([]models.SubmissionResponse, 0, len(submissions))
	for _, s := range submissions {
		responses = append(responses, models.TransformSubmissionFromStorage(s, scoring.AreaName(areas, s.AreaID)))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// getPending godoc
// @Summary List the moderation queue
// @Description Exactly the submissions still pending; graded and rejected ones never reappear here.
// @Tags submissions
// @Produce json
// @Success 200 {array} models.SubmissionResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/submissions/pending [get]
func (c *SubmissionsController) getPending(g *gin.Context) {
	submissions, areas, err := c.loadSnapshot(g)
	if err != nil {
		return
	}

	pending := scoring.Pending(submissions)
	responses := make([]models.SubmissionResponse, 0, len(pending))
	for _, s := range pending {
		responses = append(responses, models.TransformSubmissionFromStorage(s, scoring.AreaName(areas, s.AreaID)))
	}
	g.JSON(http.StatusOK, responses)
}

// loadSnapshot fetches both live collections; on error the response is
// already written.
func (c *SubmissionsController) loadSnapshot(g *gin.Context) ([]*storage.Submission, []*storage.Area, error) {
	submissions, err := c.submissionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to list submissions: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not retrieve submissions"})
		return nil, nil, err
	}

	areas, err := c.areasStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to load areas: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load areas"})
		return nil, nil, err
	}
	return submissions, areas, nil
}
