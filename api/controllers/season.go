package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/Shashwata32/EcoLeague/api/realtime"
	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/Shashwata32/EcoLeague/scoring"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type SeasonController struct {
	areasStorage       storage.AreaStorage
	submissionsStorage storage.SubmissionStorage
	historyStorage     storage.HistoryStorage
	transactor         storage.CompetitionTransactor
	hub                *realtime.Hub
	now                func() time.Time
}

func NewSeasonController(areaStorage storage.AreaStorage, submissionStorage storage.SubmissionStorage, historyStorage storage.HistoryStorage, transactor storage.CompetitionTransactor, hub *realtime.Hub) *SeasonController {
	return &SeasonController{
		areasStorage:       areaStorage,
		submissionsStorage: submissionStorage,
		historyStorage:     historyStorage,
		transactor:         transactor,
		hub:                hub,
		now:                time.Now,
	}
}

func (c *SeasonController) RegisterRoutes(engine *gin.Engine, adminAuth gin.HandlerFunc) {
	engine.GET("/api/history", c.getHistory)
	engine.GET("/api/season", c.getSeason)
	engine.POST("/api/admin/season/reset", adminAuth, c.announceWinnerAndReset)
}

// getHistory godoc
// @Summary List past monthly winners, newest first
// @Tags season
// @Produce json
// @Success 200 {array} models.WinnerResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/history [get]
func (c *SeasonController) getHistory(g *gin.Context) {
	records, err := c.historyStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SEASON: failed to load history: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load history"})
		return
	}

	sorted := scoring.History(records)
	responses := make([]models.WinnerResponse, 0, len(sorted))
	for _, record := range sorted {
		responses = append(responses, models.TransformWinnerRecordFromStorage(record))
	}
	g.JSON(http.StatusOK, responses)
}

// getSeason godoc
// @Summary Current competition cycle info
// @Description Month label and the instant the cycle's countdown ends (last second of the month).
// @Tags season
// @Produce json
// @Success 200 {object} models.SeasonResponse
// @Router /api/season [get]
func (c *SeasonController) getSeason(g *gin.Context) {
	now := c.now()
	endOfMonth := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, now.Location())

	g.JSON(http.StatusOK, models.SeasonResponse{
		MonthLabel: now.Format("January 2006"),
		EndsAt:     endOfMonth,
	})
}

// @Security AdminToken
// announceWinnerAndReset godoc
// @Summary End the month: archive the winner, zero all scores, purge all submissions
// @Description One atomic transaction; on failure nothing is applied and the operation can be retried whole. A no-op when no areas exist.
// @Tags season
// @Produce json
// @Success 200 {object} models.ResetResponse
// @Failure 409 {object} models.ErrorResponse "Too many items for one transaction"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/season/reset [post]
func (c *SeasonController) announceWinnerAndReset(g *gin.Context) {
	areas, err := c.areasStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SEASON: failed to load areas for reset: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load areas"})
		return
	}

	winner := scoring.Winner(areas)
	if winner == nil {
		logging.Log.Info("SEASON: reset requested with no areas, nothing to archive")
		g.JSON(http.StatusOK, models.ResetResponse{Archived: false})
		return
	}

	submissions, err := c.submissionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SEASON: failed to load submissions for reset: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load submissions"})
		return
	}

	id, err := gonanoid.New()
	if err != nil {
		logging.Log.Errorf("SEASON: failed to generate record id: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not reset competition"})
		return
	}

	now := c.now().UTC()
	record := &storage.WinnerRecord{
		ID:         id,
		WinnerName: winner.Name,
		FinalScore: winner.Score,
		MonthLabel: now.Format("January 2006"),
		ArchivedAt: now,
	}

	if err := c.transactor.ArchiveAndReset(g.Request.Context(), record, areas, submissions); err != nil {
		if errors.Is(err, storage.ErrResetTooLarge) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "too many items for a single reset, prune submissions first"})
			return
		}
		logging.Log.Errorf("SEASON: reset transaction failed: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not reset competition"})
		return
	}

	c.hub.NotifyChanged(realtime.CollectionAreas)
	c.hub.NotifyChanged(realtime.CollectionSubmissions)
	c.hub.NotifyChanged(realtime.CollectionHistory)

	response := models.TransformWinnerRecordFromStorage(record)
	g.JSON(http.StatusOK, models.ResetResponse{Archived: true, Winner: &response})
}
