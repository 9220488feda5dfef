package controllers

import (
	"net/http"

	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/Shashwata32/EcoLeague/scoring"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/gin-gonic/gin"
)

// LeaderboardController serves the derived views. Everything here is a pure
// projection over the current store snapshots; nothing is cached or stored.
type LeaderboardController struct {
	areasStorage       storage.AreaStorage
	submissionsStorage storage.SubmissionStorage
}

func NewLeaderboardController(areaStorage storage.AreaStorage, submissionStorage storage.SubmissionStorage) *LeaderboardController {
	return &LeaderboardController{
		areasStorage:       areaStorage,
		submissionsStorage: submissionStorage,
	}
}

func (c *LeaderboardController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/leaderboard", c.getLeaderboard)
	engine.GET("/api/charts", c.getCharts)
}

// getLeaderboard godoc
// @Summary Live rankings and the wall of fame
// @Description Areas sorted by score descending (ties break on id), wall entries in snapshot order with resolved area names.
// @Tags leaderboard
// @Produce json
// @Success 200 {object} models.LeaderboardResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/leaderboard [get]
func (c *LeaderboardController) getLeaderboard(g *gin.Context) {
	areas, err := c.areasStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("LEADERBOARD: failed to load areas: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load areas"})
		return
	}

	submissions, err := c.submissionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("LEADERBOARD: failed to load submissions: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load submissions"})
		return
	}

	response := models.LeaderboardResponse{
		Rankings:   make([]models.RankingEntry, 0, len(areas)),
		WallOfFame: make([]models.SubmissionResponse, 0),
	}

	for _, ranked := range scoring.Rankings(areas) {
		response.Rankings = append(response.Rankings, models.RankingEntry{
			Rank:  ranked.Rank,
			ID:    ranked.Area.ID,
			Name:  ranked.Area.Name,
			Score: ranked.Area.Score,
			Badge: ranked.Area.Badge,
		})
	}

	for _, s := range scoring.WallOfFame(submissions) {
		response.WallOfFame = append(response.WallOfFame, models.TransformSubmissionFromStorage(s, scoring.AreaName(areas, s.AreaID)))
	}

	g.JSON(http.StatusOK, response)
}

// getCharts godoc
// @Summary Participation and score chart series
// @Description Both series are ordered alphabetically by area name so chart colors stay glued to areas across rank changes.
// @Tags leaderboard
// @Produce json
// @Success 200 {object} models.ChartsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/charts [get]
func (c *LeaderboardController) getCharts(g *gin.Context) {
	areas, err := c.areasStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("LEADERBOARD: failed to load areas: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load areas"})
		return
	}

	submissions, err := c.submissionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("LEADERBOARD: failed to load submissions: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load submissions"})
		return
	}

	response := models.ChartsResponse{
		Participation: make([]models.SeriesPoint, 0, len(areas)),
		Scores:        make([]models.SeriesPoint, 0, len(areas)),
	}
	for _, point := range scoring.ParticipationSeries(areas, submissions) {
		response.Participation = append(response.Participation, models.SeriesPoint{Area: point.AreaName, Value: point.Value})
	}
	for _, point := range scoring.ScoreSeries(areas) {
		response.Scores = append(response.Scores, models.SeriesPoint{Area: point.AreaName, Value: point.Value})
	}

	g.JSON(http.StatusOK, response)
}
