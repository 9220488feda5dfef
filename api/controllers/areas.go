package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/Shashwata32/EcoLeague/api/realtime"
	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type AreasController struct {
	areasStorage storage.AreaStorage
	hub          *realtime.Hub
}

func NewAreasController(s storage.AreaStorage, hub *realtime.Hub) *AreasController {
	return &AreasController{
		areasStorage: s,
		hub:          hub,
	}
}

func (c *AreasController) RegisterRoutes(engine *gin.Engine, adminAuth gin.HandlerFunc) {
	engine.GET("/api/areas", c.getAll)

	group := engine.Group("/api/admin/areas", adminAuth)
	group.POST("", c.create)
	group.PUT("/:id", c.rename)
	group.DELETE("/:id", c.delete)
}

// @Summary List all competing areas
// @Tags areas
// @Produce json
// @Success 200 {array} models.AreaResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/areas [get]
func (c *AreasController) getAll(g *gin.Context) {
	areas, err := c.areasStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("AREA: failed to get all areas: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// Sort this so it shows the same for everyone
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].ID < areas[j].ID
	})

	responses := make([]models.AreaResponse, 0, len(areas))
	for _, area := range areas {
		responses = append(responses, models.TransformAreaFromStorage(area))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// @Summary Create a new competing area
// @Tags areas
// @Accept json
// @Produce json
// @Param area body models.CreateAreaRequest true "Area object"
// @Success 200 {object} models.AreaResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/areas [post]
func (c *AreasController) create(g *gin.Context) {
	var req models.CreateAreaRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("AREA: invalid create area request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}

	if req.Name == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request empty name"})
		return
	}

	id, err := gonanoid.New()
	if err != nil {
		logging.Log.Errorf("AREA: failed to generate area id: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not create area"})
		return
	}

	area := &storage.Area{
		ID:    id,
		Name:  req.Name,
		Score: 0,
		Badge: storage.DefaultBadge,
	}

	if err := c.areasStorage.Create(g.Request.Context(), area); err != nil {
		logging.Log.Errorf("AREA: failed to create area: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.hub.NotifyChanged(realtime.CollectionAreas)
	g.JSON(http.StatusOK, models.TransformAreaFromStorage(area))
}

// @Security AdminToken
// @Summary Rename an area
// @Tags areas
// @Accept json
// @Produce json
// @Param id path string true "Area ID"
// @Param area body models.RenameAreaRequest true "New name"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/areas/{id} [put]
func (c *AreasController) rename(g *gin.Context) {
	id := g.Param("id")

	var req models.RenameAreaRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("AREA: invalid rename area request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}

	if req.Name == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request empty name"})
		return
	}

	if err := c.areasStorage.Rename(g.Request.Context(), id, req.Name); err != nil {
		if errors.Is(err, storage.ErrAreaNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "area not found"})
			return
		}
		logging.Log.Errorf("AREA: failed to rename area: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.hub.NotifyChanged(realtime.CollectionAreas)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "area renamed"})
}

// @Security AdminToken
// @Summary Delete an area
// @Description Submissions referencing the deleted area are kept and render with a fallback label.
// @Tags areas
// @Produce json
// @Param id path string true "Area ID"
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/areas/{id} [delete]
func (c *AreasController) delete(g *gin.Context) {
	id := g.Param("id")

	if err := c.areasStorage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("AREA: failed to delete area: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.hub.NotifyChanged(realtime.CollectionAreas)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "area deleted"})
}
