package controllers

import (
	"net/http"

	"github.com/Shashwata32/EcoLeague/api/models"
	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/gin-gonic/gin"
)

// AuthController trades the static admin credential pair for the shared
// admin token. It reproduces the original's client-side gate: anyone can
// read the config, nothing here is access control.
type AuthController struct {
	username string
	password string
	token    string
}

func NewAuthController(username, password, token string) *AuthController {
	return &AuthController{
		username: username,
		password: password,
		token:    token,
	}
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/api/auth/login", c.login)
}

// login godoc
// @Summary Admin login
// @Description Checks the static credential pair and returns the shared admin token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (c *AuthController) login(g *gin.Context) {
	var req models.LoginRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if req.Username != c.username || req.Password != c.password {
		logging.Log.Warnf("AUTH: failed admin login attempt for user %q", req.Username)
		g.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "access denied"})
		return
	}

	g.JSON(http.StatusOK, models.LoginResponse{Token: c.token})
}
