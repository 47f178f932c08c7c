package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
)

type PlayerHandler struct {
	players *services.PlayerService
}

func NewPlayerHandler(players *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{players: players}
}

type JoinRequest struct {
	Username  string `json:"username" binding:"required" example:"alice"`
	SessionID string `json:"session_id" binding:"required" example:"7f6f1f6e-9f1a-4a9f-8c2d-0c1b2a3d4e5f"`
}

// Join godoc
// @Summary      Join a session
// @Description  Register a player in a session; repeat joins are idempotent
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        request body JoinRequest true "Join data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /join [post]
func (h *PlayerHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	alreadyJoined, err := h.players.Join(c.Request.Context(), req.Username, req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	if alreadyJoined {
		c.JSON(http.StatusOK, MessageResponse{Message: "Player already in session"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Player joined successfully"})
}

// ListPlayers godoc
// @Summary      List players
// @Description  List players with their ready state, optionally for one session
// @Tags         players
// @Produce      json
// @Param        session_id query string false "Session ID"
// @Success      200 {object} map[string][]models.Player
// @Failure      502 {object} ErrorResponse
// @Router       /players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.players.List(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// ToggleReady godoc
// @Summary      Set a player's ready flag
// @Tags         players
// @Produce      json
// @Param        username query string true "Username"
// @Param        session_id query string true "Session ID"
// @Param        is_ready query bool true "Ready state"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /toggle-ready [post]
func (h *PlayerHandler) ToggleReady(c *gin.Context) {
	username := c.Query("username")
	sessionID := c.Query("session_id")
	if username == "" || sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and session_id are required"})
		return
	}

	isReady, err := strconv.ParseBool(c.Query("is_ready"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid is_ready value"})
		return
	}

	if err := h.players.ToggleReady(c.Request.Context(), username, sessionID, isReady); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Player readiness updated"})
}
