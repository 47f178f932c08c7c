package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
)

type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

type ScoreRequest struct {
	Username  string `json:"username" binding:"required" example:"alice"`
	Score     int    `json:"score" example:"5"`
	SessionID string `json:"session_id,omitempty" example:"7f6f1f6e-9f1a-4a9f-8c2d-0c1b2a3d4e5f"`
}

// SubmitScore godoc
// @Summary      Append a leaderboard entry
// @Description  One row per submission; no range validation, no dedup
// @Tags         leaderboard
// @Accept       json
// @Produce      json
// @Param        request body ScoreRequest true "Score data"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /submit-score [post]
func (h *LeaderboardHandler) SubmitScore(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.leaderboard.SubmitScore(c.Request.Context(), req.Username, req.Score, req.SessionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Score saved"})
}

// Global godoc
// @Summary      Global leaderboard
// @Description  Top raw entries across all sessions, score descending
// @Tags         leaderboard
// @Produce      json
// @Param        limit query int false "Max entries (default 10)"
// @Success      200 {array} models.LeaderboardEntry
// @Failure      502 {object} ErrorResponse
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) Global(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.leaderboard.Global(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// PerSession godoc
// @Summary      Session leaderboard
// @Tags         leaderboard
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Param        limit query int false "Max entries (default 10)"
// @Success      200 {array} models.LeaderboardEntry
// @Failure      502 {object} ErrorResponse
// @Router       /leaderboard/{session_id} [get]
func (h *LeaderboardHandler) PerSession(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.leaderboard.PerSession(c.Request.Context(), c.Param("session_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
