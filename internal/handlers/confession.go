package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
)

type ConfessionHandler struct {
	confessions *services.ConfessionService
}

func NewConfessionHandler(confessions *services.ConfessionService) *ConfessionHandler {
	return &ConfessionHandler{confessions: confessions}
}

type ConfessionRequest struct {
	Username   string `json:"username" binding:"required" example:"alice"`
	SessionID  string `json:"session_id" binding:"required" example:"7f6f1f6e-9f1a-4a9f-8c2d-0c1b2a3d4e5f"`
	Confession string `json:"confession" binding:"required" example:"I ate the last slice"`
}

// Confess godoc
// @Summary      Submit a confession
// @Description  One confession per player per active session; text must not be blank
// @Tags         confessions
// @Accept       json
// @Produce      json
// @Param        request body ConfessionRequest true "Confession data"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /confess [post]
func (h *ConfessionHandler) Confess(c *gin.Context) {
	var req ConfessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.confessions.Submit(c.Request.Context(), req.Username, req.SessionID, req.Confession); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Confession submitted successfully"})
}

// ListConfessions godoc
// @Summary      List confessions
// @Description  Confession texts in a fresh random order, authors never included
// @Tags         confessions
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      200 {object} map[string][]string
// @Failure      502 {object} ErrorResponse
// @Router       /confessions/{session_id} [get]
func (h *ConfessionHandler) ListConfessions(c *gin.Context) {
	texts, err := h.confessions.List(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"confessions": texts})
}

// InjectAIConfession godoc
// @Summary      Inject an AI decoy confession
// @Description  Generate a fictional confession and add it under the reserved AI author
// @Tags         confessions
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      201 {object} map[string]string
// @Failure      502 {object} ErrorResponse
// @Router       /inject-ai-confession/{session_id} [post]
func (h *ConfessionHandler) InjectAIConfession(c *gin.Context) {
	text, err := h.confessions.InjectAI(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "AI confession added", "confession": text})
}
