package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
)

type GuessHandler struct {
	guesses *services.GuessService
}

func NewGuessHandler(guesses *services.GuessService) *GuessHandler {
	return &GuessHandler{guesses: guesses}
}

type GuessRequest struct {
	Guesser         string `json:"guesser" binding:"required" example:"bob"`
	SessionID       string `json:"session_id" binding:"required" example:"7f6f1f6e-9f1a-4a9f-8c2d-0c1b2a3d4e5f"`
	Confession      string `json:"confession" binding:"required" example:"I ate the last slice"`
	GuessedUsername string `json:"guessed_username" binding:"required" example:"alice"`
}

// Guess godoc
// @Summary      Guess a confession's author
// @Description  Score the guess and record it; a repeat guess is a no-op
// @Tags         guesses
// @Accept       json
// @Produce      json
// @Param        request body GuessRequest true "Guess data"
// @Success      200 {object} services.GuessResult
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /guess [post]
func (h *GuessHandler) Guess(c *gin.Context) {
	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.guesses.Evaluate(c.Request.Context(), req.Guesser, req.SessionID, req.Confession, req.GuessedUsername)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.AlreadyGuessed {
		c.JSON(http.StatusOK, MessageResponse{Message: "You've already guessed this confession"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Guess recorded",
		"correct": result.Correct,
		"score":   result.Score,
	})
}
