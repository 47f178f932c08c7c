package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
)

type AudioHandler struct {
	narration *services.NarrationService
}

func NewAudioHandler(narration *services.NarrationService) *AudioHandler {
	return &AudioHandler{narration: narration}
}

type GenerateAudioRequest struct {
	Text string `json:"text" binding:"required" example:"I ate the last slice"`
}

// GenerateAudio godoc
// @Summary      Narrate a confession
// @Description  Synthesize speech for the text and return the audio file URL
// @Tags         audio
// @Accept       json
// @Produce      json
// @Param        request body GenerateAudioRequest true "Text to narrate"
// @Success      200 {object} map[string]string
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /generate-audio [post]
func (h *AudioHandler) GenerateAudio(c *gin.Context) {
	var req GenerateAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	audioURL, err := h.narration.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audio_url": audioURL})
}
