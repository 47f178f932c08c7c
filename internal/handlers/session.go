package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type SessionStatusResponse struct {
	Status       string `json:"status" example:"active"`
	CurrentRound int    `json:"current_round" example:"1"`
}

// CreateSession godoc
// @Summary      Create a game session
// @Description  Allocate a new session in waiting state at round 1
// @Tags         sessions
// @Produce      json
// @Success      201 {object} map[string]string
// @Failure      502 {object} ErrorResponse
// @Router       /create-session [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	id, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

// StartSession godoc
// @Summary      Start a session
// @Description  Move the session from waiting to active
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} MessageResponse
// @Failure      502 {object} ErrorResponse
// @Router       /start-session/{id} [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	if err := h.sessions.Start(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Session started"})
}

// EndSession godoc
// @Summary      End a session
// @Description  Mark the session ended from any state
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} MessageResponse
// @Failure      502 {object} ErrorResponse
// @Router       /end-session/{id} [post]
func (h *SessionHandler) EndSession(c *gin.Context) {
	if err := h.sessions.End(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Session ended"})
}

// SessionStatus godoc
// @Summary      Get session status
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} SessionStatusResponse
// @Failure      404 {object} ErrorResponse
// @Router       /session-status/{id} [get]
func (h *SessionHandler) SessionStatus(c *gin.Context) {
	session, err := h.sessions.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionStatusResponse{
		Status:       session.Status,
		CurrentRound: session.CurrentRound,
	})
}

// NextRound godoc
// @Summary      Advance the round counter
// @Description  Increment current_round; the session status is not checked
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /next-round/{id} [post]
func (h *SessionHandler) NextRound(c *gin.Context) {
	round, err := h.sessions.NextRound(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Advanced to round %d", round)})
}
