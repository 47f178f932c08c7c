package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register wires every endpoint onto the router. Kept separate from main so
// tests run against the exact production route table.
func Register(
	r *gin.Engine,
	session *SessionHandler,
	player *PlayerHandler,
	confession *ConfessionHandler,
	guess *GuessHandler,
	leaderboard *LeaderboardHandler,
	audio *AudioHandler,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/generate-audio", audio.GenerateAudio)

	r.POST("/join", player.Join)
	r.GET("/players", player.ListPlayers)
	r.POST("/toggle-ready", player.ToggleReady)

	r.POST("/confess", confession.Confess)
	r.GET("/confessions/:session_id", confession.ListConfessions)
	r.POST("/inject-ai-confession/:session_id", confession.InjectAIConfession)

	r.POST("/guess", guess.Guess)

	r.POST("/submit-score", leaderboard.SubmitScore)
	r.GET("/leaderboard", leaderboard.Global)
	r.GET("/leaderboard/:session_id", leaderboard.PerSession)

	r.POST("/create-session", session.CreateSession)
	r.POST("/start-session/:id", session.StartSession)
	r.POST("/end-session/:id", session.EndSession)
	r.GET("/session-status/:id", session.SessionStatus)
	r.POST("/next-round/:id", session.NextRound)
}
