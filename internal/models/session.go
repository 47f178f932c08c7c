package models

type Session struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	CurrentRound int    `json:"current_round"`
}

const (
	SessionStatusWaiting = "waiting"
	SessionStatusActive  = "active"
	SessionStatusEnded   = "ended"
)
