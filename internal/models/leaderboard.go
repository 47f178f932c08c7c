package models

type LeaderboardEntry struct {
	Username  string `json:"username"`
	Score     int    `json:"score"`
	SessionID string `json:"session_id,omitempty"`
}
