package models

type Player struct {
	Username  string `json:"username"`
	SessionID string `json:"session_id,omitempty"`
	IsReady   bool   `json:"is_ready"`
}
