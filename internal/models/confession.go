package models

type Confession struct {
	Username   string `json:"username"`
	SessionID  string `json:"session_id"`
	Confession string `json:"confession"`
}

// AIAuthor is the reserved author name for generated decoy confessions.
// It must never collide with a real username.
const AIAuthor = "AI 🤖"
