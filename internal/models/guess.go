package models

type Guess struct {
	Guesser         string `json:"guesser"`
	SessionID       string `json:"session_id"`
	Confession      string `json:"confession"`
	GuessedUsername string `json:"guessed_username"`
	Correct         bool   `json:"correct"`
	Score           int    `json:"score"`
}
