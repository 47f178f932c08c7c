package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shreyashetty-create/WhoSaid-project/internal/models"
)

func TestScore(t *testing.T) {
	scoring := NewScoringService()

	tests := []struct {
		name        string
		author      string
		guessed     string
		wantScore   int
		wantCorrect bool
	}{
		{"caught the AI decoy", models.AIAuthor, models.AIAuthor, 5, true},
		{"correct human author", "alice", "alice", 2, true},
		{"wrong human author", "alice", "bob", 0, false},
		{"AI confession blamed on a human", models.AIAuthor, "alice", 0, false},
		{"human confession blamed on the AI", "alice", models.AIAuthor, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, correct := scoring.Score(tt.author, tt.guessed)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantCorrect, correct)
		})
	}
}
