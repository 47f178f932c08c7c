package services

import (
	"context"

	"github.com/shreyashetty-create/WhoSaid-project/internal/models"
	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
)

type GuessService struct {
	store    *store.Client
	sessions *SessionService
	scoring  *ScoringService
}

func NewGuessService(st *store.Client, sessions *SessionService, scoring *ScoringService) *GuessService {
	return &GuessService{store: st, sessions: sessions, scoring: scoring}
}

type GuessResult struct {
	AlreadyGuessed bool `json:"-"`
	Correct        bool `json:"correct"`
	Score          int  `json:"score"`
}

// Evaluate resolves a guess: gate on an active session, treat a repeat guess
// as a no-op, look up the true author, score, persist.
func (s *GuessService) Evaluate(ctx context.Context, guesser, sessionID, text, guessedUsername string) (*GuessResult, error) {
	if err := s.sessions.requireActive(ctx, sessionID); err != nil {
		return nil, err
	}

	already, err := s.store.HasGuess(ctx, guesser, sessionID, text)
	if err != nil {
		return nil, err
	}
	if already {
		return &GuessResult{AlreadyGuessed: true}, nil
	}

	author, found, err := s.store.FindConfessionAuthor(ctx, sessionID, text)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrConfessionNotFound
	}

	score, correct := s.scoring.Score(author, guessedUsername)

	err = s.store.CreateGuess(ctx, models.Guess{
		Guesser:         guesser,
		SessionID:       sessionID,
		Confession:      text,
		GuessedUsername: guessedUsername,
		Correct:         correct,
		Score:           score,
	})
	if err != nil {
		return nil, err
	}

	return &GuessResult{Correct: correct, Score: score}, nil
}
