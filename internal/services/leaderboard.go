package services

import (
	"context"

	"github.com/shreyashetty-create/WhoSaid-project/internal/models"
	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
)

const defaultLeaderboardLimit = 10

// LeaderboardService appends score rows and reads them back ranked. Entries
// are one-per-submission; the same username can and will appear repeatedly.
type LeaderboardService struct {
	store *store.Client
}

func NewLeaderboardService(st *store.Client) *LeaderboardService {
	return &LeaderboardService{store: st}
}

func (s *LeaderboardService) SubmitScore(ctx context.Context, username string, score int, sessionID string) error {
	return s.store.CreateLeaderboardEntry(ctx, models.LeaderboardEntry{
		Username:  username,
		Score:     score,
		SessionID: sessionID,
	})
}

func (s *LeaderboardService) Global(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	return s.store.ListLeaderboard(ctx, "", limit)
}

func (s *LeaderboardService) PerSession(ctx context.Context, sessionID string, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	return s.store.ListLeaderboard(ctx, sessionID, limit)
}
