package services

import (
	"context"

	"github.com/shreyashetty-create/WhoSaid-project/internal/models"
	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
)

type PlayerService struct {
	store *store.Client
}

func NewPlayerService(st *store.Client) *PlayerService {
	return &PlayerService{store: st}
}

// Join registers a player in a session. A repeat join is an idempotent
// success, reported via alreadyJoined. The existence check and the insert are
// separate store calls, so two racing joins may both slip through; that
// best-effort uniqueness is accepted.
func (s *PlayerService) Join(ctx context.Context, username, sessionID string) (alreadyJoined bool, err error) {
	existing, err := s.store.FindPlayer(ctx, username, sessionID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return true, nil
	}

	player := models.Player{
		Username:  username,
		SessionID: sessionID,
		IsReady:   false,
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return false, err
	}
	return false, nil
}

func (s *PlayerService) List(ctx context.Context, sessionID string) ([]models.Player, error) {
	return s.store.ListPlayers(ctx, sessionID)
}

func (s *PlayerService) ToggleReady(ctx context.Context, username, sessionID string, isReady bool) error {
	return s.store.SetPlayerReady(ctx, username, sessionID, isReady)
}
