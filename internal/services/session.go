package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/shreyashetty-create/WhoSaid-project/internal/models"
	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
)

// SessionService owns the session lifecycle: waiting → active → ended, plus
// the manually advanced round counter.
type SessionService struct {
	store *store.Client
}

func NewSessionService(st *store.Client) *SessionService {
	return &SessionService{store: st}
}

func (s *SessionService) Create(ctx context.Context) (string, error) {
	session := models.Session{
		ID:           uuid.NewString(),
		Status:       models.SessionStatusWaiting,
		CurrentRound: 1,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return "", err
	}
	return session.ID, nil
}

// Start flips the session to active. There is no minimum-players or readiness
// precondition; whether one should exist is an unresolved product rule.
func (s *SessionService) Start(ctx context.Context, id string) error {
	return s.store.UpdateSession(ctx, id, map[string]interface{}{
		"status": models.SessionStatusActive,
	})
}

// End marks the session ended regardless of its current state.
func (s *SessionService) End(ctx context.Context, id string) error {
	return s.store.UpdateSession(ctx, id, map[string]interface{}{
		"status": models.SessionStatusEnded,
	})
}

func (s *SessionService) Status(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// NextRound reads the current round and writes round+1. It only requires the
// session to exist: the status is deliberately not checked, so rounds keep
// advancing even on an ended session (kept from the original rules).
func (s *SessionService) NextRound(ctx context.Context, id string) (int, error) {
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return 0, err
	}
	if session == nil {
		return 0, ErrSessionNotFound
	}

	newRound := session.CurrentRound + 1
	err = s.store.UpdateSession(ctx, id, map[string]interface{}{
		"current_round": newRound,
	})
	if err != nil {
		return 0, err
	}
	return newRound, nil
}

// requireActive gates confession submission and guessing. The check and the
// write that follows it are not atomic; a session ending in between is an
// accepted race (the store offers no transactions).
func (s *SessionService) requireActive(ctx context.Context, id string) error {
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.Status != models.SessionStatusActive {
		return ErrSessionNotActive
	}
	return nil
}
