package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shreyashetty-create/WhoSaid-project/internal/models"
	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
)

// ConfessionService collects confessions for a session and serves them back
// shuffled so submission order never betrays authorship.
type ConfessionService struct {
	store     *store.Client
	sessions  *SessionService
	generator *AIConfessionService

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

func NewConfessionService(st *store.Client, sessions *SessionService, generator *AIConfessionService) *ConfessionService {
	return &ConfessionService{
		store:     st,
		sessions:  sessions,
		generator: generator,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Submit stores one confession per (username, session). The session must be
// active. The duplicate check is a read before the insert, not a constraint;
// simultaneous submissions from the same user can both land.
func (s *ConfessionService) Submit(ctx context.Context, username, sessionID, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyConfession
	}

	if err := s.sessions.requireActive(ctx, sessionID); err != nil {
		return err
	}

	exists, err := s.store.HasConfession(ctx, username, sessionID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyConfessed
	}

	return s.store.CreateConfession(ctx, models.Confession{
		Username:   username,
		SessionID:  sessionID,
		Confession: text,
	})
}

// List returns the session's confession texts in a fresh uniform-random order
// on every call. Authors are never included.
func (s *ConfessionService) List(ctx context.Context, sessionID string) ([]string, error) {
	texts, err := s.store.ListConfessionTexts(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rng.Shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})
	s.mu.Unlock()

	return texts, nil
}

// InjectAI asks the generator for a decoy confession and stores it under the
// reserved AI author. No dedup: injecting twice leaves two decoys in the pool.
func (s *ConfessionService) InjectAI(ctx context.Context, sessionID string) (string, error) {
	text, err := s.generator.Generate(ctx)
	if err != nil {
		return "", err
	}

	err = s.store.CreateConfession(ctx, models.Confession{
		Username:   models.AIAuthor,
		SessionID:  sessionID,
		Confession: text,
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
