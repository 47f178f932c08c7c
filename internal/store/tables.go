package store

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shreyashetty-create/WhoSaid-project/internal/models"
)

func (c *Client) CreateSession(ctx context.Context, session models.Session) error {
	return c.insert(ctx, "sessions", session)
}

// GetSession returns nil when no session row matches the id.
func (c *Client) GetSession(ctx context.Context, id string) (*models.Session, error) {
	query := url.Values{
		"id":     {eq(id)},
		"select": {"id,status,current_round"},
	}
	var sessions []models.Session
	if err := c.get(ctx, "sessions", query, &sessions); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

func (c *Client) UpdateSession(ctx context.Context, id string, fields map[string]interface{}) error {
	query := url.Values{"id": {eq(id)}}
	return c.patch(ctx, "sessions", query, fields)
}

func (c *Client) CreatePlayer(ctx context.Context, player models.Player) error {
	return c.insert(ctx, "players", player)
}

// FindPlayer returns nil when the player has not joined the session.
func (c *Client) FindPlayer(ctx context.Context, username, sessionID string) (*models.Player, error) {
	query := url.Values{
		"username":   {eq(username)},
		"session_id": {eq(sessionID)},
	}
	var players []models.Player
	if err := c.get(ctx, "players", query, &players); err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, nil
	}
	return &players[0], nil
}

// ListPlayers returns every player when sessionID is empty.
func (c *Client) ListPlayers(ctx context.Context, sessionID string) ([]models.Player, error) {
	query := url.Values{"select": {"username,is_ready"}}
	if sessionID != "" {
		query.Set("session_id", eq(sessionID))
	}
	var players []models.Player
	if err := c.get(ctx, "players", query, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *Client) SetPlayerReady(ctx context.Context, username, sessionID string, isReady bool) error {
	query := url.Values{
		"username":   {eq(username)},
		"session_id": {eq(sessionID)},
	}
	return c.patch(ctx, "players", query, map[string]interface{}{"is_ready": isReady})
}

func (c *Client) CreateConfession(ctx context.Context, confession models.Confession) error {
	return c.insert(ctx, "confessions", confession)
}

// HasConfession reports whether the user already confessed in the session.
func (c *Client) HasConfession(ctx context.Context, username, sessionID string) (bool, error) {
	query := url.Values{
		"username":   {eq(username)},
		"session_id": {eq(sessionID)},
	}
	var confessions []models.Confession
	if err := c.get(ctx, "confessions", query, &confessions); err != nil {
		return false, err
	}
	return len(confessions) > 0, nil
}

// ListConfessionTexts returns the confession texts of a session, authors stripped.
func (c *Client) ListConfessionTexts(ctx context.Context, sessionID string) ([]string, error) {
	query := url.Values{
		"session_id": {eq(sessionID)},
		"select":     {"confession"},
	}
	var confessions []models.Confession
	if err := c.get(ctx, "confessions", query, &confessions); err != nil {
		return nil, err
	}
	texts := make([]string, len(confessions))
	for i, conf := range confessions {
		texts[i] = conf.Confession
	}
	return texts, nil
}

// FindConfessionAuthor returns the author of a confession text within a
// session, or false when no such confession exists.
func (c *Client) FindConfessionAuthor(ctx context.Context, sessionID, text string) (string, bool, error) {
	query := url.Values{
		"session_id": {eq(sessionID)},
		"confession": {eq(text)},
		"select":     {"username"},
	}
	var confessions []models.Confession
	if err := c.get(ctx, "confessions", query, &confessions); err != nil {
		return "", false, err
	}
	if len(confessions) == 0 {
		return "", false, nil
	}
	return confessions[0].Username, true, nil
}

func (c *Client) CreateGuess(ctx context.Context, guess models.Guess) error {
	return c.insert(ctx, "guesses", guess)
}

// HasGuess reports whether the guesser already guessed this confession.
func (c *Client) HasGuess(ctx context.Context, guesser, sessionID, text string) (bool, error) {
	query := url.Values{
		"guesser":    {eq(guesser)},
		"session_id": {eq(sessionID)},
		"confession": {eq(text)},
	}
	var guesses []models.Guess
	if err := c.get(ctx, "guesses", query, &guesses); err != nil {
		return false, err
	}
	return len(guesses) > 0, nil
}

func (c *Client) CreateLeaderboardEntry(ctx context.Context, entry models.LeaderboardEntry) error {
	return c.insert(ctx, "leaderboard", entry)
}

// ListLeaderboard returns raw entries ordered by score descending. Entries are
// per-submission; duplicate usernames are expected and not aggregated. An
// empty sessionID means the global board.
func (c *Client) ListLeaderboard(ctx context.Context, sessionID string, limit int) ([]models.LeaderboardEntry, error) {
	query := url.Values{
		"select": {"username,score"},
		"order":  {"score.desc"},
		"limit":  {strconv.Itoa(limit)},
	}
	if sessionID != "" {
		query.Set("session_id", eq(sessionID))
	}
	var entries []models.LeaderboardEntry
	if err := c.get(ctx, "leaderboard", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
