// File: services/conversation/sessionstore.go
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"voyago/models"
)

// SessionStore persists conversation sessions between turns.
type SessionStore interface {
	// Get loads the session for the given ID. A missing session yields a
	// fresh one in the initial state, not an error.
	Get(ctx context.Context, sessionID string) (*models.ConversationSession, error)
	Save(ctx context.Context, session *models.ConversationSession) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis under a key prefix with a
// sliding TTL. Every Save refreshes the expiry.
type RedisSessionStore struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, Prefix: "chat:sess:", TTL: ttl}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return s.Prefix + sessionID
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ConversationSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return &models.ConversationSession{SessionID: sessionID, State: models.StateAwaitingSearch}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}

	var session models.ConversationSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.ConversationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := s.Client.Set(ctx, s.key(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("saving session %s: %w", session.SessionID, err)
	}
	return nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.key(sessionID)).Err()
}

// MemorySessionStore is an in-process SessionStore used in tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ConversationSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.ConversationSession)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.ConversationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[sessionID]; ok {
		copied := *session
		return &copied, nil
	}
	return &models.ConversationSession{SessionID: sessionID, State: models.StateAwaitingSearch}, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.ConversationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.SessionID] = &copied
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
