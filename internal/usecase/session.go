package usecase

import (
	"sync"
	"time"

	"chatorder/internal/domain/entities"
)

// AwaitingKind tags what a stored pending candidate is waiting for.

type AwaitingKind string

const (
	AwaitingFields       AwaitingKind = "awaiting_fields"
	AwaitingConfirmation AwaitingKind = "awaiting_confirmation"
)

// SessionTurn is one message in a user's bounded history window.

type SessionTurn struct {
	Role string
	Text string
}

// PendingOrder is the at-most-one candidate held for a user between turns.

type PendingOrder struct {
	Candidate      entities.OrderCandidate
	Kind           AwaitingKind
	IdempotencyKey string
	StoredAt       time.Time
}

type sessionState struct {
	history  []SessionTurn
	language string
	pending  *PendingOrder
}

// SessionStore is the per-user conversational memory: a bounded message
// history (oldest evicted first), a language preference and at most one
// pending candidate. State is keyed strictly by user id; nothing is shared
// across users. In-memory only; a restart resets every session.

type SessionStore struct {
	mu           sync.RWMutex
	sessions     map[string]*sessionState
	historyLimit int
}

func NewSessionStore(historyLimit int) *SessionStore {
	if historyLimit <= 0 {
		historyLimit = DefaultConfig().SessionHistoryLimit
	}
	return &SessionStore{sessions: make(map[string]*sessionState), historyLimit: historyLimit}
}

func (s *SessionStore) state(userID string) *sessionState {
	st, ok := s.sessions[userID]
	if !ok {
		st = &sessionState{}
		s.sessions[userID] = st
	}
	return st
}

// RecordTurn appends a message to the user's history, evicting the oldest
// turn once the window is full.
func (s *SessionStore) RecordTurn(userID, role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	st.history = append(st.history, SessionTurn{Role: role, Text: text})
	if len(st.history) > s.historyLimit {
		st.history = st.history[len(st.history)-s.historyLimit:]
	}
}

func (s *SessionStore) History(userID string) []SessionTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	out := make([]SessionTurn, len(st.history))
	copy(out, st.history)
	return out
}

func (s *SessionStore) SetLanguage(userID, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(userID).language = language
}

func (s *SessionStore) Language(userID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.sessions[userID]; ok && st.language != "" {
		return st.language
	}
	return "fr"
}

// SetPendingCandidate stores the user's pending candidate, always replacing
// any previous one.
func (s *SessionStore) SetPendingCandidate(userID string, cand entities.OrderCandidate, kind AwaitingKind, idempotencyKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(userID).pending = &PendingOrder{
		Candidate:      cand,
		Kind:           kind,
		IdempotencyKey: idempotencyKey,
		StoredAt:       time.Now(),
	}
}

func (s *SessionStore) PendingCandidate(userID string) (PendingOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[userID]
	if !ok || st.pending == nil {
		return PendingOrder{}, false
	}
	return *st.pending, true
}

func (s *SessionStore) ClearPending(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.sessions[userID]; ok {
		st.pending = nil
	}
}
