package usecase

import (
	"fmt"
	"testing"

	"chatorder/internal/domain/entities"
)

func TestSessionStore_History(t *testing.T) {
	t.Run("evicts oldest beyond the limit", func(t *testing.T) {
		s := NewSessionStore(3)
		for i := 0; i < 5; i++ {
			s.RecordTurn("u1", "user", fmt.Sprintf("msg-%d", i))
		}
		h := s.History("u1")
		if len(h) != 3 {
			t.Fatalf("expected 3 turns, got %d", len(h))
		}
		if h[0].Text != "msg-2" || h[2].Text != "msg-4" {
			t.Fatalf("unexpected window: %v", h)
		}
	})

	t.Run("history is isolated per user", func(t *testing.T) {
		s := NewSessionStore(5)
		s.RecordTurn("u1", "user", "hello from u1")
		s.RecordTurn("u2", "user", "hello from u2")
		if h := s.History("u1"); len(h) != 1 || h[0].Text != "hello from u1" {
			t.Fatalf("u1 history leaked: %v", h)
		}
		if h := s.History("u3"); h != nil {
			t.Fatalf("expected nil history for unknown user, got %v", h)
		}
	})

	t.Run("returned history is a copy", func(t *testing.T) {
		s := NewSessionStore(5)
		s.RecordTurn("u1", "user", "original")
		h := s.History("u1")
		h[0].Text = "mutated"
		if got := s.History("u1")[0].Text; got != "original" {
			t.Fatalf("history mutated through returned slice: %q", got)
		}
	})
}

func TestSessionStore_Pending(t *testing.T) {
	cand := entities.OrderCandidate{
		Items:      []entities.OrderCandidateLine{{FoodName: "Eru", Quantity: 1}},
		Confidence: 0.9,
	}

	t.Run("at most one pending per user", func(t *testing.T) {
		s := NewSessionStore(5)
		s.SetPendingCandidate("u1", cand, AwaitingFields, "")
		newer := cand
		newer.CustomerName = "Jean"
		s.SetPendingCandidate("u1", newer, AwaitingConfirmation, "675123456-1700000000")

		p, ok := s.PendingCandidate("u1")
		if !ok {
			t.Fatal("expected pending candidate")
		}
		if p.Kind != AwaitingConfirmation || p.Candidate.CustomerName != "Jean" {
			t.Fatalf("expected replacement, got %+v", p)
		}
		if p.IdempotencyKey != "675123456-1700000000" {
			t.Fatalf("unexpected idempotency key %q", p.IdempotencyKey)
		}
	})

	t.Run("clear removes pending but keeps session", func(t *testing.T) {
		s := NewSessionStore(5)
		s.SetLanguage("u1", "en")
		s.SetPendingCandidate("u1", cand, AwaitingFields, "")
		s.ClearPending("u1")
		if _, ok := s.PendingCandidate("u1"); ok {
			t.Fatal("expected no pending after clear")
		}
		if s.Language("u1") != "en" {
			t.Fatalf("expected language preserved, got %q", s.Language("u1"))
		}
	})

	t.Run("pending is isolated per user", func(t *testing.T) {
		s := NewSessionStore(5)
		s.SetPendingCandidate("u1", cand, AwaitingFields, "")
		if _, ok := s.PendingCandidate("u2"); ok {
			t.Fatal("pending leaked across users")
		}
	})

	t.Run("language defaults to french", func(t *testing.T) {
		s := NewSessionStore(5)
		if got := s.Language("unknown"); got != "fr" {
			t.Fatalf("expected fr default, got %q", got)
		}
	})
}
