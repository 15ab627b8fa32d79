// Package flash carries one-shot messages across the redirect that
// follows a form submission.
package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/omkarsindha/GSM-Alarm/internal/store"
)

const (
	CookieName = "labmon_session"
	keyPrefix  = "labmon:flash:"
)

type Kind string

const (
	KindError Kind = "error"
	KindAlert Kind = "alert"
	KindInfo  Kind = "info"
)

type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

type Store struct {
	kv     store.KV
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(kv store.KV, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{kv: kv, ttl: ttl, logger: logger}
}

// Session returns the browser's session id, issuing a new cookie when the
// request has none or carries one that is not a UUID.
func (s *Store) Session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Add appends msg to the session's pending messages.
func (s *Store) Add(ctx context.Context, session string, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode flash message: %w", err)
	}
	if err := s.kv.Push(ctx, keyPrefix+session, string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to store flash message: %w", err)
	}
	return nil
}

// Pop returns and clears the session's pending messages in the order they
// were added. Unreadable entries are logged and skipped.
func (s *Store) Pop(ctx context.Context, session string) ([]Message, error) {
	raw, err := s.kv.Drain(ctx, keyPrefix+session)
	if err != nil {
		return nil, fmt.Errorf("failed to read flash messages: %w", err)
	}
	msgs := make([]Message, 0, len(raw))
	for _, r := range raw {
		var m Message
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			s.logger.Warn("Dropping unreadable flash message", zap.String("session", session), zap.Error(err))
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
