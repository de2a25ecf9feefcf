package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"uwc_connect_server/models"

	"github.com/google/uuid"
)

// ChatService is the append-only message store. It does not know about
// matches; callers gate chat access on match status.
type ChatService struct {
	mu       sync.RWMutex
	messages []models.Message
}

// NewChatService returns an empty message store.
func NewChatService() *ChatService {
	return &ChatService{}
}

// Append stores a new message between two users and returns it. The
// timestamp defaults to now when the caller does not supply one; a
// supplied timestamp must be valid RFC 3339 and is normalized to UTC so
// stored timestamps compare chronologically. Returns ErrInvalidMessage
// for empty text, a missing party or a malformed timestamp; nothing is
// stored in that case.
func (s *ChatService) Append(sender, receiver, text, timestamp string) (models.Message, error) {
	if sender == "" || receiver == "" || strings.TrimSpace(text) == "" {
		return models.Message{}, ErrInvalidMessage
	}

	ts := time.Now().UTC()
	if timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return models.Message{}, ErrInvalidMessage
		}
		ts = parsed.UTC()
	}

	msg := models.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Receiver:  receiver,
		Text:      text,
		Timestamp: ts.Format(time.RFC3339),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	return msg, nil
}

// Between returns every message exchanged between the two users, in either
// direction, ascending by timestamp. Equal timestamps keep insertion order.
func (s *ChatService) Between(userA, userB string) []models.Message {
	s.mu.RLock()
	out := []models.Message{}
	for _, m := range s.messages {
		if (m.Sender == userA && m.Receiver == userB) ||
			(m.Sender == userB && m.Receiver == userA) {
			out = append(out, m)
		}
	}
	s.mu.RUnlock()

	// Timestamps are normalized to UTC on append, so lexical order is
	// chronological order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}

// Count returns the number of stored messages.
func (s *ChatService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
