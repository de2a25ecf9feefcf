package services

import (
	"log"
	"sync"
	"time"

	"uwc_connect_server/models"
)

// LikeService keeps the directed like log and derives the mutual match
// relation. A match exists between A and B exactly when both directions
// have been liked, regardless of order; on the like that completes the
// pair it updates both users' matches sets through the directory.
type LikeService struct {
	Directory *UserDirectory

	mu    sync.RWMutex
	likes []models.LikeEvent
	seen  map[string]bool // "from|to", one event per ordered pair
}

// NewLikeService returns an engine bound to the given directory.
func NewLikeService(directory *UserDirectory) *LikeService {
	return &LikeService{
		Directory: directory,
		seen:      make(map[string]bool),
	}
}

// RecordLike appends a like from one user to another and reports whether
// it completed a mutual match. Repeated likes for the same ordered pair
// are no-ops. Both users must be registered.
func (s *LikeService) RecordLike(fromEmail, toEmail string) (bool, error) {
	if fromEmail == "" || toEmail == "" {
		return false, ErrUnknownUser
	}
	if fromEmail == toEmail {
		return false, ErrSelfLike
	}

	// Validation, the reciprocity check and the append must not
	// interleave with another RecordLike, so the whole read-then-write
	// runs under the engine lock. AddMatch takes the directory lock
	// inside it; the directory never calls back into the engine.
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Directory.Exists(fromEmail) || !s.Directory.Exists(toEmail) {
		return false, ErrUnknownUser
	}
	if s.seen[likeKey(fromEmail, toEmail)] {
		return false, nil
	}

	s.likes = append(s.likes, models.LikeEvent{
		FromEmail: fromEmail,
		ToEmail:   toEmail,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	s.seen[likeKey(fromEmail, toEmail)] = true

	if !s.seen[likeKey(toEmail, fromEmail)] {
		return false, nil
	}

	if err := s.Directory.AddMatch(fromEmail, toEmail); err != nil {
		// A user was removed between the existence check and the match
		// update. Undo the append so a failed call leaves no trace.
		s.likes = s.likes[:len(s.likes)-1]
		delete(s.seen, likeKey(fromEmail, toEmail))
		return false, err
	}
	log.Printf("Mutual match found: %s and %s", fromEmail, toEmail)
	return true, nil
}

// All returns the full like log in append order.
func (s *LikeService) All() []models.LikeEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LikeEvent, len(s.likes))
	copy(out, s.likes)
	return out
}

// LikesReceivedBy returns the likes addressed to the given user.
func (s *LikeService) LikesReceivedBy(email string) []models.LikeEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.LikeEvent{}
	for _, l := range s.likes {
		if l.ToEmail == email {
			out = append(out, l)
		}
	}
	return out
}

// LikesSentBy returns the likes the given user has sent.
func (s *LikeService) LikesSentBy(email string) []models.LikeEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.LikeEvent{}
	for _, l := range s.likes {
		if l.FromEmail == email {
			out = append(out, l)
		}
	}
	return out
}

// RemoveUser purges every like event the user sent or received. Called
// from the account-deletion cascade.
func (s *LikeService) RemoveUser(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.likes[:0]
	for _, l := range s.likes {
		if l.FromEmail == email || l.ToEmail == email {
			delete(s.seen, likeKey(l.FromEmail, l.ToEmail))
			continue
		}
		kept = append(kept, l)
	}
	s.likes = kept
}

func likeKey(from, to string) string {
	return from + "|" + to
}
