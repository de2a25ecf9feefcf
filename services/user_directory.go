package services

import (
	"sync"

	"uwc_connect_server/models"

	"golang.org/x/crypto/bcrypt"
)

// UserDirectory owns the set of registered users and their matches sets.
// All access goes through the directory's lock; read methods hand out
// copies so callers never alias live state.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewUserDirectory returns an empty directory.
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{users: make(map[string]*models.User)}
}

// Create registers a new user. The password is stored bcrypt-hashed.
// Returns ErrDuplicateUser if the email is already registered.
func (d *UserDirectory) Create(email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.users[email]; exists {
		return nil, ErrDuplicateUser
	}

	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		Matches:      []string{},
	}
	d.users[email] = u
	return snapshot(u), nil
}

// Authenticate checks an email/password pair.
func (d *UserDirectory) Authenticate(email, password string) error {
	d.mu.RLock()
	u, ok := d.users[email]
	d.mu.RUnlock()

	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// FindByEmail returns a copy of the user, if registered.
func (d *UserDirectory) FindByEmail(email string) (*models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[email]
	if !ok {
		return nil, false
	}
	return snapshot(u), true
}

// Exists reports whether the email is registered.
func (d *UserDirectory) Exists(email string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.users[email]
	return ok
}

// AttachProfile stores profile data on an existing user.
func (d *UserDirectory) AttachProfile(email string, profile models.Profile) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[email]
	if !ok {
		return ErrUnknownUser
	}
	u.Profile = &profile
	return nil
}

// AddMatch records a confirmed mutual match on both users. Both sides are
// updated under one lock acquisition, so the matches sets can never be
// observed half-updated. Adding an already-present match is a no-op.
func (d *UserDirectory) AddMatch(emailA, emailB string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.users[emailA]
	if !ok {
		return ErrUnknownUser
	}
	b, ok := d.users[emailB]
	if !ok {
		return ErrUnknownUser
	}

	if !contains(a.Matches, emailB) {
		a.Matches = append(a.Matches, emailB)
	}
	if !contains(b.Matches, emailA) {
		b.Matches = append(b.Matches, emailA)
	}
	return nil
}

// Remove deletes a user. Other users' matches entries pointing at the
// removed email are left in place, mirroring the original backend; match
// projections skip emails that no longer resolve.
func (d *UserDirectory) Remove(email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[email]; !ok {
		return ErrUnknownUser
	}
	delete(d.users, email)
	return nil
}

// All returns copies of every registered user.
func (d *UserDirectory) All() []*models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*models.User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, snapshot(u))
	}
	return out
}

// Count returns the number of registered users.
func (d *UserDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// ProfileCount returns the number of users with a completed profile.
func (d *UserDirectory) ProfileCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := 0
	for _, u := range d.users {
		if u.Profile != nil {
			n++
		}
	}
	return n
}

func snapshot(u *models.User) *models.User {
	cp := *u
	cp.Matches = append([]string(nil), u.Matches...)
	if u.Profile != nil {
		p := *u.Profile
		p.Interests = append([]string(nil), u.Profile.Interests...)
		p.Photos = append([]string(nil), u.Profile.Photos...)
		p.PhotoKeys = append([]string(nil), u.Profile.PhotoKeys...)
		cp.Profile = &p
	}
	return &cp
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
