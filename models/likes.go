package models

// LikeEvent is one directed "like" from one user to another.
// The log keeps at most one event per ordered (from, to) pair.
type LikeEvent struct {
	FromEmail string `json:"fromEmail"`
	ToEmail   string `json:"toEmail"`
	CreatedAt string `json:"createdAt"`
}
