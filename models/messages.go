package models

// Message is one chat line between two users. Timestamp is RFC 3339 so
// lexical order matches chronological order.
type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}
