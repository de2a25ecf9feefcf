package socket

import (
	"encoding/json"
	"log"
	"strings"

	"uwc_connect_server/models"
)

// Event is the frame exchanged over the websocket. Clients send
// {"type":"join","user1":...,"user2":...} to enter a conversation room;
// the server pushes {"type":"newMessage","message":{...}} to that room
// whenever a message is appended through the HTTP surface.
type Event struct {
	Type    string          `json:"type"`
	User1   string          `json:"user1,omitempty"`
	User2   string          `json:"user2,omitempty"`
	Message *models.Message `json:"message,omitempty"`
}

type joinRequest struct {
	client *Client
	room   string
}

type roomEvent struct {
	room    string
	payload []byte
}

// Hub coordinates websocket clients grouped into per-conversation rooms.
// All room-map mutation happens on the Run goroutine.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	join       chan joinRequest
	broadcast  chan roomEvent
}

// NewHub returns a hub; callers must start Run in a goroutine.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan joinRequest),
		broadcast:  make(chan roomEvent, 64),
	}
}

// Run is the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			log.Printf("Socket connected: %s", client.email)

		case client := <-h.unregister:
			for room := range client.rooms {
				delete(h.rooms[room], client)
				if len(h.rooms[room]) == 0 {
					delete(h.rooms, room)
				}
			}
			close(client.send)
			log.Printf("Socket disconnected: %s", client.email)

		case req := <-h.join:
			if h.rooms[req.room] == nil {
				h.rooms[req.room] = make(map[*Client]bool)
			}
			h.rooms[req.room][req.client] = true
			req.client.rooms[req.room] = true
			log.Printf("User %s joined room %s", req.client.email, req.room)

		case ev := <-h.broadcast:
			for client := range h.rooms[ev.room] {
				select {
				case client.send <- ev.payload:
				default:
					// Slow consumer; drop the frame rather than block the hub.
				}
			}
		}
	}
}

// BroadcastNewMessage pushes a freshly appended message to the room of its
// two participants.
func (h *Hub) BroadcastNewMessage(msg models.Message) {
	payload, err := json.Marshal(Event{Type: "newMessage", Message: &msg})
	if err != nil {
		log.Printf("Failed to marshal message event: %v", err)
		return
	}
	h.broadcast <- roomEvent{room: RoomKey(msg.Sender, msg.Receiver), payload: payload}
}

// RoomKey names the conversation room for an unordered pair of users.
func RoomKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return strings.Join([]string{a, b}, "|")
}
