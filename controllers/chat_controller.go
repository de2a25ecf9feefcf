package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"uwc_connect_server/services"
	"uwc_connect_server/socket"
)

// ChatController handles message append and the polling read path. When a
// hub is attached, appended messages are also pushed to the pair's
// websocket room.
type ChatController struct {
	Chat *services.ChatService
	Hub  *socket.Hub
}

// NewChatController initializes the chat controller.
func NewChatController(chat *services.ChatService, hub *socket.Hub) *ChatController {
	return &ChatController{Chat: chat, Hub: hub}
}

// HandleSendMessage appends one message.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Sender    string `json:"sender"`
		Receiver  string `json:"receiver"`
		Text      string `json:"text"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	msg, err := c.Chat.Append(request.Sender, request.Receiver, request.Text, request.Timestamp)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMessage) {
			respondError(w, http.StatusBadRequest, "Sender, receiver and text are required, and timestamp must be RFC 3339")
			return
		}
		log.Println("Error storing message:", err)
		respondError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	if c.Hub != nil {
		c.Hub.BroadcastNewMessage(msg)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"messageId": msg.ID,
	})
}

// HandleGetMessages returns the conversation between two users, ascending
// by timestamp. This is the polling read the mobile client hits every few
// seconds.
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	user1 := r.URL.Query().Get("user1")
	user2 := r.URL.Query().Get("user2")
	if user1 == "" || user2 == "" {
		respondError(w, http.StatusBadRequest, "user1 and user2 are required")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"messages": c.Chat.Between(user1, user2),
	})
}
