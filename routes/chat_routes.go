package routes

import (
	"uwc_connect_server/controllers"
	"uwc_connect_server/services"
	"uwc_connect_server/socket"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up message append and the polling read path.
func RegisterChatRoutes(r *mux.Router, chat *services.ChatService, hub *socket.Hub) {
	controller := controllers.NewChatController(chat, hub)

	r.HandleFunc("/messages", controller.HandleSendMessage).Methods("POST")
	r.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
}
