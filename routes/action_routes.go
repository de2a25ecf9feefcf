package routes

import (
	"uwc_connect_server/controllers"
	"uwc_connect_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up the like write path and the like log.
func RegisterActionRoutes(r *mux.Router, likes *services.LikeService) {
	controller := controllers.NewActionController(likes)

	r.HandleFunc("/like", controller.HandleLike).Methods("POST")
	r.HandleFunc("/likes", controller.HandleListLikes).Methods("GET")
}
