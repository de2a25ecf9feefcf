package routes

import (
	"uwc_connect_server/controllers"
	"uwc_connect_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up the match and new-likes projections.
func RegisterMatchRoutes(r *mux.Router, matches *services.MatchService) {
	controller := controllers.NewMatchController(matches)

	r.HandleFunc("/matches", controller.HandleGetMatches).Methods("GET")
	r.HandleFunc("/new-likes", controller.HandleGetNewLikes).Methods("GET")
}
