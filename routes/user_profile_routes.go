package routes

import (
	"uwc_connect_server/controllers"
	"uwc_connect_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up profile setup, profile reads and
// discovery.
func RegisterUserProfileRoutes(r *mux.Router, profiles *services.ProfileService) {
	controller := controllers.NewUserProfileController(profiles)

	r.HandleFunc("/profile", controller.HandleSetupProfile).Methods("POST")
	r.HandleFunc("/profile/{email}", controller.HandleGetProfile).Methods("GET")
	r.HandleFunc("/profiles", controller.HandleListProfiles).Methods("GET")
	r.HandleFunc("/discover", controller.HandleDiscover).Methods("POST")
}
