package routes

import (
	"uwc_connect_server/controllers"
	"uwc_connect_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up the OTP registration, login and account
// deletion endpoints.
func RegisterAuthRoutes(r *mux.Router, otp *services.OTPService, directory *services.UserDirectory, profiles *services.ProfileService) {
	controller := controllers.NewAuthController(otp, directory, profiles)

	r.HandleFunc("/send-otp", controller.HandleSendOTP).Methods("POST")
	r.HandleFunc("/verify-otp", controller.HandleVerifyOTP).Methods("POST")
	r.HandleFunc("/login", controller.HandleLogin).Methods("POST")
	r.HandleFunc("/delete-account", controller.HandleDeleteAccount).Methods("POST")
}
