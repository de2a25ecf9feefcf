package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"uwc_connect_server/services"
)

// AuthController handles OTP registration, login and account deletion.
type AuthController struct {
	OTP       *services.OTPService
	Directory *services.UserDirectory
	Profiles  *services.ProfileService
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(otp *services.OTPService, directory *services.UserDirectory, profiles *services.ProfileService) *AuthController {
	return &AuthController{OTP: otp, Directory: directory, Profiles: profiles}
}

// HandleSendOTP issues and emails an OTP for a registration attempt.
func (ac *AuthController) HandleSendOTP(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.Email == "" || request.Password == "" {
		respondError(w, http.StatusBadRequest, "Email & password required")
		return
	}

	if err := ac.OTP.SendOTP(request.Email, request.Password); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			respondError(w, http.StatusBadRequest, "Must be a UWC email address (@myuwc.ac.za or @uwc.ac.za)")
			return
		}
		log.Println("Error sending OTP:", err)
		respondError(w, http.StatusInternalServerError, "Failed to send OTP")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "OTP sent"})
}

// HandleVerifyOTP checks a submitted code and creates the user on first
// successful verification.
func (ac *AuthController) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ac.OTP.VerifyOTP(request.Email, request.OTP); err != nil {
		switch {
		case errors.Is(err, services.ErrExpiredOTP):
			respondError(w, http.StatusBadRequest, "OTP expired or not found")
		case errors.Is(err, services.ErrInvalidOTP):
			respondError(w, http.StatusBadRequest, "Invalid OTP")
		default:
			log.Println("Error verifying OTP:", err)
			respondError(w, http.StatusInternalServerError, "Failed to verify OTP")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// HandleLogin checks email/password credentials.
func (ac *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ac.Directory.Authenticate(request.Email, request.Password); err != nil {
		log.Println("Login failed for:", request.Email)
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	log.Println("Login successful for:", request.Email)
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// HandleDeleteAccount removes a user, their photos and their likes.
func (ac *AuthController) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email  string `json:"email"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ac.Profiles.DeleteAccount(context.Background(), request.Email, request.Reason); err != nil {
		log.Println("Error deleting account:", err)
		respondError(w, http.StatusInternalServerError, "Error deleting account")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Account deleted successfully"})
}
