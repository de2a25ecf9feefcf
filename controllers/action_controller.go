package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"uwc_connect_server/services"
)

// ActionController handles the like write path and the raw like log.
type ActionController struct {
	Likes *services.LikeService
}

// NewActionController creates a new ActionController instance.
func NewActionController(likes *services.LikeService) *ActionController {
	return &ActionController{Likes: likes}
}

// HandleLike records a directed like and reports whether it completed a
// mutual match.
func (ac *ActionController) HandleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FromEmail string `json:"fromEmail"`
		ToEmail   string `json:"toEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.FromEmail == "" || request.ToEmail == "" {
		respondError(w, http.StatusBadRequest, "Missing emails")
		return
	}

	isNewMatch, err := ac.Likes.RecordLike(request.FromEmail, request.ToEmail)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfLike):
			respondError(w, http.StatusBadRequest, "You cannot like yourself")
		case errors.Is(err, services.ErrUnknownUser):
			respondError(w, http.StatusNotFound, "User not found")
		default:
			log.Println("Error recording like:", err)
			respondError(w, http.StatusInternalServerError, "Failed to record like")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"match":   isNewMatch,
	})
}

// HandleListLikes returns the full like log.
func (ac *ActionController) HandleListLikes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ac.Likes.All())
}
