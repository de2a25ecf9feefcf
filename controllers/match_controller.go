package controllers

import (
	"log"
	"net/http"

	"uwc_connect_server/services"
)

// MatchController handles the read side of matching.
type MatchController struct {
	Matches *services.MatchService
}

// NewMatchController creates a new MatchController instance.
func NewMatchController(matches *services.MatchService) *MatchController {
	return &MatchController{Matches: matches}
}

// HandleGetMatches returns the matched profiles for a user.
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "Email required")
		return
	}

	matches, err := mc.Matches.GetCurrentMatches(r.Context(), email)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	log.Printf("Returning %d matches for: %s", len(matches), email)
	respondJSON(w, http.StatusOK, matches)
}

// HandleGetNewLikes returns profiles that liked the user without a match yet.
func (mc *MatchController) HandleGetNewLikes(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "Email required")
		return
	}

	likers, err := mc.Matches.GetNewLikes(r.Context(), email)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, likers)
}
