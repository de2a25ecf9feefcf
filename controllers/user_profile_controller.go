package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"uwc_connect_server/models"
	"uwc_connect_server/services"

	"github.com/gorilla/mux"
)

const (
	maxPhotoCount = 6
	maxPhotoBytes = 10 << 20
)

// UserProfileController handles profile setup and profile reads.
type UserProfileController struct {
	Profiles *services.ProfileService
}

// NewUserProfileController initializes the profile controller.
func NewUserProfileController(profiles *services.ProfileService) *UserProfileController {
	return &UserProfileController{Profiles: profiles}
}

// HandleSetupProfile stores a profile submitted as a multipart form with up
// to six photos.
func (c *UserProfileController) HandleSetupProfile(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "Email required")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	profile := models.Profile{
		Name:               r.FormValue("name"),
		Surname:            r.FormValue("surname"),
		LookingFor:         r.FormValue("lookingFor"),
		University:         r.FormValue("university"),
		StudyField:         r.FormValue("studyField"),
		Bio:                r.FormValue("bio"),
		Gender:             r.FormValue("gender"),
		CommunicationStyle: r.FormValue("communicationStyle"),
		LoveLanguage:       r.FormValue("loveLanguage"),
		StarSign:           r.FormValue("starSign"),
	}
	if interests := r.FormValue("interests"); interests != "" {
		for _, item := range strings.Split(interests, ",") {
			profile.Interests = append(profile.Interests, strings.TrimSpace(item))
		}
	}
	if age, err := strconv.Atoi(r.FormValue("age")); err == nil {
		profile.Age = age
	}

	files := r.MultipartForm.File["photos"]
	if len(files) > maxPhotoCount {
		respondError(w, http.StatusBadRequest, "At most 6 photos are allowed")
		return
	}

	var photos []services.PhotoUpload
	for _, header := range files {
		if header.Size > maxPhotoBytes {
			respondError(w, http.StatusBadRequest, "Photos must be 10MB or smaller")
			return
		}
		f, err := header.Open()
		if err != nil {
			log.Printf("Failed to open uploaded photo %s: %v", header.Filename, err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Printf("Failed to read uploaded photo %s: %v", header.Filename, err)
			continue
		}
		photos = append(photos, services.PhotoUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	uploaded, err := c.Profiles.SetupProfile(r.Context(), email, profile, photos)
	if err != nil {
		if errors.Is(err, services.ErrUnknownUser) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("Profile setup error:", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        "Profile saved successfully",
		"photosUploaded": uploaded,
	})
}

// HandleGetProfile returns one profile by email.
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	view, err := c.Profiles.GetProfile(r.Context(), email)
	if err != nil {
		respondError(w, http.StatusNotFound, "Profile not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "profile": view})
}

// HandleListProfiles returns every completed profile as a bare array.
func (c *UserProfileController) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := c.Profiles.ListProfiles(r.Context())
	log.Printf("Returning %d profiles", len(profiles))
	respondJSON(w, http.StatusOK, profiles)
}

// HandleDiscover returns every completed profile except the caller's own.
func (c *UserProfileController) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.Email == "" {
		respondError(w, http.StatusBadRequest, "Email required")
		return
	}

	profiles, err := c.Profiles.Discover(context.Background(), request.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load profiles")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"profiles": profiles,
		"count":    len(profiles),
	})
}
