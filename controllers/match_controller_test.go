package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"uwc_connect_server/models"
	"uwc_connect_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchRouter(t *testing.T) (*mux.Router, *services.LikeService, *services.ProfileService) {
	t.Helper()
	directory := services.NewUserDirectory()
	for _, email := range []string{"a@uwc.ac.za", "b@uwc.ac.za", "c@uwc.ac.za"} {
		_, err := directory.Create(email, "pw")
		require.NoError(t, err)
	}
	likes := services.NewLikeService(directory)
	profiles := &services.ProfileService{Directory: directory, Likes: likes, Photos: nil}
	matches := &services.MatchService{Directory: directory, Likes: likes, Profiles: profiles}
	controller := NewMatchController(matches)

	r := mux.NewRouter()
	r.HandleFunc("/matches", controller.HandleGetMatches).Methods("GET")
	r.HandleFunc("/new-likes", controller.HandleGetNewLikes).Methods("GET")
	return r, likes, profiles
}

func getPath(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleGetMatches_ReturnsMatchedProfiles(t *testing.T) {
	r, likes, profiles := newMatchRouter(t)

	_, err := profiles.SetupProfile(context.Background(), "b@uwc.ac.za", models.Profile{Name: "B"}, nil)
	require.NoError(t, err)
	_, err = likes.RecordLike("a@uwc.ac.za", "b@uwc.ac.za")
	require.NoError(t, err)
	_, err = likes.RecordLike("b@uwc.ac.za", "a@uwc.ac.za")
	require.NoError(t, err)

	w := getPath(t, r, "/matches?email=a@uwc.ac.za")
	require.Equal(t, http.StatusOK, w.Code)

	var matched []struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matched))
	require.Len(t, matched, 1)
	assert.Equal(t, "b@uwc.ac.za", matched[0].Email)
	assert.Equal(t, "B", matched[0].Name)
}

func TestHandleGetMatches_Validation(t *testing.T) {
	r, _, _ := newMatchRouter(t)

	w := getPath(t, r, "/matches")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email required")

	w = getPath(t, r, "/matches?email=ghost@uwc.ac.za")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestHandleGetNewLikes_ExcludesMatchedSenders(t *testing.T) {
	r, likes, profiles := newMatchRouter(t)

	for _, email := range []string{"b@uwc.ac.za", "c@uwc.ac.za"} {
		_, err := profiles.SetupProfile(context.Background(), email, models.Profile{Name: email}, nil)
		require.NoError(t, err)
	}
	// b and c like a; a matches with b, leaving c as the only new like.
	_, err := likes.RecordLike("b@uwc.ac.za", "a@uwc.ac.za")
	require.NoError(t, err)
	_, err = likes.RecordLike("c@uwc.ac.za", "a@uwc.ac.za")
	require.NoError(t, err)
	_, err = likes.RecordLike("a@uwc.ac.za", "b@uwc.ac.za")
	require.NoError(t, err)

	w := getPath(t, r, "/new-likes?email=a@uwc.ac.za")
	require.Equal(t, http.StatusOK, w.Code)

	var likers []struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &likers))
	require.Len(t, likers, 1)
	assert.Equal(t, "c@uwc.ac.za", likers[0].Email)
}
