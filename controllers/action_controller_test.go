package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uwc_connect_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActionRouter(t *testing.T, emails ...string) (*mux.Router, *services.LikeService) {
	t.Helper()
	directory := services.NewUserDirectory()
	for _, email := range emails {
		_, err := directory.Create(email, "pw")
		require.NoError(t, err)
	}
	likes := services.NewLikeService(directory)
	controller := NewActionController(likes)

	r := mux.NewRouter()
	r.HandleFunc("/like", controller.HandleLike).Methods("POST")
	r.HandleFunc("/likes", controller.HandleListLikes).Methods("GET")
	return r, likes
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleLike_ReportsMatchOnReciprocity(t *testing.T) {
	r, _ := newActionRouter(t, "a@uwc.ac.za", "b@uwc.ac.za")

	w := postJSON(t, r, "/like", `{"fromEmail":"a@uwc.ac.za","toEmail":"b@uwc.ac.za"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var first struct {
		Success bool `json:"success"`
		Match   bool `json:"match"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.True(t, first.Success)
	assert.False(t, first.Match)

	w = postJSON(t, r, "/like", `{"fromEmail":"b@uwc.ac.za","toEmail":"a@uwc.ac.za"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var second struct {
		Success bool `json:"success"`
		Match   bool `json:"match"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.True(t, second.Success)
	assert.True(t, second.Match)
}

func TestHandleLike_Validation(t *testing.T) {
	r, _ := newActionRouter(t, "a@uwc.ac.za")

	w := postJSON(t, r, "/like", `{"fromEmail":"a@uwc.ac.za"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing emails")

	w = postJSON(t, r, "/like", `{"fromEmail":"a@uwc.ac.za","toEmail":"a@uwc.ac.za"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/like", `{"fromEmail":"a@uwc.ac.za","toEmail":"ghost@uwc.ac.za"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListLikes_ReturnsFullLog(t *testing.T) {
	r, likes := newActionRouter(t, "a@uwc.ac.za", "b@uwc.ac.za")
	_, err := likes.RecordLike("a@uwc.ac.za", "b@uwc.ac.za")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/likes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var log []struct {
		FromEmail string `json:"fromEmail"`
		ToEmail   string `json:"toEmail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	require.Len(t, log, 1)
	assert.Equal(t, "a@uwc.ac.za", log[0].FromEmail)
	assert.Equal(t, "b@uwc.ac.za", log[0].ToEmail)
}
