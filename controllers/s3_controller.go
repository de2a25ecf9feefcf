package controllers

import (
	"context"
	"log"
	"net/http"
)

// UploadPresigner is the slice of the photo store this controller needs.
// services.S3Service satisfies it.
type UploadPresigner interface {
	PresignPut(ctx context.Context, fileName, fileType string) (url, key string, err error)
}

// S3Controller hands out presigned upload URLs for direct client uploads.
type S3Controller struct {
	Photos UploadPresigner
}

// NewS3Controller creates a new S3Controller instance.
func NewS3Controller(photos UploadPresigner) *S3Controller {
	return &S3Controller{Photos: photos}
}

// HandleGetUploadURL returns a presigned PUT URL and the key it targets.
func (sc *S3Controller) HandleGetUploadURL(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("fileName")
	fileType := r.URL.Query().Get("fileType")
	if fileName == "" || fileType == "" {
		respondError(w, http.StatusBadRequest, "fileName and fileType are required")
		return
	}

	url, key, err := sc.Photos.PresignPut(r.Context(), fileName, fileType)
	if err != nil {
		log.Println("Error presigning upload:", err)
		respondError(w, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"uploadUrl": url,
		"key":       key,
	})
}
