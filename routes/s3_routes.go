package routes

import (
	"uwc_connect_server/controllers"
	"uwc_connect_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up the presigned-upload endpoint.
func RegisterS3Routes(r *mux.Router, photos *services.S3Service) {
	controller := controllers.NewS3Controller(photos)

	r.HandleFunc("/s3/upload-url", controller.HandleGetUploadURL).Methods("GET")
}
