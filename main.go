package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"uwc_connect_server/routes"
	"uwc_connect_server/services"
	"uwc_connect_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Initialize the S3 photo store
	log.Println("Initializing S3 client...")
	photoStore, err := services.NewS3Service(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}
	log.Println("S3 client initialized.")

	// Initialize stores and services
	directory := services.NewUserDirectory()
	likeService := services.NewLikeService(directory)
	chatService := services.NewChatService()
	otpService := services.NewOTPService(directory, services.NewSMTPMailerFromEnv())
	profileService := &services.ProfileService{Directory: directory, Likes: likeService, Photos: photoStore}
	matchService := &services.MatchService{Directory: directory, Likes: likeService, Profiles: profileService}

	// Start the websocket hub for push chat
	hub := socket.NewHub()
	go hub.Run()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to UWC Connect")
	}).Methods("GET")

	// Register a health check endpoint with an S3 reachability probe
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"success":       true,
			"message":       "Server is running",
			"userCount":     directory.Count(),
			"profilesCount": directory.ProfileCount(),
		}
		if err := photoStore.Ping(r.Context()); err != nil {
			response["success"] = false
			response["message"] = "Server running but S3 access issue"
		}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, otpService, directory, profileService)
	routes.RegisterUserProfileRoutes(r, profileService)
	routes.RegisterActionRoutes(r, likeService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService, hub)
	routes.RegisterS3Routes(r, photoStore)

	// Websocket endpoint for push chat
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		socket.ServeWS(hub, w, r)
	})

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
