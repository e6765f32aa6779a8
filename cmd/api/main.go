package main

import (
	"fmt"
	"log"
	"net/http"

	"bragboard/cmd/app"
	"bragboard/internal/config"
	handlers "bragboard/internal/handler"
	"bragboard/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	api.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/me/profile", handler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)

	api.HandleFunc("/shoutouts", handler.CreateShoutOut).Methods(http.MethodPost)
	api.HandleFunc("/shoutouts/feed", handler.GetFeed).Methods(http.MethodGet)
	api.HandleFunc("/shoutouts/{id}", handler.GetShoutOut).Methods(http.MethodGet)
	api.HandleFunc("/shoutouts/{id}/reactions", handler.ToggleReaction).Methods(http.MethodPost)
	api.HandleFunc("/shoutouts/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/shoutouts/{id}/comments", handler.ListComments).Methods(http.MethodGet)

	api.Handle("/admin/stats",
		middleware.RequireRole("admin", "superadmin")(http.HandlerFunc(handler.GetDashboardStats)),
	).Methods(http.MethodGet)

	// innermost first; CORS must answer preflight before auth runs
	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.RequestIDMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
