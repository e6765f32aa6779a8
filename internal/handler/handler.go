package handlers

import (
	"net/http"

	"bragboard/internal/config"
	"bragboard/internal/database"
	"bragboard/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService     service.AuthService
	ShoutOutService service.ShoutOutService
	ReactionService service.ReactionService
	CommentService  service.CommentService
	UserService     service.UserService
	StatsService    service.StatsService
	DB              *database.DB
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		ShoutOutService: services.ShoutOut,
		ReactionService: services.Reaction,
		CommentService:  services.Comment,
		UserService:     services.User,
		StatsService:    services.Stats,
		DB:              db,
		Cfg:             cfg,
		Validate:        validator.New(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		if err := h.DB.HealthCheck(); err != nil {
			WriteError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
