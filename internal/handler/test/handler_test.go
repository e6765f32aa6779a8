package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bragboard/internal/config"
	handlers "bragboard/internal/handler"
	"bragboard/internal/middleware"
	"bragboard/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// newTestHandlers builds a Handlers with mock services wired in.
func newTestHandlers(shoutOut *MockShoutOutService, reaction *MockReactionService, comment *MockCommentService, user *MockUserService, stats *MockStatsService, auth *MockAuthService) *handlers.Handlers {
	return &handlers.Handlers{
		AuthService:     auth,
		ShoutOutService: shoutOut,
		ReactionService: reaction,
		CommentService:  comment,
		UserService:     user,
		StatsService:    stats,
		Cfg:             &config.Config{MaxUploadSize: 10 * 1024 * 1024},
		Validate:        validator.New(),
	}
}

func authedRequest(r *http.Request, userID, role string) *http.Request {
	return r.WithContext(middleware.WithUser(r.Context(), userID, userID+"@example.com", role))
}

func TestNewHandlers(t *testing.T) {
	services := &service.Service{
		Auth:     new(MockAuthService),
		ShoutOut: new(MockShoutOutService),
		Reaction: new(MockReactionService),
		Comment:  new(MockCommentService),
		User:     new(MockUserService),
		Stats:    new(MockStatsService),
	}

	handler := handlers.NewHandlers(services, nil, &config.Config{})

	assert.NotNil(t, handler.AuthService)
	assert.NotNil(t, handler.ShoutOutService)
	assert.NotNil(t, handler.ReactionService)
	assert.NotNil(t, handler.CommentService)
	assert.NotNil(t, handler.UserService)
	assert.NotNil(t, handler.StatsService)
	assert.NotNil(t, handler.Validate)
}

func TestHealthWithoutDB(t *testing.T) {
	handler := newTestHandlers(new(MockShoutOutService), new(MockReactionService), new(MockCommentService), new(MockUserService), new(MockStatsService), new(MockAuthService))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
