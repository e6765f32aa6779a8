package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"bragboard/internal/feed"
	"bragboard/internal/models"
	"bragboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetFeed(t *testing.T) {
	shoutOutService := new(MockShoutOutService)
	handler := newTestHandlers(shoutOutService, new(MockReactionService), new(MockCommentService), new(MockUserService), new(MockStatsService), new(MockAuthService))

	items := []feed.Item{
		{
			ShoutOut:          models.ShoutOut{ShoutOutID: "s1", Message: "great work", CreatedAt: time.Now()},
			AuthorDisplayName: "Alice Park",
			ReactionCounts:    map[string]int{"👏": 2},
			CommentCount:      1,
		},
	}

	shoutOutService.On("Feed", mock.Anything, "user-1", feed.Criteria{
		Department: "Engineering",
		Sender:     "alice",
		Range:      feed.RangeWeek,
	}).Return(items, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/shoutouts/feed?department=Engineering&sender=alice&range=week", nil)
	req = authedRequest(req, "user-1", models.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.GetFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []feed.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Park", got[0].AuthorDisplayName)
	shoutOutService.AssertExpectations(t)
}

func TestGetFeedInvalidRange(t *testing.T) {
	shoutOutService := new(MockShoutOutService)
	handler := newTestHandlers(shoutOutService, new(MockReactionService), new(MockCommentService), new(MockUserService), new(MockStatsService), new(MockAuthService))

	req := httptest.NewRequest(http.MethodGet, "/api/shoutouts/feed?range=yesterday", nil)
	req = authedRequest(req, "user-1", models.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.GetFeed(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	shoutOutService.AssertNotCalled(t, "Feed", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateShoutOut(t *testing.T) {
	shoutOutService := new(MockShoutOutService)
	handler := newTestHandlers(shoutOutService, new(MockReactionService), new(MockCommentService), new(MockUserService), new(MockStatsService), new(MockAuthService))

	shoutOutService.On("Create", mock.Anything, mock.MatchedBy(func(req service.CreateShoutOutRequest) bool {
		return req.AuthorID == "user-1" &&
			req.Message == "huge thanks to the infra team" &&
			len(req.TaggedUserIDs) == 2
	})).Return(&models.ShoutOut{
		ShoutOutID:    "s1",
		AuthorID:      "user-1",
		Message:       "huge thanks to the infra team",
		TaggedUserIDs: []string{"user-2", "user-3"},
	}, nil)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("message", "huge thanks to the infra team")
	writer.WriteField("taggedUserIds", "user-2")
	writer.WriteField("taggedUserIds", "user-3")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/shoutouts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = authedRequest(req, "user-1", models.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.CreateShoutOut(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var shoutout models.ShoutOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shoutout))
	assert.Equal(t, "s1", shoutout.ShoutOutID)
	shoutOutService.AssertExpectations(t)
}

func TestCreateShoutOutEmptyMessage(t *testing.T) {
	shoutOutService := new(MockShoutOutService)
	handler := newTestHandlers(shoutOutService, new(MockReactionService), new(MockCommentService), new(MockUserService), new(MockStatsService), new(MockAuthService))

	shoutOutService.On("Create", mock.Anything, mock.Anything).Return(nil, models.ErrEmptyContent)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("message", "   ")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/shoutouts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = authedRequest(req, "user-1", models.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.CreateShoutOut(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateShoutOutRejectsBadImageType(t *testing.T) {
	shoutOutService := new(MockShoutOutService)
	handler := newTestHandlers(shoutOutService, new(MockReactionService), new(MockCommentService), new(MockUserService), new(MockStatsService), new(MockAuthService))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("message", "with attachment")

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="notes.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	part.Write([]byte("not an image"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/shoutouts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = authedRequest(req, "user-1", models.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.CreateShoutOut(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	shoutOutService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
