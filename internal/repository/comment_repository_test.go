package repository

import (
	"context"
	"testing"
	"time"

	"bragboard/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec(`INSERT INTO shoutout_comments`).
		WithArgs(sqlmock.AnyArg(), "shout-1", "user-1", "well deserved", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	comment := &models.Comment{
		ShoutOutID: "shout-1",
		AuthorID:   "user-1",
		Content:    "well deserved",
	}

	err := repo.Create(context.Background(), comment)

	require.NoError(t, err)
	assert.NotEmpty(t, comment.CommentID)
	assert.False(t, comment.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByShoutOut(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	rows := sqlmock.NewRows([]string{"comment_id", "shoutout_id", "author_id", "content", "created_at", "author_name"}).
		AddRow("c1", "shout-1", "user-1", "first", testTime, "Alice Park").
		AddRow("c2", "shout-1", "user-9", "second", testTime.Add(time.Minute), "Unknown")

	mock.ExpectQuery(`FROM shoutout_comments c`).
		WithArgs("shout-1").
		WillReturnRows(rows)

	comments, err := repo.ListByShoutOut(context.Background(), "shout-1")

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "Alice Park", comments[0].AuthorName)
	assert.Equal(t, "Unknown", comments[1].AuthorName)
	assert.True(t, !comments[1].CreatedAt.Before(comments[0].CreatedAt))
}
