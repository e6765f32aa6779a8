package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	DisplayName            string    `json:"displayName" db:"display_name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	Department             string    `json:"department" db:"department"`
	AvatarURL              string    `json:"avatarUrl" db:"avatar_url"`
	JoiningDate            string    `json:"joiningDate" db:"joining_date"`
	CurrentProject         string    `json:"currentProject" db:"current_project"`
	Skills                 string    `json:"skills" db:"skills"`
	Experience             string    `json:"experience" db:"experience"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

const (
	RoleEmployee   = "employee"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ShoutOut is a recognition post. Immutable after creation; counts shown in
// the feed are derived at read time, never stored on the row.
type ShoutOut struct {
	ShoutOutID    string    `json:"shoutoutId" db:"shoutout_id"`
	AuthorID      string    `json:"authorId" db:"author_id"`
	Message       string    `json:"message" db:"message"`
	ImageURL      string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	TaggedUserIDs []string  `json:"taggedUserIds" db:"-"`
}

// Reaction is one (shoutout, user, emoji) row. At most one row per key.
type Reaction struct {
	ReactionID string    `json:"reactionId" db:"reaction_id"`
	ShoutOutID string    `json:"shoutoutId" db:"shoutout_id"`
	UserID     string    `json:"userId" db:"user_id"`
	Emoji      string    `json:"emoji" db:"emoji"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID  string    `json:"commentId" db:"comment_id"`
	ShoutOutID string    `json:"shoutoutId" db:"shoutout_id"`
	AuthorID   string    `json:"authorId" db:"author_id"`
	AuthorName string    `json:"authorName,omitempty" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type DashboardStats struct {
	EmployeeCount   int            `json:"employeeCount"`
	ShoutOutCount   int            `json:"shoutoutCount"`
	DepartmentSizes map[string]int `json:"departmentSizes"`
}
