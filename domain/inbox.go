package domain

import (
	"context"
	"time"
)

// UserNotification is the older one-table message shape, kept apart from the posting schema.
type UserNotification struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int       `gorm:"not null;index" json:"userId"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsArchived bool      `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false;not null" json:"created_at"`
}

type CreateUserNotificationRequest struct {
	UserID  int    `json:"userId" valid:"required~userId is required"`
	Title   string `json:"title" valid:"required~Title is required,runelength(1|255)~Title must be at most 255 characters"`
	Message string `json:"message" valid:"required~Message is required"`
}

type InboxRepo interface {
	Create(ctx context.Context, data *UserNotification) (*UserNotification, error)
	ListByUser(ctx context.Context, userID int) ([]UserNotification, error)
	Archive(ctx context.Context, id int) (*UserNotification, error)
}

type InboxUseCase interface {
	Create(ctx context.Context, req *CreateUserNotificationRequest) (*UserNotification, error)
	ListByUser(ctx context.Context, userID int) ([]UserNotification, error)
	Archive(ctx context.Context, id int) (*UserNotification, error)
}
