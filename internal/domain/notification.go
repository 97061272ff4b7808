package domain

import (
	"context"
	"time"
)

const (
	NotificationTypeApplication = "APPLICATION"
	NotificationTypeStatus      = "STATUS_UPDATE"
	NotificationTypeSystem      = "SYSTEM"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id int64) (*Notification, error)
	FetchByUserID(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

type NotificationUsecase interface {
	List(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) (*Notification, error)
	// Notify creates a notification best-effort: failures are logged and
	// swallowed so they never abort the caller's primary write.
	Notify(ctx context.Context, userID int64, title, content, ntype string)
}
