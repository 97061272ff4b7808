package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (u *notificationUsecase) List(ctx context.Context, userID int64) ([]domain.Notification, error) {
	notifications, err := u.notificationRepo.FetchByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notifications, nil
}

// MarkRead flips the read flag. Users can only mark their own notifications.
func (u *notificationUsecase) MarkRead(ctx context.Context, userID, notificationID int64) (*domain.Notification, error) {
	n, err := u.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Notification not found")
		}
		return nil, apperror.Internal(err)
	}
	if n.UserID != userID {
		return nil, apperror.NotFound("Notification not found")
	}

	if !n.IsRead {
		if err := u.notificationRepo.MarkRead(ctx, notificationID); err != nil {
			return nil, apperror.Internal(err)
		}
		n.IsRead = true
	}
	return n, nil
}

// Notify creates a notification best-effort. A failed insert is logged and
// swallowed so it never aborts the caller's primary write.
func (u *notificationUsecase) Notify(ctx context.Context, userID int64, title, content, ntype string) {
	n := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Content: content,
		Type:    ntype,
	}
	if err := u.notificationRepo.Create(ctx, n); err != nil {
		logger.Log.Warn("failed to create notification",
			"user_id", userID, "type", ntype, "error", err)
	}
}
