package usecase

import (
	"context"
	"errors"
	"time"

	"recruitment/domain"
)

type inboxUC struct {
	repo    domain.InboxRepo
	TimeOut time.Duration
}

func NewInboxUseCase(repo domain.InboxRepo, timeOut time.Duration) domain.InboxUseCase {
	return &inboxUC{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (iuc *inboxUC) Create(ctx context.Context, req *domain.CreateUserNotificationRequest) (*domain.UserNotification, error) {
	if req == nil {
		return nil, domain.BadRequest("Request body is required", nil)
	}
	if appErr := domain.Validate(req); appErr != nil {
		return nil, appErr
	}

	ctx, cancel := context.WithTimeout(ctx, iuc.TimeOut)
	defer cancel()

	data, err := iuc.repo.Create(ctx, &domain.UserNotification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return nil, domain.DatabaseError(err, map[string]any{"error": err.Error()})
	}
	return data, nil
}

func (iuc *inboxUC) ListByUser(ctx context.Context, userID int) ([]domain.UserNotification, error) {
	if userID < 1 {
		return nil, domain.BadRequest("Invalid user id", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, iuc.TimeOut)
	defer cancel()

	datas, err := iuc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.DatabaseError(err, map[string]any{"error": err.Error()})
	}
	return datas, nil
}

func (iuc *inboxUC) Archive(ctx context.Context, id int) (*domain.UserNotification, error) {
	if id < 1 {
		return nil, domain.BadRequest("Invalid notification id", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, iuc.TimeOut)
	defer cancel()

	data, err := iuc.repo.Archive(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Notification not found").Wrap(err)
		}
		return nil, domain.DatabaseError(err, map[string]any{"error": err.Error()})
	}
	return data, nil
}
