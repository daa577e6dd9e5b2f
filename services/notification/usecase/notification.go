package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"recruitment/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type notificationUC struct {
	repo    domain.NotificationRepo
	TimeOut time.Duration
}

func NewNotificationUseCase(repo domain.NotificationRepo, timeOut time.Duration) domain.NotificationUseCase {
	return &notificationUC{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (nuc *notificationUC) AddCompleteNotification(ctx context.Context, payload *domain.NotificationPayload) (*domain.AddNotificationResult, error) {
	if payload == nil {
		return nil, domain.BadRequest("Request body is required", nil)
	}
	if appErr := domain.Validate(payload); appErr != nil {
		return nil, appErr
	}

	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	res, err := nuc.repo.AddCompleteNotification(ctx, payload)
	if err != nil {
		return nil, translate(err)
	}
	return res, nil
}

func (nuc *notificationUC) ViewNotifications(ctx context.Context) ([]domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	datas, err := nuc.repo.ViewNotifications(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return datas, nil
}

func (nuc *notificationUC) GetNotificationByID(ctx context.Context, id int) (*domain.NotificationView, error) {
	if id < 1 {
		return nil, invalidID()
	}

	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	data, err := nuc.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return data, nil
}

func (nuc *notificationUC) EditNotification(ctx context.Context, id int, payload *domain.NotificationPayload) (*domain.NotificationView, error) {
	if id < 1 {
		return nil, invalidID()
	}
	if payload == nil {
		return nil, domain.BadRequest("Request body is required", nil)
	}
	if appErr := domain.Validate(payload); appErr != nil {
		return nil, appErr
	}

	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	data, err := nuc.repo.EditNotification(ctx, id, payload)
	if err != nil {
		return nil, translate(err)
	}
	return data, nil
}

func (nuc *notificationUC) ApproveNotification(ctx context.Context, id int, approvedBy, verifiedBy string) (*domain.Notification, error) {
	if id < 1 {
		return nil, invalidID()
	}

	approvedBy = orDefault(approvedBy, domain.DefaultApprover)
	verifiedBy = orDefault(verifiedBy, domain.DefaultApprover)
	if appErr := domain.Validate(&domain.ApprovePayload{ApprovedBy: approvedBy, VerifiedBy: verifiedBy}); appErr != nil {
		return nil, appErr
	}

	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	data, err := nuc.repo.ApproveNotification(ctx, id, approvedBy, verifiedBy)
	if err != nil {
		return nil, translate(err)
	}
	return data, nil
}

func (nuc *notificationUC) ArchiveNotification(ctx context.Context, id int) (*domain.Notification, error) {
	if id < 1 {
		return nil, invalidID()
	}

	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	data, err := nuc.repo.ArchiveNotification(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return data, nil
}

func (nuc *notificationUC) UnarchiveNotification(ctx context.Context, id int) (*domain.Notification, error) {
	if id < 1 {
		return nil, invalidID()
	}

	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	data, err := nuc.repo.UnarchiveNotification(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return data, nil
}

func (nuc *notificationUC) GetHomePageNotifications(ctx context.Context) (map[string][]domain.NotificationSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	data, err := nuc.repo.GetHomePageNotifications(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return data, nil
}

func (nuc *notificationUC) GetNotificationsByCategory(ctx context.Context, category string, page, limit int) (*domain.CategoryPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	ctx, cancel := context.WithTimeout(ctx, nuc.TimeOut)
	defer cancel()

	data, err := nuc.repo.GetNotificationsByCategory(ctx, category, page, limit)
	if err != nil {
		return nil, translate(err)
	}
	return data, nil
}

func translate(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound("Notification not found").Wrap(err)
	}

	details := map[string]any{"error": err.Error()}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		details["code"] = pgErr.Code
		details["detail"] = pgErr.Detail
		details["constraint"] = pgErr.ConstraintName
	}
	return domain.DatabaseError(err, details)
}

func invalidID() *domain.AppError {
	return domain.BadRequest("Invalid notification id", nil)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
