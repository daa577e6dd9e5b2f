package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"recruitment/domain"
)

type inboxRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewInboxRepository(db *gorm.DB) domain.InboxRepo {
	return NewInboxRepositoryWithClock(db, time.Now)
}

func NewInboxRepositoryWithClock(db *gorm.DB, now func() time.Time) domain.InboxRepo {
	return &inboxRepository{
		db:  db,
		now: now,
	}
}

func (ir *inboxRepository) Create(ctx context.Context, data *domain.UserNotification) (*domain.UserNotification, error) {
	data.CreatedAt = ir.now()
	if err := ir.db.WithContext(ctx).Create(data).Error; err != nil {
		return nil, fmt.Errorf("could not create user notification: %w", err)
	}
	return data, nil
}

func (ir *inboxRepository) ListByUser(ctx context.Context, userID int) ([]domain.UserNotification, error) {
	list := []domain.UserNotification{}
	err := ir.db.WithContext(ctx).
		Where("user_id = ? AND is_archived = ?", userID, false).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("could not get notifications for user %d: %w", userID, err)
	}
	return list, nil
}

func (ir *inboxRepository) Archive(ctx context.Context, id int) (*domain.UserNotification, error) {
	var n domain.UserNotification
	err := ir.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&n, id).Error; err != nil {
			return err
		}
		n.IsArchived = true
		return tx.Model(&n).Update("is_archived", true).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user notification %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not archive user notification %d: %w", id, err)
	}
	return &n, nil
}
