package app_user

import (
	"context"
	"errors"

	"github.com/nutrobots/nutrobot-go/internal/db"
	"gorm.io/gorm"
)

/*
REPOSITORY INTERFACE
*/

type AppUserRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*AppUser, error)
	GetOrCreateByTelegramID(ctx context.Context, telegramID int64) (*AppUser, error)
	SetGoals(ctx context.Context, telegramID int64, dietType DietType, goals GoalParams) (*AppUser, error)
}

/*
REPOSITORY IMPL
*/

type AppUserRepositoryImpl struct {
	db *db.DB
}

func NewUserRepository(database *db.DB) AppUserRepository {
	return &AppUserRepositoryImpl{db: database}
}

func (r *AppUserRepositoryImpl) GetByTelegramID(ctx context.Context, telegramID int64) (*AppUser, error) {
	var u AppUser
	err := r.db.DB.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetOrCreateByTelegramID registers the user on first interaction.
func (r *AppUserRepositoryImpl) GetOrCreateByTelegramID(ctx context.Context, telegramID int64) (*AppUser, error) {
	existing, err := r.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	u := &AppUser{TelegramID: telegramID}
	if err := r.db.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *AppUserRepositoryImpl) SetGoals(ctx context.Context, telegramID int64, dietType DietType, goals GoalParams) (*AppUser, error) {
	u, err := r.GetOrCreateByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	u.DietType = dietType
	u.Goals = goals
	if err := r.db.DB.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}
