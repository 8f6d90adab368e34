package repository

import (
	"context"

	"mediguard-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
