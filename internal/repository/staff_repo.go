package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
)

// StaffRepository 员工账号数据访问接口
type StaffRepository interface {
	Create(ctx context.Context, user *model.StaffUser) error
	GetByID(ctx context.Context, id string) (*model.StaffUser, error)
	GetByUsername(ctx context.Context, username string) (*model.StaffUser, error)
}

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, user *model.StaffUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*model.StaffUser, error) {
	var user model.StaffUser
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *staffRepo) GetByUsername(ctx context.Context, username string) (*model.StaffUser, error) {
	var user model.StaffUser
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
