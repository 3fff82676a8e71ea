package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
)

// AccommodationRepository 住宿点数据访问接口
type AccommodationRepository interface {
	Create(ctx context.Context, accommodation *model.Accommodation) error
	GetByID(ctx context.Context, id string) (*model.Accommodation, error)
	// FindByNameLike 按名称子串匹配第一个住宿点（预订的 best-effort 关联）
	FindByNameLike(ctx context.Context, name string) (*model.Accommodation, error)
	List(ctx context.Context) ([]model.Accommodation, error)
	Update(ctx context.Context, accommodation *model.Accommodation) error
}

type accommodationRepo struct {
	db *gorm.DB
}

func NewAccommodationRepo(db *gorm.DB) AccommodationRepository {
	return &accommodationRepo{db: db}
}

func (r *accommodationRepo) Create(ctx context.Context, accommodation *model.Accommodation) error {
	return r.db.WithContext(ctx).Create(accommodation).Error
}

func (r *accommodationRepo) GetByID(ctx context.Context, id string) (*model.Accommodation, error) {
	var accommodation model.Accommodation
	err := r.db.WithContext(ctx).
		Where("accommodation_id = ?", id).
		First(&accommodation).Error
	if err != nil {
		return nil, err
	}
	return &accommodation, nil
}

func (r *accommodationRepo) FindByNameLike(ctx context.Context, name string) (*model.Accommodation, error) {
	var accommodation model.Accommodation
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+name+"%").
		Order("created_at ASC").
		First(&accommodation).Error
	if err != nil {
		return nil, err
	}
	return &accommodation, nil
}

func (r *accommodationRepo) List(ctx context.Context) ([]model.Accommodation, error) {
	var accommodations []model.Accommodation
	err := r.db.WithContext(ctx).Order("name ASC").Find(&accommodations).Error
	return accommodations, err
}

func (r *accommodationRepo) Update(ctx context.Context, accommodation *model.Accommodation) error {
	return r.db.WithContext(ctx).Save(accommodation).Error
}
