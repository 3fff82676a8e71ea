package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
)

// ShuttleRepository 接驳班次数据访问接口
type ShuttleRepository interface {
	Create(ctx context.Context, shuttle *model.ShuttleSchedule, stops []model.ShuttleStop) error
	GetByID(ctx context.Context, id string) (*model.ShuttleSchedule, error)
	List(ctx context.Context, date string, offset, limit int) ([]model.ShuttleSchedule, int64, error)
	Delete(ctx context.Context, id string, deletedBy string) error
}

type shuttleRepo struct {
	db *gorm.DB
}

func NewShuttleRepo(db *gorm.DB) ShuttleRepository {
	return &shuttleRepo{db: db}
}

func (r *shuttleRepo) Create(ctx context.Context, shuttle *model.ShuttleSchedule, stops []model.ShuttleStop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shuttle).Error; err != nil {
			return err
		}
		for i := range stops {
			stops[i].ShuttleID = shuttle.ShuttleID
		}
		if len(stops) > 0 {
			if err := tx.Create(&stops).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *shuttleRepo) GetByID(ctx context.Context, id string) (*model.ShuttleSchedule, error) {
	var shuttle model.ShuttleSchedule
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Preload("Stops.Accommodation").
		Where("shuttle_id = ?", id).
		First(&shuttle).Error
	if err != nil {
		return nil, err
	}
	return &shuttle, nil
}

func (r *shuttleRepo) List(ctx context.Context, date string, offset, limit int) ([]model.ShuttleSchedule, int64, error) {
	var shuttles []model.ShuttleSchedule
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ShuttleSchedule{})
	if date != "" {
		db = db.Where("shuttle_date = ?", date)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Preload("Stops.Accommodation").
		Offset(offset).Limit(limit).
		Order("shuttle_date DESC, depart_time ASC").
		Find(&shuttles).Error
	return shuttles, total, err
}

func (r *shuttleRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.ShuttleSchedule{}).
		Where("shuttle_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("shuttle_id = ?", id).
		Delete(&model.ShuttleSchedule{}).Error
}
