package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	pkgerrors "github.com/zsyayo112/campsite-manage-sub000/pkg/errors"
)

// BookingRepository 预订单数据访问接口
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetByCode(ctx context.Context, code string) (*model.Booking, error)
	// CountByCodePrefix 统计编号以 prefix 开头的预订单数（含软删除前的历史记录不计）
	CountByCodePrefix(ctx context.Context, prefix string) (int64, error)
	List(ctx context.Context, status, visitDate, phone string, offset, limit int) ([]model.Booking, int64, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type bookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Package").
		Preload("Accommodation").
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) GetByCode(ctx context.Context, code string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Where("booking_code = ?", code).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) CountByCodePrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("booking_code LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}

func (r *bookingRepo) List(ctx context.Context, status, visitDate, phone string, offset, limit int) ([]model.Booking, int64, error) {
	var bookings []model.Booking
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Booking{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if visitDate != "" {
		db = db.Where("visit_date = ?", visitDate)
	}
	if phone != "" {
		db = db.Where("phone LIKE ?", "%"+phone+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Package").Preload("Accommodation").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, total, err
}

func (r *bookingRepo) Update(ctx context.Context, booking *model.Booking) error {
	oldVersion := booking.Version
	result := r.db.WithContext(ctx).
		Model(booking).
		Where("booking_id = ? AND version = ?", booking.BookingID, oldVersion).
		Updates(map[string]interface{}{
			"customer_id":      booking.CustomerID,
			"customer_name":    booking.CustomerName,
			"phone":            booking.Phone,
			"wechat":           booking.Wechat,
			"visit_date":       booking.VisitDate,
			"adult_count":      booking.AdultCount,
			"child_count":      booking.ChildCount,
			"people_count":     booking.PeopleCount,
			"accommodation_id": booking.AccommodationID,
			"hotel_name":       booking.HotelName,
			"unit_price":       booking.UnitPrice,
			"child_price":      booking.ChildPrice,
			"total_amount":     booking.TotalAmount,
			"deposit_amount":   booking.DepositAmount,
			"status":           booking.Status,
			"remark":           booking.Remark,
			"updated_by":       booking.UpdatedBy,
			"version":          oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	booking.Version = oldVersion + 1
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("booking_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		Delete(&model.Booking{}).Error
}
