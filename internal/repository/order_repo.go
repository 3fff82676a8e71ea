package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	pkgerrors "github.com/zsyayo112/campsite-manage-sub000/pkg/errors"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByBookingID(ctx context.Context, bookingID string) (*model.Order, error)
	// LastNumberByPrefix 返回编号以 prefix 开头、字典序最大的订单号，无记录时返回空串
	LastNumberByPrefix(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context, status, paymentStatus, visitDate string, offset, limit int) ([]model.Order, int64, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Package").
		Preload("Accommodation").
		Preload("Items").Preload("Items.Project").
		Where("order_id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) GetByBookingID(ctx context.Context, bookingID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) LastNumberByPrefix(ctx context.Context, prefix string) (string, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Select("order_number").
		Where("order_number LIKE ?", prefix+"%").
		Order("order_number DESC").
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return order.OrderNumber, nil
}

func (r *orderRepo) List(ctx context.Context, status, paymentStatus, visitDate string, offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Order{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if paymentStatus != "" {
		db = db.Where("payment_status = ?", paymentStatus)
	}
	if visitDate != "" {
		db = db.Where("visit_date = ?", visitDate)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Customer").Preload("Package").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) Update(ctx context.Context, order *model.Order) error {
	oldVersion := order.Version
	result := r.db.WithContext(ctx).
		Model(order).
		Where("order_id = ? AND version = ?", order.OrderID, oldVersion).
		Updates(map[string]interface{}{
			"accommodation_id": order.AccommodationID,
			"visit_date":       order.VisitDate,
			"adult_count":      order.AdultCount,
			"child_count":      order.ChildCount,
			"total_amount":     order.TotalAmount,
			"paid_amount":      order.PaidAmount,
			"status":           order.Status,
			"payment_status":   order.PaymentStatus,
			"remark":           order.Remark,
			"updated_by":       order.UpdatedBy,
			"version":          oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	order.Version = oldVersion + 1
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&model.Order{}).Error
}
