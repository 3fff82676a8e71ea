package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	pkgerrors "github.com/zsyayo112/campsite-manage-sub000/pkg/errors"
)

// CustomerRepository 客户数据访问接口
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*model.Customer, error)
	List(ctx context.Context, phone, name string, offset, limit int) ([]model.Customer, int64, error)
	Update(ctx context.Context, customer *model.Customer) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", id).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) List(ctx context.Context, phone, name string, offset, limit int) ([]model.Customer, int64, error) {
	var customers []model.Customer
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Customer{})
	if phone != "" {
		db = db.Where("phone LIKE ?", "%"+phone+"%")
	}
	if name != "" {
		db = db.Where("name LIKE ?", "%"+name+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&customers).Error
	return customers, total, err
}

func (r *customerRepo) Update(ctx context.Context, customer *model.Customer) error {
	oldVersion := customer.Version
	result := r.db.WithContext(ctx).
		Model(customer).
		Where("customer_id = ? AND version = ?", customer.CustomerID, oldVersion).
		Updates(map[string]interface{}{
			"name":            customer.Name,
			"wechat":          customer.Wechat,
			"total_spent":     customer.TotalSpent,
			"visit_count":     customer.VisitCount,
			"last_visit_date": customer.LastVisitDate,
			"remark":          customer.Remark,
			"updated_by":      customer.UpdatedBy,
			"version":         oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	customer.Version = oldVersion + 1
	return nil
}
