package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
)

// PackageRepository 套餐数据访问接口
type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package, items []model.PackageItem) error
	GetByID(ctx context.Context, id string) (*model.Package, error)
	List(ctx context.Context, activeOnly bool) ([]model.Package, error)
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

// ProjectRepository 活动项目数据访问接口
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, activeOnly bool) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

// CoachRepository 教练数据访问接口
type CoachRepository interface {
	Create(ctx context.Context, coach *model.Coach) error
	GetByID(ctx context.Context, id string) (*model.Coach, error)
	List(ctx context.Context) ([]model.Coach, error)
	Update(ctx context.Context, coach *model.Coach) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

// ── Package Repository 实现 ──

type packageRepo struct {
	db *gorm.DB
}

func NewPackageRepo(db *gorm.DB) PackageRepository {
	return &packageRepo{db: db}
}

func (r *packageRepo) Create(ctx context.Context, pkg *model.Package, items []model.PackageItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pkg).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PackageID = pkg.PackageID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *packageRepo) GetByID(ctx context.Context, id string) (*model.Package, error) {
	var pkg model.Package
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Project").
		Where("package_id = ?", id).
		First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepo) List(ctx context.Context, activeOnly bool) ([]model.Package, error) {
	var pkgs []model.Package
	db := r.db.WithContext(ctx).Preload("Items").Preload("Items.Project")
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("created_at DESC").Find(&pkgs).Error
	return pkgs, err
}

func (r *packageRepo) Update(ctx context.Context, pkg *model.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *packageRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Package{}).
		Where("package_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("package_id = ?", id).
		Delete(&model.Package{}).Error
}

// ── Project Repository 实现 ──

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Where("project_id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context, activeOnly bool) ([]model.Project, error) {
	var projects []model.Project
	db := r.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("name ASC").Find(&projects).Error
	return projects, err
}

func (r *projectRepo) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("project_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("project_id = ?", id).
		Delete(&model.Project{}).Error
}

// ── Coach Repository 实现 ──

type coachRepo struct {
	db *gorm.DB
}

func NewCoachRepo(db *gorm.DB) CoachRepository {
	return &coachRepo{db: db}
}

func (r *coachRepo) Create(ctx context.Context, coach *model.Coach) error {
	return r.db.WithContext(ctx).Create(coach).Error
}

func (r *coachRepo) GetByID(ctx context.Context, id string) (*model.Coach, error) {
	var coach model.Coach
	err := r.db.WithContext(ctx).
		Where("coach_id = ?", id).
		First(&coach).Error
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepo) List(ctx context.Context) ([]model.Coach, error) {
	var coaches []model.Coach
	err := r.db.WithContext(ctx).Order("name ASC").Find(&coaches).Error
	return coaches, err
}

func (r *coachRepo) Update(ctx context.Context, coach *model.Coach) error {
	return r.db.WithContext(ctx).Save(coach).Error
}

func (r *coachRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Coach{}).
		Where("coach_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("coach_id = ?", id).
		Delete(&model.Coach{}).Error
}
