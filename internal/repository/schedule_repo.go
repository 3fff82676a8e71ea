package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	pkgerrors "github.com/zsyayo112/campsite-manage-sub000/pkg/errors"
)

// ScheduleRepository 每日排期数据访问接口
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.DailySchedule) error
	GetByID(ctx context.Context, id string) (*model.DailySchedule, error)
	// ListByDateAndProject 取某日某项目的全部排期（冲突检测用）
	ListByDateAndProject(ctx context.Context, date, projectID string) ([]model.DailySchedule, error)
	// ListByDateAndCoach 取某日某教练的全部排期，跨项目（冲突检测用）
	ListByDateAndCoach(ctx context.Context, date, coachID string) ([]model.DailySchedule, error)
	List(ctx context.Context, date, projectID, coachID string, offset, limit int) ([]model.DailySchedule, int64, error)
	Update(ctx context.Context, schedule *model.DailySchedule) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type scheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.DailySchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.DailySchedule, error) {
	var schedule model.DailySchedule
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Coach").
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) ListByDateAndProject(ctx context.Context, date, projectID string) ([]model.DailySchedule, error) {
	var schedules []model.DailySchedule
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("schedule_date = ? AND project_id = ?", date, projectID).
		Order("start_time ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) ListByDateAndCoach(ctx context.Context, date, coachID string) ([]model.DailySchedule, error) {
	var schedules []model.DailySchedule
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("schedule_date = ? AND coach_id = ?", date, coachID).
		Order("start_time ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) List(ctx context.Context, date, projectID, coachID string, offset, limit int) ([]model.DailySchedule, int64, error) {
	var schedules []model.DailySchedule
	var total int64

	db := r.db.WithContext(ctx).Model(&model.DailySchedule{})
	if date != "" {
		db = db.Where("schedule_date = ?", date)
	}
	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	if coachID != "" {
		db = db.Where("coach_id = ?", coachID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Project").Preload("Coach").
		Offset(offset).Limit(limit).
		Order("schedule_date DESC, start_time ASC").
		Find(&schedules).Error
	return schedules, total, err
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.DailySchedule) error {
	oldVersion := schedule.Version
	result := r.db.WithContext(ctx).
		Model(schedule).
		Where("schedule_id = ? AND version = ?", schedule.ScheduleID, oldVersion).
		Updates(map[string]interface{}{
			"coach_id":          schedule.CoachID,
			"start_time":        schedule.StartTime,
			"end_time":          schedule.EndTime,
			"participant_count": schedule.ParticipantCount,
			"conflict_bypassed": schedule.ConflictBypassed,
			"remark":            schedule.Remark,
			"updated_by":        schedule.UpdatedBy,
			"version":           oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	schedule.Version = oldVersion + 1
	return nil
}

func (r *scheduleRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.DailySchedule{}).
		Where("schedule_id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.DailySchedule{}).Error
}
