package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
)

// ── 套餐服务测试 ──

func setupTestPackageService() (PackageService, *repository.Repository) {
	repo := newTestRepository()
	return NewPackageService(repo, zap.NewNop()), repo
}

func TestPackageService_Create_Success(t *testing.T) {
	svc, repo := setupTestPackageService()
	project := &model.Project{Name: "皮划艇", Price: dec("100"), IsActive: true}
	_ = repo.Project.Create(context.Background(), project)

	result, err := svc.Create(context.Background(), &dto.CreatePackageRequest{
		Name:       "亲子一日营",
		Price:      dec("398"),
		ChildPrice: dec("298"),
		MinPeople:  2,
		ProjectIDs: []string{project.ProjectID},
	}, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if !result.IsActive {
		t.Error("新建套餐应默认在售")
	}
	if len(result.Items) != 1 || result.Items[0].ProjectID != project.ProjectID {
		t.Errorf("套餐应包含关联活动: %+v", result.Items)
	}
}

func TestPackageService_Create_ProjectNotFound(t *testing.T) {
	svc, _ := setupTestPackageService()

	_, err := svc.Create(context.Background(), &dto.CreatePackageRequest{
		Name:       "亲子一日营",
		Price:      dec("398"),
		ProjectIDs: []string{"nonexistent"},
	}, "admin-001")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("期望 ErrProjectNotFound，实际: %v", err)
	}
}

func TestPackageService_Update_Deactivate(t *testing.T) {
	svc, repo := setupTestPackageService()
	pkg := &model.Package{Name: "亲子一日营", Price: dec("398"), IsActive: true}
	_ = repo.Package.Create(context.Background(), pkg, nil)

	inactive := false
	result, err := svc.Update(context.Background(), pkg.PackageID, &dto.UpdatePackageRequest{
		IsActive: &inactive,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.IsActive {
		t.Error("套餐应已下架")
	}
}

func TestPackageService_List_ActiveOnly(t *testing.T) {
	svc, repo := setupTestPackageService()
	_ = repo.Package.Create(context.Background(), &model.Package{Name: "在售", Price: dec("398"), IsActive: true}, nil)
	_ = repo.Package.Create(context.Background(), &model.Package{Name: "下架", Price: dec("298"), IsActive: false}, nil)

	result, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 1 || result[0].Name != "在售" {
		t.Errorf("activeOnly 应只返回在售套餐: %+v", result)
	}
}

// ── 活动项目服务测试 ──

func setupTestProjectService() (ProjectService, *repository.Repository) {
	repo := newTestRepository()
	return NewProjectService(repo, zap.NewNop()), repo
}

func TestProjectService_Create_InvalidTimeRange(t *testing.T) {
	svc, _ := setupTestProjectService()

	_, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Name:      "皮划艇",
		Price:     dec("100"),
		StartTime: "11:00",
		EndTime:   "09:00",
	}, "admin-001")
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("期望 ErrInvalidTimeRange，实际: %v", err)
	}
}

func TestProjectService_Update_TimeRangeCrossCheck(t *testing.T) {
	svc, repo := setupTestProjectService()
	project := &model.Project{Name: "皮划艇", Price: dec("100"), StartTime: "09:00", EndTime: "11:00", IsActive: true}
	_ = repo.Project.Create(context.Background(), project)

	// 只改开始时间也要跟保留的结束时间交叉校验
	badStart := "12:00"
	_, err := svc.Update(context.Background(), project.ProjectID, &dto.UpdateProjectRequest{
		StartTime: &badStart,
	}, "admin-001")
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("期望 ErrInvalidTimeRange，实际: %v", err)
	}
}

// ── 教练服务测试 ──

func TestCoachService_Create_DefaultOnDuty(t *testing.T) {
	repo := newTestRepository()
	svc := NewCoachService(repo, zap.NewNop())

	result, err := svc.Create(context.Background(), &dto.CreateCoachRequest{Name: "刘教练"}, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Status != model.CoachStatusOnDuty {
		t.Errorf("新建教练应默认在岗，实际=%s", result.Status)
	}
}

func TestCoachService_Update_Status(t *testing.T) {
	repo := newTestRepository()
	svc := NewCoachService(repo, zap.NewNop())
	coach := &model.Coach{Name: "刘教练", Status: model.CoachStatusOnDuty}
	_ = repo.Coach.Create(context.Background(), coach)

	offDuty := model.CoachStatusOffDuty
	result, err := svc.Update(context.Background(), coach.CoachID, &dto.UpdateCoachRequest{
		Status: &offDuty,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Status != model.CoachStatusOffDuty {
		t.Errorf("期望 off_duty，实际=%s", result.Status)
	}
}
