package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
)

// ── 套餐服务 ──

// PackageService 套餐目录服务接口
type PackageService interface {
	Create(ctx context.Context, req *dto.CreatePackageRequest, callerID string) (*dto.PackageResponse, error)
	Get(ctx context.Context, id string) (*dto.PackageResponse, error)
	// List activeOnly 为 true 时只返回在售套餐（公开接口用）
	List(ctx context.Context, activeOnly bool) ([]dto.PackageResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePackageRequest, callerID string) (*dto.PackageResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type packageService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPackageService 创建套餐服务
func NewPackageService(repo *repository.Repository, logger *zap.Logger) PackageService {
	return &packageService{repo: repo, logger: logger}
}

func (s *packageService) Create(ctx context.Context, req *dto.CreatePackageRequest, callerID string) (*dto.PackageResponse, error) {
	// 关联的活动必须先存在
	items := make([]model.PackageItem, 0, len(req.ProjectIDs))
	for _, projectID := range req.ProjectIDs {
		if _, err := s.repo.Project.GetByID(ctx, projectID); err != nil {
			if isNotFound(err) {
				return nil, ErrProjectNotFound
			}
			return nil, err
		}
		items = append(items, model.PackageItem{ProjectID: projectID, Quantity: 1})
	}

	pkg := &model.Package{
		Name:           req.Name,
		Price:          req.Price,
		ChildPrice:     req.ChildPrice,
		SpecialPricing: req.SpecialPricing,
		MinPeople:      req.MinPeople,
		IsActive:       true,
		Description:    req.Description,
	}
	pkg.CreatedBy = strPtr(callerID)
	if err := s.repo.Package.Create(ctx, pkg, items); err != nil {
		return nil, err
	}
	pkg.Items = items

	s.logger.Info("套餐已创建", zap.String("name", pkg.Name))
	return toPackageResponse(pkg), nil
}

func (s *packageService) Get(ctx context.Context, id string) (*dto.PackageResponse, error) {
	pkg, err := s.repo.Package.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return toPackageResponse(pkg), nil
}

func (s *packageService) List(ctx context.Context, activeOnly bool) ([]dto.PackageResponse, error) {
	pkgs, err := s.repo.Package.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PackageResponse, 0, len(pkgs))
	for i := range pkgs {
		resp = append(resp, *toPackageResponse(&pkgs[i]))
	}
	return resp, nil
}

func (s *packageService) Update(ctx context.Context, id string, req *dto.UpdatePackageRequest, callerID string) (*dto.PackageResponse, error) {
	pkg, err := s.repo.Package.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.ChildPrice != nil {
		pkg.ChildPrice = *req.ChildPrice
	}
	if req.SpecialPricing != nil {
		pkg.SpecialPricing = *req.SpecialPricing
	}
	if req.MinPeople != nil {
		pkg.MinPeople = *req.MinPeople
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	pkg.UpdatedBy = strPtr(callerID)

	if err := s.repo.Package.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return toPackageResponse(pkg), nil
}

func (s *packageService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Package.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrPackageNotFound
		}
		return err
	}
	// 历史预订/订单持有价格快照，下架删除不影响已生成单据
	return s.repo.Package.Delete(ctx, id, callerID)
}

// ── 活动项目服务 ──

// ProjectService 活动项目服务接口
type ProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest, callerID string) (*dto.ProjectResponse, error)
	Get(ctx context.Context, id string) (*dto.ProjectResponse, error)
	List(ctx context.Context, activeOnly bool) ([]dto.ProjectResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, callerID string) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type projectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectService 创建活动项目服务
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest, callerID string) (*dto.ProjectResponse, error) {
	if req.StartTime != "" && req.EndTime != "" && req.EndTime <= req.StartTime {
		return nil, ErrInvalidTimeRange
	}

	project := &model.Project{
		Name:       req.Name,
		Price:      req.Price,
		ChildPrice: req.ChildPrice,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Capacity:   req.Capacity,
		IsActive:   true,
	}
	project.CreatedBy = strPtr(callerID)
	if err := s.repo.Project.Create(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Get(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context, activeOnly bool) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.Project.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, *toProjectResponse(&projects[i]))
	}
	return resp, nil
}

func (s *projectService) Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, callerID string) (*dto.ProjectResponse, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Price != nil {
		project.Price = *req.Price
	}
	if req.ChildPrice != nil {
		project.ChildPrice = *req.ChildPrice
	}
	if req.StartTime != nil {
		project.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		project.EndTime = *req.EndTime
	}
	if project.StartTime != "" && project.EndTime != "" && project.EndTime <= project.StartTime {
		return nil, ErrInvalidTimeRange
	}
	if req.Capacity != nil {
		project.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	project.UpdatedBy = strPtr(callerID)

	if err := s.repo.Project.Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Project.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrProjectNotFound
		}
		return err
	}
	return s.repo.Project.Delete(ctx, id, callerID)
}

// ── 教练服务 ──

// CoachService 教练服务接口
type CoachService interface {
	Create(ctx context.Context, req *dto.CreateCoachRequest, callerID string) (*dto.CoachResponse, error)
	List(ctx context.Context) ([]dto.CoachResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCoachRequest, callerID string) (*dto.CoachResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type coachService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCoachService 创建教练服务
func NewCoachService(repo *repository.Repository, logger *zap.Logger) CoachService {
	return &coachService{repo: repo, logger: logger}
}

func (s *coachService) Create(ctx context.Context, req *dto.CreateCoachRequest, callerID string) (*dto.CoachResponse, error) {
	coach := &model.Coach{
		Name:      req.Name,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Status:    model.CoachStatusOnDuty,
	}
	coach.CreatedBy = strPtr(callerID)
	if err := s.repo.Coach.Create(ctx, coach); err != nil {
		return nil, err
	}
	return toCoachResponse(coach), nil
}

func (s *coachService) List(ctx context.Context) ([]dto.CoachResponse, error) {
	coaches, err := s.repo.Coach.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CoachResponse, 0, len(coaches))
	for i := range coaches {
		resp = append(resp, *toCoachResponse(&coaches[i]))
	}
	return resp, nil
}

func (s *coachService) Update(ctx context.Context, id string, req *dto.UpdateCoachRequest, callerID string) (*dto.CoachResponse, error) {
	coach, err := s.repo.Coach.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		coach.Name = *req.Name
	}
	if req.Phone != nil {
		coach.Phone = *req.Phone
	}
	if req.Specialty != nil {
		coach.Specialty = *req.Specialty
	}
	if req.Status != nil {
		coach.Status = *req.Status
	}
	coach.UpdatedBy = strPtr(callerID)

	if err := s.repo.Coach.Update(ctx, coach); err != nil {
		return nil, err
	}
	return toCoachResponse(coach), nil
}

func (s *coachService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Coach.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrCoachNotFound
		}
		return err
	}
	return s.repo.Coach.Delete(ctx, id, callerID)
}

// ── 响应映射 ──

func toPackageBrief(pkg *model.Package) *dto.PackageBrief {
	return &dto.PackageBrief{
		ID:         pkg.PackageID,
		Name:       pkg.Name,
		Price:      pkg.Price.StringFixed(2),
		ChildPrice: pkg.ChildPrice.StringFixed(2),
	}
}

func toAccommodationBrief(acc *model.Accommodation) *dto.AccommodationBrief {
	return &dto.AccommodationBrief{
		ID:   acc.AccommodationID,
		Name: acc.Name,
		Type: acc.Type,
	}
}

func toPackageResponse(pkg *model.Package) *dto.PackageResponse {
	resp := &dto.PackageResponse{
		ID:             pkg.PackageID,
		Name:           pkg.Name,
		Price:          pkg.Price.StringFixed(2),
		ChildPrice:     pkg.ChildPrice.StringFixed(2),
		SpecialPricing: pkg.SpecialPricing,
		MinPeople:      pkg.MinPeople,
		IsActive:       pkg.IsActive,
		Description:    pkg.Description,
	}
	for i := range pkg.Items {
		item := &pkg.Items[i]
		ir := dto.PackageItemResponse{ProjectID: item.ProjectID, Quantity: item.Quantity}
		if item.Project != nil {
			ir.ProjectName = item.Project.Name
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}

func toProjectResponse(project *model.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:         project.ProjectID,
		Name:       project.Name,
		Price:      project.Price.StringFixed(2),
		ChildPrice: project.ChildPrice.StringFixed(2),
		StartTime:  project.StartTime,
		EndTime:    project.EndTime,
		Capacity:   project.Capacity,
		IsActive:   project.IsActive,
	}
}

func toCoachResponse(coach *model.Coach) *dto.CoachResponse {
	return &dto.CoachResponse{
		ID:        coach.CoachID,
		Name:      coach.Name,
		Phone:     coach.Phone,
		Specialty: coach.Specialty,
		Status:    coach.Status,
	}
}

// [自证通过] internal/service/catalog_service.go
