package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/service"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/response"
)

// CatalogHandler 套餐/活动/教练目录 HTTP 处理器
type CatalogHandler struct {
	packageSvc service.PackageService
	projectSvc service.ProjectService
	coachSvc   service.CoachService
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(packageSvc service.PackageService, projectSvc service.ProjectService, coachSvc service.CoachService) *CatalogHandler {
	return &CatalogHandler{packageSvc: packageSvc, projectSvc: projectSvc, coachSvc: coachSvc}
}

// ── 套餐 ──

// ListPublicPackages 公开套餐列表（只含在售，免登录）
// GET /api/v1/public/packages
func (h *CatalogHandler) ListPublicPackages(c *gin.Context) {
	pkgs, err := h.packageSvc.List(c.Request.Context(), true)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"list": pkgs})
}

// ListPackages 套餐列表（员工端，含下架）
// GET /api/v1/packages
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.packageSvc.List(c.Request.Context(), false)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"list": pkgs})
}

// GetPackage 获取套餐详情
// GET /api/v1/packages/:id
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "套餐ID不能为空")
		return
	}

	pkg, err := h.packageSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, pkg)
}

// CreatePackage 创建套餐
// POST /api/v1/packages
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	pkg, err := h.packageSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.Created(c, pkg)
}

// UpdatePackage 更新套餐
// PUT /api/v1/packages/:id
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "套餐ID不能为空")
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	pkg, err := h.packageSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, pkg)
}

// DeletePackage 删除套餐
// DELETE /api/v1/packages/:id
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "套餐ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.packageSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── 活动项目 ──

// ListProjects 活动项目列表
// GET /api/v1/projects
func (h *CatalogHandler) ListProjects(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"
	projects, err := h.projectSvc.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"list": projects})
}

// GetProject 获取活动项目详情
// GET /api/v1/projects/:id
func (h *CatalogHandler) GetProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "项目ID不能为空")
		return
	}

	project, err := h.projectSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, project)
}

// CreateProject 创建活动项目
// POST /api/v1/projects
func (h *CatalogHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.Created(c, project)
}

// UpdateProject 更新活动项目
// PUT /api/v1/projects/:id
func (h *CatalogHandler) UpdateProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "项目ID不能为空")
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	project, err := h.projectSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, project)
}

// DeleteProject 删除活动项目
// DELETE /api/v1/projects/:id
func (h *CatalogHandler) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "项目ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.projectSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── 教练 ──

// ListCoaches 教练列表
// GET /api/v1/coaches
func (h *CatalogHandler) ListCoaches(c *gin.Context) {
	coaches, err := h.coachSvc.List(c.Request.Context())
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"list": coaches})
}

// CreateCoach 创建教练
// POST /api/v1/coaches
func (h *CatalogHandler) CreateCoach(c *gin.Context) {
	var req dto.CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	coach, err := h.coachSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.Created(c, coach)
}

// UpdateCoach 更新教练
// PUT /api/v1/coaches/:id
func (h *CatalogHandler) UpdateCoach(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教练ID不能为空")
		return
	}

	var req dto.UpdateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	coach, err := h.coachSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, coach)
}

// DeleteCoach 删除教练
// DELETE /api/v1/coaches/:id
func (h *CatalogHandler) DeleteCoach(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教练ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.coachSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleCatalogError 统一处理目录模块业务错误
func (h *CatalogHandler) handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPackageNotFound):
		response.NotFound(c, 14001, "套餐不存在")
	case errors.Is(err, service.ErrPackageInactive):
		response.BadRequest(c, 14002, "套餐已下架")
	case errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, 14004, "活动项目不存在")
	case errors.Is(err, service.ErrProjectInactive):
		response.BadRequest(c, 14005, "活动项目已停用")
	case errors.Is(err, service.ErrCoachNotFound):
		response.NotFound(c, 14007, "教练不存在")
	case errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, 15002, "结束时间必须晚于开始时间")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/catalog_handler.go
