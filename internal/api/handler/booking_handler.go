package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/service"
	pkgerrors "github.com/zsyayo112/campsite-manage-sub000/pkg/errors"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/response"
)

// BookingHandler 预订模块 HTTP 处理器
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler 创建 BookingHandler
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// SubmitPublic 公开表单提交预订（免登录，挂限流）
// POST /api/v1/public/bookings
func (h *BookingHandler) SubmitPublic(c *gin.Context) {
	var req dto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	booking, err := h.bookingSvc.SubmitPublic(c.Request.Context(), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// CreateBooking 员工录入预订
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// GetBooking 获取预订详情
// GET /api/v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	booking, err := h.bookingSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// ListBookings 预订列表
// GET /api/v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var req dto.BookingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	bookings, total, err := h.bookingSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OKPage(c, bookings, total, req.GetPage(), req.GetPageSize())
}

// UpdateBookingStatus 预订状态变更
// PUT /api/v1/bookings/:id/status
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.UpdateStatus(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// UpdateBookingDeposit 定金变更
// PUT /api/v1/bookings/:id/deposit
func (h *BookingHandler) UpdateBookingDeposit(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	var req dto.UpdateBookingDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.UpdateDeposit(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// ConvertBooking 预订转订单
// POST /api/v1/bookings/:id/convert
func (h *BookingHandler) ConvertBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.bookingSvc.Convert(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, result)
}

// DeleteBooking 删除预订
// DELETE /api/v1/bookings/:id
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.bookingSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleBookingError 统一处理预订模块业务错误
func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 12001, "预订单不存在")
	case errors.Is(err, service.ErrPackageNotFound):
		response.NotFound(c, 14001, "套餐不存在")
	case errors.Is(err, service.ErrPackageInactive):
		response.BadRequest(c, 14002, "套餐已下架")
	case errors.Is(err, service.ErrPackageMinPeople):
		response.BadRequest(c, 14003, "人数未达到套餐最低要求")
	case errors.Is(err, service.ErrBookingStatusInvalid):
		response.BadRequest(c, 12002, "非法的预订状态")
	case errors.Is(err, service.ErrBookingTransition):
		response.BadRequest(c, 12003, "当前状态不允许该变更")
	case errors.Is(err, service.ErrBookingConvertOnly):
		response.BadRequest(c, 12004, "转化请使用专用转化接口")
	case errors.Is(err, service.ErrBookingAlreadyConverted):
		response.Conflict(c, 12005, "预订单已转化为订单")
	case errors.Is(err, service.ErrBookingNotConvertible):
		response.BadRequest(c, 12006, "仅已确认的预订单可转化")
	case errors.Is(err, service.ErrBookingConvertedDelete):
		response.BadRequest(c, 12007, "已转化的预订单不可删除")
	case errors.Is(err, service.ErrDepositNegative):
		response.BadRequest(c, 12008, "定金不能为负数")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 12009, "数据已被其他操作修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/booking_handler.go
