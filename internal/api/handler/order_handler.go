package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/service"
	pkgerrors "github.com/zsyayo112/campsite-manage-sub000/pkg/errors"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/response"
)

// OrderHandler 订单模块 HTTP 处理器
type OrderHandler struct {
	orderSvc service.OrderService
}

// NewOrderHandler 创建 OrderHandler
func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// CreateOrder 员工直接开单
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	order, err := h.orderSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.Created(c, order)
}

// GetOrder 获取订单详情
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "订单ID不能为空")
		return
	}

	order, err := h.orderSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, order)
}

// ListOrders 订单列表
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	orders, total, err := h.orderSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OKPage(c, orders, total, req.GetPage(), req.GetPageSize())
}

// UpdateOrderStatus 订单状态变更
// PUT /api/v1/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "订单ID不能为空")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	order, err := h.orderSvc.UpdateStatus(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, order)
}

// UpdateOrderPayment 收款登记
// PUT /api/v1/orders/:id/payment
func (h *OrderHandler) UpdateOrderPayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "订单ID不能为空")
		return
	}

	var req dto.UpdateOrderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	order, err := h.orderSvc.UpdatePayment(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, order)
}

// DeleteOrder 删除订单
// DELETE /api/v1/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "订单ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.orderSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleOrderError 统一处理订单模块业务错误
func (h *OrderHandler) handleOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, 13001, "订单不存在")
	case errors.Is(err, service.ErrOrderStatusInvalid):
		response.BadRequest(c, 13002, "非法的订单状态")
	case errors.Is(err, service.ErrOrderTransition):
		response.BadRequest(c, 13003, "当前订单状态不允许该变更")
	case errors.Is(err, service.ErrOrderDeleteStatus):
		response.BadRequest(c, 13004, "仅待确认或已取消的订单可删除")
	case errors.Is(err, service.ErrPaidNegative):
		response.BadRequest(c, 13005, "已付金额不能为负数")
	case errors.Is(err, service.ErrPaidExceedsTotal):
		response.BadRequest(c, 13006, "已付金额不能超过订单总额")
	case errors.Is(err, service.ErrPaymentFrozen):
		response.BadRequest(c, 13008, "已完成或已取消的订单不可变更收款")
	case errors.Is(err, service.ErrPackageNotFound):
		response.NotFound(c, 14001, "套餐不存在")
	case errors.Is(err, service.ErrPackageInactive):
		response.BadRequest(c, 14002, "套餐已下架")
	case errors.Is(err, service.ErrPackageMinPeople):
		response.BadRequest(c, 14003, "人数未达到套餐最低要求")
	case errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, 14004, "活动项目不存在")
	case errors.Is(err, service.ErrProjectInactive):
		response.BadRequest(c, 14005, "活动项目已停用")
	case errors.Is(err, service.ErrAccommodationNotFound):
		response.NotFound(c, 14006, "住宿点不存在")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 13007, "数据已被其他操作修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/order_handler.go
