package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/lock"
)

// ── 订单模块业务错误 ──
var (
	ErrOrderNotFound      = errors.New("订单不存在")
	ErrOrderStatusInvalid = errors.New("非法的订单状态")
	ErrOrderTransition    = errors.New("当前订单状态不允许该变更")
	ErrOrderDeleteStatus  = errors.New("仅待确认或已取消的订单可删除")
	ErrProjectNotFound    = errors.New("活动项目不存在")
	ErrProjectInactive    = errors.New("活动项目已停用")
	ErrPaidNegative       = errors.New("已付金额不能为负数")
	ErrPaidExceedsTotal   = errors.New("已付金额不能超过订单总额")
	ErrPaymentFrozen      = errors.New("已完成或已取消的订单不可变更收款")

	ErrAccommodationNotFound = errors.New("住宿点不存在")
)

// OrderService 订单服务接口
type OrderService interface {
	// Create 员工直接开单（不经预订单）
	Create(ctx context.Context, req *dto.CreateOrderRequest, callerID string) (*dto.OrderResponse, error)
	Get(ctx context.Context, id string) (*dto.OrderResponse, error)
	List(ctx context.Context, req *dto.OrderListRequest) ([]dto.OrderResponse, int64, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest, callerID string) (*dto.OrderResponse, error)
	// UpdatePayment 收款登记，支付状态按金额推导
	UpdatePayment(ctx context.Context, id string, req *dto.UpdateOrderPaymentRequest, callerID string) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type orderService struct {
	repo   *repository.Repository
	syncer LedgerSyncer
	locks  *lock.KeyedMutex
	logger *zap.Logger
}

// NewOrderService 创建订单服务
func NewOrderService(repo *repository.Repository, syncer LedgerSyncer, locks *lock.KeyedMutex, logger *zap.Logger) OrderService {
	return &orderService{repo: repo, syncer: syncer, locks: locks, logger: logger}
}

func (s *orderService) Create(ctx context.Context, req *dto.CreateOrderRequest, callerID string) (*dto.OrderResponse, error) {
	people := req.AdultCount + req.ChildCount
	pkg, err := loadSellablePackage(ctx, s.repo, req.PackageID, people)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	if pkg != nil {
		adultPrice, childPrice := resolvePackagePricing(pkg, req.VisitDate, s.logger)
		total = totalAmount(adultPrice, childPrice, req.AdultCount, req.ChildCount)
	}

	// 活动明细逐条取目录价，允许单条覆盖
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		project, err := s.repo.Project.GetByID(ctx, item.ProjectID)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrProjectNotFound
			}
			return nil, err
		}
		if !project.IsActive {
			return nil, ErrProjectInactive
		}
		unitPrice := project.Price
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		items = append(items, model.OrderItem{
			ProjectID: item.ProjectID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
	}

	if req.PaidAmount.IsNegative() {
		return nil, ErrPaidNegative
	}
	if req.PaidAmount.GreaterThan(total) {
		return nil, ErrPaidExceedsTotal
	}

	if req.AccommodationID != nil {
		if _, err := s.repo.Accommodation.GetByID(ctx, *req.AccommodationID); err != nil {
			if isNotFound(err) {
				return nil, ErrAccommodationNotFound
			}
			return nil, err
		}
	}

	// 订单号生成到落库提交之间持锁
	seqKey := orderSeqKey(req.VisitDate)
	s.locks.Lock(seqKey)
	defer s.locks.Unlock(seqKey)

	caller := strPtr(callerID)
	var order *model.Order
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		customer, err := ensureCustomer(ctx, tx, req.CustomerName, req.Phone, "", "staff", caller)
		if err != nil {
			return err
		}

		number, err := nextOrderNumber(ctx, tx.Order, req.VisitDate)
		if err != nil {
			return err
		}

		order = &model.Order{
			OrderNumber:     number,
			CustomerID:      customer.CustomerID,
			PackageID:       req.PackageID,
			AccommodationID: req.AccommodationID,
			VisitDate:       req.VisitDate,
			AdultCount:      req.AdultCount,
			ChildCount:      req.ChildCount,
			TotalAmount:     total,
			PaidAmount:      req.PaidAmount,
			Status:          model.OrderStatusPending,
			PaymentStatus:   model.DerivePaymentStatus(req.PaidAmount, total),
			Remark:          req.Remark,
			Items:           items,
		}
		order.CreatedBy = caller
		if err := tx.Order.Create(ctx, order); err != nil {
			return err
		}

		// 直接开单同样计入客户消费与到访
		customer.TotalSpent = customer.TotalSpent.Add(total)
		customer.VisitCount++
		if customer.LastVisitDate == nil || *customer.LastVisitDate < req.VisitDate {
			visitDate := req.VisitDate
			customer.LastVisitDate = &visitDate
		}
		customer.UpdatedBy = caller
		return tx.Customer.Update(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("订单已创建",
		zap.String("order_number", order.OrderNumber),
		zap.String("visit_date", order.VisitDate))
	return toOrderResponse(order), nil
}

func (s *orderService) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (s *orderService) List(ctx context.Context, req *dto.OrderListRequest) ([]dto.OrderResponse, int64, error) {
	orders, total, err := s.repo.Order.List(ctx, req.Status, req.PaymentStatus, req.VisitDate, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, *toOrderResponse(&orders[i]))
	}
	return resp, total, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest, callerID string) (*dto.OrderResponse, error) {
	target := model.OrderStatus(req.Status)
	if !target.Valid() {
		return nil, ErrOrderStatusInvalid
	}

	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, ErrOrderTransition
	}

	order.Status = target
	order.UpdatedBy = strPtr(callerID)
	if err := s.repo.Order.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("订单状态已变更",
		zap.String("order_number", order.OrderNumber),
		zap.String("status", string(target)))

	s.syncLinkedBooking(ctx, order)
	return toOrderResponse(order), nil
}

func (s *orderService) UpdatePayment(ctx context.Context, id string, req *dto.UpdateOrderPaymentRequest, callerID string) (*dto.OrderResponse, error) {
	if req.PaidAmount.IsNegative() {
		return nil, ErrPaidNegative
	}

	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	// 终态订单收款冻结：已完成订单只剩取消一条出路，已取消订单不再动账
	if order.Status == model.OrderStatusCompleted || order.Status == model.OrderStatusCancelled {
		return nil, ErrPaymentFrozen
	}
	if req.PaidAmount.GreaterThan(order.TotalAmount) {
		return nil, ErrPaidExceedsTotal
	}

	order.PaidAmount = req.PaidAmount
	order.PaymentStatus = model.DerivePaymentStatus(req.PaidAmount, order.TotalAmount)
	order.UpdatedBy = strPtr(callerID)
	if err := s.repo.Order.Update(ctx, order); err != nil {
		return nil, err
	}

	s.syncLinkedBooking(ctx, order)
	return toOrderResponse(order), nil
}

func (s *orderService) Delete(ctx context.Context, id string, callerID string) error {
	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.Status != model.OrderStatusPending && order.Status != model.OrderStatusCancelled {
		return ErrOrderDeleteStatus
	}

	caller := strPtr(callerID)
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		// 回冲客户消费累计，下限为零
		customer, err := tx.Customer.GetByID(ctx, order.CustomerID)
		if err == nil {
			customer.TotalSpent = customer.TotalSpent.Sub(order.TotalAmount)
			if customer.TotalSpent.IsNegative() {
				customer.TotalSpent = decimal.Zero
			}
			if customer.VisitCount > 0 {
				customer.VisitCount--
			}
			customer.UpdatedBy = caller
			if err := tx.Customer.Update(ctx, customer); err != nil {
				return err
			}
		} else if !isNotFound(err) {
			return err
		}
		return tx.Order.Delete(ctx, id, callerID)
	})
}

// syncLinkedBooking 订单由预订单转化而来时，把状态与收款同步到旧台账
func (s *orderService) syncLinkedBooking(ctx context.Context, order *model.Order) {
	if s.syncer == nil || order.BookingID == nil {
		return
	}
	booking, err := s.repo.Booking.GetByID(ctx, *order.BookingID)
	if err != nil {
		s.logger.Warn("同步旧台账时回查预订单失败",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
		return
	}
	s.syncer.SyncOrderStatusAsync(booking.BookingCode, order.Status, order.PaidAmount)
}

// toOrderResponse 模型转响应
func toOrderResponse(order *model.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            order.OrderID,
		OrderNumber:   order.OrderNumber,
		CustomerID:    order.CustomerID,
		BookingID:     order.BookingID,
		VisitDate:     order.VisitDate,
		AdultCount:    order.AdultCount,
		ChildCount:    order.ChildCount,
		TotalAmount:   order.TotalAmount.StringFixed(2),
		PaidAmount:    order.PaidAmount.StringFixed(2),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Remark:        order.Remark,
		CreatedAt:     fmtTime(order.CreatedAt),
		UpdatedAt:     fmtTime(order.UpdatedAt),
	}
	if order.Package != nil {
		resp.Package = toPackageBrief(order.Package)
	}
	if order.Accommodation != nil {
		resp.Accommodation = toAccommodationBrief(order.Accommodation)
	}
	for i := range order.Items {
		item := &order.Items[i]
		ir := dto.OrderItemResponse{
			ID:        item.OrderItemID,
			ProjectID: item.ProjectID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal.StringFixed(2),
		}
		if item.Project != nil {
			ir.ProjectName = item.Project.Name
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}

// [自证通过] internal/service/order_service.go
