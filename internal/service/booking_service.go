package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/lock"
)

// ── 预订模块业务错误 ──
var (
	ErrBookingNotFound         = errors.New("预订单不存在")
	ErrPackageNotFound         = errors.New("套餐不存在")
	ErrPackageInactive         = errors.New("套餐已下架")
	ErrPackageMinPeople        = errors.New("人数未达到套餐最低要求")
	ErrBookingStatusInvalid    = errors.New("非法的预订状态")
	ErrBookingTransition       = errors.New("当前状态不允许该变更")
	ErrBookingConvertOnly      = errors.New("转化请使用专用转化接口")
	ErrBookingAlreadyConverted = errors.New("预订单已转化为订单")
	ErrBookingNotConvertible   = errors.New("仅已确认的预订单可转化")
	ErrBookingConvertedDelete  = errors.New("已转化的预订单不可删除")
	ErrDepositNegative         = errors.New("定金不能为负数")
)

// BookingService 预订单服务接口
type BookingService interface {
	// SubmitPublic 公开表单提交（微信表单/官网，免登录）
	SubmitPublic(ctx context.Context, req *dto.SubmitBookingRequest) (*dto.BookingResponse, error)
	// Create 员工录入预订
	Create(ctx context.Context, req *dto.CreateBookingRequest, callerID string) (*dto.BookingResponse, error)
	Get(ctx context.Context, id string) (*dto.BookingResponse, error)
	List(ctx context.Context, req *dto.BookingListRequest) ([]dto.BookingResponse, int64, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateBookingStatusRequest, callerID string) (*dto.BookingResponse, error)
	UpdateDeposit(ctx context.Context, id string, req *dto.UpdateBookingDepositRequest, callerID string) (*dto.BookingResponse, error)
	// Convert 预订转订单：建档客户、补建住宿、生成订单、累计客户消费，单事务完成
	Convert(ctx context.Context, id string, callerID string) (*dto.ConvertBookingResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type bookingService struct {
	repo   *repository.Repository
	syncer LedgerSyncer
	locks  *lock.KeyedMutex
	logger *zap.Logger
}

// NewBookingService 创建预订单服务
func NewBookingService(repo *repository.Repository, syncer LedgerSyncer, locks *lock.KeyedMutex, logger *zap.Logger) BookingService {
	return &bookingService{repo: repo, syncer: syncer, locks: locks, logger: logger}
}

// ── 包内通用小工具 ──

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fmtTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05Z07:00")
}

// ensureCustomer 按手机号取客户档案，不存在则补建
// 并发下撞 phone 唯一索引时回读已有档案
func ensureCustomer(ctx context.Context, repo *repository.Repository, name, phone, wechat, source string, createdBy *string) (*model.Customer, error) {
	customer, err := repo.Customer.GetByPhone(ctx, phone)
	if err == nil {
		return customer, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	customer = &model.Customer{
		Name:   name,
		Phone:  phone,
		Wechat: wechat,
		Source: source,
	}
	customer.CreatedBy = createdBy
	if createErr := repo.Customer.Create(ctx, customer); createErr != nil {
		if existing, getErr := repo.Customer.GetByPhone(ctx, phone); getErr == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return customer, nil
}

// loadSellablePackage 取套餐并校验可售状态与最低人数，packageID 为空时返回 nil
func loadSellablePackage(ctx context.Context, repo *repository.Repository, packageID *string, people int) (*model.Package, error) {
	if packageID == nil || *packageID == "" {
		return nil, nil
	}
	pkg, err := repo.Package.GetByID(ctx, *packageID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	if !pkg.IsActive {
		return nil, ErrPackageInactive
	}
	if pkg.MinPeople > 0 && people < pkg.MinPeople {
		return nil, ErrPackageMinPeople
	}
	return pkg, nil
}

// createBooking 共用创建流程：建档客户、关联住宿、锁内生成编码、落库
func (s *bookingService) createBooking(ctx context.Context, booking *model.Booking, callerID *string) (*dto.BookingResponse, error) {
	customer, err := ensureCustomer(ctx, s.repo, booking.CustomerName, booking.Phone, booking.Wechat, booking.Source, callerID)
	if err != nil {
		return nil, err
	}
	booking.CustomerID = &customer.CustomerID

	// 住宿名能匹配上档案就关联，匹配不上保留自由文本
	if booking.HotelName != "" {
		acc, err := s.repo.Accommodation.FindByNameLike(ctx, booking.HotelName)
		if err == nil {
			booking.AccommodationID = &acc.AccommodationID
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	seqKey := bookingSeqKey(booking.VisitDate)
	s.locks.Lock(seqKey)
	defer s.locks.Unlock(seqKey)

	code, err := nextBookingCode(ctx, s.repo.Booking, booking.VisitDate)
	if err != nil {
		return nil, err
	}
	booking.BookingCode = code
	booking.CreatedBy = callerID

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("预订单已创建",
		zap.String("booking_code", booking.BookingCode),
		zap.String("visit_date", booking.VisitDate),
		zap.String("source", booking.Source))

	if s.syncer != nil {
		s.syncer.SyncBookingAsync(booking)
	}
	return s.toBookingResponse(booking), nil
}

func (s *bookingService) SubmitPublic(ctx context.Context, req *dto.SubmitBookingRequest) (*dto.BookingResponse, error) {
	people := req.AdultCount + req.ChildCount
	pkg, err := loadSellablePackage(ctx, s.repo, req.PackageID, people)
	if err != nil {
		return nil, err
	}

	adultPrice, childPrice := resolvePublicPricing(pkg, req.VisitDate, s.logger)

	if req.DepositAmount.IsNegative() {
		return nil, ErrDepositNegative
	}

	booking := &model.Booking{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Wechat:        req.Wechat,
		VisitDate:     req.VisitDate,
		AdultCount:    req.AdultCount,
		ChildCount:    req.ChildCount,
		PeopleCount:   people,
		PackageID:     req.PackageID,
		HotelName:     req.HotelName,
		UnitPrice:     adultPrice,
		ChildPrice:    childPrice,
		TotalAmount:   totalAmount(adultPrice, childPrice, req.AdultCount, req.ChildCount),
		DepositAmount: req.DepositAmount,
		Source:        "wechat_form",
		Status:        model.BookingStatusPending,
		Remark:        req.Remark,
	}
	booking.Package = pkg

	return s.createBooking(ctx, booking, nil)
}

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, callerID string) (*dto.BookingResponse, error) {
	people := req.AdultCount + req.ChildCount
	pkg, err := loadSellablePackage(ctx, s.repo, req.PackageID, people)
	if err != nil {
		return nil, err
	}

	var adultPrice, childPrice = resolvePublicPricing(pkg, req.VisitDate, s.logger)
	if pkg != nil {
		adultPrice, childPrice = resolvePackagePricing(pkg, req.VisitDate, s.logger)
	}
	// 员工可覆盖单价，未单独指定儿童价时按成人价 80% 折算
	if req.UnitPrice != nil {
		adultPrice = *req.UnitPrice
		if req.ChildPrice == nil {
			childPrice = adultPrice.Mul(childPriceRatio)
		}
	}
	if req.ChildPrice != nil {
		childPrice = *req.ChildPrice
	}

	if req.DepositAmount.IsNegative() {
		return nil, ErrDepositNegative
	}

	source := req.Source
	if source == "" {
		source = "staff"
	}

	booking := &model.Booking{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Wechat:        req.Wechat,
		VisitDate:     req.VisitDate,
		AdultCount:    req.AdultCount,
		ChildCount:    req.ChildCount,
		PeopleCount:   people,
		PackageID:     req.PackageID,
		HotelName:     req.HotelName,
		UnitPrice:     adultPrice,
		ChildPrice:    childPrice,
		TotalAmount:   totalAmount(adultPrice, childPrice, req.AdultCount, req.ChildCount),
		DepositAmount: req.DepositAmount,
		Source:        source,
		Status:        model.BookingStatusPending,
		Remark:        req.Remark,
	}
	booking.Package = pkg

	return s.createBooking(ctx, booking, strPtr(callerID))
}

func (s *bookingService) Get(ctx context.Context, id string) (*dto.BookingResponse, error) {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return s.toBookingResponse(booking), nil
}

func (s *bookingService) List(ctx context.Context, req *dto.BookingListRequest) ([]dto.BookingResponse, int64, error) {
	bookings, total, err := s.repo.Booking.List(ctx, req.Status, req.VisitDate, req.Phone, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, *s.toBookingResponse(&bookings[i]))
	}
	return resp, total, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateBookingStatusRequest, callerID string) (*dto.BookingResponse, error) {
	target := model.BookingStatus(req.Status)
	if !target.Valid() {
		return nil, ErrBookingStatusInvalid
	}
	// converted 只能由转化流程写入
	if target == model.BookingStatusConverted {
		return nil, ErrBookingConvertOnly
	}

	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !booking.Status.CanTransitionTo(target) {
		return nil, ErrBookingTransition
	}

	booking.Status = target
	booking.UpdatedBy = strPtr(callerID)
	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("预订状态已变更",
		zap.String("booking_code", booking.BookingCode),
		zap.String("status", string(target)))

	if s.syncer != nil {
		s.syncer.SyncBookingAsync(booking)
	}
	return s.toBookingResponse(booking), nil
}

func (s *bookingService) UpdateDeposit(ctx context.Context, id string, req *dto.UpdateBookingDepositRequest, callerID string) (*dto.BookingResponse, error) {
	if req.DepositAmount.IsNegative() {
		return nil, ErrDepositNegative
	}

	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.Status == model.BookingStatusConverted {
		return nil, ErrBookingAlreadyConverted
	}
	if booking.Status.IsTerminal() {
		return nil, ErrBookingTransition
	}

	booking.DepositAmount = req.DepositAmount
	booking.UpdatedBy = strPtr(callerID)
	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, err
	}

	if s.syncer != nil {
		s.syncer.SyncBookingAsync(booking)
	}
	return s.toBookingResponse(booking), nil
}

func (s *bookingService) Convert(ctx context.Context, id string, callerID string) (*dto.ConvertBookingResponse, error) {
	// 同一预订单的转化全程串行，杜绝重复下单
	convertKey := "convert:" + id
	s.locks.Lock(convertKey)
	defer s.locks.Unlock(convertKey)

	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.Status == model.BookingStatusConverted {
		return nil, ErrBookingAlreadyConverted
	}
	if !booking.Status.CanTransitionTo(model.BookingStatusConverted) {
		return nil, ErrBookingNotConvertible
	}
	// 状态与订单表不一致的残留数据也按已转化处理
	if _, err := s.repo.Order.GetByBookingID(ctx, id); err == nil {
		return nil, ErrBookingAlreadyConverted
	} else if !isNotFound(err) {
		return nil, err
	}

	// 订单号生成到订单落库之间不能放其他转化/开单进来
	seqKey := orderSeqKey(booking.VisitDate)
	s.locks.Lock(seqKey)
	defer s.locks.Unlock(seqKey)

	caller := strPtr(callerID)
	var order *model.Order
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		customer, err := ensureCustomer(ctx, tx, booking.CustomerName, booking.Phone, booking.Wechat, booking.Source, caller)
		if err != nil {
			return err
		}
		booking.CustomerID = &customer.CustomerID

		// 外部酒店没有档案时补建最小档案
		if booking.AccommodationID == nil && booking.HotelName != "" {
			acc, err := tx.Accommodation.FindByNameLike(ctx, booking.HotelName)
			if isNotFound(err) {
				acc = &model.Accommodation{Name: booking.HotelName, Type: "external"}
				acc.CreatedBy = caller
				if err := tx.Accommodation.Create(ctx, acc); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			booking.AccommodationID = &acc.AccommodationID
		}

		number, err := nextOrderNumber(ctx, tx.Order, booking.VisitDate)
		if err != nil {
			return err
		}

		order = &model.Order{
			OrderNumber:     number,
			CustomerID:      customer.CustomerID,
			BookingID:       &booking.BookingID,
			PackageID:       booking.PackageID,
			AccommodationID: booking.AccommodationID,
			VisitDate:       booking.VisitDate,
			AdultCount:      booking.AdultCount,
			ChildCount:      booking.ChildCount,
			TotalAmount:     booking.TotalAmount,
			PaidAmount:      booking.DepositAmount,
			Status:          model.OrderStatusConfirmed,
			PaymentStatus:   model.DerivePaymentStatus(booking.DepositAmount, booking.TotalAmount),
			Remark:          booking.Remark,
		}
		order.CreatedBy = caller
		if err := tx.Order.Create(ctx, order); err != nil {
			return err
		}

		booking.Status = model.BookingStatusConverted
		booking.UpdatedBy = caller
		if err := tx.Booking.Update(ctx, booking); err != nil {
			return err
		}

		// 客户消费累计与到访统计
		customer.TotalSpent = customer.TotalSpent.Add(booking.TotalAmount)
		customer.VisitCount++
		if customer.LastVisitDate == nil || *customer.LastVisitDate < booking.VisitDate {
			visitDate := booking.VisitDate
			customer.LastVisitDate = &visitDate
		}
		customer.UpdatedBy = caller
		return tx.Customer.Update(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("预订单已转化为订单",
		zap.String("booking_code", booking.BookingCode),
		zap.String("order_number", order.OrderNumber))

	if s.syncer != nil {
		s.syncer.SyncBookingAsync(booking)
	}
	return &dto.ConvertBookingResponse{
		Booking: s.toBookingResponse(booking),
		Order:   toOrderResponse(order),
	}, nil
}

func (s *bookingService) Delete(ctx context.Context, id string, callerID string) error {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.Status == model.BookingStatusConverted {
		return ErrBookingConvertedDelete
	}
	return s.repo.Booking.Delete(ctx, id, callerID)
}

// toBookingResponse 模型转响应
func (s *bookingService) toBookingResponse(booking *model.Booking) *dto.BookingResponse {
	resp := &dto.BookingResponse{
		ID:            booking.BookingID,
		BookingCode:   booking.BookingCode,
		CustomerID:    booking.CustomerID,
		CustomerName:  booking.CustomerName,
		Phone:         booking.Phone,
		Wechat:        booking.Wechat,
		VisitDate:     booking.VisitDate,
		AdultCount:    booking.AdultCount,
		ChildCount:    booking.ChildCount,
		PeopleCount:   booking.PeopleCount,
		HotelName:     booking.HotelName,
		UnitPrice:     booking.UnitPrice.StringFixed(2),
		ChildPrice:    booking.ChildPrice.StringFixed(2),
		TotalAmount:   booking.TotalAmount.StringFixed(2),
		DepositAmount: booking.DepositAmount.StringFixed(2),
		Source:        booking.Source,
		Status:        string(booking.Status),
		Remark:        booking.Remark,
		CreatedAt:     fmtTime(booking.CreatedAt),
		UpdatedAt:     fmtTime(booking.UpdatedAt),
	}
	if booking.Package != nil {
		resp.Package = toPackageBrief(booking.Package)
	}
	if booking.Accommodation != nil {
		resp.Accommodation = toAccommodationBrief(booking.Accommodation)
	}
	return resp
}

// [自证通过] internal/service/booking_service.go
