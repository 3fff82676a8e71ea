package dto

import "github.com/shopspring/decimal"

// ── 预订模块请求 ──

// SubmitBookingRequest 公开表单提交预订请求（微信表单/官网）
type SubmitBookingRequest struct {
	CustomerName string          `json:"customer_name" binding:"required,min=1,max=50"`
	Phone        string          `json:"phone"         binding:"required,min=5,max=20"`
	Wechat       string          `json:"wechat"        binding:"omitempty,max=50"`
	VisitDate    string          `json:"visit_date"    binding:"required,datetime=2006-01-02"`
	AdultCount   int             `json:"adult_count"   binding:"required,min=1"`
	ChildCount   int             `json:"child_count"   binding:"omitempty,min=0"`
	PackageID    *string         `json:"package_id"    binding:"omitempty,uuid"`
	HotelName    string          `json:"hotel_name"    binding:"omitempty,max=100"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	Remark       string          `json:"remark"        binding:"omitempty,max=500"`
}

// CreateBookingRequest 员工录入预订请求
type CreateBookingRequest struct {
	CustomerName  string          `json:"customer_name"  binding:"required,min=1,max=50"`
	Phone         string          `json:"phone"          binding:"required,min=5,max=20"`
	Wechat        string          `json:"wechat"         binding:"omitempty,max=50"`
	VisitDate     string          `json:"visit_date"     binding:"required,datetime=2006-01-02"`
	AdultCount    int             `json:"adult_count"    binding:"required,min=1"`
	ChildCount    int             `json:"child_count"    binding:"omitempty,min=0"`
	PackageID     *string         `json:"package_id"     binding:"omitempty,uuid"`
	HotelName     string          `json:"hotel_name"     binding:"omitempty,max=100"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`  // 不传时按套餐/默认价计算
	ChildPrice    *decimal.Decimal `json:"child_price"` // 不传时按套餐价或成人价80%计算
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	Source        string          `json:"source"         binding:"omitempty,oneof=wechat_form staff phone"`
	Remark        string          `json:"remark"         binding:"omitempty,max=500"`
}

// UpdateBookingStatusRequest 预订状态变更请求
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed converted completed cancelled"`
}

// UpdateBookingDepositRequest 定金变更请求
type UpdateBookingDepositRequest struct {
	DepositAmount decimal.Decimal `json:"deposit_amount" binding:"required"`
}

// BookingListRequest 预订列表查询参数
type BookingListRequest struct {
	Status    string `form:"status"     binding:"omitempty,oneof=pending confirmed converted completed cancelled"`
	VisitDate string `form:"visit_date" binding:"omitempty,datetime=2006-01-02"`
	Phone     string `form:"phone"      binding:"omitempty,max=20"`
	PaginationRequest
}

// ── 预订模块响应 ──

// BookingResponse 预订单响应
type BookingResponse struct {
	ID            string                 `json:"id"`
	BookingCode   string                 `json:"booking_code"`
	CustomerID    *string                `json:"customer_id,omitempty"`
	CustomerName  string                 `json:"customer_name"`
	Phone         string                 `json:"phone"`
	Wechat        string                 `json:"wechat,omitempty"`
	VisitDate     string                 `json:"visit_date"`
	AdultCount    int                    `json:"adult_count"`
	ChildCount    int                    `json:"child_count"`
	PeopleCount   int                    `json:"people_count"`
	Package       *PackageBrief          `json:"package,omitempty"`
	Accommodation *AccommodationBrief    `json:"accommodation,omitempty"`
	HotelName     string                 `json:"hotel_name,omitempty"`
	UnitPrice     string                 `json:"unit_price"`
	ChildPrice    string                 `json:"child_price"`
	TotalAmount   string                 `json:"total_amount"`
	DepositAmount string                 `json:"deposit_amount"`
	Source        string                 `json:"source"`
	Status        string                 `json:"status"`
	Remark        string                 `json:"remark,omitempty"`
	CreatedAt     string                 `json:"created_at"`
	UpdatedAt     string                 `json:"updated_at"`
}

// ConvertBookingResponse 预订转订单响应
type ConvertBookingResponse struct {
	Booking *BookingResponse `json:"booking"`
	Order   *OrderResponse   `json:"order"`
}

// [自证通过] internal/dto/booking.go
