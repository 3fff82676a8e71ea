package dto

import "github.com/shopspring/decimal"

// ── 订单模块请求 ──

// OrderItemRequest 订单活动明细
type OrderItemRequest struct {
	ProjectID string           `json:"project_id" binding:"required,uuid"`
	Quantity  int              `json:"quantity"   binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"` // 不传时取项目目录价
}

// CreateOrderRequest 员工直接开单请求
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"  binding:"required,min=1,max=50"`
	Phone           string             `json:"phone"          binding:"required,min=5,max=20"`
	VisitDate       string             `json:"visit_date"     binding:"required,datetime=2006-01-02"`
	AdultCount      int                `json:"adult_count"    binding:"omitempty,min=0"`
	ChildCount      int                `json:"child_count"    binding:"omitempty,min=0"`
	PackageID       *string            `json:"package_id"     binding:"omitempty,uuid"`
	AccommodationID *string            `json:"accommodation_id" binding:"omitempty,uuid"`
	Items           []OrderItemRequest `json:"items"          binding:"omitempty,dive"`
	PaidAmount      decimal.Decimal    `json:"paid_amount"`
	Remark          string             `json:"remark"         binding:"omitempty,max=500"`
}

// UpdateOrderStatusRequest 订单状态变更请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

// UpdateOrderPaymentRequest 收款登记请求
type UpdateOrderPaymentRequest struct {
	PaidAmount decimal.Decimal `json:"paid_amount" binding:"required"`
}

// OrderListRequest 订单列表查询参数
type OrderListRequest struct {
	Status        string `form:"status"         binding:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=unpaid partial paid refunded"`
	VisitDate     string `form:"visit_date"     binding:"omitempty,datetime=2006-01-02"`
	PaginationRequest
}

// ── 订单模块响应 ──

// OrderItemResponse 订单活动明细响应
type OrderItemResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerID    string              `json:"customer_id"`
	BookingID     *string             `json:"booking_id,omitempty"`
	Package       *PackageBrief       `json:"package,omitempty"`
	Accommodation *AccommodationBrief `json:"accommodation,omitempty"`
	VisitDate     string              `json:"visit_date"`
	AdultCount    int                 `json:"adult_count"`
	ChildCount    int                 `json:"child_count"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	TotalAmount   string              `json:"total_amount"`
	PaidAmount    string              `json:"paid_amount"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	Remark        string              `json:"remark,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

// [自证通过] internal/dto/order.go
