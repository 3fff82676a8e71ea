package dto

import "github.com/shopspring/decimal"

// ── 套餐/项目/教练模块请求 ──

// CreatePackageRequest 创建套餐请求
type CreatePackageRequest struct {
	Name           string          `json:"name"            binding:"required,min=1,max=100"`
	Price          decimal.Decimal `json:"price"           binding:"required"`
	ChildPrice     decimal.Decimal `json:"child_price"`
	SpecialPricing string          `json:"special_pricing" binding:"omitempty,max=2000"`
	MinPeople      int             `json:"min_people"      binding:"omitempty,min=0"`
	Description    string          `json:"description"     binding:"omitempty,max=500"`
	ProjectIDs     []string        `json:"project_ids"     binding:"omitempty,dive,uuid"`
}

// UpdatePackageRequest 更新套餐请求
type UpdatePackageRequest struct {
	Name           *string          `json:"name"            binding:"omitempty,min=1,max=100"`
	Price          *decimal.Decimal `json:"price"`
	ChildPrice     *decimal.Decimal `json:"child_price"`
	SpecialPricing *string          `json:"special_pricing" binding:"omitempty,max=2000"`
	MinPeople      *int             `json:"min_people"      binding:"omitempty,min=0"`
	IsActive       *bool            `json:"is_active"`
	Description    *string          `json:"description"     binding:"omitempty,max=500"`
}

// CreateProjectRequest 创建活动项目请求
type CreateProjectRequest struct {
	Name       string          `json:"name"        binding:"required,min=1,max=100"`
	Price      decimal.Decimal `json:"price"       binding:"required"`
	ChildPrice decimal.Decimal `json:"child_price"`
	StartTime  string          `json:"start_time"  binding:"omitempty"`
	EndTime    string          `json:"end_time"    binding:"omitempty"`
	Capacity   int             `json:"capacity"    binding:"omitempty,min=0"`
}

// UpdateProjectRequest 更新活动项目请求
type UpdateProjectRequest struct {
	Name       *string          `json:"name"       binding:"omitempty,min=1,max=100"`
	Price      *decimal.Decimal `json:"price"`
	ChildPrice *decimal.Decimal `json:"child_price"`
	StartTime  *string          `json:"start_time"`
	EndTime    *string          `json:"end_time"`
	Capacity   *int             `json:"capacity"   binding:"omitempty,min=0"`
	IsActive   *bool            `json:"is_active"`
}

// CreateCoachRequest 创建教练请求
type CreateCoachRequest struct {
	Name      string `json:"name"      binding:"required,min=1,max=50"`
	Phone     string `json:"phone"     binding:"omitempty,max=20"`
	Specialty string `json:"specialty" binding:"omitempty,max=100"`
}

// UpdateCoachRequest 更新教练请求
type UpdateCoachRequest struct {
	Name      *string `json:"name"      binding:"omitempty,min=1,max=50"`
	Phone     *string `json:"phone"     binding:"omitempty,max=20"`
	Specialty *string `json:"specialty" binding:"omitempty,max=100"`
	Status    *string `json:"status"    binding:"omitempty,oneof=on_duty off_duty"`
}

// ── 响应 ──

// PackageBrief 套餐摘要
type PackageBrief struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	ChildPrice string `json:"child_price"`
}

// PackageResponse 套餐响应
type PackageResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Price          string                `json:"price"`
	ChildPrice     string                `json:"child_price"`
	SpecialPricing string                `json:"special_pricing,omitempty"`
	MinPeople      int                   `json:"min_people"`
	IsActive       bool                  `json:"is_active"`
	Description    string                `json:"description,omitempty"`
	Items          []PackageItemResponse `json:"items,omitempty"`
}

// PackageItemResponse 套餐内活动响应
type PackageItemResponse struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// ProjectResponse 活动项目响应
type ProjectResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	ChildPrice string `json:"child_price"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Capacity   int    `json:"capacity"`
	IsActive   bool   `json:"is_active"`
}

// CoachResponse 教练响应
type CoachResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Status    string `json:"status"`
}

// AccommodationBrief 住宿点摘要
type AccommodationBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// [自证通过] internal/dto/catalog.go
