package model

import "github.com/shopspring/decimal"

// Package 套餐表 — 对应 packages
// SpecialPricing 为日期区间特殊定价 JSON 文本：
// {"YYYY-MM-DD~YYYY-MM-DD": {"price": 388, "childPrice": 288}, ...}
type Package struct {
	PackageID      string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"package_id"`
	Name           string          `gorm:"type:varchar(100);not null"                     json:"name"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"          json:"price"`
	ChildPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"          json:"child_price"` // 0 视为未设置
	SpecialPricing string          `gorm:"type:text"                                      json:"special_pricing,omitempty"`
	MinPeople      int             `gorm:"not null;default:0"                             json:"min_people"`
	IsActive       bool            `gorm:"not null;default:true"                          json:"is_active"`
	Description    string          `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	VersionedModel

	// 关联
	Items []PackageItem `gorm:"foreignKey:PackageID" json:"items,omitempty"`
}

func (Package) TableName() string { return "packages" }

// PackageItem 套餐-活动关联表 — 对应 package_items
type PackageItem struct {
	PackageItemID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"package_item_id"`
	PackageID     string `gorm:"type:uuid;not null;index"                       json:"package_id"`
	ProjectID     string `gorm:"type:uuid;not null"                             json:"project_id"`
	Quantity      int    `gorm:"not null;default:1"                             json:"quantity"`
	BaseModel

	// 关联
	Project *Project `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
}

func (PackageItem) TableName() string { return "package_items" }

// Project 活动项目表 — 对应 projects
// Capacity 为 0 表示不限容量，冲突检测跳过容量校验
type Project struct {
	ProjectID  string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"project_id"`
	Name       string          `gorm:"type:varchar(100);not null"                     json:"name"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"          json:"price"`
	ChildPrice decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"          json:"child_price"`
	StartTime  string          `gorm:"type:time"                                      json:"start_time,omitempty"` // 默认开放时段
	EndTime    string          `gorm:"type:time"                                      json:"end_time,omitempty"`
	Capacity   int             `gorm:"not null;default:0"                             json:"capacity"`
	IsActive   bool            `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel
}

func (Project) TableName() string { return "projects" }

// CoachStatus 教练在岗状态
const (
	CoachStatusOnDuty  = "on_duty"
	CoachStatusOffDuty = "off_duty"
)

// Coach 教练表 — 对应 coaches
type Coach struct {
	CoachID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"coach_id"`
	Name      string `gorm:"type:varchar(50);not null"                      json:"name"`
	Phone     string `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	Specialty string `gorm:"type:varchar(100)"                              json:"specialty,omitempty"`
	Status    string `gorm:"type:varchar(20);not null;default:'on_duty'"    json:"status"` // on_duty | off_duty
	VersionedModel
}

func (Coach) TableName() string { return "coaches" }

// [自证通过] internal/model/catalog.go
