package model

// StaffUser 员工账号表 — 对应 staff_users
type StaffUser struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string `gorm:"type:varchar(100);not null"                     json:"-"`
	Name         string `gorm:"type:varchar(50);not null"                      json:"name"`
	Role         string `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"` // admin | staff
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel
}

func (StaffUser) TableName() string { return "staff_users" }

// [自证通过] internal/model/staff.go
