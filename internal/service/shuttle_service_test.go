package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
)

func setupTestShuttleService() (ShuttleService, *repository.Repository) {
	repo := newTestRepository()
	svc := NewShuttleService(repo, zap.NewNop())
	return svc, repo
}

func seedAccommodation(t *testing.T, repo *repository.Repository, name string) *model.Accommodation {
	t.Helper()
	acc := &model.Accommodation{Name: name, Type: "internal"}
	if err := repo.Accommodation.Create(context.Background(), acc); err != nil {
		t.Fatalf("预置住宿点失败: %v", err)
	}
	return acc
}

func TestShuttleService_Create_Success(t *testing.T) {
	svc, repo := setupTestShuttleService()
	acc1 := seedAccommodation(t, repo, "山景民宿")
	acc2 := seedAccommodation(t, repo, "湖畔客栈")

	result, err := svc.Create(context.Background(), &dto.CreateShuttleRequest{
		ShuttleDate: "2026-05-01",
		VehicleName: "考斯特1号",
		SeatCount:   18,
		Stops: []dto.ShuttleStopRequest{
			{AccommodationID: acc1.AccommodationID, PassengerCount: 6, PickupTime: "08:30"},
			{AccommodationID: acc2.AccommodationID, PassengerCount: 8, PickupTime: "08:45"},
		},
	}, "staff-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Passengers != 14 {
		t.Errorf("期望乘客合计14，实际=%d", result.Passengers)
	}
	// 未指定顺序时按停靠点顺序补全
	if result.Stops[0].Sequence != 1 || result.Stops[1].Sequence != 2 {
		t.Errorf("停靠顺序应按录入顺序补全: %+v", result.Stops)
	}
}

func TestShuttleService_Create_OverCapacity(t *testing.T) {
	svc, repo := setupTestShuttleService()
	acc := seedAccommodation(t, repo, "山景民宿")

	_, err := svc.Create(context.Background(), &dto.CreateShuttleRequest{
		ShuttleDate: "2026-05-01",
		VehicleName: "考斯特1号",
		SeatCount:   10,
		Stops: []dto.ShuttleStopRequest{
			{AccommodationID: acc.AccommodationID, PassengerCount: 11},
		},
	}, "staff-001")
	if !errors.Is(err, ErrShuttleOverCapacity) {
		t.Errorf("期望 ErrShuttleOverCapacity，实际: %v", err)
	}
}

func TestShuttleService_Create_AccommodationNotFound(t *testing.T) {
	svc, _ := setupTestShuttleService()

	_, err := svc.Create(context.Background(), &dto.CreateShuttleRequest{
		ShuttleDate: "2026-05-01",
		VehicleName: "考斯特1号",
		SeatCount:   18,
		Stops: []dto.ShuttleStopRequest{
			{AccommodationID: "nonexistent", PassengerCount: 5},
		},
	}, "staff-001")
	if !errors.Is(err, ErrAccommodationNotFound) {
		t.Errorf("期望 ErrAccommodationNotFound，实际: %v", err)
	}
}

func TestShuttleService_Get_NotFound(t *testing.T) {
	svc, _ := setupTestShuttleService()
	_, err := svc.Get(context.Background(), "nonexistent")
	if !errors.Is(err, ErrShuttleNotFound) {
		t.Errorf("期望 ErrShuttleNotFound，实际: %v", err)
	}
}

func TestShuttleService_Delete_Success(t *testing.T) {
	svc, repo := setupTestShuttleService()
	acc := seedAccommodation(t, repo, "山景民宿")

	result, err := svc.Create(context.Background(), &dto.CreateShuttleRequest{
		ShuttleDate: "2026-05-01",
		VehicleName: "考斯特1号",
		SeatCount:   18,
		Stops: []dto.ShuttleStopRequest{
			{AccommodationID: acc.AccommodationID, PassengerCount: 5},
		},
	}, "staff-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if err := svc.Delete(context.Background(), result.ID, "admin-001"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.Get(context.Background(), result.ID); !errors.Is(err, ErrShuttleNotFound) {
		t.Error("删除后不应再能查到")
	}
}
