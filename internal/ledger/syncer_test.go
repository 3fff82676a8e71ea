package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
)

func TestMapChannel(t *testing.T) {
	cases := map[string]string{
		"wechat_form": "微信预约",
		"staff":       "员工录入",
		"phone":       "电话预约",
		"walk_in":     "其他",
		"":            "其他",
	}
	for source, want := range cases {
		if got := mapChannel(source); got != want {
			t.Errorf("mapChannel(%q)：期望 %s，实际 %s", source, want, got)
		}
	}
}

func TestMapBookingStatus(t *testing.T) {
	cases := map[model.BookingStatus]string{
		model.BookingStatusPending:   "待确认",
		model.BookingStatusConfirmed: "已确认",
		model.BookingStatusConverted: "已确认", // 台账无"已转化"，归入已确认
		model.BookingStatusCompleted: "已完成",
		model.BookingStatusCancelled: "已取消",
	}
	for status, want := range cases {
		if got := mapBookingStatus(status); got != want {
			t.Errorf("mapBookingStatus(%s)：期望 %s，实际 %s", status, want, got)
		}
	}
}

func TestMapOrderStatus(t *testing.T) {
	cases := map[model.OrderStatus]string{
		model.OrderStatusPending:   "待确认",
		model.OrderStatusConfirmed: "已确认",
		model.OrderStatusCompleted: "已完成",
		model.OrderStatusCancelled: "已取消",
	}
	for status, want := range cases {
		if got := mapOrderStatus(status); got != want {
			t.Errorf("mapOrderStatus(%s)：期望 %s，实际 %s", status, want, got)
		}
	}
}

func TestSyncer_SyncBooking_InsertNew(t *testing.T) {
	client, mock := newMockClient(t)
	syncer := &Syncer{client: client, logger: zap.NewNop()}

	// 台账无该客户也无该预约：先插客户再插预约
	mock.ExpectQuery("SELECT id FROM customers").
		WithArgs("13800138000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO customers").
		WithArgs("张三", "13800138000", "微信预约").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery("SELECT id FROM reservations").
		WithArgs("%BK20260501001%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(int64(42), "2026-05-01", 2, "298.00", "0.00", "待确认", "微信预约", "BK20260501001").
		WillReturnResult(sqlmock.NewResult(1, 1))

	booking := &model.Booking{
		BookingCode:  "BK20260501001",
		CustomerName: "张三",
		Phone:        "13800138000",
		VisitDate:    "2026-05-01",
		AdultCount:   2,
		PeopleCount:  2,
		UnitPrice:    decimal.NewFromInt(298),
		TotalAmount:  decimal.NewFromInt(596),
		Status:       model.BookingStatusPending,
		Source:       "wechat_form",
	}
	if err := syncer.syncBooking(context.Background(), booking); err != nil {
		t.Fatalf("同步应成功: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("sqlmock 预期未满足: %v", err)
	}
}

func TestSyncer_SyncBooking_UpdateExisting(t *testing.T) {
	client, mock := newMockClient(t)
	syncer := &Syncer{client: client, logger: zap.NewNop()}

	// 客户与预约都已在台账中：只更新状态与定金
	mock.ExpectQuery("SELECT id FROM customers").
		WithArgs("13800138000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery("SELECT id FROM reservations").
		WithArgs("%BK20260501001%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))
	mock.ExpectExec("UPDATE reservations").
		WithArgs("已确认", "200.00", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	booking := &model.Booking{
		BookingCode:   "BK20260501001",
		CustomerName:  "张三",
		Phone:         "13800138000",
		VisitDate:     "2026-05-01",
		PeopleCount:   2,
		DepositAmount: decimal.NewFromInt(200),
		Status:        model.BookingStatusConfirmed,
		Source:        "wechat_form",
	}
	if err := syncer.syncBooking(context.Background(), booking); err != nil {
		t.Fatalf("同步应成功: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("sqlmock 预期未满足: %v", err)
	}
}

func TestSyncer_SyncBooking_SpreadsUnitPrice(t *testing.T) {
	client, mock := newMockClient(t)
	syncer := &Syncer{client: client, logger: zap.NewNop()}

	// 缺单价时按总额均摊：895.50 / 3 = 298.50
	mock.ExpectQuery("SELECT id FROM customers").
		WithArgs("13800138000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery("SELECT id FROM reservations").
		WithArgs("%BK20260501002%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(int64(42), "2026-05-01", 3, "298.50", "0.00", "待确认", "员工录入", "BK20260501002 带孩子").
		WillReturnResult(sqlmock.NewResult(2, 1))

	total, _ := decimal.NewFromString("895.50")
	booking := &model.Booking{
		BookingCode:  "BK20260501002",
		CustomerName: "张三",
		Phone:        "13800138000",
		VisitDate:    "2026-05-01",
		PeopleCount:  3,
		TotalAmount:  total,
		Status:       model.BookingStatusPending,
		Source:       "staff",
		Remark:       "带孩子",
	}
	if err := syncer.syncBooking(context.Background(), booking); err != nil {
		t.Fatalf("同步应成功: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("sqlmock 预期未满足: %v", err)
	}
}

func TestSyncer_SyncBooking_CustomerLookupFailureUsesOrphanID(t *testing.T) {
	client, mock := newMockClient(t)
	syncer := &Syncer{client: client, logger: zap.NewNop()}

	// 客户查询报错：挂到无主客户 0，预约照常写入
	mock.ExpectQuery("SELECT id FROM customers").
		WithArgs("13800138000").
		WillReturnError(errors.New("customers table gone"))
	mock.ExpectQuery("SELECT id FROM reservations").
		WithArgs("%BK20260501003%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(int64(0), "2026-05-01", 2, "298.00", "0.00", "待确认", "微信预约", "BK20260501003").
		WillReturnResult(sqlmock.NewResult(3, 1))

	booking := &model.Booking{
		BookingCode:  "BK20260501003",
		CustomerName: "张三",
		Phone:        "13800138000",
		VisitDate:    "2026-05-01",
		PeopleCount:  2,
		UnitPrice:    decimal.NewFromInt(298),
		Status:       model.BookingStatusPending,
		Source:       "wechat_form",
	}
	if err := syncer.syncBooking(context.Background(), booking); err != nil {
		t.Fatalf("客户解析失败不应使整次同步失败: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("sqlmock 预期未满足: %v", err)
	}
}

func TestSyncer_SyncBooking_CustomerInsertFailureUsesOrphanID(t *testing.T) {
	client, mock := newMockClient(t)
	syncer := &Syncer{client: client, logger: zap.NewNop()}

	mock.ExpectQuery("SELECT id FROM customers").
		WithArgs("13800138000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO customers").
		WithArgs("张三", "13800138000", "员工录入").
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectQuery("SELECT id FROM reservations").
		WithArgs("%BK20260501004%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(int64(0), "2026-05-02", 4, "238.00", "100.00", "已确认", "员工录入", "BK20260501004").
		WillReturnResult(sqlmock.NewResult(4, 1))

	booking := &model.Booking{
		BookingCode:   "BK20260501004",
		CustomerName:  "张三",
		Phone:         "13800138000",
		VisitDate:     "2026-05-02",
		PeopleCount:   4,
		UnitPrice:     decimal.NewFromInt(238),
		DepositAmount: decimal.NewFromInt(100),
		Status:        model.BookingStatusConfirmed,
		Source:        "staff",
	}
	if err := syncer.syncBooking(context.Background(), booking); err != nil {
		t.Fatalf("客户建档失败不应使整次同步失败: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("sqlmock 预期未满足: %v", err)
	}
}
