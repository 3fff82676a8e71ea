package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zsyayo112/campsite-manage-sub000/internal/dto"
	"github.com/zsyayo112/campsite-manage-sub000/internal/service"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult *dto.LoginResponse
	loginErr    error
	meResult    *dto.StaffResponse
	meErr       error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Me(_ context.Context, _ string) (*dto.StaffResponse, error) {
	return m.meResult, m.meErr
}

// ── Mock BookingService ──

type mockBookingService struct {
	submitResult  *dto.BookingResponse
	submitErr     error
	createResult  *dto.BookingResponse
	createErr     error
	getResult     *dto.BookingResponse
	getErr        error
	listResult    []dto.BookingResponse
	listTotal     int64
	listErr       error
	statusResult  *dto.BookingResponse
	statusErr     error
	depositResult *dto.BookingResponse
	depositErr    error
	convertResult *dto.ConvertBookingResponse
	convertErr    error
	deleteErr     error
}

func (m *mockBookingService) SubmitPublic(_ context.Context, _ *dto.SubmitBookingRequest) (*dto.BookingResponse, error) {
	return m.submitResult, m.submitErr
}
func (m *mockBookingService) Create(_ context.Context, _ *dto.CreateBookingRequest, _ string) (*dto.BookingResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockBookingService) Get(_ context.Context, _ string) (*dto.BookingResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockBookingService) List(_ context.Context, _ *dto.BookingListRequest) ([]dto.BookingResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockBookingService) UpdateStatus(_ context.Context, _ string, _ *dto.UpdateBookingStatusRequest, _ string) (*dto.BookingResponse, error) {
	return m.statusResult, m.statusErr
}
func (m *mockBookingService) UpdateDeposit(_ context.Context, _ string, _ *dto.UpdateBookingDepositRequest, _ string) (*dto.BookingResponse, error) {
	return m.depositResult, m.depositErr
}
func (m *mockBookingService) Convert(_ context.Context, _ string, _ string) (*dto.ConvertBookingResponse, error) {
	return m.convertResult, m.convertErr
}
func (m *mockBookingService) Delete(_ context.Context, _ string, _ string) error {
	return m.deleteErr
}

// ── Mock ScheduleService ──

type mockScheduleService struct {
	checkResult     *dto.CheckConflictResponse
	checkErr        error
	createResult    *dto.ScheduleResponse
	createConflicts *dto.CheckConflictResponse
	createErr       error
	getResult       *dto.ScheduleResponse
	getErr          error
	listResult      []dto.ScheduleResponse
	listTotal       int64
	listErr         error
	updateResult    *dto.ScheduleResponse
	updateConflicts *dto.CheckConflictResponse
	updateErr       error
	deleteErr       error
}

func (m *mockScheduleService) CheckConflicts(_ context.Context, _ *dto.CheckConflictRequest) (*dto.CheckConflictResponse, error) {
	return m.checkResult, m.checkErr
}
func (m *mockScheduleService) Create(_ context.Context, _ *dto.CreateScheduleRequest, _ string) (*dto.ScheduleResponse, *dto.CheckConflictResponse, error) {
	return m.createResult, m.createConflicts, m.createErr
}
func (m *mockScheduleService) Get(_ context.Context, _ string) (*dto.ScheduleResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockScheduleService) List(_ context.Context, _ *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockScheduleService) Update(_ context.Context, _ string, _ *dto.UpdateScheduleRequest, _ string) (*dto.ScheduleResponse, *dto.CheckConflictResponse, error) {
	return m.updateResult, m.updateConflicts, m.updateErr
}
func (m *mockScheduleService) Delete(_ context.Context, _ string, _ string) error {
	return m.deleteErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// withAuth 模拟 JWT 中间件注入的上下文
func withAuth(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "staff-001")
		c.Set("role", "admin")
		h(c)
	}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.LoginResponse{
			AccessToken: "test-token",
			ExpiresIn:   3600,
			User:        dto.StaffResponse{ID: "staff-001", Username: "admin", Role: "admin"},
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("期望业务码 0，实际=%d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际=%d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "admin",
		Password: "wrong-pass",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10006 {
		t.Errorf("期望业务码 10006，实际=%d", resp.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", h.Me)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10002 {
		t.Errorf("期望业务码 10002，实际=%d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// BookingHandler Tests
// ═══════════════════════════════════════════════════════════

func TestBookingHandler_SubmitPublic_Success(t *testing.T) {
	mock := &mockBookingService{
		submitResult: &dto.BookingResponse{ID: "bk-1", BookingCode: "BK20260501001", Status: "pending"},
	}
	h := NewBookingHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/public/bookings", jsonBody(dto.SubmitBookingRequest{
		CustomerName: "张三",
		Phone:        "13800138000",
		VisitDate:    "2026-05-01",
		AdultCount:   2,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/public/bookings", h.SubmitPublic)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("期望 201，实际=%d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("期望业务码 0，实际=%d", resp.Code)
	}
}

func TestBookingHandler_SubmitPublic_MissingFields(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/public/bookings", jsonBody(map[string]string{
		"customer_name": "张三",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/public/bookings", h.SubmitPublic)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("缺必填字段期望 400，实际=%d", w.Code)
	}
}

func TestBookingHandler_Create_Unauthenticated(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", jsonBody(dto.CreateBookingRequest{
		CustomerName: "张三",
		Phone:        "13800138000",
		VisitDate:    "2026-05-01",
		AdultCount:   2,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/bookings", h.CreateBooking)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
}

func TestBookingHandler_UpdateStatus_TransitionRejected(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{statusErr: service.ErrBookingTransition})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/bookings/bk-1/status", jsonBody(dto.UpdateBookingStatusRequest{
		Status: "completed",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/bookings/:id/status", withAuth(h.UpdateBookingStatus))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际=%d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12003 {
		t.Errorf("期望业务码 12003，实际=%d", resp.Code)
	}
}

func TestBookingHandler_Convert_AlreadyConverted(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{convertErr: service.ErrBookingAlreadyConverted})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings/bk-1/convert", nil)

	r := gin.New()
	r.POST("/bookings/:id/convert", withAuth(h.ConvertBooking))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("期望 409，实际=%d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12005 {
		t.Errorf("期望业务码 12005，实际=%d", resp.Code)
	}
}

func TestBookingHandler_Delete_ConvertedRejected(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{deleteErr: service.ErrBookingConvertedDelete})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/bookings/bk-1", nil)

	r := gin.New()
	r.DELETE("/bookings/:id", withAuth(h.DeleteBooking))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际=%d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12007 {
		t.Errorf("期望业务码 12007，实际=%d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ScheduleHandler Tests
// ═══════════════════════════════════════════════════════════

func TestScheduleHandler_Create_ConflictCarriesDetails(t *testing.T) {
	mock := &mockScheduleService{
		createErr: service.ErrScheduleConflict,
		createConflicts: &dto.CheckConflictResponse{
			HasConflict: true,
			Conflicts:   []dto.Conflict{{Type: "capacity"}},
		},
	}
	h := NewScheduleHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedules", jsonBody(dto.CreateScheduleRequest{
		ScheduleDate:     "2026-05-01",
		ProjectID:        "e7b8a3f0-0000-4000-8000-000000000001",
		StartTime:        "09:00",
		EndTime:          "11:00",
		ParticipantCount: 8,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedules", withAuth(h.CreateSchedule))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("期望 409，实际=%d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15003 {
		t.Errorf("期望业务码 15003，实际=%d", resp.Code)
	}
	if resp.Data == nil {
		t.Error("冲突响应应携带冲突明细")
	}
}

func TestScheduleHandler_CheckConflicts_Success(t *testing.T) {
	mock := &mockScheduleService{
		checkResult: &dto.CheckConflictResponse{HasConflict: false, Conflicts: []dto.Conflict{}},
	}
	h := NewScheduleHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedules/check-conflicts", jsonBody(dto.CheckConflictRequest{
		Date:      "2026-05-01",
		ProjectID: "e7b8a3f0-0000-4000-8000-000000000001",
		StartTime: "09:00",
		EndTime:   "11:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedules/check-conflicts", h.CheckConflicts)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
}
