package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
)

// ── Mock CustomerRepository ──

type mockCustomerRepo struct {
	customers map[string]*model.Customer
	idCounter int
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[string]*model.Customer)}
}

func (m *mockCustomerRepo) Create(_ context.Context, customer *model.Customer) error {
	for _, c := range m.customers {
		if c.Phone == customer.Phone {
			return fmt.Errorf("duplicate key: %s", customer.Phone)
		}
	}
	if customer.CustomerID == "" {
		m.idCounter++
		customer.CustomerID = fmt.Sprintf("cust-%d", m.idCounter)
	}
	m.customers[customer.CustomerID] = customer
	return nil
}

func (m *mockCustomerRepo) GetByID(_ context.Context, id string) (*model.Customer, error) {
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepo) GetByPhone(_ context.Context, phone string) (*model.Customer, error) {
	for _, c := range m.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepo) List(_ context.Context, phone, name string, offset, limit int) ([]model.Customer, int64, error) {
	var filtered []model.Customer
	for _, c := range m.customers {
		if phone != "" && !strings.Contains(c.Phone, phone) {
			continue
		}
		if name != "" && !strings.Contains(c.Name, name) {
			continue
		}
		filtered = append(filtered, *c)
	}
	return paginate(filtered, offset, limit)
}

func (m *mockCustomerRepo) Update(_ context.Context, customer *model.Customer) error {
	if _, ok := m.customers[customer.CustomerID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.customers[customer.CustomerID] = customer
	return nil
}

// ── Mock BookingRepository ──

type mockBookingRepo struct {
	bookings  map[string]*model.Booking
	idCounter int
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*model.Booking)}
}

func (m *mockBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	for _, b := range m.bookings {
		if b.BookingCode == booking.BookingCode {
			return fmt.Errorf("duplicate key: %s", booking.BookingCode)
		}
	}
	if booking.BookingID == "" {
		m.idCounter++
		booking.BookingID = fmt.Sprintf("bk-%d", m.idCounter)
	}
	m.bookings[booking.BookingID] = booking
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) GetByCode(_ context.Context, code string) (*model.Booking, error) {
	for _, b := range m.bookings {
		if b.BookingCode == code {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) CountByCodePrefix(_ context.Context, prefix string) (int64, error) {
	var count int64
	for _, b := range m.bookings {
		if strings.HasPrefix(b.BookingCode, prefix) {
			count++
		}
	}
	return count, nil
}

func (m *mockBookingRepo) List(_ context.Context, status, visitDate, phone string, offset, limit int) ([]model.Booking, int64, error) {
	var filtered []model.Booking
	for _, b := range m.bookings {
		if status != "" && string(b.Status) != status {
			continue
		}
		if visitDate != "" && b.VisitDate != visitDate {
			continue
		}
		if phone != "" && !strings.Contains(b.Phone, phone) {
			continue
		}
		filtered = append(filtered, *b)
	}
	return paginate(filtered, offset, limit)
}

func (m *mockBookingRepo) Update(_ context.Context, booking *model.Booking) error {
	if _, ok := m.bookings[booking.BookingID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.bookings[booking.BookingID] = booking
	return nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id string, _ string) error {
	if _, ok := m.bookings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.bookings, id)
	return nil
}

// ── Mock OrderRepository ──

type mockOrderRepo struct {
	orders    map[string]*model.Order
	idCounter int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*model.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *model.Order) error {
	for _, o := range m.orders {
		if o.OrderNumber == order.OrderNumber {
			return fmt.Errorf("duplicate key: %s", order.OrderNumber)
		}
	}
	if order.OrderID == "" {
		m.idCounter++
		order.OrderID = fmt.Sprintf("ord-%d", m.idCounter)
	}
	m.orders[order.OrderID] = order
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id string) (*model.Order, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) GetByBookingID(_ context.Context, bookingID string) (*model.Order, error) {
	for _, o := range m.orders {
		if o.BookingID != nil && *o.BookingID == bookingID {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) LastNumberByPrefix(_ context.Context, prefix string) (string, error) {
	last := ""
	for _, o := range m.orders {
		if strings.HasPrefix(o.OrderNumber, prefix) && o.OrderNumber > last {
			last = o.OrderNumber
		}
	}
	return last, nil
}

func (m *mockOrderRepo) List(_ context.Context, status, paymentStatus, visitDate string, offset, limit int) ([]model.Order, int64, error) {
	var filtered []model.Order
	for _, o := range m.orders {
		if status != "" && string(o.Status) != status {
			continue
		}
		if paymentStatus != "" && string(o.PaymentStatus) != paymentStatus {
			continue
		}
		if visitDate != "" && o.VisitDate != visitDate {
			continue
		}
		filtered = append(filtered, *o)
	}
	return paginate(filtered, offset, limit)
}

func (m *mockOrderRepo) Update(_ context.Context, order *model.Order) error {
	if _, ok := m.orders[order.OrderID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.orders[order.OrderID] = order
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id string, _ string) error {
	if _, ok := m.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.orders, id)
	return nil
}

// ── Mock PackageRepository ──

type mockPackageRepo struct {
	packages map[string]*model.Package
}

func newMockPackageRepo() *mockPackageRepo {
	return &mockPackageRepo{packages: make(map[string]*model.Package)}
}

func (m *mockPackageRepo) Create(_ context.Context, pkg *model.Package, items []model.PackageItem) error {
	if pkg.PackageID == "" {
		pkg.PackageID = "pkg-" + pkg.Name
	}
	pkg.Items = items
	m.packages[pkg.PackageID] = pkg
	return nil
}

func (m *mockPackageRepo) GetByID(_ context.Context, id string) (*model.Package, error) {
	if p, ok := m.packages[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPackageRepo) List(_ context.Context, activeOnly bool) ([]model.Package, error) {
	var result []model.Package
	for _, p := range m.packages {
		if activeOnly && !p.IsActive {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPackageRepo) Update(_ context.Context, pkg *model.Package) error {
	if _, ok := m.packages[pkg.PackageID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.packages[pkg.PackageID] = pkg
	return nil
}

func (m *mockPackageRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.packages, id)
	return nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[string]*model.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*model.Project)}
}

func (m *mockProjectRepo) Create(_ context.Context, project *model.Project) error {
	if project.ProjectID == "" {
		project.ProjectID = "proj-" + project.Name
	}
	m.projects[project.ProjectID] = project
	return nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id string) (*model.Project, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectRepo) List(_ context.Context, activeOnly bool) ([]model.Project, error) {
	var result []model.Project
	for _, p := range m.projects {
		if activeOnly && !p.IsActive {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockProjectRepo) Update(_ context.Context, project *model.Project) error {
	if _, ok := m.projects[project.ProjectID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.projects[project.ProjectID] = project
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.projects, id)
	return nil
}

// ── Mock CoachRepository ──

type mockCoachRepo struct {
	coaches map[string]*model.Coach
}

func newMockCoachRepo() *mockCoachRepo {
	return &mockCoachRepo{coaches: make(map[string]*model.Coach)}
}

func (m *mockCoachRepo) Create(_ context.Context, coach *model.Coach) error {
	if coach.CoachID == "" {
		coach.CoachID = "coach-" + coach.Name
	}
	m.coaches[coach.CoachID] = coach
	return nil
}

func (m *mockCoachRepo) GetByID(_ context.Context, id string) (*model.Coach, error) {
	if c, ok := m.coaches[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCoachRepo) List(_ context.Context) ([]model.Coach, error) {
	var result []model.Coach
	for _, c := range m.coaches {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCoachRepo) Update(_ context.Context, coach *model.Coach) error {
	if _, ok := m.coaches[coach.CoachID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.coaches[coach.CoachID] = coach
	return nil
}

func (m *mockCoachRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.coaches, id)
	return nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[string]*model.DailySchedule
	idCounter int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[string]*model.DailySchedule)}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.DailySchedule) error {
	if schedule.ScheduleID == "" {
		m.idCounter++
		schedule.ScheduleID = fmt.Sprintf("sched-%d", m.idCounter)
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.DailySchedule, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) ListByDateAndProject(_ context.Context, date, projectID string) ([]model.DailySchedule, error) {
	var result []model.DailySchedule
	for _, s := range m.schedules {
		if s.ScheduleDate == date && s.ProjectID == projectID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockScheduleRepo) ListByDateAndCoach(_ context.Context, date, coachID string) ([]model.DailySchedule, error) {
	var result []model.DailySchedule
	for _, s := range m.schedules {
		if s.ScheduleDate == date && s.CoachID != nil && *s.CoachID == coachID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockScheduleRepo) List(_ context.Context, date, projectID, coachID string, offset, limit int) ([]model.DailySchedule, int64, error) {
	var filtered []model.DailySchedule
	for _, s := range m.schedules {
		if date != "" && s.ScheduleDate != date {
			continue
		}
		if projectID != "" && s.ProjectID != projectID {
			continue
		}
		if coachID != "" && (s.CoachID == nil || *s.CoachID != coachID) {
			continue
		}
		filtered = append(filtered, *s)
	}
	return paginate(filtered, offset, limit)
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.DailySchedule) error {
	if _, ok := m.schedules[schedule.ScheduleID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string, _ string) error {
	if _, ok := m.schedules[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.schedules, id)
	return nil
}

// ── Mock AccommodationRepository ──

type mockAccommodationRepo struct {
	accommodations map[string]*model.Accommodation
	idCounter      int
}

func newMockAccommodationRepo() *mockAccommodationRepo {
	return &mockAccommodationRepo{accommodations: make(map[string]*model.Accommodation)}
}

func (m *mockAccommodationRepo) Create(_ context.Context, accommodation *model.Accommodation) error {
	if accommodation.AccommodationID == "" {
		m.idCounter++
		accommodation.AccommodationID = fmt.Sprintf("acc-%d", m.idCounter)
	}
	m.accommodations[accommodation.AccommodationID] = accommodation
	return nil
}

func (m *mockAccommodationRepo) GetByID(_ context.Context, id string) (*model.Accommodation, error) {
	if a, ok := m.accommodations[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccommodationRepo) FindByNameLike(_ context.Context, name string) (*model.Accommodation, error) {
	for _, a := range m.accommodations {
		if strings.Contains(a.Name, name) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccommodationRepo) List(_ context.Context) ([]model.Accommodation, error) {
	var result []model.Accommodation
	for _, a := range m.accommodations {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAccommodationRepo) Update(_ context.Context, accommodation *model.Accommodation) error {
	if _, ok := m.accommodations[accommodation.AccommodationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.accommodations[accommodation.AccommodationID] = accommodation
	return nil
}

// ── Mock ShuttleRepository ──

type mockShuttleRepo struct {
	shuttles  map[string]*model.ShuttleSchedule
	idCounter int
}

func newMockShuttleRepo() *mockShuttleRepo {
	return &mockShuttleRepo{shuttles: make(map[string]*model.ShuttleSchedule)}
}

func (m *mockShuttleRepo) Create(_ context.Context, shuttle *model.ShuttleSchedule, stops []model.ShuttleStop) error {
	if shuttle.ShuttleID == "" {
		m.idCounter++
		shuttle.ShuttleID = fmt.Sprintf("shtl-%d", m.idCounter)
	}
	shuttle.Stops = stops
	m.shuttles[shuttle.ShuttleID] = shuttle
	return nil
}

func (m *mockShuttleRepo) GetByID(_ context.Context, id string) (*model.ShuttleSchedule, error) {
	if s, ok := m.shuttles[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShuttleRepo) List(_ context.Context, date string, offset, limit int) ([]model.ShuttleSchedule, int64, error) {
	var filtered []model.ShuttleSchedule
	for _, s := range m.shuttles {
		if date != "" && s.ShuttleDate != date {
			continue
		}
		filtered = append(filtered, *s)
	}
	return paginate(filtered, offset, limit)
}

func (m *mockShuttleRepo) Delete(_ context.Context, id string, _ string) error {
	if _, ok := m.shuttles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.shuttles, id)
	return nil
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	users map[string]*model.StaffUser
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{users: make(map[string]*model.StaffUser)}
}

func (m *mockStaffRepo) Create(_ context.Context, user *model.StaffUser) error {
	if user.UserID == "" {
		user.UserID = "staff-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.StaffUser, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) GetByUsername(_ context.Context, username string) (*model.StaffUser, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── 测试聚合 ──

// paginate 分页通用逻辑
func paginate[T any](items []T, offset, limit int) ([]T, int64, error) {
	total := int64(len(items))
	if offset >= len(items) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], total, nil
}

// newTestRepository 组装纯内存的 Repository 聚合（db 为空，事务内联执行）
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Customer:      newMockCustomerRepo(),
		Booking:       newMockBookingRepo(),
		Order:         newMockOrderRepo(),
		Package:       newMockPackageRepo(),
		Project:       newMockProjectRepo(),
		Coach:         newMockCoachRepo(),
		Schedule:      newMockScheduleRepo(),
		Accommodation: newMockAccommodationRepo(),
		Shuttle:       newMockShuttleRepo(),
		Staff:         newMockStaffRepo(),
	}
}
