package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ── 特殊定价解析 ──

func TestResolveSpecialPricing_RangeHit(t *testing.T) {
	raw := `{"2026-10-01~2026-10-07": {"price": 388, "childPrice": 288}}`
	adult, child := resolveSpecialPricing(raw, "2026-10-03", dec("298"), dec("238"), zap.NewNop())
	if !adult.Equal(dec("388")) {
		t.Errorf("期望成人价388，实际=%s", adult)
	}
	if !child.Equal(dec("288")) {
		t.Errorf("期望儿童价288，实际=%s", child)
	}
}

func TestResolveSpecialPricing_ClosedInterval(t *testing.T) {
	raw := `{"2026-10-01~2026-10-07": {"price": 388, "childPrice": 288}}`

	// 区间两端都命中
	for _, date := range []string{"2026-10-01", "2026-10-07"} {
		adult, _ := resolveSpecialPricing(raw, date, dec("298"), dec("238"), zap.NewNop())
		if !adult.Equal(dec("388")) {
			t.Errorf("日期 %s 应命中区间，实际成人价=%s", date, adult)
		}
	}

	// 区间外沿用基础价
	adult, _ := resolveSpecialPricing(raw, "2026-10-08", dec("298"), dec("238"), zap.NewNop())
	if !adult.Equal(dec("298")) {
		t.Errorf("区间外应沿用基础价298，实际=%s", adult)
	}
}

func TestResolveSpecialPricing_FirstMatchWins(t *testing.T) {
	// 重叠区间按文档顺序命中第一条
	raw := `{"2026-10-01~2026-10-07": {"price": 388, "childPrice": 288}, "2026-10-03~2026-10-05": {"price": 500, "childPrice": 400}}`
	adult, _ := resolveSpecialPricing(raw, "2026-10-04", dec("298"), dec("238"), zap.NewNop())
	if !adult.Equal(dec("388")) {
		t.Errorf("重叠区间应命中第一条388，实际=%s", adult)
	}
}

func TestResolveSpecialPricing_MalformedJSON(t *testing.T) {
	adult, child := resolveSpecialPricing(`{not json`, "2026-10-03", dec("298"), dec("238"), zap.NewNop())
	if !adult.Equal(dec("298")) || !child.Equal(dec("238")) {
		t.Errorf("非法 JSON 应沿用基础价，实际=%s/%s", adult, child)
	}
}

func TestResolveSpecialPricing_Empty(t *testing.T) {
	adult, child := resolveSpecialPricing("", "2026-10-03", dec("298"), dec("238"), zap.NewNop())
	if !adult.Equal(dec("298")) || !child.Equal(dec("238")) {
		t.Errorf("空配置应沿用基础价，实际=%s/%s", adult, child)
	}
}

func TestResolveSpecialPricing_ZeroFieldsFallback(t *testing.T) {
	// 区间价缺省字段回落基础价
	raw := `{"2026-10-01~2026-10-07": {"price": 388}}`
	adult, child := resolveSpecialPricing(raw, "2026-10-03", dec("298"), dec("238"), zap.NewNop())
	if !adult.Equal(dec("388")) {
		t.Errorf("期望成人价388，实际=%s", adult)
	}
	if !child.Equal(dec("238")) {
		t.Errorf("儿童价缺省应回落238，实际=%s", child)
	}
}

func TestResolveSpecialPricing_BadRangeKeySkipped(t *testing.T) {
	raw := `{"invalid-key": {"price": 999}, "2026-10-01~2026-10-07": {"price": 388, "childPrice": 288}}`
	adult, _ := resolveSpecialPricing(raw, "2026-10-03", dec("298"), dec("238"), zap.NewNop())
	if !adult.Equal(dec("388")) {
		t.Errorf("非法区间键应跳过并命中下一条，实际=%s", adult)
	}
}

// ── 套餐定价 ──

func TestResolvePackagePricing_ChildRatio(t *testing.T) {
	pkg := &model.Package{Price: dec("400")}
	adult, child := resolvePackagePricing(pkg, "2026-10-03", zap.NewNop())
	if !adult.Equal(dec("400")) {
		t.Errorf("期望成人价400，实际=%s", adult)
	}
	if !child.Equal(dec("320")) {
		t.Errorf("儿童价未设置应按80%%折算=320，实际=%s", child)
	}
}

func TestResolvePackagePricing_ExplicitChildPrice(t *testing.T) {
	pkg := &model.Package{Price: dec("400"), ChildPrice: dec("200")}
	_, child := resolvePackagePricing(pkg, "2026-10-03", zap.NewNop())
	if !child.Equal(dec("200")) {
		t.Errorf("期望儿童价200，实际=%s", child)
	}
}

func TestResolvePublicPricing_NoPackageDefaults(t *testing.T) {
	adult, child := resolvePublicPricing(nil, "2026-10-03", zap.NewNop())
	if !adult.Equal(dec("298")) || !child.Equal(dec("238")) {
		t.Errorf("未选套餐应用兜底价298/238，实际=%s/%s", adult, child)
	}
}

// ── 总额计算 ──

func TestTotalAmount(t *testing.T) {
	total := totalAmount(dec("298"), dec("238"), 2, 1)
	if !total.Equal(dec("834")) {
		t.Errorf("期望总额834，实际=%s", total)
	}
}

func TestTotalAmount_ZeroChildren(t *testing.T) {
	total := totalAmount(dec("298.50"), dec("238"), 3, 0)
	if !total.Equal(dec("895.50")) {
		t.Errorf("期望总额895.50，实际=%s", total)
	}
}
