package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/AtelierGestione/atelier-manager/internal/config"
	"github.com/AtelierGestione/atelier-manager/internal/domain/report"
)

func testCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	return NewReportCache(&config.Config{RedisAddr: s.Addr()}), s
}

func TestMonthlyRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	if _, hit := c.GetMonthly(ctx, 2024, 3); hit {
		t.Fatal("empty cache must miss")
	}

	want := report.Summary{
		Split:     report.SplitRevenue(1000),
		Expenses:  report.Expenses{Utilities: 80, Bar: 40, Maintenance: 50, Products: 30},
		NetProfit: 400,
	}
	c.SetMonthly(ctx, 2024, 3, &want)

	got, hit := c.GetMonthly(ctx, 2024, 3)
	if !hit {
		t.Fatal("expected a cache hit after set")
	}
	if got.Revenue != 1000 || got.NetProfit != 400 {
		t.Errorf("cached summary corrupted: %+v", got)
	}
}

func TestInvalidateAllDropsEveryMonth(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	s := report.Summary{Split: report.SplitRevenue(100)}
	c.SetMonthly(ctx, 2024, 3, &s)
	c.SetMonthly(ctx, 2024, 4, &s)
	c.SetMonthly(ctx, 2025, 1, &s)

	c.InvalidateAll(ctx)

	for _, m := range []struct{ y, m int }{{2024, 3}, {2024, 4}, {2025, 1}} {
		if _, hit := c.GetMonthly(ctx, m.y, m.m); hit {
			t.Errorf("month %04d-%02d survived the flush", m.y, m.m)
		}
	}
}

func TestInvalidateAllIgnoresForeignKeys(t *testing.T) {
	c, srv := testCache(t)
	ctx := context.Background()

	srv.Set("session:abc", "x")
	c.SetMonthly(ctx, 2024, 3, &report.Summary{})

	c.InvalidateAll(ctx)

	if !srv.Exists("session:abc") {
		t.Error("flush must only touch report keys")
	}
}

// Redis giù: la cache si spegne senza propagare errori.
func TestCacheSwallowsConnectionFailures(t *testing.T) {
	c, srv := testCache(t)
	ctx := context.Background()
	srv.Close()

	if _, hit := c.GetMonthly(ctx, 2024, 3); hit {
		t.Error("a dead backend must read as a miss")
	}
	c.SetMonthly(ctx, 2024, 3, &report.Summary{})
	c.InvalidateAll(ctx)
}
