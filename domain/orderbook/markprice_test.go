package orderbook

import (
	"math"
	"testing"
	"time"
)

func TestMarkPriceWithheldOnEmptySide(t *testing.T) {
	c := NewMarkPriceCalc(DefaultMarkPriceConfig())
	now := time.Now()

	if _, ok := c.Update(nil, nil, now); ok {
		t.Fatal("empty book must withhold stats")
	}
	if _, ok := c.Update([]Level{{Price: 100, Size: 1, Count: 1}}, nil, now); ok {
		t.Fatal("one-sided book must withhold stats")
	}
}

func TestMarkPriceMid(t *testing.T) {
	c := NewMarkPriceCalc(DefaultMarkPriceConfig())

	bids := []Level{{Price: 100, Size: 1, Count: 1}}
	asks := []Level{{Price: 101, Size: 2, Count: 1}}
	stats, ok := c.Update(bids, asks, time.Now())
	if !ok {
		t.Fatal("stats withheld on a two-sided book")
	}
	if stats.MidPrice != 100.5 {
		t.Fatalf("mid = %v, want 100.5", stats.MidPrice)
	}
	if stats.Confidence < 0 || stats.Confidence > 1 {
		t.Fatalf("confidence %v out of [0,1]", stats.Confidence)
	}
	// First update primes the EMA at mid.
	if stats.EMAPrice != stats.MidPrice {
		t.Fatalf("ema = %v, want %v", stats.EMAPrice, stats.MidPrice)
	}
}

func TestImpactPriceWalk(t *testing.T) {
	asks := []Level{
		{Price: 100.0, Size: 10},  // 1 000 notional
		{Price: 100.1, Size: 50},  // 5 005 notional
		{Price: 100.2, Size: 100}, // 10 020 notional
	}
	// Fills 10@100, 50@100.1 and the remaining 3 995 notional at 100.2.
	got := impactPrice(asks, 10_000, Ask)
	if math.Abs(got-100.096) > 0.01 {
		t.Fatalf("impact = %v, want ~100.096", got)
	}
}

func TestImpactPriceThinSidePenalty(t *testing.T) {
	bids := []Level{{Price: 100, Size: 0.1}}
	asks := []Level{{Price: 101, Size: 0.1}}

	if got := impactPrice(bids, 10_000, Bid); got != 100*0.99 {
		t.Fatalf("bid penalty price = %v, want %v", got, 100*0.99)
	}
	if got := impactPrice(asks, 10_000, Ask); got != 101*1.01 {
		t.Fatalf("ask penalty price = %v, want %v", got, 101*1.01)
	}
}

func TestEMATimeDecay(t *testing.T) {
	cfg := DefaultMarkPriceConfig()
	cfg.EMAHalfLife = 30 * time.Second
	c := NewMarkPriceCalc(cfg)

	now := time.Now()

	mkLevels := func(mid float64) ([]Level, []Level) {
		return []Level{{Price: mid - 0.5, Size: 1000, Count: 1}},
			[]Level{{Price: mid + 0.5, Size: 1000, Count: 1}}
	}

	bids, asks := mkLevels(100)
	stats, _ := c.Update(bids, asks, now)
	if stats.EMAPrice != 100 {
		t.Fatalf("primed ema = %v, want 100", stats.EMAPrice)
	}

	// After exactly one half-life at a new mid, the EMA closes half the gap.
	bids, asks = mkLevels(110)
	stats, _ = c.Update(bids, asks, now.Add(30*time.Second))
	if math.Abs(stats.EMAPrice-105) > 1e-9 {
		t.Fatalf("ema after one half-life = %v, want 105", stats.EMAPrice)
	}

	// Zero elapsed time leaves the EMA unchanged.
	stats2, _ := c.Update(bids, asks, now.Add(30*time.Second))
	if stats2.EMAPrice != stats.EMAPrice {
		t.Fatalf("ema moved with no elapsed time: %v -> %v", stats.EMAPrice, stats2.EMAPrice)
	}
}

func TestMarkPriceClampedToDeviationBand(t *testing.T) {
	cfg := DefaultMarkPriceConfig()
	cfg.MaxDeviationBPS = 50
	c := NewMarkPriceCalc(cfg)

	now := time.Now()
	// Prime the EMA far away, then feed a jumped mid; the blend must stay
	// inside 50bps of the current mid.
	bids := []Level{{Price: 99.5, Size: 1000, Count: 1}}
	asks := []Level{{Price: 100.5, Size: 1000, Count: 1}}
	c.Update(bids, asks, now)

	bids = []Level{{Price: 119.5, Size: 1000, Count: 1}}
	asks = []Level{{Price: 120.5, Size: 1000, Count: 1}}
	stats, ok := c.Update(bids, asks, now.Add(time.Second))
	if !ok {
		t.Fatal("stats withheld")
	}
	mid := stats.MidPrice
	band := mid * 50 / 10_000
	if stats.MarkPrice < mid-band-1e-9 || stats.MarkPrice > mid+band+1e-9 {
		t.Fatalf("mark %v outside [%v, %v]", stats.MarkPrice, mid-band, mid+band)
	}
}

func TestConfidenceDegradesWithImbalance(t *testing.T) {
	c := NewMarkPriceCalc(DefaultMarkPriceConfig())
	now := time.Now()

	balanced, _ := c.Update(
		[]Level{{Price: 100, Size: 500, Count: 1}},
		[]Level{{Price: 101, Size: 500, Count: 1}},
		now,
	)
	lopsided, _ := c.Update(
		[]Level{{Price: 100, Size: 500, Count: 1}},
		[]Level{{Price: 101, Size: 5, Count: 1}},
		now.Add(time.Second),
	)
	if lopsided.Confidence >= balanced.Confidence {
		t.Fatalf("imbalance did not reduce confidence: %v >= %v",
			lopsided.Confidence, balanced.Confidence)
	}
}
