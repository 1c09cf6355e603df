package orderbook

import (
	"math"
	"time"
)

// MarkPriceStats is the derived price statistic for one market. All fields
// are recomputed from the current book on every update except EMAPrice,
// which carries state forward across updates.
type MarkPriceStats struct {
	MidPrice       float64
	ImpactBidPrice float64
	ImpactAskPrice float64
	ImpactMidPrice float64
	EMAPrice       float64
	Confidence     float64
	MarkPrice      float64
}

// MarkPriceConfig fixes the tuning constants of the calculator.
type MarkPriceConfig struct {
	// ImpactNotional is the quote-denominated size walked into each side
	// for the impact prices.
	ImpactNotional float64
	// EMAHalfLife drives the time-based decay of the mid-price EMA.
	EMAHalfLife time.Duration
	// MaxDeviationBPS clamps the blended mark around the current mid.
	MaxDeviationBPS float64
}

// DefaultMarkPriceConfig returns the documented tuning: 10k notional, 30s
// half-life, 50bps clamp.
func DefaultMarkPriceConfig() MarkPriceConfig {
	return MarkPriceConfig{
		ImpactNotional:  10_000,
		EMAHalfLife:     30 * time.Second,
		MaxDeviationBPS: 50,
	}
}

// MarkPriceCalc derives mid, impact, EMA and the composite mark for one
// market. Not safe for concurrent use; it lives with the market's writer.
type MarkPriceCalc struct {
	cfg MarkPriceConfig

	ema        float64
	emaPrimed  bool
	lastUpdate time.Time
}

func NewMarkPriceCalc(cfg MarkPriceConfig) *MarkPriceCalc {
	if cfg.ImpactNotional <= 0 {
		cfg.ImpactNotional = DefaultMarkPriceConfig().ImpactNotional
	}
	if cfg.EMAHalfLife <= 0 {
		cfg.EMAHalfLife = DefaultMarkPriceConfig().EMAHalfLife
	}
	if cfg.MaxDeviationBPS <= 0 {
		cfg.MaxDeviationBPS = DefaultMarkPriceConfig().MaxDeviationBPS
	}
	return &MarkPriceCalc{cfg: cfg}
}

// Update recomputes the stats from the given top-of-book. It fails closed:
// with either side empty it returns ok=false and the stats are withheld,
// leaving the EMA state untouched.
func (c *MarkPriceCalc) Update(bids, asks []Level, now time.Time) (MarkPriceStats, bool) {
	if len(bids) == 0 || len(asks) == 0 {
		return MarkPriceStats{}, false
	}

	mid := (bids[0].Price + asks[0].Price) / 2

	impactBid := impactPrice(bids, c.cfg.ImpactNotional, Bid)
	impactAsk := impactPrice(asks, c.cfg.ImpactNotional, Ask)
	impactMid := (impactBid + impactAsk) / 2

	confidence := c.confidence(bids, asks)
	ema := c.updateEMA(mid, now)

	// Blend weights scale with confidence; a thin book leans on the mid.
	impactW := confidence * 0.4
	emaW := confidence * 0.4
	midW := 1 - impactW - emaW
	mark := mid*midW + impactMid*impactW + ema*emaW

	// Clamp inside the deviation band around mid.
	band := mid * c.cfg.MaxDeviationBPS / 10_000
	mark = math.Max(mid-band, math.Min(mid+band, mark))

	return MarkPriceStats{
		MidPrice:       mid,
		ImpactBidPrice: impactBid,
		ImpactAskPrice: impactAsk,
		ImpactMidPrice: impactMid,
		EMAPrice:       ema,
		Confidence:     confidence,
		MarkPrice:      mark,
	}, true
}

// impactPrice walks levels best-first until the cumulative notional reaches
// the target and returns the volume-weighted fill price. A side too thin to
// absorb the target yields its deepest price with a 1% liquidity penalty.
func impactPrice(levels []Level, targetNotional float64, side Side) float64 {
	remaining := targetNotional
	var cost, size float64

	for _, lvl := range levels {
		if remaining <= 0 {
			break
		}
		levelNotional := lvl.Price * lvl.Size
		fill := math.Min(remaining, levelNotional)
		cost += fill
		size += fill / lvl.Price
		remaining -= fill
	}

	if remaining > 0 {
		deepest := levels[len(levels)-1].Price
		if side == Ask {
			return deepest * 1.01
		}
		return deepest * 0.99
	}
	return cost / size
}

// confidence scores book quality in [0,1] from top-5 depth against twice the
// impact notional, discounted by bid/ask imbalance.
func (c *MarkPriceCalc) confidence(bids, asks []Level) float64 {
	bidNotional := topNotional(bids, 5)
	askNotional := topNotional(asks, 5)

	minExpected := c.cfg.ImpactNotional * 2
	depth := math.Min((bidNotional+askNotional)/minExpected, 1)

	larger := math.Max(bidNotional, askNotional)
	if larger <= 0 {
		return 0
	}
	balance := math.Min(bidNotional, askNotional) / larger

	return depth * balance
}

func topNotional(levels []Level, n int) float64 {
	var total float64
	for i, lvl := range levels {
		if i >= n {
			break
		}
		total += lvl.Price * lvl.Size
	}
	return total
}

// updateEMA advances the time-decayed EMA of the mid price:
// alpha = 1 - 0.5^(dt/halfLife), so decay tracks wall clock, not tick rate.
func (c *MarkPriceCalc) updateEMA(mid float64, now time.Time) float64 {
	if !c.emaPrimed {
		c.ema = mid
		c.emaPrimed = true
		c.lastUpdate = now
		return c.ema
	}

	dt := now.Sub(c.lastUpdate)
	if dt > 0 {
		alpha := 1 - math.Exp2(-dt.Seconds()/c.cfg.EMAHalfLife.Seconds())
		c.ema += alpha * (mid - c.ema)
	}
	c.lastUpdate = now
	return c.ema
}
