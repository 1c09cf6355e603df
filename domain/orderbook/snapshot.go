package orderbook

import "time"

// Snapshot is an immutable, depth-limited, sequenced view of a market's
// book. Mark is nil while the mark price is withheld (one or both sides of
// the book empty, or no data yet).
type Snapshot struct {
	MarketID    uint32
	Symbol      string
	TimestampUS uint64
	Sequence    uint64
	Bids        []Level
	Asks        []Level
	Mark        *MarkPriceStats
}

// Cut copies up to depth levels per side together with the sequence observed
// at the same instant, so the caller gets a consistent pre- or post-mutation
// view and never an interleaved one.
func (b *Book) Cut(depth int) (bids, asks []Level, seq uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bids, asks = b.topLocked(depth)
	return bids, asks, b.seq
}

// BuildSnapshot assembles a snapshot from a consistent cut of the book.
func BuildSnapshot(marketID uint32, symbol string, b *Book, depth int, mark *MarkPriceStats, now time.Time) Snapshot {
	bids, asks, seq := b.Cut(depth)
	return Snapshot{
		MarketID:    marketID,
		Symbol:      symbol,
		TimestampUS: uint64(now.UnixMicro()),
		Sequence:    seq,
		Bids:        bids,
		Asks:        asks,
		Mark:        mark,
	}
}
