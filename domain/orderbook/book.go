package orderbook

import (
	"sync"

	"github.com/google/btree"
)

// Level is one aggregated price level. A level present in a book always has
// positive size and a positive order count.
type Level struct {
	Price float64
	Size  float64
	Count uint32
}

type levelItem struct {
	Level
}

func (l *levelItem) Less(other btree.Item) bool {
	return l.Price < other.(*levelItem).Price
}

// Book holds the aggregated bid and ask levels for one market plus the
// per-market sequence counter. Writes come from a single goroutine; reads
// take a shared lock for the duration of the copy and never observe a level
// mid-update.
type Book struct {
	mu   sync.RWMutex
	bids *btree.BTree
	asks *btree.BTree
	seq  uint64
}

const btreeDegree = 16

func NewBook() *Book {
	return &Book{
		bids: btree.New(btreeDegree),
		asks: btree.New(btreeDegree),
	}
}

// ApplyDelta folds one level delta into the book and advances the sequence
// by exactly one. Levels whose aggregate drops to zero are deleted outright.
func (b *Book) ApplyDelta(d LevelDelta) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tree := b.bids
	if d.Side == Ask {
		tree = b.asks
	}

	key := &levelItem{Level{Price: d.Price}}
	var lvl *levelItem
	if it := tree.Get(key); it != nil {
		lvl = it.(*levelItem)
	} else {
		lvl = key
		tree.ReplaceOrInsert(lvl)
	}

	lvl.Size += d.SizeDelta
	lvl.Count = addCount(lvl.Count, d.CountDelta)

	if lvl.Size <= sizeEpsilon || lvl.Count == 0 {
		tree.Delete(lvl)
	}

	b.seq++
}

func addCount(c uint32, d int32) uint32 {
	if d < 0 {
		dec := uint32(-d)
		if dec >= c {
			return 0
		}
		return c - dec
	}
	return c + uint32(d)
}

// Sequence returns the number of deltas applied so far.
func (b *Book) Sequence() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.seq
}

// Top copies up to n levels per side, best price first (bids descending,
// asks ascending). It never pads: fewer live levels mean a shorter slice.
func (b *Book) Top(n int) (bids, asks []Level) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.topLocked(n)
}

func (b *Book) topLocked(n int) (bids, asks []Level) {
	if n <= 0 {
		return nil, nil
	}
	bids = make([]Level, 0, minInt(n, b.bids.Len()))
	b.bids.Descend(func(it btree.Item) bool {
		bids = append(bids, it.(*levelItem).Level)
		return len(bids) < n
	})
	asks = make([]Level, 0, minInt(n, b.asks.Len()))
	b.asks.Ascend(func(it btree.Item) bool {
		asks = append(asks, it.(*levelItem).Level)
		return len(asks) < n
	})
	return bids, asks
}

// Depth reports the number of live levels per side.
func (b *Book) Depth() (bids, asks int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.bids.Len(), b.asks.Len()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
