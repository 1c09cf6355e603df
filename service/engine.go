package service

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/severussssss/hp-node-stream/domain/market"
	"github.com/severussssss/hp-node-stream/domain/orderbook"
	"github.com/severussssss/hp-node-stream/feed"
	"github.com/severussssss/hp-node-stream/infra/metrics"
)

// ErrEngineClosed is returned by Process after Close.
var ErrEngineClosed = errors.New("service: engine closed")

// markDepth is how many levels per side feed the mark price calculator.
const markDepth = 50

// marketState is the exclusive partition for one market: order store, book,
// mark calculator. Everything behind `in` is touched only by the market's
// writer goroutine; the book and mark stats have their own read locks for
// snapshot readers.
type marketState struct {
	id     uint32
	symbol string

	store *orderbook.Store
	book  *orderbook.Book
	calc  *orderbook.MarkPriceCalc

	markMu sync.RWMutex
	mark   *orderbook.MarkPriceStats

	in chan feed.Record
}

func (ms *marketState) setMark(stats *orderbook.MarkPriceStats) {
	ms.markMu.Lock()
	ms.mark = stats
	ms.markMu.Unlock()
}

func (ms *marketState) markStats() *orderbook.MarkPriceStats {
	ms.markMu.RLock()
	defer ms.markMu.RUnlock()
	if ms.mark == nil {
		return nil
	}
	cp := *ms.mark
	return &cp
}

// Engine owns one marketState per tracked market and serializes event
// application per market. Markets are fully independent; there is no
// cross-market coordination.
type Engine struct {
	log *zap.Logger
	reg *market.Registry
	hub *Hub

	markets map[uint32]*marketState

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	now func() time.Time
}

// NewEngine builds the per-market partitions for every market in the
// registry and starts their writers.
func NewEngine(reg *market.Registry, markCfg orderbook.MarkPriceConfig, log *zap.Logger) *Engine {
	e := &Engine{
		log:     log,
		reg:     reg,
		markets: make(map[uint32]*marketState),
		now:     time.Now,
	}
	for _, info := range reg.List() {
		ms := &marketState{
			id:     info.ID,
			symbol: info.Symbol,
			store:  orderbook.NewStore(),
			book:   orderbook.NewBook(),
			calc:   orderbook.NewMarkPriceCalc(markCfg),
			in:     make(chan feed.Record, 1024),
		}
		e.markets[info.ID] = ms
		e.wg.Add(1)
		go e.run(ms)
	}
	e.hub = newHub(e, log)
	return e
}

// Hub returns the engine's subscription fan-out.
func (e *Engine) Hub() *Hub {
	return e.hub
}

// Process routes one record to its market writer. Events for untracked
// markets are dropped and counted, never fatal.
func (e *Engine) Process(rec feed.Record) error {
	ms, ok := e.markets[rec.MarketID]
	if !ok {
		metrics.UnknownMarketEvents.Inc()
		return market.ErrUnknownMarket
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return ErrEngineClosed
	}
	ms.in <- rec
	return nil
}

func (e *Engine) run(ms *marketState) {
	defer e.wg.Done()

	for rec := range ms.in {
		deltas, err := ms.store.Apply(rec)
		if err != nil {
			if errors.Is(err, orderbook.ErrDuplicateEvent) {
				metrics.DuplicateEvents.Inc()
				continue
			}
			e.log.Warn("apply failed",
				zap.Uint32("market", ms.id),
				zap.Uint64("order", rec.OrderID),
				zap.Error(err))
			continue
		}
		if len(deltas) == 0 {
			continue
		}
		for _, d := range deltas {
			ms.book.ApplyDelta(d)
		}
		metrics.EventsApplied.Inc()

		bids, asks := ms.book.Top(markDepth)
		if stats, ok := ms.calc.Update(bids, asks, e.now()); ok {
			ms.setMark(&stats)
		} else {
			ms.setMark(nil)
		}

		e.hub.notify(ms.id)
	}
}

// Snapshot builds a consistent, depth-limited view of one market. A tracked
// market with no data yet yields a valid empty snapshot; an untracked one is
// an error for the RPC layer to surface.
func (e *Engine) Snapshot(marketID uint32, depth int) (orderbook.Snapshot, error) {
	ms, ok := e.markets[marketID]
	if !ok {
		return orderbook.Snapshot{}, market.ErrUnknownMarket
	}
	return orderbook.BuildSnapshot(ms.id, ms.symbol, ms.book, depth, ms.markStats(), e.now()), nil
}

// MarkStats returns the current mark stats for one market, nil while
// withheld.
func (e *Engine) MarkStats(marketID uint32) (*orderbook.MarkPriceStats, error) {
	ms, ok := e.markets[marketID]
	if !ok {
		return nil, market.ErrUnknownMarket
	}
	return ms.markStats(), nil
}

// Sequence returns a market's current sequence.
func (e *Engine) Sequence(marketID uint32) (uint64, error) {
	ms, ok := e.markets[marketID]
	if !ok {
		return 0, market.ErrUnknownMarket
	}
	return ms.book.Sequence(), nil
}

// Markets returns the directory entries the engine serves.
func (e *Engine) Markets() []market.Info {
	return e.reg.List()
}

// Close stops the market writers after draining their queues, then shuts
// down the fan-out.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	for _, ms := range e.markets {
		close(ms.in)
	}
	e.mu.Unlock()

	e.wg.Wait()
	e.hub.close()
}
