package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/severussssss/hp-node-stream/domain/market"
	"github.com/severussssss/hp-node-stream/domain/orderbook"
	"github.com/severussssss/hp-node-stream/infra/metrics"
)

// ErrNoMarkets is returned for a subscription that names no valid market.
var ErrNoMarkets = errors.New("service: subscription has no markets")

// defaultQueueSize bounds each subscriber's outbound queue. A saturated
// queue coalesces: the oldest queued snapshot is displaced by the newest and
// the consumer sees a sequence gap, never unbounded growth.
const defaultQueueSize = 16

// Hub is the subscription fan-out. Market writers call notify on every
// applied mutation; each subscription pumps snapshots to its consumer at its
// own cadence without ever blocking the writer path.
type Hub struct {
	engine *Engine
	log    *zap.Logger

	mu     sync.Mutex
	subs   map[uint64]*Subscription
	nextID uint64
	closed bool
}

func newHub(engine *Engine, log *zap.Logger) *Hub {
	return &Hub{
		engine: engine,
		log:    log,
		subs:   make(map[uint64]*Subscription),
	}
}

// Subscription is one streaming consumer's registration: a market set, a
// depth, and a cadence. Interval zero means push on every mutation.
type Subscription struct {
	hub *Hub
	id  uint64

	markets  map[uint32]struct{}
	depth    int
	interval time.Duration

	dirtyMu sync.Mutex
	dirty   map[uint32]struct{}

	wake chan struct{}
	out  chan orderbook.Snapshot
	done chan struct{}
	once sync.Once
}

// Subscribe registers a consumer for the given markets. Every id must be
// tracked; depth must be positive.
func (h *Hub) Subscribe(marketIDs []uint32, depth int, interval time.Duration) (*Subscription, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("service: invalid depth %d", depth)
	}
	if len(marketIDs) == 0 {
		return nil, ErrNoMarkets
	}
	set := make(map[uint32]struct{}, len(marketIDs))
	for _, id := range marketIDs {
		if _, ok := h.engine.markets[id]; !ok {
			return nil, fmt.Errorf("%w: %d", market.ErrUnknownMarket, id)
		}
		set[id] = struct{}{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrEngineClosed
	}
	h.nextID++
	s := &Subscription{
		hub:      h,
		id:       h.nextID,
		markets:  set,
		depth:    depth,
		interval: interval,
		dirty:    make(map[uint32]struct{}, len(set)),
		wake:     make(chan struct{}, 1),
		out:      make(chan orderbook.Snapshot, defaultQueueSize),
		done:     make(chan struct{}),
	}
	h.subs[s.id] = s
	go s.pump()

	h.log.Info("subscription opened",
		zap.Uint64("sub", s.id),
		zap.Int("markets", len(set)),
		zap.Int("depth", depth),
		zap.Duration("interval", interval))
	return s, nil
}

// notify marks a market dirty on every interested subscription. It never
// blocks: the wake channel holds at most one pending signal.
func (h *Hub) notify(marketID uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.subs {
		if _, ok := s.markets[marketID]; !ok {
			continue
		}
		s.dirtyMu.Lock()
		s.dirty[marketID] = struct{}{}
		s.dirtyMu.Unlock()
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

// close shuts down every open subscription.
func (h *Hub) close() {
	h.mu.Lock()
	h.closed = true
	subs := make([]*Subscription, 0, len(h.subs))
	for _, s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
}

// C delivers this subscription's snapshots. It is closed when the
// subscription ends.
func (s *Subscription) C() <-chan orderbook.Snapshot {
	return s.out
}

// Close ends the subscription and releases its fan-out resources. Safe to
// call more than once and from any goroutine; the pump notices within one
// delivery cycle.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s.id)
		close(s.done)
	})
}

// pump is the subscription's delivery loop and the sole sender on out.
// Event-driven subscriptions deliver whenever a tracked market mutates;
// interval subscriptions deliver at most once per period per market,
// coalescing intervening mutations.
func (s *Subscription) pump() {
	defer close(s.out)

	var tick <-chan time.Time
	if s.interval > 0 {
		t := time.NewTicker(s.interval)
		defer t.Stop()
		tick = t.C
	}

	for {
		if s.interval > 0 {
			select {
			case <-s.done:
				return
			case <-tick:
				// Drain the wake signal so stale wakes don't pile up.
				select {
				case <-s.wake:
				default:
				}
				s.flush()
			}
		} else {
			select {
			case <-s.done:
				return
			case <-s.wake:
				s.flush()
			}
		}
	}
}

// flush snapshots every market dirtied since the last delivery.
func (s *Subscription) flush() {
	s.dirtyMu.Lock()
	if len(s.dirty) == 0 {
		s.dirtyMu.Unlock()
		return
	}
	ids := make([]uint32, 0, len(s.dirty))
	for id := range s.dirty {
		ids = append(ids, id)
	}
	s.dirty = make(map[uint32]struct{}, len(s.markets))
	s.dirtyMu.Unlock()

	for _, id := range ids {
		snap, err := s.hub.engine.Snapshot(id, s.depth)
		if err != nil {
			continue
		}
		s.enqueue(snap)
	}
}

// enqueue offers a snapshot to the consumer. When the queue is full the
// oldest entry is displaced so memory stays bounded and the consumer always
// converges on the latest state.
func (s *Subscription) enqueue(snap orderbook.Snapshot) {
	for {
		select {
		case <-s.done:
			return
		case s.out <- snap:
			metrics.SnapshotsPushed.Inc()
			return
		default:
		}
		select {
		case <-s.out:
			metrics.SnapshotsCoalesced.Inc()
		default:
		}
	}
}
