package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/severussssss/hp-node-stream/domain/market"
	"github.com/severussssss/hp-node-stream/domain/orderbook"
)

func TestSubscribeValidation(t *testing.T) {
	e := newTestEngine(t)
	h := e.Hub()

	if _, err := h.Subscribe(nil, 5, 0); !errors.Is(err, ErrNoMarkets) {
		t.Fatalf("expected ErrNoMarkets, got %v", err)
	}
	if _, err := h.Subscribe([]uint32{0}, 0, 0); err == nil {
		t.Fatal("zero depth accepted")
	}
	if _, err := h.Subscribe([]uint32{0, 999}, 5, 0); !errors.Is(err, market.ErrUnknownMarket) {
		t.Fatalf("expected ErrUnknownMarket, got %v", err)
	}
}

func TestEventDrivenDelivery(t *testing.T) {
	e := newTestEngine(t)
	sub, err := e.Hub().Subscribe([]uint32{0}, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	e.Process(open(1, 0, 100, 1, true))

	select {
	case snap := <-sub.C():
		if snap.MarketID != 0 || len(snap.Bids) != 1 {
			t.Fatalf("snapshot = %+v", snap)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestSubscriptionIgnoresOtherMarkets(t *testing.T) {
	e := newTestEngine(t)
	sub, err := e.Hub().Subscribe([]uint32{159}, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	e.Process(open(1, 0, 100, 1, true))
	waitSeq(t, e, 0, 1)

	select {
	case snap := <-sub.C():
		t.Fatalf("unexpected delivery for market %d", snap.MarketID)
	case <-time.After(50 * time.Millisecond):
	}
}

// Scenario: a consumer that reads nothing during a burst must see bounded
// memory, then the latest state with a visible sequence gap once it
// recovers.
func TestSlowConsumerCoalesces(t *testing.T) {
	e := newTestEngine(t)
	sub, err := e.Hub().Subscribe([]uint32{0}, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	const burst = 500
	for i := uint64(1); i <= burst; i++ {
		if err := e.Process(open(i, 0, 100+float64(i%10), 1, true)); err != nil {
			t.Fatal(err)
		}
	}
	waitSeq(t, e, 0, burst)

	// Give the pump a moment to overfill and coalesce.
	time.Sleep(50 * time.Millisecond)

	if n := len(sub.C()); n > defaultQueueSize {
		t.Fatalf("queue grew past bound: %d > %d", n, defaultQueueSize)
	}

	// Drain; the final snapshot must carry the final sequence even though
	// intermediate ones were displaced.
	var last orderbook.Snapshot
	var got int
	for {
		select {
		case snap := <-sub.C():
			last = snap
			got++
			continue
		case <-time.After(100 * time.Millisecond):
		}
		break
	}
	if got == 0 {
		t.Fatal("no snapshots delivered")
	}
	if got >= burst {
		t.Fatalf("expected coalescing, got %d deliveries for %d mutations", got, burst)
	}
	if last.Sequence != burst {
		t.Fatalf("latest sequence = %d, want %d", last.Sequence, burst)
	}
}

func TestIntervalDeliveryCoalesces(t *testing.T) {
	e := newTestEngine(t)
	sub, err := e.Hub().Subscribe([]uint32{0}, 5, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	for i := uint64(1); i <= 50; i++ {
		e.Process(open(i, 0, 100+float64(i%5), 1, true))
	}
	waitSeq(t, e, 0, 50)

	// First tick after the burst carries the whole burst in one snapshot.
	select {
	case snap := <-sub.C():
		if snap.Sequence != 50 {
			t.Fatalf("interval snapshot sequence = %d, want 50", snap.Sequence)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no interval delivery")
	}

	// No further mutations: the ticker must stay quiet.
	select {
	case snap := <-sub.C():
		t.Fatalf("tick delivered without mutation: seq=%d", snap.Sequence)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestSubscriptionCloseReleases(t *testing.T) {
	e := newTestEngine(t)
	sub, err := e.Hub().Subscribe([]uint32{0}, 5, 0)
	if err != nil {
		t.Fatal(err)
	}

	sub.Close()
	sub.Close() // idempotent

	// The channel closes within one delivery cycle.
	select {
	case _, ok := <-sub.C():
		if ok {
			// Drain anything in flight, then expect close.
			for range sub.C() {
			}
		}
	case <-time.After(time.Second):
		t.Fatal("subscription channel did not close")
	}

	// A closed subscription no longer blocks or slows the writer path.
	for i := uint64(1); i <= 100; i++ {
		if err := e.Process(open(i, 0, 100, 1, true)); err != nil {
			t.Fatal(err)
		}
	}
	waitSeq(t, e, 0, 100)
}

func TestEngineCloseEndsSubscriptions(t *testing.T) {
	e := NewEngine(testRegistry(), orderbook.DefaultMarkPriceConfig(), zap.NewNop())
	sub, err := e.Hub().Subscribe([]uint32{0}, 5, 0)
	if err != nil {
		t.Fatal(err)
	}

	e.Close()

	select {
	case _, ok := <-sub.C():
		for ok {
			_, ok = <-sub.C()
		}
	case <-time.After(time.Second):
		t.Fatal("engine close did not end subscription")
	}

	if _, err := e.Hub().Subscribe([]uint32{0}, 5, 0); !errors.Is(err, ErrEngineClosed) {
		t.Fatalf("expected ErrEngineClosed, got %v", err)
	}
}
