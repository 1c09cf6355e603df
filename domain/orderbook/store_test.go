package orderbook

import (
	"errors"
	"testing"

	"github.com/severussssss/hp-node-stream/feed"
)

func openRec(id uint64, price, size float64, buy bool) feed.Record {
	return feed.Record{
		OrderID:  id,
		MarketID: 0,
		Price:    price,
		Size:     size,
		IsBuy:    buy,
		Status:   feed.StatusOpen,
	}
}

func cancelRec(id uint64) feed.Record {
	return feed.Record{OrderID: id, MarketID: 0, Status: feed.StatusCancelled}
}

func fillRec(id uint64) feed.Record {
	return feed.Record{OrderID: id, MarketID: 0, Status: feed.StatusFilled}
}

func mustApply(t *testing.T, s *Store, rec feed.Record) []LevelDelta {
	t.Helper()
	deltas, err := s.Apply(rec)
	if err != nil {
		t.Fatalf("apply %+v: %v", rec, err)
	}
	return deltas
}

func TestStoreOpenInsert(t *testing.T) {
	s := NewStore()

	deltas := mustApply(t, s, openRec(1, 100, 2.5, true))
	if len(deltas) != 1 {
		t.Fatalf("deltas = %d, want 1", len(deltas))
	}
	d := deltas[0]
	if d.Side != Bid || d.Price != 100 || d.SizeDelta != 2.5 || d.CountDelta != 1 {
		t.Fatalf("unexpected delta %+v", d)
	}
	if s.Len() != 1 {
		t.Fatalf("store len = %d, want 1", s.Len())
	}
}

func TestStoreSizeReduction(t *testing.T) {
	s := NewStore()
	mustApply(t, s, openRec(1, 100, 5, true))

	deltas := mustApply(t, s, openRec(1, 100, 3, true))
	if len(deltas) != 1 {
		t.Fatalf("deltas = %d, want 1", len(deltas))
	}
	d := deltas[0]
	if d.SizeDelta != -2 || d.CountDelta != 0 {
		t.Fatalf("unexpected delta %+v", d)
	}
}

func TestStorePriceMoveEmitsTwoDeltas(t *testing.T) {
	s := NewStore()
	mustApply(t, s, openRec(1, 100, 5, true))

	deltas := mustApply(t, s, openRec(1, 101, 5, true))
	if len(deltas) != 2 {
		t.Fatalf("deltas = %d, want 2", len(deltas))
	}
	if deltas[0].Price != 100 || deltas[0].SizeDelta != -5 || deltas[0].CountDelta != -1 {
		t.Fatalf("remove delta %+v", deltas[0])
	}
	if deltas[1].Price != 101 || deltas[1].SizeDelta != 5 || deltas[1].CountDelta != 1 {
		t.Fatalf("add delta %+v", deltas[1])
	}
}

func TestStoreCancelRemovesRemaining(t *testing.T) {
	s := NewStore()
	mustApply(t, s, openRec(1, 100, 5, false))

	deltas := mustApply(t, s, cancelRec(1))
	if len(deltas) != 1 {
		t.Fatalf("deltas = %d, want 1", len(deltas))
	}
	d := deltas[0]
	if d.Side != Ask || d.SizeDelta != -5 || d.CountDelta != -1 {
		t.Fatalf("unexpected delta %+v", d)
	}
	if s.Len() != 0 {
		t.Fatalf("store len = %d, want 0", s.Len())
	}
}

func TestStoreTerminalReplayIsNoop(t *testing.T) {
	s := NewStore()
	mustApply(t, s, openRec(1, 100, 5, true))
	mustApply(t, s, fillRec(1))

	// Replaying the terminal event must signal a duplicate and change
	// nothing.
	deltas, err := s.Apply(fillRec(1))
	if !errors.Is(err, ErrDuplicateEvent) {
		t.Fatalf("expected ErrDuplicateEvent, got %v", err)
	}
	if len(deltas) != 0 {
		t.Fatalf("duplicate produced deltas: %+v", deltas)
	}

	deltas, err = s.Apply(cancelRec(1))
	if !errors.Is(err, ErrDuplicateEvent) {
		t.Fatalf("expected ErrDuplicateEvent on cancel replay, got %v", err)
	}
	if len(deltas) != 0 {
		t.Fatalf("cancel replay produced deltas: %+v", deltas)
	}
}

func TestStoreNoChangeNoDelta(t *testing.T) {
	s := NewStore()
	mustApply(t, s, openRec(1, 100, 5, true))

	deltas := mustApply(t, s, openRec(1, 100, 5, true))
	if len(deltas) != 0 {
		t.Fatalf("identical resend produced deltas: %+v", deltas)
	}
}

func TestStoreZeroSizeOpenIsTerminal(t *testing.T) {
	s := NewStore()
	mustApply(t, s, openRec(1, 100, 5, true))

	rec := openRec(1, 100, 0, true)
	deltas := mustApply(t, s, rec)
	if len(deltas) != 1 || deltas[0].SizeDelta != -5 || deltas[0].CountDelta != -1 {
		t.Fatalf("unexpected deltas %+v", deltas)
	}
	if s.Len() != 0 {
		t.Fatalf("store len = %d, want 0", s.Len())
	}
}
