package orderbook

import (
	"errors"
	"math"

	"github.com/severussssss/hp-node-stream/feed"
)

// ErrDuplicateEvent marks a terminal event for an order the store no longer
// holds. The caller counts it and moves on; replays must not mutate the book.
var ErrDuplicateEvent = errors.New("orderbook: event for removed order")

const sizeEpsilon = 1e-9

// Store tracks live orders for one market and turns lifecycle records into
// level deltas. It is not safe for concurrent use; each market has a single
// writer.
type Store struct {
	orders map[uint64]Order
}

func NewStore() *Store {
	return &Store{orders: make(map[uint64]Order)}
}

// Len reports the number of live orders.
func (s *Store) Len() int {
	return len(s.orders)
}

// Apply folds one record into the store and returns the level deltas the
// book must absorb. Later events for a known order id supersede the stored
// state in arrival order; the record's own timestamp is not consulted.
//
// A price move on a live order produces two deltas (remove at the old price,
// add at the new), so the book sequence advances once per touched level.
func (s *Store) Apply(rec feed.Record) ([]LevelDelta, error) {
	cur, known := s.orders[rec.OrderID]

	if rec.Terminal() {
		if !known {
			return nil, ErrDuplicateEvent
		}
		delete(s.orders, rec.OrderID)
		return []LevelDelta{{
			Side:       cur.Side,
			Price:      cur.Price,
			SizeDelta:  -cur.Size,
			CountDelta: -1,
		}}, nil
	}

	next := orderFromRecord(rec)
	s.orders[rec.OrderID] = next

	if !known {
		return []LevelDelta{{
			Side:       next.Side,
			Price:      next.Price,
			SizeDelta:  next.Size,
			CountDelta: +1,
		}}, nil
	}

	if cur.Price != next.Price || cur.Side != next.Side {
		return []LevelDelta{
			{Side: cur.Side, Price: cur.Price, SizeDelta: -cur.Size, CountDelta: -1},
			{Side: next.Side, Price: next.Price, SizeDelta: next.Size, CountDelta: +1},
		}, nil
	}

	diff := next.Size - cur.Size
	if math.Abs(diff) <= sizeEpsilon {
		// Same price, same size: nothing for the book to do.
		return nil, nil
	}
	return []LevelDelta{{
		Side:       cur.Side,
		Price:      cur.Price,
		SizeDelta:  diff,
		CountDelta: 0,
	}}, nil
}
