package orderbook

import "github.com/severussssss/hp-node-stream/feed"

type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "bid"
	}
	return "ask"
}

// SideOf maps the wire flag onto a book side.
func SideOf(isBuy bool) Side {
	if isBuy {
		return Bid
	}
	return Ask
}

// Order is the live state of one resolved order, owned by the Store of its
// market. It is created on the first open event for an order id, shrunk or
// moved by later events, and dropped on fill or cancel.
type Order struct {
	ID          uint64
	Side        Side
	Price       float64
	Size        float64
	TimestampNS uint64
}

func orderFromRecord(r feed.Record) Order {
	return Order{
		ID:          r.OrderID,
		Side:        SideOf(r.IsBuy),
		Price:       r.Price,
		Size:        r.Size,
		TimestampNS: r.TimestampNS,
	}
}

// LevelDelta is the unit of book mutation emitted by the Store and consumed
// by the Book. The book's sequence advances by exactly one per delta.
type LevelDelta struct {
	Side       Side
	Price      float64
	SizeDelta  float64
	CountDelta int32
}
