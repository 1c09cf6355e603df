package feed

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// RecordSize is the fixed width of one order lifecycle record on the wire.
//
// Layout (little-endian, no delimiter between records):
//
//	order_id     u64  8
//	market_id    u32  4
//	price        f64  8
//	size         f64  8
//	is_buy       u8   1
//	timestamp_ns u64  8
//	status       u8   1
const RecordSize = 38

// Status is the lifecycle state carried by a record.
type Status uint8

const (
	StatusOpen      Status = 0
	StatusFilled    Status = 1
	StatusCancelled Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusFilled:
		return "filled"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

var (
	// ErrShortRecord: buffer shorter than one full record.
	ErrShortRecord = errors.New("feed: short record")
	// ErrMalformedRecord: a full-width record with out-of-range fields.
	ErrMalformedRecord = errors.New("feed: malformed record")
)

// Sanity bounds for open orders; anything beyond these is feed corruption.
const (
	maxPrice = 10_000_000.0
	maxSize  = 1_000_000.0
)

// Record is one decoded order lifecycle event.
type Record struct {
	OrderID     uint64
	MarketID    uint32
	Price       float64
	Size        float64
	IsBuy       bool
	TimestampNS uint64
	Status      Status
}

// DecodeRecord parses exactly RecordSize bytes from the front of b.
func DecodeRecord(b []byte) (Record, error) {
	if len(b) < RecordSize {
		return Record{}, ErrShortRecord
	}
	r := Record{
		OrderID:     binary.LittleEndian.Uint64(b[0:8]),
		MarketID:    binary.LittleEndian.Uint32(b[8:12]),
		Price:       math.Float64frombits(binary.LittleEndian.Uint64(b[12:20])),
		Size:        math.Float64frombits(binary.LittleEndian.Uint64(b[20:28])),
		IsBuy:       b[28] != 0,
		TimestampNS: binary.LittleEndian.Uint64(b[29:37]),
		Status:      Status(b[37]),
	}
	if err := r.validate(b[28]); err != nil {
		return Record{}, err
	}
	return r, nil
}

// AppendRecord appends the wire form of r to dst.
func AppendRecord(dst []byte, r Record) []byte {
	var buf [RecordSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], r.OrderID)
	binary.LittleEndian.PutUint32(buf[8:12], r.MarketID)
	binary.LittleEndian.PutUint64(buf[12:20], math.Float64bits(r.Price))
	binary.LittleEndian.PutUint64(buf[20:28], math.Float64bits(r.Size))
	if r.IsBuy {
		buf[28] = 1
	}
	binary.LittleEndian.PutUint64(buf[29:37], r.TimestampNS)
	buf[37] = uint8(r.Status)
	return append(dst, buf[:]...)
}

func (r Record) validate(sideByte byte) error {
	if sideByte > 1 {
		return fmt.Errorf("%w: side byte %d", ErrMalformedRecord, sideByte)
	}
	if r.Status > StatusCancelled {
		return fmt.Errorf("%w: status byte %d", ErrMalformedRecord, uint8(r.Status))
	}
	if math.IsNaN(r.Price) || math.IsInf(r.Price, 0) {
		return fmt.Errorf("%w: non-finite price", ErrMalformedRecord)
	}
	if math.IsNaN(r.Size) || math.IsInf(r.Size, 0) {
		return fmt.Errorf("%w: non-finite size", ErrMalformedRecord)
	}
	// Terminal records may carry a zero price/size; an open order cannot.
	if r.Status == StatusOpen {
		if r.Price <= 0 || r.Price > maxPrice {
			return fmt.Errorf("%w: price %v out of range", ErrMalformedRecord, r.Price)
		}
		if r.Size <= 0 || r.Size > maxSize {
			return fmt.Errorf("%w: size %v out of range", ErrMalformedRecord, r.Size)
		}
	}
	if r.Price < 0 || r.Size < 0 {
		return fmt.Errorf("%w: negative price or size", ErrMalformedRecord)
	}
	return nil
}

// Terminal reports whether this record removes the order from the book: a
// terminal status, or an open update whose size has gone to zero.
func (r Record) Terminal() bool {
	return r.Status == StatusFilled || r.Status == StatusCancelled || r.Size == 0
}
