package feed

import "testing"

func validRecord(id uint64) Record {
	return Record{
		OrderID:     id,
		MarketID:    0,
		Price:       100 + float64(id),
		Size:        1,
		IsBuy:       id%2 == 0,
		TimestampNS: id * 1000,
		Status:      StatusOpen,
	}
}

func TestDecoderPartialTail(t *testing.T) {
	// One full record plus 10 trailing bytes: exactly one event decoded,
	// the tail held for the next read, no error.
	wire := AppendRecord(nil, validRecord(1))
	next := AppendRecord(nil, validRecord(2))
	wire = append(wire, next[:10]...)

	d := NewDecoder()
	d.Feed(wire)

	r, ok := d.Next()
	if !ok {
		t.Fatal("expected first record")
	}
	if r.OrderID != 1 {
		t.Fatalf("order id = %d, want 1", r.OrderID)
	}
	if _, ok := d.Next(); ok {
		t.Fatal("partial tail must not decode")
	}
	if d.Pending() != 10 {
		t.Fatalf("pending = %d, want 10", d.Pending())
	}

	// Completing the tail yields the second record.
	d.Feed(next[10:])
	r, ok = d.Next()
	if !ok {
		t.Fatal("expected second record after completion")
	}
	if r.OrderID != 2 {
		t.Fatalf("order id = %d, want 2", r.OrderID)
	}
	if d.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", d.Pending())
	}
}

func TestDecoderByteAtATime(t *testing.T) {
	wire := AppendRecord(nil, validRecord(42))

	d := NewDecoder()
	for i, b := range wire {
		d.Feed([]byte{b})
		if _, ok := d.Next(); ok != (i == len(wire)-1) {
			t.Fatalf("record surfaced at byte %d", i)
		}
	}
}

func TestDecoderSkipsMalformed(t *testing.T) {
	good := validRecord(1)
	bad := AppendRecord(nil, good)
	bad[28] = 0xFF // invalid side byte

	var wire []byte
	wire = append(wire, bad...)
	wire = AppendRecord(wire, validRecord(2))

	d := NewDecoder()
	d.Feed(wire)

	r, ok := d.Next()
	if !ok {
		t.Fatal("expected the valid record after the malformed one")
	}
	if r.OrderID != 2 {
		t.Fatalf("order id = %d, want 2", r.OrderID)
	}
	if d.Malformed() != 1 {
		t.Fatalf("malformed count = %d, want 1", d.Malformed())
	}
}

func TestDecoderManyRecords(t *testing.T) {
	const n = 1000
	var wire []byte
	for i := uint64(1); i <= n; i++ {
		wire = AppendRecord(wire, validRecord(i))
	}

	d := NewDecoder()
	// Feed in uneven chunks to cross record boundaries.
	for len(wire) > 0 {
		chunk := 57
		if chunk > len(wire) {
			chunk = len(wire)
		}
		d.Feed(wire[:chunk])
		wire = wire[chunk:]
	}

	var count uint64
	for {
		r, ok := d.Next()
		if !ok {
			break
		}
		count++
		if r.OrderID != count {
			t.Fatalf("record %d out of order (id=%d)", count, r.OrderID)
		}
	}
	if count != n {
		t.Fatalf("decoded %d records, want %d", count, n)
	}
}
