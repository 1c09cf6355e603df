package feed

import "errors"

// Decoder turns an arbitrary byte stream into complete records. Bytes arrive
// in whatever chunks the tailer reads them; a trailing partial record is held
// back until the next Feed call completes it.
type Decoder struct {
	buf       []byte
	malformed uint64
}

// NewDecoder returns an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends raw bytes to the pending buffer.
func (d *Decoder) Feed(b []byte) {
	if len(b) == 0 {
		return
	}
	d.buf = append(d.buf, b...)
}

// Next yields the next complete record, skipping malformed ones. It returns
// false when fewer than RecordSize bytes remain buffered.
func (d *Decoder) Next() (Record, bool) {
	for len(d.buf) >= RecordSize {
		r, err := DecodeRecord(d.buf)
		d.buf = d.buf[RecordSize:]
		if err != nil {
			if errors.Is(err, ErrMalformedRecord) {
				d.malformed++
				continue
			}
			// DecodeRecord only fails short or malformed, and the length
			// was checked above.
			continue
		}
		return r, true
	}
	if len(d.buf) == 0 {
		d.buf = nil
	}
	return Record{}, false
}

// Pending reports how many bytes are buffered waiting for completion.
func (d *Decoder) Pending() int {
	return len(d.buf)
}

// Malformed reports how many full-width records were skipped for failing
// field validation.
func (d *Decoder) Malformed() uint64 {
	return d.malformed
}
