// Package watch tails binary order-event segments: an initial recursive scan
// picks up existing files, fsnotify drives incremental reads afterwards.
// Segments are append-only; each file is read from its last offset, never
// from scratch, and a dangling partial record at end-of-file is held until a
// later write completes it.
package watch

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/severussssss/hp-node-stream/feed"
	"github.com/severussssss/hp-node-stream/infra/checkpoint"
	"github.com/severussssss/hp-node-stream/infra/metrics"
)

// Sink consumes decoded records. Per-record errors are the sink's own
// business (unknown market, duplicates); the watcher only counts on.
type Sink interface {
	Process(feed.Record) error
}

const (
	readChunkSize = 64 * 1024
	flushEvery    = 5 * time.Second
)

// Watcher tails every eligible segment under one directory tree. All state
// is touched from the Run goroutine only.
type Watcher struct {
	log  *zap.Logger
	dir  string
	sink Sink
	ckpt *checkpoint.Store // optional

	offsets  map[string]uint64
	decoders map[string]*feed.Decoder
}

// New builds a watcher over dir. ckpt may be nil, in which case offsets are
// process-lifetime only.
func New(dir string, sink Sink, ckpt *checkpoint.Store, log *zap.Logger) *Watcher {
	return &Watcher{
		log:      log,
		dir:      dir,
		sink:     sink,
		ckpt:     ckpt,
		offsets:  make(map[string]uint64),
		decoders: make(map[string]*feed.Decoder),
	}
}

// Run blocks until ctx is cancelled, feeding the sink as segments grow.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.loadOffsets(); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create fs watcher")
	}
	defer fw.Close()

	if err := w.watchTree(fw, w.dir); err != nil {
		return err
	}

	// Catch up on whatever already exists before trusting events.
	if err := w.Scan(); err != nil {
		return err
	}

	flush := time.NewTicker(flushEvery)
	defer flush.Stop()

	for {
		select {
		case <-ctx.Done():
			w.flushOffsets()
			return ctx.Err()

		case <-flush.C:
			w.flushOffsets()

		case ev, ok := <-fw.Events:
			if !ok {
				return errors.New("watch: event channel closed")
			}
			w.handleEvent(fw, ev)

		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("watch: error channel closed")
			}
			w.log.Warn("fs watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(fw *fsnotify.Watcher, ev fsnotify.Event) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}
	info, err := os.Stat(ev.Name)
	if err != nil {
		return // removed between event and stat
	}
	if info.IsDir() {
		if ev.Has(fsnotify.Create) {
			if err := w.watchTree(fw, ev.Name); err != nil {
				w.log.Warn("watch new directory", zap.String("dir", ev.Name), zap.Error(err))
			}
			if err := w.scanDir(ev.Name); err != nil {
				w.log.Warn("scan new directory", zap.String("dir", ev.Name), zap.Error(err))
			}
		}
		return
	}
	if !eligible(ev.Name) {
		return
	}
	if err := w.tailFile(ev.Name); err != nil {
		w.log.Warn("tail segment", zap.String("file", ev.Name), zap.Error(err))
	}
}

// watchTree registers dir and every subdirectory with the fs watcher.
func (w *Watcher) watchTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				return errors.Wrapf(err, "watch %s", path)
			}
		}
		return nil
	})
}

// Scan walks the whole tree once, tailing every eligible segment from its
// stored offset. A bad file is logged and skipped; it never stops the scan.
func (w *Watcher) Scan() error {
	return w.scanDir(w.dir)
}

func (w *Watcher) scanDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !eligible(path) {
			return nil
		}
		if err := w.tailFile(path); err != nil {
			w.log.Warn("tail segment", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// eligible mirrors the feed's naming: .bin segments or all-numeric names.
func eligible(path string) bool {
	name := filepath.Base(path)
	if strings.HasSuffix(name, ".bin") {
		return true
	}
	if name == "" {
		return false
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// tailFile reads everything past the file's stored offset and feeds it
// through the file's decoder. Truncation (size below offset) means the
// segment was replaced: state resets and the file is read from zero.
func (w *Watcher) tailFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open segment")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "stat segment")
	}

	off := w.offsets[path]
	if uint64(info.Size()) < off {
		w.log.Warn("segment truncated, re-reading",
			zap.String("file", path),
			zap.Uint64("offset", off),
			zap.Int64("size", info.Size()))
		off = 0
		delete(w.decoders, path)
	}
	if uint64(info.Size()) == off {
		return nil
	}

	if _, err := f.Seek(int64(off), io.SeekStart); err != nil {
		return errors.Wrap(err, "seek segment")
	}

	dec, ok := w.decoders[path]
	if !ok {
		dec = feed.NewDecoder()
		w.decoders[path] = dec
	}

	buf := make([]byte, readChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			off += uint64(n)
			metrics.SegmentBytesRead.Add(float64(n))
			dec.Feed(buf[:n])
			w.drain(dec)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			w.offsets[path] = off
			return errors.Wrap(err, "read segment")
		}
	}

	w.offsets[path] = off
	if w.ckpt != nil {
		// Checkpoint only whole records: a restart must resume on a record
		// boundary, so held-back partial bytes stay uncommitted.
		committed := off - uint64(dec.Pending())
		if err := w.ckpt.SetOffset(path, committed); err != nil {
			w.log.Warn("checkpoint offset", zap.String("file", path), zap.Error(err))
		}
	}
	return nil
}

func (w *Watcher) drain(dec *feed.Decoder) {
	before := dec.Malformed()
	for {
		rec, ok := dec.Next()
		if !ok {
			break
		}
		_ = w.sink.Process(rec) // sink counts its own drops
	}
	if skipped := dec.Malformed() - before; skipped > 0 {
		metrics.MalformedRecords.Add(float64(skipped))
	}
}

func (w *Watcher) loadOffsets() error {
	if w.ckpt == nil {
		return nil
	}
	stored, err := w.ckpt.Offsets()
	if err != nil {
		return err
	}
	for path, off := range stored {
		w.offsets[path] = off
	}
	return nil
}

func (w *Watcher) flushOffsets() {
	if w.ckpt == nil {
		return
	}
	if err := w.ckpt.Flush(); err != nil {
		w.log.Warn("flush checkpoints", zap.Error(err))
	}
}
