// Package market holds the directory of markets the engine tracks: numeric
// id, display symbol, active flag. The directory is read-mostly; per-market
// book state lives elsewhere, keyed by id.
package market

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

// ErrUnknownMarket marks an id outside the tracked set.
var ErrUnknownMarket = errors.New("market: unknown market id")

// Info describes one tradable instrument.
type Info struct {
	ID     uint32 `json:"market_id"`
	Symbol string `json:"symbol"`
	Active bool   `json:"active"`
}

// Registry is the id -> Info directory.
type Registry struct {
	mu      sync.RWMutex
	markets map[uint32]Info
}

func NewRegistry() *Registry {
	return &Registry{markets: make(map[uint32]Info)}
}

// LoadRegistry reads a JSON array of markets from path.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markets file: %w", err)
	}
	var infos []Info
	if err := json.Unmarshal(data, &infos); err != nil {
		return nil, fmt.Errorf("parse markets file %s: %w", path, err)
	}
	r := NewRegistry()
	for _, info := range infos {
		r.Put(info)
	}
	return r, nil
}

// Put inserts or replaces a market entry. A missing symbol gets the
// MARKET-<id> fallback.
func (r *Registry) Put(info Info) {
	if info.Symbol == "" {
		info.Symbol = fmt.Sprintf("MARKET-%d", info.ID)
	}
	r.mu.Lock()
	r.markets[info.ID] = info
	r.mu.Unlock()
}

// Get looks up one market.
func (r *Registry) Get(id uint32) (Info, error) {
	r.mu.RLock()
	info, ok := r.markets[id]
	r.mu.RUnlock()
	if !ok {
		return Info{}, fmt.Errorf("%w: %d", ErrUnknownMarket, id)
	}
	return info, nil
}

// Contains reports whether id is tracked.
func (r *Registry) Contains(id uint32) bool {
	r.mu.RLock()
	_, ok := r.markets[id]
	r.mu.RUnlock()
	return ok
}

// IDs returns the tracked ids in ascending order.
func (r *Registry) IDs() []uint32 {
	r.mu.RLock()
	ids := make([]uint32, 0, len(r.markets))
	for id := range r.markets {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// List returns all entries ordered by id.
func (r *Registry) List() []Info {
	ids := r.IDs()
	out := make([]Info, 0, len(ids))
	r.mu.RLock()
	for _, id := range ids {
		out = append(out, r.markets[id])
	}
	r.mu.RUnlock()
	return out
}
