package services

import (
	"sync"
	"time"
)

// PreparedStore keeps the transient per-line "prepared" ticks the
// kitchen uses while assembling a table's order. The flags are
// deliberately not part of the durable data model: they live in memory
// with a TTL and disappear on restart.
type PreparedStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[uint]time.Time // order-detail id -> expiry
}

const DefaultPreparedTTL = 4 * time.Hour

func NewPreparedStore(ttl time.Duration) *PreparedStore {
	if ttl <= 0 {
		ttl = DefaultPreparedTTL
	}
	return &PreparedStore{
		ttl:     ttl,
		entries: make(map[uint]time.Time),
	}
}

// SetPrepared marks or clears the flag for one order line.
func (p *PreparedStore) SetPrepared(detailID uint, prepared bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if prepared {
		p.entries[detailID] = time.Now().Add(p.ttl)
		return
	}
	delete(p.entries, detailID)
}

// IsPrepared reports whether the line is currently flagged.
func (p *PreparedStore) IsPrepared(detailID uint) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	expiry, ok := p.entries[detailID]
	return ok && time.Now().Before(expiry)
}

// Flags returns the current flag for each given order-detail id.
func (p *PreparedStore) Flags(detailIDs []uint) map[uint]bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	now := time.Now()
	out := make(map[uint]bool, len(detailIDs))
	for _, id := range detailIDs {
		expiry, ok := p.entries[id]
		out[id] = ok && now.Before(expiry)
	}
	return out
}

// Sweep drops expired entries. Run periodically from a cron job.
func (p *PreparedStore) Sweep() {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	for id, expiry := range p.entries {
		if now.After(expiry) {
			delete(p.entries, id)
		}
	}
}
