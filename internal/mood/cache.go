package mood

import (
	"sync"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
)

// Cache memoizes the most recent snapshot. It is injected into the Assembler
// so derivation stays pure and independently testable.
type Cache interface {
	Get(now time.Time) (*models.Snapshot, bool)
	Put(snap *models.Snapshot, now time.Time)
}

// DefaultTTL is how long a snapshot stays fresh.
const DefaultTTL = 5 * time.Minute

// memoryCache is a single-slot TTL memo.
type memoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	snap    *models.Snapshot
	created time.Time
}

// NewCache returns a single-slot cache with the given TTL. A zero ttl
// falls back to DefaultTTL.
func NewCache(ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryCache{ttl: ttl}
}

func (c *memoryCache) Get(now time.Time) (*models.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap == nil || now.Sub(c.created) >= c.ttl {
		return nil, false
	}
	return c.snap, true
}

func (c *memoryCache) Put(snap *models.Snapshot, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
	c.created = now
}
