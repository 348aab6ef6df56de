package mood

import (
	"testing"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
)

func TestCacheLifecycle(t *testing.T) {
	t.Parallel()

	c := NewCache(5 * time.Minute)
	now := time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)

	if _, ok := c.Get(now); ok {
		t.Fatal("Get on empty cache returned a snapshot")
	}

	snap := &models.Snapshot{CreatedAt: now}
	c.Put(snap, now)

	got, ok := c.Get(now.Add(4 * time.Minute))
	if !ok {
		t.Fatal("Get within TTL missed")
	}
	if got != snap {
		t.Error("Get returned a different snapshot than Put")
	}

	if _, ok := c.Get(now.Add(5 * time.Minute)); ok {
		t.Error("Get at exactly TTL should miss")
	}
	if _, ok := c.Get(now.Add(time.Hour)); ok {
		t.Error("Get past TTL should miss")
	}
}

func TestCacheReplace(t *testing.T) {
	t.Parallel()

	c := NewCache(5 * time.Minute)
	now := time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)

	first := &models.Snapshot{CreatedAt: now}
	c.Put(first, now)

	later := now.Add(10 * time.Minute)
	second := &models.Snapshot{CreatedAt: later}
	c.Put(second, later)

	got, ok := c.Get(later.Add(time.Minute))
	if !ok {
		t.Fatal("Get within refreshed TTL missed")
	}
	if got != second {
		t.Error("Get returned the stale snapshot")
	}
}

func TestCacheZeroTTL(t *testing.T) {
	t.Parallel()

	c := NewCache(0)
	now := time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)
	c.Put(&models.Snapshot{CreatedAt: now}, now)

	if _, ok := c.Get(now.Add(DefaultTTL - time.Second)); !ok {
		t.Error("zero ttl should fall back to the default TTL")
	}
}
