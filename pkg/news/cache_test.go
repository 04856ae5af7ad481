package news

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestCachePutGet(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	c := NewCache(15*time.Minute, func() time.Time { return now })

	articles := []Article{{Title: "Chip maker expands"}}
	c.Put("technology", articles)

	got, ok := c.Get("technology")
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Chip maker expands", got[0].Title)
}

func TestCacheExpires(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	c := NewCache(15*time.Minute, func() time.Time { return now })

	c.Put("technology", []Article{{Title: "x"}})

	now = now.Add(15 * time.Minute)

	_, ok := c.Get("technology")
	assert.Equal(t, false, ok)
}

func TestCacheJustBeforeExpiry(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	c := NewCache(15*time.Minute, func() time.Time { return now })

	c.Put("technology", []Article{{Title: "x"}})

	now = now.Add(15*time.Minute - time.Second)

	_, ok := c.Get("technology")
	assert.Equal(t, true, ok)
}

func TestCacheMissOnAbsent(t *testing.T) {
	c := NewCache(15*time.Minute, nil)

	_, ok := c.Get("health")
	assert.Equal(t, false, ok)
}

func TestCachePutOverwrites(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	c := NewCache(15*time.Minute, func() time.Time { return now })

	c.Put("business", []Article{{Title: "old"}})

	now = now.Add(20 * time.Minute)
	c.Put("business", []Article{{Title: "new"}})

	got, ok := c.Get("business")
	assert.Equal(t, true, ok)
	assert.Equal(t, "new", got[0].Title)
}
