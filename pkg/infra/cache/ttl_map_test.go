package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTTLMapWithClock(30*time.Second, func() time.Time { return now })

	m.Set("u1", "prefs")
	v, ok := m.Get("u1")
	assert.True(t, ok)
	assert.Equal(t, "prefs", v)

	now = now.Add(31 * time.Second)
	_, ok = m.Get("u1")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_DeleteAndClear(t *testing.T) {
	m := NewTTLMap(time.Minute)
	m.Set("a", 1)
	m.Set("b", 2)

	m.Delete("a")
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestClient_TTLMaps(t *testing.T) {
	c := NewClientFromRedis(nil)
	created := c.CreateTTLMap(PreferencesTTLName, time.Minute)
	assert.Same(t, created, c.GetTTLMap(PreferencesTTLName))
	assert.Same(t, created, c.CreateTTLMap(PreferencesTTLName, time.Hour))
	assert.Nil(t, c.GetTTLMap("missing"))

	created.Set("k", "v")
	c.ClearAllTTLMaps()
	assert.Equal(t, 0, created.Len())
}
