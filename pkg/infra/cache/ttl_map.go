package cache

import (
	"sync"
	"time"
)

type ttlEntry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLMap is a process-local map whose entries expire ttl after their last Set.
// Expired entries are evicted lazily on Get.
type TTLMap struct {
	mu      sync.RWMutex
	entries map[string]ttlEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewTTLMap(ttl time.Duration) *TTLMap {
	return NewTTLMapWithClock(ttl, time.Now)
}

func NewTTLMapWithClock(ttl time.Duration, now func() time.Time) *TTLMap {
	if now == nil {
		now = time.Now
	}
	return &TTLMap{
		entries: make(map[string]ttlEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (m *TTLMap) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().Before(entry.expiresAt) {
		return entry.value, true
	}

	m.mu.Lock()
	// a concurrent Set may have refreshed the entry
	if current, ok := m.entries[key]; ok && !m.now().Before(current.expiresAt) {
		delete(m.entries, key)
	}
	m.mu.Unlock()
	return nil, false
}

func (m *TTLMap) Set(key string, value interface{}) {
	m.mu.Lock()
	m.entries[key] = ttlEntry{value: value, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
}

func (m *TTLMap) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *TTLMap) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]ttlEntry)
	m.mu.Unlock()
}

// Len counts stored entries, expired or not.
func (m *TTLMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
