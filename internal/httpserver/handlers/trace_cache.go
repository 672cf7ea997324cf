package handlers

import (
	"strings"
	"sync"

	"github.com/floatdrop/lru"
)

type traceKey struct {
	algorithm string
	text      string
	key       string
	decrypt   bool
}

// newTraceKey folds case only. Any other difference from a cached block must reach
// validation.
func newTraceKey(algorithm, text, key string, decrypt bool) traceKey {
	return traceKey{
		algorithm: algorithm,
		text:      strings.ToUpper(text),
		key:       strings.ToUpper(key),
		decrypt:   decrypt,
	}
}

// TraceCache keeps recent DES and AES breakdowns. Only successful traces are stored.
type TraceCache struct {
	mu  sync.Mutex
	lru *lru.LRU[traceKey, any]
}

func NewTraceCache(size int) *TraceCache {
	if size <= 0 {
		size = 256
	}
	return &TraceCache{lru: lru.New[traceKey, any](size)}
}

func (c *TraceCache) get(k traceKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v := c.lru.Get(k); v != nil {
		return *v, true
	}
	return nil, false
}

func (c *TraceCache) put(k traceKey, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Set(k, v)
}

// Len reports the number of cached breakdowns.
func (c *TraceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// load returns the cached breakdown or computes and stores it.
func (c *TraceCache) load(k traceKey, compute func() (any, error)) (any, bool, error) {
	if v, ok := c.get(k); ok {
		return v, true, nil
	}
	v, err := compute()
	if err != nil {
		return nil, false, err
	}
	c.put(k, v)
	return v, false, nil
}
