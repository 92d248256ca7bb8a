// Package eval provides the evaluation services for GravSweep.
package eval

import (
	"encoding/binary"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spaolacci/murmur3"

	"github.com/gravsweep/gravsweep-go/internal/core/metric"
)

// cacheKey is the 128-bit murmur3 digest of (model identity, inputs).
type cacheKey struct {
	hi, lo uint64
}

// componentCache memoizes evaluation outputs for cacheable models.
//
// Entries are full Components values; they are treated as immutable once
// inserted, so hits can be returned without copying.
type componentCache struct {
	lru *lru.Cache[cacheKey, metric.Components]
}

// newComponentCache creates a cache holding up to size entries.
func newComponentCache(size int) (*componentCache, error) {
	c, err := lru.New[cacheKey, metric.Components](size)
	if err != nil {
		return nil, metric.ErrInvalidArgument.WithDetails("cache size").WithCause(err)
	}
	return &componentCache{lru: c}, nil
}

// key derives the cache key for an evaluation.
//
// The model display name carries the model's identity including its free
// parameter, so two instances of the same family with different alphas
// never collide.
func (c *componentCache) key(modelName string, r []float64, p metric.Params) cacheKey {
	h := murmur3.New128()
	h.Write([]byte(modelName))
	h.Write([]byte{0})

	var buf [8]byte
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	writeFloat(p.Mass)
	writeFloat(p.LightSpeed)
	writeFloat(p.Gravity)
	for _, v := range r {
		writeFloat(v)
	}

	hi, lo := h.Sum128()
	return cacheKey{hi: hi, lo: lo}
}

// get probes the cache.
func (c *componentCache) get(k cacheKey) (metric.Components, bool) {
	return c.lru.Get(k)
}

// add inserts an entry.
func (c *componentCache) add(k cacheKey, comps metric.Components) {
	c.lru.Add(k, comps)
}

// len returns the current entry count.
func (c *componentCache) len() int {
	return c.lru.Len()
}
