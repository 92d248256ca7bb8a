// Package cmap provides a generic concurrent sharded map.
//
// Keys are hashed onto a fixed set of shards, each guarded by its own
// RWMutex, so high-churn keyed state such as per-client rate limiters
// can be read and written from many goroutines without funneling
// through one lock.
//
// Usage:
//
//	m := cmap.New[string, *rate.Limiter]()
//	l, _ := m.GetOrSet(ip, rate.NewLimiter(limit, burst))
//
// Range iterates shard by shard under read locks; callers that want to
// remove entries during a sweep collect the keys first and Pop them
// afterwards.
package cmap
