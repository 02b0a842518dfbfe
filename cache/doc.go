// Package cache provides a concurrency-safe, sharded LRU cache used to
// memoise glyph layouts.
//
// Keys are spread over a fixed number of shards with hash/maphash so that
// concurrent renders of different text rarely contend on the same lock.
// Each shard evicts its least recently used entry once it holds more than
// its share of the capacity.
package cache
