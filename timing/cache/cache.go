// Package cache models an instruction-fetch cache using Akita cache
// components. The emulators fetch through it when given the
// emu.WithFetchCache option; the cache returns the same bytes memory would
// and counts hits, misses and fetch cycles along the way.
package cache

import (
	"fmt"

	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Config holds cache configuration parameters.
type Config struct {
	// Size in bytes
	Size int `json:"size" yaml:"size"`
	// Associativity (number of ways)
	Associativity int `json:"associativity" yaml:"associativity"`
	// BlockSize in bytes (cache line size)
	BlockSize int `json:"block_size" yaml:"block_size"`
	// HitLatency in cycles
	HitLatency uint64 `json:"hit_latency" yaml:"hit_latency"`
	// MissLatency in cycles, including the fill
	MissLatency uint64 `json:"miss_latency" yaml:"miss_latency"`
}

// DefaultL1IConfig returns a 64KB, 4-way instruction cache with 64B lines.
func DefaultL1IConfig() Config {
	return Config{
		Size:          64 * 1024,
		Associativity: 4,
		BlockSize:     64,
		HitLatency:    1,
		MissLatency:   12,
	}
}

// Validate checks that the geometry yields a whole number of sets and that
// the line size is a power of two.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0 || c.Associativity <= 0 || c.BlockSize <= 0:
		return fmt.Errorf("cache size, associativity and block size must be positive")
	case c.BlockSize&(c.BlockSize-1) != 0:
		return fmt.Errorf("block size %d is not a power of two", c.BlockSize)
	case c.BlockSize < 4:
		return fmt.Errorf("block size %d is smaller than an instruction", c.BlockSize)
	case c.Size%(c.Associativity*c.BlockSize) != 0:
		return fmt.Errorf("size %d is not a multiple of associativity*block size", c.Size)
	}
	return nil
}

// AccessResult contains the result of a cache access.
type AccessResult struct {
	// Hit is true when every line touched was already cached.
	Hit bool
	// Latency is the number of cycles this access takes.
	Latency uint64
	// Data holds the bytes read, little-endian.
	Data uint64
	// Evicted is true if a valid line was replaced.
	Evicted bool
	// EvictedAddr is the address of the replaced line (if Evicted is true).
	EvictedAddr uint64
}

// Statistics holds cache performance statistics.
type Statistics struct {
	Reads     uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// Cycles is the sum of access latencies.
	Cycles uint64
}

// HitRate returns hits over line lookups, or 0 before any access.
func (s Statistics) HitRate() float64 {
	if s.Hits+s.Misses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Hits+s.Misses)
}

// BackingStore supplies lines on a miss.
type BackingStore interface {
	Read(addr uint64, size int) []byte
}

// Cache is a read-only set-associative cache using an Akita directory for
// tags and LRU replacement.
type Cache struct {
	config Config

	// Akita cache directory for tag/state management
	directory *akitacache.DirectoryImpl

	// Data storage - indexed by (setID * associativity + wayID)
	dataStore [][]byte

	stats   Statistics
	backing BackingStore
}

// New creates a new cache with the given configuration. It panics if the
// configuration does not validate.
func New(config Config, backing BackingStore) *Cache {
	if err := config.Validate(); err != nil {
		panic(err)
	}

	numSets := config.Size / (config.Associativity * config.BlockSize)
	totalBlocks := numSets * config.Associativity

	dataStore := make([][]byte, totalBlocks)
	for i := range dataStore {
		dataStore[i] = make([]byte, config.BlockSize)
	}

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
		dataStore: dataStore,
		backing:   backing,
	}
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// ResetStats clears cache statistics.
func (c *Cache) ResetStats() {
	c.stats = Statistics{}
}

func (c *Cache) blockIndex(block *akitacache.Block) int {
	return block.SetID*c.config.Associativity + block.WayID
}

func (c *Cache) lineAddr(addr uint64) uint64 {
	return addr &^ uint64(c.config.BlockSize-1)
}

// Read reads size bytes (at most 8) starting at addr. A read that crosses
// a line boundary looks up both lines; it hits only if both do and its
// latency is the sum of the two lookups.
func (c *Cache) Read(addr uint64, size int) AccessResult {
	if size < 1 || size > 8 {
		panic(fmt.Sprintf("cache: read size %d out of range", size))
	}
	c.stats.Reads++

	var result AccessResult
	result.Hit = true
	for done := 0; done < size; {
		a := addr + uint64(done)
		offset := int(a - c.lineAddr(a))
		n := min(size-done, c.config.BlockSize-offset)

		line, hit, latency, evicted := c.lookup(a)
		if !hit {
			result.Hit = false
		}
		if evicted != nil {
			result.Evicted = true
			result.EvictedAddr = *evicted
		}
		result.Latency += latency
		for i := 0; i < n; i++ {
			result.Data |= uint64(line[offset+i]) << (8 * (done + i))
		}
		done += n
	}

	c.stats.Cycles += result.Latency
	return result
}

// Fetch returns the instruction bytes at addr. It satisfies
// emu.FetchCache.
func (c *Cache) Fetch(addr uint64, size int) uint64 {
	return c.Read(addr, size).Data
}

// lookup returns the line holding addr, filling it on a miss.
func (c *Cache) lookup(addr uint64) (line []byte, hit bool, latency uint64, evicted *uint64) {
	blockAddr := c.lineAddr(addr)

	block := c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
		return c.dataStore[c.blockIndex(block)], true, c.config.HitLatency, nil
	}

	c.stats.Misses++
	victim := c.directory.FindVictim(blockAddr)
	data := c.dataStore[c.blockIndex(victim)]

	if victim.IsValid {
		c.stats.Evictions++
		tag := victim.Tag
		evicted = &tag
	}

	if c.backing != nil {
		copy(data, c.backing.Read(blockAddr, c.config.BlockSize))
	} else {
		clear(data)
	}

	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = false
	c.directory.Visit(victim)

	return data, false, c.config.MissLatency, evicted
}

// Invalidate drops the line holding addr, so that the next fetch rereads
// memory.
func (c *Cache) Invalidate(addr uint64) {
	block := c.directory.Lookup(0, c.lineAddr(addr))
	if block != nil && block.IsValid {
		block.IsValid = false
	}
}

// Reset invalidates all lines and clears statistics.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}
