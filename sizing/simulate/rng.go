package simulate

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// === Key ===

// Key uniquely identifies a reproducible simulation run.
// Two runs with the same Key and identical Config MUST produce identical results.
type Key int64

// NewKey creates a Key from a seed value.
func NewKey(seed int64) Key {
	return Key(seed)
}

// === Stream names ===

// StreamControl is the random stream for the control arm.
const StreamControl = "control"

// StreamVariant returns the stream name for treatment arm i (1-based).
func StreamVariant(i int) string {
	return fmt.Sprintf("variant_%d", i)
}

// === PartitionedSource ===

// PartitionedSource provides deterministic, isolated random sources per arm,
// so adding draws to one arm never shifts another arm's sequence.
//
// Derivation: seed = key XOR fnv1a64(streamName).
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedSource struct {
	key     Key
	streams map[string]*rand.PCG
}

// NewPartitionedSource creates a PartitionedSource from a Key.
func NewPartitionedSource(key Key) *PartitionedSource {
	return &PartitionedSource{
		key:     key,
		streams: make(map[string]*rand.PCG),
	}
}

// ForStream returns the deterministically seeded source for the named stream.
// The same name always returns the same source (cached). Never returns nil.
func (p *PartitionedSource) ForStream(name string) rand.Source {
	if src, ok := p.streams[name]; ok {
		return src
	}
	h := fnv1a64(name)
	src := rand.NewPCG(uint64(int64(p.key)^h), uint64(h))
	p.streams[name] = src
	return src
}

// Key returns the Key used to create this PartitionedSource.
func (p *PartitionedSource) Key() Key {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
