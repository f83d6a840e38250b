package bench

import (
	"hash"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spaolacci/murmur3"
)

// KeyGen produces a deterministic stream of unique keys.
//
// Keys are lowercased ULIDs with an "om-" prefix. A fixed seed feeds
// the ULID entropy, so two generators with the same seed emit the same
// key sequence.
type KeyGen struct {
	entropy *ulid.MonotonicEntropy
	now     uint64
}

// NewKeyGen creates a key generator. A zero seed derives one from the
// current time.
func NewKeyGen(seed uint64) *KeyGen {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.New(rand.NewSource(int64(seed)))
	return &KeyGen{
		entropy: ulid.Monotonic(src, 0),
		now:     ulid.Timestamp(time.Now()),
	}
}

// Next returns the next key in the stream.
func (g *KeyGen) Next() string {
	id := ulid.MustNew(g.now, g.entropy)
	return "om-" + strings.ToLower(id.String())
}

// Keys returns the next n keys in the stream.
func (g *KeyGen) Keys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = g.Next()
	}
	return keys
}

// OrderDigest accumulates a 64-bit murmur3 hash over a key sequence.
// Two sequences have equal digests only if they contain the same keys
// in the same order, so digests stand in for full expected-order
// comparisons on large runs.
type OrderDigest struct {
	h hash.Hash64
	n int
}

// NewOrderDigest creates an empty digest.
func NewOrderDigest() *OrderDigest {
	return &OrderDigest{h: murmur3.New64()}
}

// Add folds the next key into the digest.
func (d *OrderDigest) Add(key string) {
	// The separator keeps ("ab","c") distinct from ("a","bc").
	d.h.Write([]byte(key))
	d.h.Write([]byte{0})
	d.n++
}

// Sum returns the digest of the sequence added so far.
func (d *OrderDigest) Sum() uint64 {
	return d.h.Sum64()
}

// Count returns the number of keys added.
func (d *OrderDigest) Count() int {
	return d.n
}

// DigestOf returns the order digest of a key slice.
func DigestOf(keys []string) uint64 {
	d := NewOrderDigest()
	for _, k := range keys {
		d.Add(k)
	}
	return d.Sum()
}

// DigestOfReverse returns the order digest of a key slice traversed
// back to front, without copying it.
func DigestOfReverse(keys []string) uint64 {
	d := NewOrderDigest()
	for i := len(keys) - 1; i >= 0; i-- {
		d.Add(keys[i])
	}
	return d.Sum()
}
