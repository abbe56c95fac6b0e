package compute

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// FallbackEmbedder produces a deterministic, locally-computed stand-in
// vector when the network path is unavailable.
//
// The vector is derived purely from the input text (same text, same vector),
// has the same fixed length as the network path, and is L2-normalized like
// the network model's output. It makes no attempt to match network-model
// semantics; NetworkStats.FallbacksUsed tells callers how often this
// degraded path served.
type FallbackEmbedder struct {
	dimensions int
}

// NewFallbackEmbedder returns an embedder producing vectors of the given
// length. Non-positive dimensions fall back to DefaultDimensions.
func NewFallbackEmbedder(dimensions int) *FallbackEmbedder {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &FallbackEmbedder{dimensions: dimensions}
}

// Dimensions returns the fixed vector length this embedder produces.
func (f *FallbackEmbedder) Dimensions() int {
	return f.dimensions
}

// Embed derives a unit vector from text. Pure: no network access, no
// process state, fully determined by the input.
//
// Derivation: SHA-256 of the text seeds a counter-mode expansion; each
// 32-bit word of the digest stream becomes one component in [-1, 1], and
// the finished vector is L2-normalized.
func (f *FallbackEmbedder) Embed(text string) EmbeddingVector {
	seed := sha256.Sum256([]byte(text))

	vec := make(EmbeddingVector, f.dimensions)
	var counter [8]byte

	i := 0
	for block := uint64(0); i < f.dimensions; block++ {
		binary.BigEndian.PutUint64(counter[:], block)

		h := sha256.New()
		h.Write(seed[:])
		h.Write(counter[:])
		digest := h.Sum(nil)

		for off := 0; off+4 <= len(digest) && i < f.dimensions; off += 4 {
			word := binary.BigEndian.Uint32(digest[off : off+4])
			vec[i] = float64(word)/float64(math.MaxUint32)*2 - 1
			i++
		}
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	// The expansion cannot produce an all-zero vector for any input, but
	// guard the division anyway.
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}
