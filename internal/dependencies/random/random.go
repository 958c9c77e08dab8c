package random

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Random is the source of game IDs and tile draws. Tests swap in mocks.MockRandom.
type Random interface {
	// Intn returns an int in [0, n), or 0 when n <= 0
	Intn(n int) int

	// String builds a string of the given length from alphabet
	String(length int, alphabet string) string
}

// Source draws tiles from a ChaCha8 stream. IDs always come from
// crypto/rand; only Intn follows the seed.
type Source struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// New returns a Source with a random seed
func New() *Source {
	var key [32]byte
	_, _ = rand.Read(key[:])
	return &Source{rng: mrand.New(mrand.NewChaCha8(key))}
}

// NewSeeded returns a Source whose tile draws repeat for the same seed
func NewSeeded(seed uint64) *Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return &Source{rng: mrand.New(mrand.NewChaCha8(key))}
}

// Intn returns an int in [0, n) from the seeded stream
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// String returns length characters picked uniformly from alphabet
func (s *Source) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	limit := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result)
}
