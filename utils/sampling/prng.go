// Package sampling implements deterministic generation of reproducible
// pseudo-random values, used by the randomized interpolation tests.
package sampling

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is a structure storing the parameters used to *deterministically*
// generate a sequence of pseudo-random bytes from a key, using the hash
// function blake2b. Two KeyedPRNG instantiated with the same key produce the
// same stream of bytes.
// WARNING: KeyedPRNG's methods should not be called concurrently. If that
// occurs, the generated sequence will not be deterministic.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	var err error
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with `NewKeyedPRNG` to instantiate a new PRNG that
// will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Fork derives a new KeyedPRNG whose key is the blake3 hash of the parent key
// and label. Forks with distinct labels produce independent deterministic
// streams, which lets each subtest consume its own stream regardless of the
// order the subtests run in.
func (prng *KeyedPRNG) Fork(label string) (*KeyedPRNG, error) {
	hasher := blake3.New()
	hasher.Write(prng.key)
	hasher.Write([]byte(label))
	return NewKeyedPRNG(hasher.Sum(nil))
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// Float64 returns the next pseudo-random float between min and max.
func (prng *KeyedPRNG) Float64(min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}
