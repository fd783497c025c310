// Package dice is the random outcome source used for damage and loot rolls.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/jwebster45206/d20"
)

// Source draws uniform integers in [min, max], inclusive on both ends.
type Source interface {
	IntBetween(min, max int) int
}

// Rand rolls through a seeded d20 roller. It is not safe for concurrent
// use; wrap it with NewLocked when an engine is shared.
type Rand struct {
	roller *d20.Roller
}

var _ Source = (*Rand)(nil)

// NewRand returns a Source seeded with seed. The same seed replays the same
// sequence of draws.
func NewRand(seed uint64) *Rand {
	return &Rand{roller: d20.NewRoller(int64(seed))}
}

// NewSource returns a Rand seeded from crypto/rand.
func NewSource() (*Rand, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewRand(seed), nil
}

// NewSeed reads a high-entropy seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// IntBetween rolls one die with max-min+1 faces, shifted down to start at
// min. When min >= max it returns min without rolling.
func (d *Rand) IntBetween(min, max int) int {
	if min >= max {
		return min
	}
	out, err := d.roller.Dice(1, uint(max-min+1)).WithModifier("min", min-1).Roll()
	if err != nil {
		return min
	}
	return out.Value
}

// Locked serializes access to a Source that is not safe for concurrent use.
type Locked struct {
	mu  sync.Mutex
	src Source
}

var _ Source = (*Locked)(nil)

// NewLocked wraps src.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// NewRandomLocked returns a concurrency-safe source seeded from the clock.
func NewRandomLocked() *Locked {
	return NewLocked(&Rand{roller: d20.NewRandomRoller()})
}

func (l *Locked) IntBetween(min, max int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntBetween(min, max)
}
