package dice

import (
	"math/rand"
	"sync"
	"time"

	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

// randomRoller implements Roller with a seedable pseudo-random source
type randomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// RollerConfig holds configuration for the random roller
type RollerConfig struct {
	// Seed is an optional fixed seed for reproducible rolls in tests
	Seed int64
}

// NewRandomRoller creates a new random dice roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(&RollerConfig{})
}

// NewSeededRoller creates a random dice roller with an explicit seed.
// A zero seed falls back to the clock.
func NewSeededRoller(cfg *RollerConfig) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, bserr.InvalidArgumentf("invalid dice count %d", count)
	}

	if sides < 1 {
		return nil, bserr.InvalidArgumentf("invalid dice sides %d", sides)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	rawTotal := 0
	for i := 0; i < count; i++ {
		roll := r.random.Intn(sides) + 1
		rolls[i] = roll
		rawTotal += roll
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}
