package banking

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/bankcore/backend/internal/domain/shared"
)

// AccountNumberLength is the fixed width of generated account numbers
const AccountNumberLength = 10

// maxGenerateAttempts bounds the collision-retry loop. Hitting it means the
// number space is effectively exhausted or the random source is broken.
const maxGenerateAttempts = 100

// NumberExistsFunc reports whether an account number is already taken
type NumberExistsFunc func(ctx context.Context, number string) (bool, error)

// AccountNumberGenerator draws uniform 10-digit account numbers and retries
// on collision. The random source is injected so tests can force collisions.
type AccountNumberGenerator struct {
	rng    *rand.Rand
	exists NumberExistsFunc
}

// NewAccountNumberGenerator creates a generator backed by the given random
// source and uniqueness check
func NewAccountNumberGenerator(rng *rand.Rand, exists NumberExistsFunc) *AccountNumberGenerator {
	return &AccountNumberGenerator{rng: rng, exists: exists}
}

// Generate returns a fresh 10-digit account number not currently in use.
// Leading zeros are preserved; every candidate is exactly 10 characters.
func (g *AccountNumberGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		candidate := fmt.Sprintf("%010d", g.rng.Int63n(1e10))

		taken, err := g.exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", shared.NewDomainError("ACCOUNT_NUMBER_EXHAUSTED",
		fmt.Sprintf("Could not generate a unique account number after %d attempts", maxGenerateAttempts))
}
