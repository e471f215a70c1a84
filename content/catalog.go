package content

import (
	"errors"
	"fmt"
	"math/rand"
)

var errNoTiers = errors.New("catalog has no tiers")

// Catalog supplies candidate words per difficulty tier
// Immutable after construction, safe for concurrent reads
type Catalog struct {
	tiers []Tier
}

// NewCatalog builds a catalog from an ordered tier table
// Every tier must carry at least one word
func NewCatalog(tiers []Tier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, errNoTiers
	}

	copied := make([]Tier, len(tiers))
	for i, t := range tiers {
		if len(t.Words) == 0 {
			return nil, fmt.Errorf("tier %d (%s) has no words", i+1, t.Theme)
		}
		copied[i] = Tier{
			Theme: t.Theme,
			Words: append([]string(nil), t.Words...),
		}
	}

	return &Catalog{tiers: copied}, nil
}

// TierCount returns the number of defined tiers
func (c *Catalog) TierCount() int {
	return len(c.tiers)
}

// TierIndex maps a level to a zero-based tier index
// Levels below 1 clamp to the first tier, levels past the table to the last
func (c *Catalog) TierIndex(level int) int {
	idx := level - 1
	if idx < 0 {
		return 0
	}
	if idx >= len(c.tiers) {
		return len(c.tiers) - 1
	}
	return idx
}

// Tier returns the tier used for a level
func (c *Catalog) Tier(level int) Tier {
	return c.tiers[c.TierIndex(level)]
}

// Theme returns the theme label for a level
func (c *Catalog) Theme(level int) string {
	return c.tiers[c.TierIndex(level)].Theme
}

// Pick returns one word of the level's tier chosen uniformly at random
func (c *Catalog) Pick(level int, rng *rand.Rand) string {
	words := c.tiers[c.TierIndex(level)].Words
	return words[rng.Intn(len(words))]
}
