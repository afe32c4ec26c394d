// Package sampler selects each round's prompts from a theme bank,
// avoiding recent repeats and capping structure-heavy prompts per level.
package sampler

import (
	"math/rand/v2"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
)

// PromptsPerRound is the fixed round size.
const PromptsPerRound = 10

// HistorySize is the rolling buffer of recently served prompt keys.
const HistorySize = 30

// Sampler draws prompt rounds. The caller owns the history buffer and
// persists it between rounds; the sampler itself keeps no state.
type Sampler struct {
	rng *rand.Rand
}

// New creates a Sampler with its own random source.
func New() *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a Sampler with a fixed seed, for tests.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// ConnectorCap returns the per-level maximum of connector-flagged
// prompts in a round.
func ConnectorCap(level int) int {
	switch {
	case level <= 2:
		return 2
	case level == 3:
		return 3
	case level <= 5:
		return 4
	default:
		return 5
	}
}

// connectorFlagged reports whether a prompt counts against the cap.
func connectorFlagged(p content.Prompt) bool {
	return p.Badge == content.BadgeStructure || lang.HasTopicCue(p.Text)
}

// Sample returns exactly PromptsPerRound prompts (when the bank has
// enough usable entries) plus the updated history buffer. A nil or
// corrupt history is treated as empty, never an error.
func (s *Sampler) Sample(bank []content.Prompt, level int, history []string) ([]content.Prompt, []string) {
	seen := make(map[string]bool)
	var unique []content.Prompt
	for _, p := range bank {
		key := lang.Normalize(p.Text)
		if key == "" || key == "-" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	if len(unique) == 0 {
		return nil, truncateHistory(history)
	}

	recent := make(map[string]bool, len(history))
	for _, k := range history {
		if k != "" {
			recent[k] = true
		}
	}

	var connFresh, connStale, otherFresh, otherStale []content.Prompt
	for _, p := range unique {
		fresh := !recent[lang.Normalize(p.Text)]
		switch {
		case connectorFlagged(p) && fresh:
			connFresh = append(connFresh, p)
		case connectorFlagged(p):
			connStale = append(connStale, p)
		case fresh:
			otherFresh = append(otherFresh, p)
		default:
			otherStale = append(otherStale, p)
		}
	}

	connCap := ConnectorCap(level)
	var sel []content.Prompt

	// Fresh prompts first: connector partition up to the cap, the rest
	// from the other partition.
	for _, p := range connFresh {
		if len(sel) >= PromptsPerRound || countConnector(sel) >= connCap {
			break
		}
		sel = append(sel, p)
	}
	for _, p := range otherFresh {
		if len(sel) >= PromptsPerRound {
			break
		}
		sel = append(sel, p)
	}

	// Reuse history entries before cycling.
	for _, p := range otherStale {
		if len(sel) >= PromptsPerRound {
			break
		}
		sel = append(sel, p)
	}
	for _, p := range connStale {
		if len(sel) >= PromptsPerRound || countConnector(sel) >= connCap {
			break
		}
		sel = append(sel, p)
	}
	// Cap exceeded only when nothing else is left.
	for _, p := range append(connFresh, connStale...) {
		if len(sel) >= PromptsPerRound {
			break
		}
		if !contains(sel, p) {
			sel = append(sel, p)
		}
	}

	// Cycling as last resort for tiny banks.
	for i := 0; len(sel) < PromptsPerRound; i++ {
		sel = append(sel, unique[i%len(unique)])
	}

	s.rng.Shuffle(len(sel), func(i, j int) { sel[i], sel[j] = sel[j], sel[i] })
	repairAdjacency(sel)

	for _, p := range sel {
		history = append(history, lang.Normalize(p.Text))
	}
	return sel, truncateHistory(history)
}

func countConnector(sel []content.Prompt) int {
	n := 0
	for _, p := range sel {
		if connectorFlagged(p) {
			n++
		}
	}
	return n
}

func contains(sel []content.Prompt, p content.Prompt) bool {
	key := lang.Normalize(p.Text)
	for _, q := range sel {
		if lang.Normalize(q.Text) == key {
			return true
		}
	}
	return false
}

// repairAdjacency swaps a duplicated neighbor with a later distinct
// entry so identical prompts never sit next to each other.
func repairAdjacency(sel []content.Prompt) {
	for i := 1; i < len(sel); i++ {
		if lang.Normalize(sel[i].Text) != lang.Normalize(sel[i-1].Text) {
			continue
		}
		for j := i + 1; j < len(sel); j++ {
			if lang.Normalize(sel[j].Text) != lang.Normalize(sel[i-1].Text) {
				sel[i], sel[j] = sel[j], sel[i]
				break
			}
		}
	}
}

func truncateHistory(history []string) []string {
	if len(history) > HistorySize {
		history = history[len(history)-HistorySize:]
	}
	return history
}
