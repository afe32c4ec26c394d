package rubric

// MinLevel and MaxLevel bound the difficulty scale.
const (
	MinLevel = 1
	MaxLevel = 10
)

// Rubric holds the level-derived thresholds an answer must satisfy.
// All fields are monotonic non-decreasing in level.
type Rubric struct {
	// MinWords is the minimum whitespace-separated word count.
	MinWords int

	// MinChars is the minimum answer length in characters.
	MinChars int

	// RequireConnector demands a connector word on structure prompts.
	RequireConnector bool

	// RequireBe demands a be-verb form on description prompts.
	RequireBe bool
}

// ForLevel derives the rubric for a level (clamped to 1..10).
func ForLevel(level int) Rubric {
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return Rubric{
		MinWords:         min(18, 3+level),
		MinChars:         min(260, 20+level*12),
		RequireConnector: level >= 6,
		RequireBe:        level >= 2,
	}
}
