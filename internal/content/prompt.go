package content

// Badge is a coarse category tag on a prompt indicating which rubric
// requirements apply to answers.
type Badge string

const (
	// BadgeStructure marks prompts that ask for reasons or sequencing,
	// where a connector word is expected.
	BadgeStructure Badge = "structure"

	// BadgeSer marks description prompts where a be-verb is expected.
	BadgeSer Badge = "ser"

	// BadgeAccent marks prompts practicing accented vocabulary.
	BadgeAccent Badge = "accent"

	// BadgeVocab marks general vocabulary prompts.
	BadgeVocab Badge = "vocab"
)

// Prompt is one writing prompt drawn from a theme bank. Immutable.
type Prompt struct {
	// Text is the prompt question shown to the learner.
	Text string

	// Badge categorizes the prompt for rubric and sampling purposes.
	Badge Badge

	// Chips are suggestion words displayed alongside the prompt.
	Chips []string
}
