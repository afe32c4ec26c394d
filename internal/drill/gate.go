// Package drill runs the adaptive remediation mini-session that follows
// a weak round. A gate tracks a correctness streak; clearing it is the
// only exit, and wrong answers reset the streak without ever ending the
// session.
package drill

import (
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/tags"
)

// MaxTarget caps the streak target regardless of level and severity.
const MaxTarget = 6

// SeverityWrongCount is the round wrong-answer count at which the gate
// grows by one.
const SeverityWrongCount = 8

// Kind selects the drill family served inside a gate.
type Kind string

const (
	KindSpelling  Kind = "spelling"
	KindVerb      Kind = "verb"
	KindGender    Kind = "gender"
	KindOrder     Kind = "order"
	KindBe        Kind = "be"
	KindConnector Kind = "connector"
	KindDetail    Kind = "detail"
	KindUpgrade   Kind = "upgrade"
)

// grammarKinds require language pattern tables; unmodeled languages
// fall back to the detail drill.
var grammarKinds = map[Kind]bool{
	KindSpelling: true,
	KindVerb:     true,
	KindGender:   true,
	KindOrder:    true,
	KindBe:       true,
}

// KindForFocus maps a round focus tag to a drill kind.
func KindForFocus(tag tags.Tag, code lang.Code) Kind {
	var k Kind
	switch tag {
	case tags.TagSpelling:
		k = KindSpelling
	case tags.TagVerbForm:
		k = KindVerb
	case tags.TagArticlesGender, tags.TagArticles:
		k = KindGender
	case tags.TagWordOrder:
		k = KindOrder
	case tags.TagMissingBe:
		k = KindBe
	case tags.TagNoConnector:
		k = KindConnector
	case tags.TagTooShort, tags.TagDetail:
		k = KindDetail
	default:
		k = KindUpgrade
	}
	if grammarKinds[k] && !lang.Populated(code) {
		return KindDetail
	}
	return k
}

// Stats tracks gate progress. Attempts always increments on submit;
// Streak resets to zero on a miss.
type Stats struct {
	Correct  int
	Attempts int
	Streak   int
}

// Gate is the streak-gated exit condition for one remediation session.
// Cleared is monotonic: once true it never resets within a session.
type Gate struct {
	Kind    Kind
	Target  int
	Stats   Stats
	Cleared bool

	// Mandatory is true when the triggering round failed; the caller
	// routes back to retry the round after the gate clears. Optional
	// gates may advance to the next level instead.
	Mandatory bool
}

// TargetFor sizes the gate from the level and the triggering round's
// wrong-answer count. The base steps in level bands of two (1–2→2,
// 3–4→3, … 9–10→6); heavy rounds add one, capped at MaxTarget.
func TargetFor(level, roundWrong int) int {
	if level < 1 {
		level = 1
	}
	if level > 10 {
		level = 10
	}
	base := 1 + (level+1)/2
	severity := 0
	if roundWrong >= SeverityWrongCount {
		severity = 1
	}
	return min(MaxTarget, base+severity)
}

// NewGate builds a gate for a remediation session.
func NewGate(focus tags.RoundFocus, code lang.Code, level, roundWrong int, mandatory bool) *Gate {
	return &Gate{
		Kind:      KindForFocus(focus.Tag, code),
		Target:    TargetFor(level, roundWrong),
		Mandatory: mandatory,
	}
}

// Record applies one submission outcome to the gate.
func (g *Gate) Record(ok bool) {
	g.Stats.Attempts++
	if ok {
		g.Stats.Correct++
		g.Stats.Streak++
		if g.Stats.Streak >= g.Target {
			g.Cleared = true
		}
	} else {
		g.Stats.Streak = 0
	}
}
