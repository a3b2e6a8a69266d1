package bot

type OutcomeKind string

const (
	OutcomeExit      OutcomeKind = "exit"
	OutcomeResponded OutcomeKind = "responded"
	OutcomeNoMatch   OutcomeKind = "no_match"
)

// Outcome is the result of a single dispatch. Text is only set for
// OutcomeResponded.
type Outcome struct {
	Kind OutcomeKind `json:"outcome"`
	Text string      `json:"text,omitempty"`
}

func Exit() Outcome {
	return Outcome{Kind: OutcomeExit}
}

func Responded(text string) Outcome {
	return Outcome{Kind: OutcomeResponded, Text: text}
}

func NoMatch() Outcome {
	return Outcome{Kind: OutcomeNoMatch}
}

func (o Outcome) String() string {
	if o.Kind == OutcomeResponded {
		return string(o.Kind) + ": " + o.Text
	}
	return string(o.Kind)
}
