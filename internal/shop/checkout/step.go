package checkout

import "fmt"

// Step is the top-level checkout state. Processing is a flag inside
// StepPayment, not a step of its own.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s Step) IsTerminal() bool {
	return s == StepConfirmed
}

// MarshalText renders the step by name in JSON and logs.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	for _, candidate := range []Step{StepShipping, StepPayment, StepConfirmed} {
		if candidate.String() == string(b) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown checkout step %q", b)
}
