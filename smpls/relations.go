package smpls

import "fmt"

// GammaPair states that Event is processed by the input action Outcome.
type GammaPair struct {
	Event   string
	Outcome string
}

// SigmaPair states that the output action Mode emits Event.
type SigmaPair struct {
	Mode  string
	Event string
}

// Relations holds the two event relations of a model. Lookups scan the
// pairs in order and the first match wins.
type Relations struct {
	Gamma []GammaPair
	Sigma []SigmaPair
}

// EventByOutcome returns the event processed by outcome, or ErrLookup.
func (r Relations) EventByOutcome(outcome string) (string, error) {
	for _, p := range r.Gamma {
		if p.Outcome == outcome {
			return p.Event, nil
		}
	}

	return "", fmt.Errorf("event of outcome %q: %w", outcome, ErrLookup)
}

// EventByMode returns the event emitted by mode, or ErrLookup.
func (r Relations) EventByMode(mode string) (string, error) {
	for _, p := range r.Sigma {
		if p.Mode == mode {
			return p.Event, nil
		}
	}

	return "", fmt.Errorf("event of mode %q: %w", mode, ErrLookup)
}

// EventsOfMode returns every event emitted by mode, in relation order.
func (r Relations) EventsOfMode(mode string) []string {
	var out []string
	for _, p := range r.Sigma {
		if p.Mode == mode {
			out = append(out, p.Event)
		}
	}

	return out
}

// Processes reports whether (event, outcome) belongs to γ.
func (r Relations) Processes(event, outcome string) bool {
	for _, p := range r.Gamma {
		if p.Event == event && p.Outcome == outcome {
			return true
		}
	}

	return false
}
