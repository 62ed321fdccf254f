package service

import "rateboard/internal/provider"

// State is a step of a rate board load.
type State string

// Load states. Applied and Exhausted are terminal.
const (
	StateInit         State = "INIT"
	StateTryingRemote State = "TRYING_REMOTE"
	StateTryingLocal  State = "TRYING_LOCAL"
	StateApplied      State = "APPLIED"
	StateExhausted    State = "EXHAUSTED"
)

// Outcome describes how a load went. It is informational only.
type Outcome struct {
	State    State
	Source   string
	Path     []State
	Failures []provider.Attempt
}

func stateForSource(name string) State {
	if name == provider.SourceRemote {
		return StateTryingRemote
	}
	return StateTryingLocal
}

// outcomeFrom replays the chain result as the load state machine.
func outcomeFrom(res provider.Result) Outcome {
	out := Outcome{
		Source:   res.Source,
		Path:     []State{StateInit},
		Failures: res.Attempts,
	}
	for _, a := range res.Attempts {
		out.Path = append(out.Path, stateForSource(a.Source))
	}
	if res.Payload == nil {
		out.State = StateExhausted
	} else {
		out.Path = append(out.Path, stateForSource(res.Source))
		out.State = StateApplied
	}
	out.Path = append(out.Path, out.State)
	return out
}
