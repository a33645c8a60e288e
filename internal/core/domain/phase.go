package domain

// Phase is a state of the build pipeline.
type Phase string

const (
	// PhaseIdle is the state before the working directory is wiped.
	PhaseIdle Phase = "Idle"
	// PhaseConfiguring runs the configure step.
	PhaseConfiguring Phase = "Configuring"
	// PhaseBuilding runs the build step.
	PhaseBuilding Phase = "Building"
	// PhaseInstalling runs the install step.
	PhaseInstalling Phase = "Installing"
	// PhaseDone is reached after a successful install.
	PhaseDone Phase = "Done"
	// PhaseFailed is terminal; it is entered from any running phase on failure.
	PhaseFailed Phase = "Failed"
)

var phaseSuccessor = map[Phase]Phase{
	PhaseIdle:        PhaseConfiguring,
	PhaseConfiguring: PhaseBuilding,
	PhaseBuilding:    PhaseInstalling,
	PhaseInstalling:  PhaseDone,
}

// Next returns the phase that follows p on success.
func (p Phase) Next() (Phase, bool) {
	next, ok := phaseSuccessor[p]
	return next, ok
}

// Running reports whether p executes an external process.
func (p Phase) Running() bool {
	switch p {
	case PhaseConfiguring, PhaseBuilding, PhaseInstalling:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// CanTransition reports whether the pipeline may move from p to to.
func (p Phase) CanTransition(to Phase) bool {
	if to == PhaseFailed {
		return p.Running()
	}
	next, ok := p.Next()
	return ok && next == to
}
