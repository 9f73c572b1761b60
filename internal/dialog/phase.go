package dialog

import "petfinder-bot/internal/models"

// Phase is the stage of the dialog a code hook invocation belongs to.
type Phase int

const (
	PhaseValidating Phase = iota
	PhaseFulfilling
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseFulfilling:
		return "fulfilling"
	default:
		return "unknown"
	}
}

// PhaseOf maps the invocation source to a phase. Only DialogCodeHook
// validates; every other source fulfills.
func PhaseOf(source models.InvocationSource) Phase {
	if source == models.SourceDialogCodeHook {
		return PhaseValidating
	}
	return PhaseFulfilling
}
