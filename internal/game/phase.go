package game

import "fmt"

// Phase is the fine-grained turn sub-step. The phase machine loops until the
// game's status becomes terminal; status is tracked orthogonally on the
// aggregate, so there is no terminal phase here.
type Phase string

const (
	PhasePreparation            Phase = "preparation"
	PhaseDraw                   Phase = "draw"
	PhaseChallenge              Phase = "challenge"
	PhaseCardSelection          Phase = "card_selection"
	PhaseInsuranceTypeSelection Phase = "insurance_type_selection"
	PhaseResolution             Phase = "resolution"
)

func (p Phase) Valid() bool {
	_, ok := phaseTransitions[p]
	return ok
}

// phaseTransitions is the allowed-edge table. challenge fans out to the
// reward pick, the insurance pick, or straight to resolution when a failed
// challenge offers nothing to choose.
var phaseTransitions = map[Phase][]Phase{
	PhasePreparation:            {PhaseDraw},
	PhaseDraw:                   {PhaseChallenge},
	PhaseChallenge:              {PhaseCardSelection, PhaseInsuranceTypeSelection, PhaseResolution},
	PhaseCardSelection:          {PhaseResolution},
	PhaseInsuranceTypeSelection: {PhaseResolution},
	PhaseResolution:             {PhaseDraw},
}

// TransitionPhase validates the edge from -> to. Unknown identifiers and
// illegal edges are distinct errors so callers can tell a typo from a
// sequencing bug.
func TransitionPhase(from, to Phase) error {
	if !from.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPhase, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPhase, to)
	}
	for _, next := range phaseTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidPhaseTransition, from, to)
}

// Capability queries. The aggregate consults these before mutating and fails
// with ErrInvalidPhaseTransition otherwise.

func (p Phase) CanStartChallenge() bool { return p == PhaseDraw }

func (p Phase) CanResolveChallenge() bool { return p == PhaseChallenge }

func (p Phase) CanSelectCards() bool {
	return p == PhaseDraw || p == PhaseChallenge || p == PhaseCardSelection
}

func (p Phase) CanEndTurn() bool { return p == PhaseResolution }

// ValidActions lists the nominal actions for display purposes.
func (p Phase) ValidActions() []string {
	switch p {
	case PhasePreparation:
		return []string{"start"}
	case PhaseDraw:
		return []string{"draw_cards", "select_card", "start_challenge"}
	case PhaseChallenge:
		return []string{"select_card", "resolve_challenge", "file_claim"}
	case PhaseCardSelection:
		return []string{"select_card", "confirm_selection"}
	case PhaseInsuranceTypeSelection:
		return []string{"choose_insurance"}
	case PhaseResolution:
		return []string{"next_turn", "resolve_claim"}
	}
	return nil
}
