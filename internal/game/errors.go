package game

import "errors"

// Error taxonomy for the rules engine. Every public operation either succeeds
// with a well-defined state change or fails with one of these, leaving the
// aggregate untouched.
var (
	ErrValidation             = errors.New("validation failed")
	ErrInvalidPhaseTransition = errors.New("invalid phase transition")
	ErrUnknownPhase           = errors.New("unknown phase")
	ErrInvalidCardType        = errors.New("invalid card type")
	ErrNoActiveChallenge      = errors.New("no active challenge")
	ErrGameNotStarted         = errors.New("game not started")
	ErrGameAlreadyStarted     = errors.New("game already started")
	ErrClaimPending           = errors.New("insurance claim pending resolution")
)
