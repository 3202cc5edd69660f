package game

// ClaimTrigger identifies which watched condition fired.
type ClaimTrigger string

const (
	TriggerHeavyDamage   ClaimTrigger = "on_heavy_damage"
	TriggerDeath         ClaimTrigger = "on_death"
	TriggerAgingGameOver ClaimTrigger = "on_aging_gameover"
	TriggerOnDemand      ClaimTrigger = "on_demand"
)

// ClaimContext carries the suspended consequence's raw inputs so resolution
// can report what was intercepted.
type ClaimContext struct {
	Damage float64 `json:"damage,omitempty"`
}

// InsuranceClaim is the ephemeral record of a suspended consequence. It is
// created the instant a trigger condition is detected and destroyed the
// instant it is resolved; at most one exists per game at a time.
type InsuranceClaim struct {
	Insurance Card         `json:"insurance"`
	Trigger   ClaimTrigger `json:"trigger"`
	Context   ClaimContext `json:"context"`
}
