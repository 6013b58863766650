package service

import "time"

// Generation outcomes recorded by Metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeBlocked = "blocked"
)

// Metrics records business counters alongside the HTTP instrumentation.
type Metrics interface {
	ObserveGeneration(outcome string, elapsed time.Duration)
	IncOrder(status string)
	IncSave(visibility string)
}
