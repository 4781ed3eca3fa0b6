package engagement

import "fmt"

// InvalidTransitionError rejects a (from, actor, target) triple the machine
// does not admit. Nothing was mutated and no event was written.
type InvalidTransitionError struct {
	EngagementID string
	From         Status
	Target       Status
	Actor        Actor
	Reason       string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition on engagement %s: %s -> %s as %s: %s",
		e.EngagementID, e.From, e.Target, e.Actor, e.Reason)
}

// GuardError rejects a reachable transition whose precondition does not hold.
type GuardError struct {
	EngagementID string
	Target       Status
	Reason       string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("transition guard failed on engagement %s -> %s: %s",
		e.EngagementID, e.Target, e.Reason)
}
