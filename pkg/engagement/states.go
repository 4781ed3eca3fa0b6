// Package engagement implements the deal lifecycle state machine: the fixed
// transition table, actor permissions, guards, and the transactional
// transition service that keeps the status column and the audit log in step.
package engagement

import (
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
)

// Status aliases the persisted engagement status enum; the machine operates
// directly on the stored values.
type Status = engagement.Status

// Actor aliases the audit log actor role.
type Actor = engagementevent.ActorRole

// terminalStates never admit an exit transition, admin override included.
var terminalStates = map[Status]bool{
	engagement.StatusDealPingDeclined:   true,
	engagement.StatusDealPingExpired:    true,
	engagement.StatusDeclinedByBuyer:    true,
	engagement.StatusDeclinedBySupplier: true,
	engagement.StatusExpired:            true,
	engagement.StatusCancelled:          true,
	engagement.StatusCompleted:          true,
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(s Status) bool {
	return terminalStates[s]
}
