package engagement

// Event types beyond plain status transitions. Transition events carry the
// target status as their type; these are the extra rows jobs and side effects
// append. Scheduler jobs key their idempotence on (engagement, type, day), so
// these values are part of the storage contract.
const (
	EventReminderSent   = "reminder_sent"
	EventFollowUpSent   = "follow_up_sent"
	EventAdminNote      = "admin_note"
	EventLeaseActivated = "lease_activated"
	EventRenewalPrompt  = "renewal_prompt"
	EventTimerPaused    = "decision_timer_paused"
	EventTimerResumed   = "decision_timer_resumed"
)
