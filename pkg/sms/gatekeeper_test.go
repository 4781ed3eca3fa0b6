package sms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse-exchange/wex/pkg/config"
)

func TestCheckInbound(t *testing.T) {
	cfg := config.DefaultSMSConfig()

	assert.Equal(t, RejectEmpty, CheckInbound("   ", cfg))
	assert.Equal(t, RejectTooLong, CheckInbound(strings.Repeat("a", 1601), cfg))
	assert.Equal(t, RejectProfanity, CheckInbound("this is shit", cfg))
	assert.Empty(t, CheckInbound("need 5000 sqft in Tampa", cfg))
}

func TestCheckOutbound_Lengths(t *testing.T) {
	cfg := config.DefaultSMSConfig()

	short := "too short"
	assert.Contains(t, CheckOutbound(short, OutboundContext{}, cfg), "too_short")

	long := strings.Repeat("a good reply sentence. ", 25) // ~575 chars
	assert.Contains(t, CheckOutbound(long, OutboundContext{}, cfg), "too_long")

	// Same text passes under the first-message limit.
	assert.NotContains(t, CheckOutbound(long, OutboundContext{FirstMessage: true}, cfg), "too_long")

	// A URL also raises the limit.
	withURL := long + " https://wex.example.com/g/abc"
	assert.NotContains(t, CheckOutbound(withURL, OutboundContext{}, cfg), "too_long")
}

func TestCheckOutbound_Quality(t *testing.T) {
	cfg := config.DefaultSMSConfig()

	assert.Contains(t,
		CheckOutbound("Sounds greaaaaaaat, we have the perfect space for you here", OutboundContext{}, cfg),
		"repeated_characters")

	assert.Contains(t,
		CheckOutbound("1234 5678 !!!! ???? 9999 $$$$ 0000 ****", OutboundContext{}, cfg),
		"low_letter_ratio")

	spam := "space space space space space space here for your space needs"
	assert.Contains(t, CheckOutbound(spam, OutboundContext{}, cfg), "word_repetition")

	twoPhones := "Call 555-123-4567 or 555-765-4321 to reach the owner about this listing"
	assert.Contains(t, CheckOutbound(twoPhones, OutboundContext{}, cfg), "multiple_phone_numbers")

	twoEmails := "Reach us at a@example.com or b@example.com for details about this warehouse"
	assert.Contains(t, CheckOutbound(twoEmails, OutboundContext{}, cfg), "multiple_emails")
}

func TestCheckOutbound_ContextRules(t *testing.T) {
	cfg := config.DefaultSMSConfig()

	noLink := "You're all set, just sign the guarantee and we can move forward together."
	assert.Contains(t, CheckOutbound(noLink, OutboundContext{Commitment: true}, cfg),
		"commitment_without_link")

	withLink := "Sign the guarantee here and the address unlocks right after: https://wex.example.com/g/abc"
	assert.NotContains(t, CheckOutbound(withLink, OutboundContext{Commitment: true}, cfg),
		"commitment_without_link")

	noSched := "The owner is excited to meet you and talk everything over in detail."
	assert.Contains(t, CheckOutbound(noSched, OutboundContext{TourScheduling: true}, cfg),
		"tour_without_scheduling")

	sched := "The owner can do a tour tomorrow morning, does 10am work for you?"
	assert.NotContains(t, CheckOutbound(sched, OutboundContext{TourScheduling: true}, cfg),
		"tour_without_scheduling")

	noAck := "That space has great bones and plenty of room for everything you described."
	assert.Contains(t, CheckOutbound(noAck, OutboundContext{AwaitingAnswer: true}, cfg),
		"missing_acknowledgement")

	ack := "I'm checking with the owner on that and will get back to you shortly."
	assert.NotContains(t, CheckOutbound(ack, OutboundContext{AwaitingAnswer: true}, cfg),
		"missing_acknowledgement")
}

func TestCheckOutbound_CleanReplyPasses(t *testing.T) {
	cfg := config.DefaultSMSConfig()
	reply := "Found 2 options for you in Tampa. Reply with a number to hear more about one."
	assert.Empty(t, CheckOutbound(reply, OutboundContext{}, cfg))
}

func TestTrimToLimit(t *testing.T) {
	assert.Equal(t, "short", TrimToLimit("short", 100))

	s := "First sentence here. Second sentence is longer and will be cut off somewhere."
	got := TrimToLimit(s, 40)
	assert.Equal(t, "First sentence here.", got)
	assert.LessOrEqual(t, len(got), 40)

	// No sentence boundary falls back to the last word boundary.
	words := "one two three four five six seven eight"
	got = TrimToLimit(words, 17)
	assert.Equal(t, "one two three", got)
}
