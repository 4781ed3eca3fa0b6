package marketrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFallback_CoversAllStates(t *testing.T) {
	assert.Len(t, stateFallback, 51)
	for state, b := range stateFallback {
		assert.Len(t, state, 2)
		assert.Greater(t, b.Low, 0.0, "state %s", state)
		assert.Greater(t, b.High, b.Low, "state %s", state)
	}
}
