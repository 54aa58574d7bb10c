package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seed8/seq"
)

func TestSRLatchSetReset(t *testing.T) {
	l := seq.NewSRLatch()
	assert.False(t, l.Q)
	assert.True(t, l.QN)

	l.Update(true, false)
	assert.True(t, l.Q)
	assert.False(t, l.QN)

	// Q holds once set is released.
	l.Update(false, false)
	assert.True(t, l.Q)

	l.Update(false, true)
	assert.False(t, l.Q)
	assert.True(t, l.QN)

	l.Update(false, false)
	assert.False(t, l.Q)
}

func TestDLatchTransparentWhileEnabled(t *testing.T) {
	l := seq.NewDLatch()

	l.Update(true, true)
	assert.True(t, l.Q)
	l.Update(true, false)
	assert.False(t, l.Q)
	l.Update(true, true)
	assert.True(t, l.Q)
}

func TestDLatchHoldsWhileDisabled(t *testing.T) {
	l := seq.NewDLatch()
	l.Update(true, true)
	assert.True(t, l.Q)

	// Input changes are ignored until enable rises again.
	l.Update(false, false)
	assert.True(t, l.Q)
	l.Update(false, false)
	assert.True(t, l.Q)

	l.Update(true, false)
	assert.False(t, l.Q)
}
