package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seed8/gate"
)

func TestNot(t *testing.T) {
	assert.True(t, gate.Not(false))
	assert.False(t, gate.Not(true))
}

// One row per input pair, in (false,false), (false,true), (true,false),
// (true,true) order.
func testGate2(t *testing.T, name string, fn func(a, b bool) bool, want [4]bool) {
	t.Helper()
	i := 0
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			assert.Equalf(t, want[i], fn(a, b), "%s(%v, %v)", name, a, b)
			i++
		}
	}
}

func TestAnd(t *testing.T) {
	testGate2(t, "And", gate.And, [4]bool{false, false, false, true})
}

func TestOr(t *testing.T) {
	testGate2(t, "Or", gate.Or, [4]bool{false, true, true, true})
}

func TestNand(t *testing.T) {
	testGate2(t, "Nand", gate.Nand, [4]bool{true, true, true, false})
}

func TestNor(t *testing.T) {
	testGate2(t, "Nor", gate.Nor, [4]bool{true, false, false, false})
}

func TestXor(t *testing.T) {
	testGate2(t, "Xor", gate.Xor, [4]bool{false, true, true, false})
}
