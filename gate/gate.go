// Package gate provides the Boolean gate primitives everything else in the
// machine is built from. All gates are pure functions on bool; bit-parallel
// blocks replicate them per bit.
package gate

// Not returns the complement of a.
func Not(a bool) bool { return !a }

// And returns a AND b.
func And(a, b bool) bool { return a && b }

// Or returns a OR b.
func Or(a, b bool) bool { return a || b }

// Nand returns NOT(a AND b).
func Nand(a, b bool) bool { return Not(And(a, b)) }

// Nor returns NOT(a OR b).
func Nor(a, b bool) bool { return Not(Or(a, b)) }

// Xor returns a XOR b, composed as (a OR b) AND NOT(a AND b).
func Xor(a, b bool) bool { return And(Or(a, b), Nand(a, b)) }
