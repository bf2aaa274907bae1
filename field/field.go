// Package field provides a common abstraction over the coefficient
// fields used for bech32 checksums, and polynomials over them.
package field

// Element is the capability set required of a field element type E,
// which must implement the methods on itself. The zero value of an
// implementing type must be its additive identity.
type Element[E any] interface {
	comparable
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// Plus returns the sum of the receiver and the argument.
	Plus(E) E
	// Negate returns the additive inverse of the receiver.
	Negate() E
	// Times returns the product of the receiver and the argument.
	Times(E) E
	// Inverse returns the multiplicative inverse of the receiver,
	// which must be non-zero.
	Inverse() E
	// Pow returns the receiver raised to the given power.
	Pow(uint32) E
}
