package gf32

import "github.com/akalin/gobech32/gf2"

// Fe is an element of GF(32), the field with 32 elements underlying
// bech32 strings. Valid values are in [0, 32).
type Fe uint8

// Named constants for all 32 elements, in bech32 character order, so
// that each constant is named by the character its element encodes
// to. Digit characters get an N prefix to make them identifiers.
const (
	Q Fe = iota
	P
	Z
	R
	Y
	N9
	X
	N8
	G
	F
	N2
	T
	V
	D
	W
	N0
	S
	N3
	J
	N
	N5
	N4
	K
	H
	C
	E
	N6
	M
	U
	A
	N7
	L
)

// Plus returns the sum of t and u as elements of GF(32), which is
// just the bitwise xor of the two.
func (t Fe) Plus(u Fe) Fe {
	return t ^ u
}

// Minus returns the difference of t and u as elements of GF(32),
// which is just the bitwise xor of the two.
func (t Fe) Minus(u Fe) Fe {
	return t ^ u
}

// Negate returns the additive inverse of t, which is t itself in a
// field of characteristic 2.
func (t Fe) Negate() Fe {
	return t
}

const order = 1 << 5

var logTable [order - 1]uint8
var expTable [order - 1]Fe

func init() {
	// m is the irreducible polynomial of degree 5 used to model
	// GF(32). m was chosen to match BIP-173.
	const m gf2.Poly64 = 0x29

	// g is a generator of GF(32).
	const g Fe = 2

	x := Fe(1)
	for p := 0; p < order-1; p++ {
		if x == 1 && p != 0 {
			panic("repeated power (1)")
		} else if x != 1 && logTable[x-1] != 0 {
			panic("repeated power")
		}
		if expTable[p] != 0 {
			panic("repeated exponent")
		}

		logTable[x-1] = uint8(p)
		expTable[p] = x
		_, r := gf2.Poly64(x).Times(gf2.Poly64(g)).Div(m)
		x = Fe(r)
	}
}

// Times returns the product of t and u as elements of GF(32).
func (t Fe) Times(u Fe) Fe {
	if t == 0 || u == 0 {
		return 0
	}

	logT := int(logTable[t-1])
	logU := int(logTable[u-1])
	return expTable[(logT+logU)%(order-1)]
}

// Inverse returns the multiplicative inverse of t, if t != 0. It
// panics if t == 0.
func (t Fe) Inverse() Fe {
	if t == 0 {
		panic("zero has no inverse")
	}
	logT := int(logTable[t-1])
	return expTable[(-logT+(order-1))%(order-1)]
}

// Div returns the product of t and u^{-1} as elements of GF(32), if
// u != 0. It panics if u == 0.
func (t Fe) Div(u Fe) Fe {
	if u == 0 {
		panic("division by zero")
	}

	if t == 0 {
		return 0
	}

	logT := int(logTable[t-1])
	logU := int(logTable[u-1])
	return expTable[(logT-logU+(order-1))%(order-1)]
}

// Pow returns t raised to the pth power.
func (t Fe) Pow(p uint32) Fe {
	x := t
	prod := Fe(1)
	for p > 0 {
		if p&1 != 0 {
			prod = prod.Times(x)
		}
		p >>= 1
		x = x.Times(x)
	}
	return prod
}

// Zero returns the additive identity of GF(32).
func (t Fe) Zero() Fe {
	return 0
}

// One returns the multiplicative identity of GF(32).
func (t Fe) One() Fe {
	return 1
}
