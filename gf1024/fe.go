package gf1024

import "github.com/akalin/gobech32/gf32"

// Fe is an element of GF(1024), modeled as the degree-2 extension of
// GF(32) by a root of y^2 + y + 1. An element lo + hi*y is stored as
// its two GF(32) coordinates.
type Fe struct {
	lo, hi gf32.Fe
}

// New returns the element lo + hi*y.
func New(lo, hi gf32.Fe) Fe {
	return Fe{lo, hi}
}

// Embed returns the image of t under the field embedding of GF(32)
// into GF(1024), which sends t to the constant t + 0*y.
func Embed(t gf32.Fe) Fe {
	return Fe{t, 0}
}

// ToBase returns the GF(32) element that t is the image of, if any.
func (t Fe) ToBase() (gf32.Fe, bool) {
	if t.hi != 0 {
		return 0, false
	}
	return t.lo, true
}

// Plus returns the sum of t and u as elements of GF(1024), which is
// just the coordinatewise sum.
func (t Fe) Plus(u Fe) Fe {
	return Fe{t.lo.Plus(u.lo), t.hi.Plus(u.hi)}
}

// Minus returns the difference of t and u as elements of GF(1024),
// which is just the coordinatewise difference.
func (t Fe) Minus(u Fe) Fe {
	return Fe{t.lo.Minus(u.lo), t.hi.Minus(u.hi)}
}

// Negate returns the additive inverse of t, which is t itself in a
// field of characteristic 2.
func (t Fe) Negate() Fe {
	return t
}

// Times returns the product of t and u as elements of GF(1024),
// reducing y^2 to y + 1.
func (t Fe) Times(u Fe) Fe {
	sq := t.hi.Times(u.hi)
	lo := t.lo.Times(u.lo).Plus(sq)
	hi := t.lo.Times(u.hi).Plus(t.hi.Times(u.lo)).Plus(sq)
	return Fe{lo, hi}
}

// conjugate returns the image of t under the Frobenius automorphism
// x -> x^32, which fixes exactly the embedded base field.
func (t Fe) conjugate() Fe {
	return Fe{t.lo.Plus(t.hi), t.hi}
}

// norm returns the product of t and its conjugate, which always lies
// in the base field.
func (t Fe) norm() gf32.Fe {
	return t.lo.Times(t.lo).Plus(t.lo.Times(t.hi)).Plus(t.hi.Times(t.hi))
}

// Inverse returns the multiplicative inverse of t, if t != 0. It
// panics if t == 0. The inverse is the conjugate divided by the norm,
// which costs one base-field inversion.
func (t Fe) Inverse() Fe {
	if t == (Fe{}) {
		panic("zero has no inverse")
	}
	c := t.conjugate()
	n := t.norm()
	return Fe{c.lo.Div(n), c.hi.Div(n)}
}

// Div returns the product of t and u^{-1} as elements of GF(1024), if
// u != 0. It panics if u == 0.
func (t Fe) Div(u Fe) Fe {
	return t.Times(u.Inverse())
}

// Pow returns t raised to the pth power.
func (t Fe) Pow(p uint32) Fe {
	x := t
	prod := Fe{1, 0}
	for p > 0 {
		if p&1 != 0 {
			prod = prod.Times(x)
		}
		p >>= 1
		x = x.Times(x)
	}
	return prod
}

// Zero returns the additive identity of GF(1024).
func (t Fe) Zero() Fe {
	return Fe{}
}

// One returns the multiplicative identity of GF(1024).
func (t Fe) One() Fe {
	return Fe{1, 0}
}
