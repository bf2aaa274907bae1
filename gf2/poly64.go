package gf2

// A Poly64 is a polynomial over GF(2) mod x^64.
type Poly64 uint64

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly64) Plus(q Poly64) Poly64 {
	return p ^ q
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly64) Minus(q Poly64) Poly64 {
	return p ^ q
}

// Times returns the product of p and q as polynomials over GF(2), mod
// x^64.
func (p Poly64) Times(q Poly64) Poly64 {
	var prod Poly64
	for p != 0 && q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
	}
	return prod
}

// ilog2 returns the position of the highest set bit of x, which must
// be non-zero.
func ilog2(x uint64) uint {
	if x == 0 {
		panic("ilog2(0) undefined")
	}
	var i uint
	for x != 1 {
		x >>= 1
		i++
	}
	return i
}

// Div returns the quotient and remainder of p divided by q as
// polynomials over GF(2). q must be non-zero.
func (p Poly64) Div(q Poly64) (quotient, remainder Poly64) {
	if q == 0 {
		panic("division by zero")
	}
	dq := ilog2(uint64(q))
	rem := p
	var quot Poly64
	for rem != 0 {
		dr := ilog2(uint64(rem))
		if dr < dq {
			break
		}
		quot ^= 1 << (dr - dq)
		rem ^= q << (dr - dq)
	}
	return quot, rem
}
