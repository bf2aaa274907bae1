package field

// Poly is a polynomial with coefficients in E; coefficient i is the
// coefficient of x^i. A nil or all-zero slice is the zero polynomial;
// operations accept unnormalized input.
type Poly[E Element[E]] []E

// Degree returns the degree of p, with the zero polynomial having
// degree -1.
func (p Poly[E]) Degree() int {
	var zero E
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != zero {
			return i
		}
	}
	return -1
}

// IsZero returns whether p is the zero polynomial.
func (p Poly[E]) IsZero() bool {
	return p.Degree() < 0
}

// Equal returns whether p and q are the same polynomial, ignoring
// trailing zero coefficients.
func (p Poly[E]) Equal(q Poly[E]) bool {
	dp := p.Degree()
	if dp != q.Degree() {
		return false
	}
	for i := 0; i <= dp; i++ {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Eval returns the value of p at x, using Horner's method.
func (p Poly[E]) Eval(x E) E {
	var acc E
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc.Times(x).Plus(p[i])
	}
	return acc
}

// Plus returns the sum of p and q.
func (p Poly[E]) Plus(q Poly[E]) Poly[E] {
	if len(q) > len(p) {
		p, q = q, p
	}
	sum := make(Poly[E], len(p))
	copy(sum, p)
	for i, c := range q {
		sum[i] = sum[i].Plus(c)
	}
	return sum
}

// Times returns the product of p and q.
func (p Poly[E]) Times(q Poly[E]) Poly[E] {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	prod := make(Poly[E], len(p)+len(q)-1)
	for i, c := range p {
		for j, d := range q {
			prod[i+j] = prod[i+j].Plus(c.Times(d))
		}
	}
	return prod
}

// Rem returns the remainder of p divided by q, which must not be the
// zero polynomial. It panics if q is zero.
func (p Poly[E]) Rem(q Poly[E]) Poly[E] {
	dq := q.Degree()
	if dq < 0 {
		panic("division by zero polynomial")
	}
	rem := make(Poly[E], len(p))
	copy(rem, p)
	lead := q[dq].Inverse()
	for dr := rem.Degree(); dr >= dq; dr = rem.Degree() {
		f := rem[dr].Times(lead)
		for i := 0; i <= dq; i++ {
			rem[dr-dq+i] = rem[dr-dq+i].Plus(f.Times(q[i]).Negate())
		}
	}
	if len(rem) > dq {
		rem = rem[:dq]
	}
	return rem
}
