package checksum

import (
	"github.com/akalin/gobech32/field"
	"github.com/akalin/gobech32/gf32"
)

// Compute returns the checksum of data: the unique symbols whose
// concatenation after data makes Verify succeed. The distance
// guarantees only hold when the result is no longer than the
// algorithm's code length; Compute itself accepts any length.
func Compute(a Algorithm, data []gf32.Fe) []gf32.Fe {
	p := a.params()
	e := newEngine(p)
	for _, fe := range data {
		e.WriteSymbol(fe)
	}
	for i := 0; i < p.checksumLength; i++ {
		e.WriteSymbol(0)
	}
	// The midstate is linear in the trailing symbols, and the
	// checksum symbols are too recent to have been reduced, so the
	// checksum is just the zero-padded midstate xored with the
	// target.
	r := e.Residue() ^ p.target
	cs := make([]gf32.Fe, p.checksumLength)
	for i := range cs {
		cs[i] = gf32.Fe(r >> (5 * (p.checksumLength - 1 - i)) & 31)
	}
	return cs
}

// Verify returns whether symbols, a full sequence including its
// checksum, passes a's checksum. Sequences longer than the code
// length or shorter than the checksum length fail.
func Verify(a Algorithm, symbols []gf32.Fe) bool {
	p := a.params()
	if len(symbols) < p.checksumLength || len(symbols) > p.codeLength {
		return false
	}
	e := newEngine(p)
	for _, fe := range symbols {
		e.WriteSymbol(fe)
	}
	return e.Residue() == p.target
}

// residuePoly unpacks a midstate into the polynomial it packs,
// lowest-degree coefficient first.
func residuePoly(p *params, residue uint32) field.Poly[gf32.Fe] {
	r := make(field.Poly[gf32.Fe], p.checksumLength)
	for i := range r {
		r[i] = gf32.Fe(residue >> (5 * i) & 31)
	}
	return r
}
