// Package checksum implements the bech32 and bech32m checksum
// algorithms: incremental residue computation, checksum generation
// and verification, and correction of small symbol errors.
package checksum

import (
	"fmt"
	"math"

	"github.com/akalin/gobech32/field"
	"github.com/akalin/gobech32/gf1024"
	"github.com/akalin/gobech32/gf32"
)

// Algorithm selects one of the supported checksum algorithms.
type Algorithm int

const (
	// NoChecksum is the degenerate algorithm with an empty
	// checksum, under which every sequence verifies.
	NoChecksum Algorithm = iota
	// Bech32 is the checksum algorithm of BIP-173.
	Bech32
	// Bech32m is the BIP-350 revision of Bech32. It shares the
	// Bech32 code and differs only in its target residue, so the
	// two algorithms never accept the same sequence.
	Bech32m
)

// String returns the conventional lowercase name of a.
func (a Algorithm) String() string {
	switch a {
	case NoChecksum:
		return "none"
	case Bech32:
		return "bech32"
	case Bech32m:
		return "bech32m"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// params collects the constants defining a checksum algorithm. The
// taps describe the code as an LFSR and the roots describe the same
// code algebraically; SanityCheck proves the two descriptions agree.
type params struct {
	// taps[b] is xored into the shifted midstate when bit b of the
	// outgoing top coefficient is set. taps[b] packs the non-monic
	// coefficients of 2^b times the generator polynomial, five
	// bits per coefficient, lowest degree first.
	taps [5]uint32
	// target is the midstate of a valid sequence.
	target uint32
	// codeLength is the longest sequence, checksum included, that
	// the distance properties hold over: the multiplicative order
	// of rootGen.
	codeLength int
	// checksumLength is the number of checksum symbols, equal to
	// the degree of the generator polynomial.
	checksumLength int
	// The powers rootGen^e, for e from rootExps[0] to rootExps[1]
	// inclusive, are exactly the roots of the generator
	// polynomial.
	rootGen  gf1024.Fe
	rootExps [2]int
}

var paramsByAlgorithm = []params{
	NoChecksum: {
		codeLength: math.MaxInt,
		rootExps:   [2]int{0, -1},
	},
	Bech32: {
		taps:           [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3},
		target:         0x1,
		codeLength:     1023,
		checksumLength: 6,
		rootGen:        gf1024.New(gf32.P, gf32.X),
		rootExps:       [2]int{24, 26},
	},
	Bech32m: {
		taps:           [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3},
		target:         0x2bc830a3,
		codeLength:     1023,
		checksumLength: 6,
		rootGen:        gf1024.New(gf32.P, gf32.X),
		rootExps:       [2]int{24, 26},
	},
}

func (a Algorithm) params() *params {
	if a < 0 || int(a) >= len(paramsByAlgorithm) {
		panic("unknown algorithm")
	}
	return &paramsByAlgorithm[a]
}

// ChecksumLength returns the number of checksum symbols a appends.
func (a Algorithm) ChecksumLength() int {
	return a.params().checksumLength
}

// CodeLength returns the longest sequence, checksum included, that
// a's distance properties hold over.
func (a Algorithm) CodeLength() int {
	return a.params().codeLength
}

// generator returns the generator polynomial unpacked from the first
// tap, with its monic leading coefficient restored.
func (p *params) generator() field.Poly[gf32.Fe] {
	g := make(field.Poly[gf32.Fe], p.checksumLength+1)
	for i := 0; i < p.checksumLength; i++ {
		g[i] = gf32.Fe(p.taps[0] >> (5 * i) & 31)
	}
	g[p.checksumLength] = 1
	return g
}

// roots returns the designated roots of the generator polynomial, in
// exponent order.
func (p *params) roots() []gf1024.Fe {
	var roots []gf1024.Fe
	for e := p.rootExps[0]; e <= p.rootExps[1]; e++ {
		roots = append(roots, p.rootGen.Pow(uint32(e)))
	}
	return roots
}

// SanityCheck verifies that a's constants are internally consistent,
// in particular that the code defined by the LFSR taps and the code
// defined by the roots are the same. It is meant to be run from
// tests; a failure is a defect in the algorithm definition, not
// something input data can trigger.
func (a Algorithm) SanityCheck() error {
	return a.params().sanityCheck(a)
}

func (p *params) sanityCheck(a Algorithm) error {
	if p.checksumLength == 0 {
		for b, tap := range p.taps {
			if tap != 0 {
				return fmt.Errorf("checksum: %v has no checksum but tap %d is 0x%08x", a, b, tap)
			}
		}
		if p.target != 0 {
			return fmt.Errorf("checksum: %v has no checksum but target 0x%08x", a, p.target)
		}
		if p.rootExps[0] <= p.rootExps[1] {
			return fmt.Errorf("checksum: %v has no checksum but a non-empty root range", a)
		}
		return nil
	}

	if 5*p.checksumLength > 30 {
		return fmt.Errorf("checksum: %v midstate does not fit 32 bits", a)
	}
	if p.target >= 1<<(5*p.checksumLength) {
		return fmt.Errorf("checksum: %v target 0x%08x does not fit the midstate", a, p.target)
	}

	g := p.generator()
	if g.Degree() != p.checksumLength {
		return fmt.Errorf("checksum: %v generator degree is %d, want %d", a, g.Degree(), p.checksumLength)
	}

	// Each tap must pack the same generator polynomial scaled by
	// the power of two matching its bit position.
	for b := range p.taps {
		scale := gf32.Fe(2).Pow(uint32(b))
		var tap uint32
		for i := 0; i < p.checksumLength; i++ {
			tap |= uint32(g[i].Times(scale)) << (5 * i)
		}
		if tap != p.taps[b] {
			return fmt.Errorf("checksum: %v tap %d is 0x%08x, want 0x%08x", a, b, p.taps[b], tap)
		}
	}

	// The roots must come in conjugate pairs over the base field,
	// and the product of their minimal polynomials must be exactly
	// the generator polynomial.
	one := gf1024.Fe{}.One()
	product := field.Poly[gf1024.Fe]{one}
	for _, r := range p.roots() {
		conj := r.Pow(32)
		product = product.Times(field.Poly[gf1024.Fe]{r.Negate(), one})
		product = product.Times(field.Poly[gf1024.Fe]{conj.Negate(), one})
	}
	lifted := make(field.Poly[gf1024.Fe], len(g))
	for i, c := range g {
		lifted[i] = gf1024.Embed(c)
	}
	if !product.Equal(lifted) {
		return fmt.Errorf("checksum: %v roots do not generate the tap polynomial", a)
	}

	// The code length must be the multiplicative order of the root
	// generator, so that distinct positions within it map to
	// distinct root powers.
	x := one
	for i := 1; i <= p.codeLength; i++ {
		x = x.Times(p.rootGen)
		if x == one && i < p.codeLength {
			return fmt.Errorf("checksum: %v root generator has order %d < code length %d", a, i, p.codeLength)
		}
	}
	if x != one {
		return fmt.Errorf("checksum: %v root generator order does not divide code length %d", a, p.codeLength)
	}

	// Equivalently, the generator polynomial must divide
	// x^codeLength - 1.
	xn := make(field.Poly[gf32.Fe], p.codeLength+1)
	xn[0] = gf32.Fe(1).Negate()
	xn[p.codeLength] = 1
	if !xn.Rem(g).IsZero() {
		return fmt.Errorf("checksum: %v generator does not divide x^%d - 1", a, p.codeLength)
	}

	return nil
}
