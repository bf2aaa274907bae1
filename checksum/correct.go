package checksum

import (
	"errors"

	"github.com/akalin/gobech32/field"
	"github.com/akalin/gobech32/gf1024"
	"github.com/akalin/gobech32/gf32"
)

var (
	// ErrUncorrectable means no error pattern within the
	// algorithm's correction capability reconciles all syndromes.
	ErrUncorrectable = errors.New("checksum: uncorrectable errors")
	// ErrInvalidLength means the sequence is longer than the code
	// length or shorter than the checksum length.
	ErrInvalidLength = errors.New("checksum: invalid sequence length")
)

// An ErrorLocation is a single-symbol correction: the symbol at
// Index should be replaced with Symbol.
type ErrorLocation struct {
	Index  int
	Symbol gf32.Fe
}

// syndromes evaluates the residue of symbols, lifted into the
// extension field, at each designated root. The residue is congruent
// to the error polynomial modulo the generator, and the generator
// vanishes at the roots, so each syndrome equals the error
// polynomial's value there. All-zero syndromes mean the sequence is
// a valid codeword.
func (p *params) syndromes(symbols []gf32.Fe) []gf1024.Fe {
	e := newEngine(p)
	for _, fe := range symbols {
		e.WriteSymbol(fe)
	}
	r := residuePoly(p, e.Residue()^p.target)
	lifted := make(field.Poly[gf1024.Fe], len(r))
	for i, c := range r {
		lifted[i] = gf1024.Embed(c)
	}
	roots := p.roots()
	syn := make([]gf1024.Fe, len(roots))
	for i, root := range roots {
		syn[i] = lifted.Eval(root)
	}
	return syn
}

// FindErrors locates the errors in symbols and returns the
// corrections that make it verify under a. A sequence that already
// verifies yields no corrections. It returns ErrInvalidLength if the
// sequence is outside the code bounds, and ErrUncorrectable if no
// error pattern within a's correction capability reconciles all
// syndromes.
func FindErrors(a Algorithm, symbols []gf32.Fe) ([]ErrorLocation, error) {
	p := a.params()
	if len(symbols) < p.checksumLength || len(symbols) > p.codeLength {
		return nil, ErrInvalidLength
	}

	syn := p.syndromes(symbols)
	var zero gf1024.Fe
	allZero := true
	for _, s := range syn {
		if s != zero {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, nil
	}

	// A single error of magnitude m at power pos contributes
	// m * rootGen^(e*pos) to the syndrome at exponent e, and the
	// three roots overdetermine (m, pos), so a candidate position
	// is accepted only if the magnitude implied by the first
	// syndrome is a non-zero base field element that reproduces
	// every other syndrome. Powers count symbols from the end.
	n := len(symbols)
	roots := p.roots()
	pw := make([]gf1024.Fe, len(roots))
	for i := range pw {
		pw[i] = pw[i].One()
	}
	for pos := 0; pos < n; pos++ {
		m := syn[0].Div(pw[0])
		if mBase, ok := m.ToBase(); ok && mBase != 0 {
			match := true
			for i := 1; i < len(roots); i++ {
				if syn[i] != m.Times(pw[i]) {
					match = false
					break
				}
			}
			if match {
				i := n - 1 - pos
				return []ErrorLocation{{i, symbols[i].Plus(mBase)}}, nil
			}
		}
		for i, root := range roots {
			pw[i] = pw[i].Times(root)
		}
	}
	return nil, ErrUncorrectable
}

// Correct returns a copy of symbols with the corrections from
// FindErrors applied, never modifying the input. Correction is
// all-or-nothing: on error the returned sequence is nil.
func Correct(a Algorithm, symbols []gf32.Fe) ([]gf32.Fe, error) {
	locs, err := FindErrors(a, symbols)
	if err != nil {
		return nil, err
	}
	fixed := append([]gf32.Fe(nil), symbols...)
	for _, loc := range locs {
		fixed[loc.Index] = loc.Symbol
	}
	return fixed, nil
}
