package checksum

import "github.com/akalin/gobech32/gf32"

// An Engine holds the running midstate of a checksum computation.
// Feeding a symbol costs five constant-time operations and no table
// lookups.
type Engine struct {
	p   *params
	chk uint32
}

// NewEngine returns an engine for a holding the midstate of the
// empty sequence.
func NewEngine(a Algorithm) *Engine {
	return newEngine(a.params())
}

func newEngine(p *params) *Engine {
	e := &Engine{p: p}
	e.Reset()
	return e
}

// Reset returns e to the midstate of the empty sequence.
func (e *Engine) Reset() {
	if e.p.checksumLength == 0 {
		e.chk = 0
		return
	}
	// The 1 is the implicit constant term prepended to every
	// sequence so that leading zero symbols still affect the
	// residue.
	e.chk = 1
}

// WriteSymbol feeds one symbol into e.
func (e *Engine) WriteSymbol(fe gf32.Fe) {
	if fe >= 32 {
		panic("out-of-range symbol")
	}
	cl := e.p.checksumLength
	if cl == 0 {
		return
	}
	top := uint(5 * (cl - 1))
	b := e.chk >> top
	e.chk = (e.chk&(1<<top-1))<<5 | uint32(fe)
	for i := range e.p.taps {
		if b>>uint(i)&1 != 0 {
			e.chk ^= e.p.taps[i]
		}
	}
}

// ExpandHRP returns the symbols a human-readable part contributes to
// its string's checksum: the high bits of each character, then a zero
// symbol, then the low five bits of each character. The part must
// already be valid and lowercase.
func ExpandHRP(hrp string) []gf32.Fe {
	fes := make([]gf32.Fe, 0, 2*len(hrp)+1)
	for i := 0; i < len(hrp); i++ {
		fes = append(fes, gf32.Fe(hrp[i]>>5))
	}
	fes = append(fes, 0)
	for i := 0; i < len(hrp); i++ {
		fes = append(fes, gf32.Fe(hrp[i]&31))
	}
	return fes
}

// WriteHRP feeds the checksummed expansion of a human-readable part
// into e.
func (e *Engine) WriteHRP(hrp string) {
	for _, fe := range ExpandHRP(hrp) {
		e.WriteSymbol(fe)
	}
}

// Residue returns the midstate of the symbols written so far.
func (e *Engine) Residue() uint32 {
	return e.chk
}
