package bech32

import (
	"errors"
	"fmt"

	"github.com/akalin/gobech32/gf32"
)

// ErrInvalidPadding is returned by unpadded conversions whose final
// group is too wide or holds non-zero filler bits.
var ErrInvalidPadding = errors.New("bech32: invalid padding")

// ConvertBits regroups data, where each byte carries from bits, into
// bytes carrying to bits each, most significant bits first. With pad
// set, a final partial group is zero-filled on the right; without it,
// leftover bits must be a proper zero-filled remnant of the last
// input group, as required when decoding. Group widths must be
// between 1 and 8.
func ConvertBits(data []byte, from, to uint, pad bool) ([]byte, error) {
	if from < 1 || from > 8 || to < 1 || to > 8 {
		panic("conversion group width out of range")
	}
	maxv := uint(1)<<to - 1
	out := make([]byte, 0, (len(data)*int(from)+int(to)-1)/int(to))
	var acc, bits uint
	for i, b := range data {
		v := uint(b)
		if v>>from != 0 {
			return nil, fmt.Errorf("bech32: value %d at position %d exceeds %d bits", v, i, from)
		}
		acc = acc<<from | v
		bits += from
		for bits >= to {
			bits -= to
			out = append(out, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(to-bits)&maxv))
		}
	} else if bits >= from {
		return nil, fmt.Errorf("%w: %d excess bits", ErrInvalidPadding, bits)
	} else if acc<<(to-bits)&maxv != 0 {
		return nil, fmt.Errorf("%w: non-zero filler bits", ErrInvalidPadding)
	}
	return out, nil
}

// BytesToSymbols regroups bytes into five-bit symbols, zero-padding
// the last symbol.
func BytesToSymbols(data []byte) []gf32.Fe {
	grouped, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		panic(err)
	}
	fes := make([]gf32.Fe, len(grouped))
	for i, g := range grouped {
		fes[i] = gf32.Fe(g)
	}
	return fes
}

// SymbolsToBytes regroups five-bit symbols into bytes, the inverse of
// BytesToSymbols. It returns ErrInvalidPadding unless the symbols are
// an exact zero-padded regrouping of a byte string.
func SymbolsToBytes(fes []gf32.Fe) ([]byte, error) {
	data := make([]byte, len(fes))
	for i, fe := range fes {
		data[i] = byte(fe)
	}
	return ConvertBits(data, 5, 8, false)
}
