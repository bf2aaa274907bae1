package bech32

import (
	"fmt"

	"github.com/akalin/gobech32/checksum"
)

// Correct parses a possibly corrupted a-checksummed string and tries
// to repair it, returning the corrected string (lowercase) and the
// offsets of the characters that changed. A string that already
// verifies is returned with no offsets. Strings whose errors can't be
// pinned down, or whose errors fall in the human-readable part,
// return checksum.ErrUncorrectable.
//
// Every symbol spent locating errors is a symbol not spent detecting
// them, so a repaired string is a consistent reading of the input,
// not an authoritative one. Confirm corrected funds-bearing data out
// of band before acting on it.
func Correct(a checksum.Algorithm, s string) (string, []int, error) {
	s, err := normalizeCase(s)
	if err != nil {
		return "", nil, err
	}
	hrp, data, dataOff, err := parse(a, s)
	if err != nil {
		return "", nil, err
	}
	expanded := checksum.ExpandHRP(hrp)
	locs, err := checksum.FindErrors(a, append(expanded, data...))
	if err != nil {
		return "", nil, err
	}
	if len(locs) == 0 {
		return s, nil, nil
	}
	fixed := []byte(s)
	offsets := make([]int, len(locs))
	for i, loc := range locs {
		if loc.Index < len(expanded) {
			return "", nil, fmt.Errorf("%w: error in the human-readable part", checksum.ErrUncorrectable)
		}
		off := dataOff + (loc.Index - len(expanded))
		fixed[off] = loc.Symbol.Char()
		offsets[i] = off
	}
	return string(fixed), offsets, nil
}
