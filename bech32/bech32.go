// Package bech32 implements the bech32 and bech32m string formats
// from BIP-173 and BIP-350: encoding and decoding of strings of the
// form hrp1data, bit regrouping between bytes and five-bit symbols,
// segwit addresses, and correction of small transcription errors.
package bech32

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akalin/gobech32/checksum"
	"github.com/akalin/gobech32/gf32"
)

var (
	// ErrInvalidChecksum is returned when a string parses but its
	// checksum doesn't verify under the requested algorithm.
	ErrInvalidChecksum = errors.New("bech32: invalid checksum")
	// ErrMixedCase is returned for strings mixing uppercase and
	// lowercase characters.
	ErrMixedCase = errors.New("bech32: mixed case")
	// ErrInvalidSeparator is returned for strings without a
	// separator, or with nothing before it.
	ErrInvalidSeparator = errors.New("bech32: missing or misplaced separator")
	// ErrInvalidCharacter is returned for characters outside the
	// US-ASCII range 33-126, and for data-part characters outside
	// the bech32 alphabet.
	ErrInvalidCharacter = errors.New("bech32: invalid character")
	// ErrInvalidHRP is returned for human-readable parts that
	// aren't 1 to 83 characters long.
	ErrInvalidHRP = errors.New("bech32: invalid human-readable part")
	// ErrInvalidLength is returned for strings too short to hold
	// their checksum, or too long for the checksum's guarantees to
	// hold.
	ErrInvalidLength = errors.New("bech32: invalid length")
)

// normalizeCase rejects strings with characters outside the printable
// US-ASCII range or with mixed case, and returns s folded to
// lowercase.
func normalizeCase(s string) (string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < 33 || s[i] > 126 {
			return "", fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i)
		}
	}
	lower := strings.ToLower(s)
	if upper := strings.ToUpper(s); s != lower && s != upper {
		return "", ErrMixedCase
	}
	return lower, nil
}

func validateHRP(hrp string) error {
	if len(hrp) < 1 || len(hrp) > 83 {
		return fmt.Errorf("%w: length %d", ErrInvalidHRP, len(hrp))
	}
	return nil
}

// Encode builds the a-checksummed string with the given
// human-readable part and data symbols. The human-readable part may
// be uppercase or lowercase but not mixed; the returned string is
// lowercase. Callers wanting the uppercase form (e.g. for QR codes)
// can pass the result through strings.ToUpper.
func Encode(a checksum.Algorithm, hrp string, data []gf32.Fe) (string, error) {
	hrp, err := normalizeCase(hrp)
	if err != nil {
		return "", err
	}
	if err := validateHRP(hrp); err != nil {
		return "", err
	}
	expanded := checksum.ExpandHRP(hrp)
	if len(expanded)+len(data)+a.ChecksumLength() > a.CodeLength() {
		return "", fmt.Errorf("%w: checksummed sequence exceeds %d symbols", ErrInvalidLength, a.CodeLength())
	}
	cs := checksum.Compute(a, append(expanded, data...))
	var b strings.Builder
	b.Grow(len(hrp) + 1 + len(data) + len(cs))
	b.WriteString(hrp)
	b.WriteByte(separator)
	for _, fe := range data {
		b.WriteByte(fe.Char())
	}
	for _, fe := range cs {
		b.WriteByte(fe.Char())
	}
	return b.String(), nil
}

const separator = '1'

// parse splits and validates a normalized string, returning the
// human-readable part, the data part decoded to symbols (checksum
// included), and the string offset of the first data character.
func parse(a checksum.Algorithm, s string) (hrp string, data []gf32.Fe, dataOff int, err error) {
	pos := strings.LastIndexByte(s, separator)
	if pos < 1 {
		return "", nil, 0, ErrInvalidSeparator
	}
	hrp, dataPart := s[:pos], s[pos+1:]
	if err := validateHRP(hrp); err != nil {
		return "", nil, 0, err
	}
	if len(dataPart) < a.ChecksumLength() {
		return "", nil, 0, fmt.Errorf("%w: data part shorter than its checksum", ErrInvalidLength)
	}
	dataOff = pos + 1
	data = make([]gf32.Fe, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		fe, ok := gf32.FromChar(dataPart[i])
		if !ok {
			return "", nil, 0, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, dataPart[i], dataOff+i)
		}
		data[i] = fe
	}
	if 2*len(hrp)+1+len(data) > a.CodeLength() {
		return "", nil, 0, fmt.Errorf("%w: checksummed sequence exceeds %d symbols", ErrInvalidLength, a.CodeLength())
	}
	return hrp, data, dataOff, nil
}

// Decode parses an a-checksummed string, returning its human-readable
// part (lowercase) and its data symbols with the checksum removed.
//
// There is no overall length cap beyond the code length over which
// a's guarantees hold; formats with stricter limits (like the 90
// characters of segwit addresses) enforce their own.
func Decode(a checksum.Algorithm, s string) (string, []gf32.Fe, error) {
	s, err := normalizeCase(s)
	if err != nil {
		return "", nil, err
	}
	hrp, data, _, err := parse(a, s)
	if err != nil {
		return "", nil, err
	}
	if !checksum.Verify(a, append(checksum.ExpandHRP(hrp), data...)) {
		return "", nil, ErrInvalidChecksum
	}
	return hrp, data[:len(data)-a.ChecksumLength()], nil
}

// DecodeAny parses a string checksummed with either Bech32 or
// Bech32m, returning which of the two verified. The returned
// algorithm is meaningful only when err is nil.
func DecodeAny(s string) (string, []gf32.Fe, checksum.Algorithm, error) {
	hrp, data, err := Decode(checksum.Bech32, s)
	if err == nil {
		return hrp, data, checksum.Bech32, nil
	}
	if !errors.Is(err, ErrInvalidChecksum) {
		return "", nil, checksum.NoChecksum, err
	}
	hrp, data, err = Decode(checksum.Bech32m, s)
	if err != nil {
		return "", nil, checksum.NoChecksum, err
	}
	return hrp, data, checksum.Bech32m, nil
}
