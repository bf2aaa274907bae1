package bech32

import (
	"errors"
	"fmt"

	"github.com/akalin/gobech32/checksum"
	"github.com/akalin/gobech32/gf32"
)

var (
	// ErrInvalidWitnessVersion is returned for witness versions
	// outside 0 through 16.
	ErrInvalidWitnessVersion = errors.New("bech32: invalid witness version")
	// ErrInvalidProgram is returned for witness programs with
	// lengths BIP-141 rules out.
	ErrInvalidProgram = errors.New("bech32: invalid witness program")
	// ErrMismatchedHRP is returned when a decoded address carries a
	// human-readable part other than the expected one.
	ErrMismatchedHRP = errors.New("bech32: mismatched human-readable part")
	// ErrMismatchedVariant is returned when an address's checksum
	// variant doesn't agree with its witness version: version 0
	// takes Bech32 and versions 1 through 16 take Bech32m.
	ErrMismatchedVariant = errors.New("bech32: checksum variant does not match witness version")
)

// maxAddressLength caps segwit addresses per BIP-173.
const maxAddressLength = 90

func validateProgram(version byte, program []byte) error {
	if version > 16 {
		return fmt.Errorf("%w %d", ErrInvalidWitnessVersion, version)
	}
	if len(program) < 2 || len(program) > 40 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidProgram, len(program))
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return fmt.Errorf("%w: version 0 program must be 20 or 32 bytes, got %d", ErrInvalidProgram, len(program))
	}
	return nil
}

// algorithmForVersion returns the checksum variant BIP-350 assigns to
// a witness version.
func algorithmForVersion(version byte) checksum.Algorithm {
	if version == 0 {
		return checksum.Bech32
	}
	return checksum.Bech32m
}

// EncodeSegwit builds the segwit address for a witness version and
// program, selecting the checksum variant the version calls for:
// Bech32 for version 0 and Bech32m for versions 1 through 16.
func EncodeSegwit(hrp string, version byte, program []byte) (string, error) {
	if err := validateProgram(version, program); err != nil {
		return "", err
	}
	data := append([]gf32.Fe{gf32.Fe(version)}, BytesToSymbols(program)...)
	addr, err := Encode(algorithmForVersion(version), hrp, data)
	if err != nil {
		return "", err
	}
	if len(addr) > maxAddressLength {
		return "", fmt.Errorf("%w: address exceeds %d characters", ErrInvalidLength, maxAddressLength)
	}
	return addr, nil
}

// DecodeSegwit parses a segwit address with the expected
// human-readable part, returning its witness version and program. It
// enforces the same rules as EncodeSegwit, including the binding
// between witness version and checksum variant.
func DecodeSegwit(hrp, addr string) (byte, []byte, error) {
	if len(addr) > maxAddressLength {
		return 0, nil, fmt.Errorf("%w: address exceeds %d characters", ErrInvalidLength, maxAddressLength)
	}
	want, err := normalizeCase(hrp)
	if err != nil {
		return 0, nil, err
	}
	decoded, data, a, err := DecodeAny(addr)
	if err != nil {
		return 0, nil, err
	}
	if decoded != want {
		return 0, nil, fmt.Errorf("%w: got %q, want %q", ErrMismatchedHRP, decoded, want)
	}
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("%w: no witness version", ErrInvalidProgram)
	}
	version := byte(data[0])
	if version > 16 {
		return 0, nil, fmt.Errorf("%w %d", ErrInvalidWitnessVersion, version)
	}
	if a != algorithmForVersion(version) {
		return 0, nil, ErrMismatchedVariant
	}
	program, err := SymbolsToBytes(data[1:])
	if err != nil {
		return 0, nil, err
	}
	if err := validateProgram(version, program); err != nil {
		return 0, nil, err
	}
	return version, program, nil
}
