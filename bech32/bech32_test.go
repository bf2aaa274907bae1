package bech32

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/akalin/gobech32/checksum"
	"github.com/akalin/gobech32/gf32"
	"github.com/stretchr/testify/require"
)

func randSymbols(rand *rand.Rand, n int) []gf32.Fe {
	fes := make([]gf32.Fe, n)
	for i := range fes {
		fes[i] = gf32.Fe(rand.Intn(32))
	}
	return fes
}

// ascendingSymbols returns all 32 symbols in value order, the payload
// of the alphabet test string.
func ascendingSymbols() []gf32.Fe {
	fes := make([]gf32.Fe, 32)
	for i := range fes {
		fes[i] = gf32.Fe(i)
	}
	return fes
}

func descendingSymbols() []gf32.Fe {
	fes := make([]gf32.Fe, 32)
	for i := range fes {
		fes[i] = gf32.Fe(31 - i)
	}
	return fes
}

func repeatSymbol(fe gf32.Fe, n int) []gf32.Fe {
	fes := make([]gf32.Fe, n)
	for i := range fes {
		fes[i] = fe
	}
	return fes
}

// The valid strings from BIP-173 and BIP-350, with their decoded
// parts. The longest ones are built with strings.Repeat rather than
// spelled out.
var (
	validBech32 = []struct {
		s    string
		hrp  string
		data []gf32.Fe
	}{
		{"A12UEL5L", "a", []gf32.Fe{}},
		{"a12uel5l", "a", []gf32.Fe{}},
		{
			"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs",
			"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio",
			[]gf32.Fe{},
		},
		{
			"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw",
			"abcdef",
			ascendingSymbols(),
		},
		{
			"11" + strings.Repeat("q", 82) + "c8247j",
			"1",
			repeatSymbol(gf32.Q, 82),
		},
		{
			"split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w",
			"split",
			nil,
		},
		{"?1ezyfcl", "?", []gf32.Fe{}},
	}

	validBech32m = []struct {
		s    string
		hrp  string
		data []gf32.Fe
	}{
		{"A1LQFN3A", "a", []gf32.Fe{}},
		{"a1lqfn3a", "a", []gf32.Fe{}},
		{
			"an83characterlonghumanreadablepartthatcontainsthetheexcludedcharactersbioandnumber11sg7hg6",
			"an83characterlonghumanreadablepartthatcontainsthetheexcludedcharactersbioandnumber1",
			[]gf32.Fe{},
		},
		{
			"abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx",
			"abcdef",
			descendingSymbols(),
		},
		{
			"11" + strings.Repeat("l", 82) + "ludsr8",
			"1",
			repeatSymbol(gf32.L, 82),
		},
		{
			"split1checkupstagehandshakeupstreamerranterredcaperredlc445v",
			"split",
			nil,
		},
		{"?1v759aa", "?", []gf32.Fe{}},
	}
)

func TestDecodeValidBech32(t *testing.T) {
	for i, tc := range validBech32 {
		hrp, data, err := Decode(checksum.Bech32, tc.s)
		require.NoError(t, err, "i=%d, s=%s", i, tc.s)
		require.Equal(t, tc.hrp, hrp, "i=%d", i)
		if tc.data != nil {
			require.Equal(t, tc.data, data, "i=%d", i)
		}

		// The other variant's checksum never matches.
		_, _, err = Decode(checksum.Bech32m, tc.s)
		require.ErrorIs(t, err, ErrInvalidChecksum, "i=%d", i)

		// Re-encoding reproduces the string's lowercase form.
		s, err := Encode(checksum.Bech32, hrp, data)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, strings.ToLower(tc.s), s, "i=%d", i)
	}
}

func TestDecodeValidBech32m(t *testing.T) {
	for i, tc := range validBech32m {
		hrp, data, err := Decode(checksum.Bech32m, tc.s)
		require.NoError(t, err, "i=%d, s=%s", i, tc.s)
		require.Equal(t, tc.hrp, hrp, "i=%d", i)
		if tc.data != nil {
			require.Equal(t, tc.data, data, "i=%d", i)
		}

		_, _, err = Decode(checksum.Bech32, tc.s)
		require.ErrorIs(t, err, ErrInvalidChecksum, "i=%d", i)

		s, err := Encode(checksum.Bech32m, hrp, data)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, strings.ToLower(tc.s), s, "i=%d", i)
	}
}

func TestDecodeInvalid(t *testing.T) {
	testCases := []struct {
		s   string
		err error
	}{
		// From BIP-173.
		{" 1nwldj5", ErrInvalidCharacter},
		{"\x7f1axkwrx", ErrInvalidCharacter},
		{"\x801eym55h", ErrInvalidCharacter},
		{"an84characterslonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1569pvx", ErrInvalidHRP},
		{"pzry9x0s0muk", ErrInvalidSeparator},
		{"1pzry9x0s0muk", ErrInvalidSeparator},
		{"x1b4n0q5v", ErrInvalidCharacter},
		{"li1dgmt3", ErrInvalidLength},
		{"de1lg7wt\xff", ErrInvalidCharacter},
		{"A1G7SGD8", ErrInvalidChecksum},
		{"10a06t8", ErrInvalidSeparator},
		{"1qzzfhee", ErrInvalidSeparator},
		// Mixed case over the whole string.
		{"aBc1qpzry9x8gf2tvdw0s3jn", ErrMixedCase},
	}
	for i, tc := range testCases {
		_, _, err := Decode(checksum.Bech32, tc.s)
		require.ErrorIs(t, err, tc.err, "i=%d, s=%q", i, tc.s)
	}
}

func TestDecodeInvalidBech32m(t *testing.T) {
	testCases := []struct {
		s   string
		err error
	}{
		// From BIP-350.
		{"\x201xj0phk", ErrInvalidCharacter},
		{"\x7f1g6xzxy", ErrInvalidCharacter},
		{"\x801vctc34", ErrInvalidCharacter},
		{"an84characterslonghumanreadablepartthatcontainsthetheexcludedcharactersbioandnumber11d6pts4", ErrInvalidHRP},
		{"qyrz8wqd2c9m", ErrInvalidSeparator},
		{"1qyrz8wqd2c9m", ErrInvalidSeparator},
		{"y1b0jsk6g", ErrInvalidCharacter},
		{"lt1igcx5c0", ErrInvalidCharacter},
		{"in1muywd", ErrInvalidLength},
		{"mm1crxm3i", ErrInvalidCharacter},
		{"au1s5cgom", ErrInvalidCharacter},
		{"M1VUXWEZ", ErrInvalidChecksum},
		{"16plkw9", ErrInvalidSeparator},
		{"1p2gdwpf", ErrInvalidSeparator},
	}
	for i, tc := range testCases {
		_, _, err := Decode(checksum.Bech32m, tc.s)
		require.ErrorIs(t, err, tc.err, "i=%d, s=%q", i, tc.s)
	}
}

func TestDecodeAny(t *testing.T) {
	for i, tc := range validBech32 {
		hrp, data, a, err := DecodeAny(tc.s)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, checksum.Bech32, a, "i=%d", i)
		require.Equal(t, tc.hrp, hrp, "i=%d", i)
		if tc.data != nil {
			require.Equal(t, tc.data, data, "i=%d", i)
		}
	}
	for i, tc := range validBech32m {
		hrp, data, a, err := DecodeAny(tc.s)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, checksum.Bech32m, a, "i=%d", i)
		require.Equal(t, tc.hrp, hrp, "i=%d", i)
		if tc.data != nil {
			require.Equal(t, tc.data, data, "i=%d", i)
		}
	}

	// Strings that parse but verify under neither variant.
	_, _, _, err := DecodeAny("a1g7sgd8")
	require.ErrorIs(t, err, ErrInvalidChecksum)

	// Parse errors surface as themselves, not as checksum failures.
	_, _, _, err = DecodeAny("aBc1qpzry9x8gf2tvdw0s3jn")
	require.ErrorIs(t, err, ErrMixedCase)
	_, _, _, err = DecodeAny("x1b4n0q5v")
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestEncodeInvalidHRP(t *testing.T) {
	data := []gf32.Fe{0, 1, 2}
	testCases := []struct {
		hrp string
		err error
	}{
		{"", ErrInvalidHRP},
		{strings.Repeat("a", 84), ErrInvalidHRP},
		{"b c", ErrInvalidCharacter},
		{"de\x7f", ErrInvalidCharacter},
		{"Bc", ErrMixedCase},
	}
	for i, tc := range testCases {
		_, err := Encode(checksum.Bech32, tc.hrp, data)
		require.ErrorIs(t, err, tc.err, "i=%d, hrp=%q", i, tc.hrp)
	}
}

func TestEncodeUppercaseHRP(t *testing.T) {
	data := []gf32.Fe{0, 1, 2, 3}
	upper, err := Encode(checksum.Bech32, "BC", data)
	require.NoError(t, err)
	lower, err := Encode(checksum.Bech32, "bc", data)
	require.NoError(t, err)
	require.Equal(t, lower, upper)
}

func TestEncodePanicsOnBadSymbol(t *testing.T) {
	require.Panics(t, func() {
		Encode(checksum.Bech32, "bc", []gf32.Fe{32})
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rand := rand.New(rand.NewSource(1))
	hrps := []string{"bc", "tb", "a", "test", "?", "split"}
	for _, a := range []checksum.Algorithm{checksum.Bech32, checksum.Bech32m} {
		for i := 0; i < 100; i++ {
			hrp := hrps[rand.Intn(len(hrps))]
			data := randSymbols(rand, rand.Intn(80))
			s, err := Encode(a, hrp, data)
			require.NoError(t, err, "a=%v, i=%d", a, i)
			require.Equal(t, len(hrp)+1+len(data)+a.ChecksumLength(), len(s), "a=%v, i=%d", a, i)

			hrp2, data2, err := Decode(a, s)
			require.NoError(t, err, "a=%v, i=%d", a, i)
			require.Equal(t, hrp, hrp2, "a=%v, i=%d", a, i)
			require.Equal(t, data, data2, "a=%v, i=%d", a, i)

			// Uppercasing the whole string leaves it valid.
			_, _, err = Decode(a, strings.ToUpper(s))
			require.NoError(t, err, "a=%v, i=%d", a, i)
		}
	}
}

func TestDecodeDetectsSubstitution(t *testing.T) {
	rand := rand.New(rand.NewSource(2))
	for _, a := range []checksum.Algorithm{checksum.Bech32, checksum.Bech32m} {
		for i := 0; i < 100; i++ {
			data := randSymbols(rand, 1+rand.Intn(40))
			s, err := Encode(a, "test", data)
			require.NoError(t, err, "a=%v, i=%d", a, i)

			off := len("test1") + rand.Intn(len(s)-len("test1"))
			old := s[off]
			var sub byte
			for {
				sub = gf32.Fe(rand.Intn(32)).Char()
				if sub != old {
					break
				}
			}
			corrupted := s[:off] + string(sub) + s[off+1:]
			_, _, err = Decode(a, corrupted)
			require.ErrorIs(t, err, ErrInvalidChecksum, "a=%v, i=%d, off=%d", a, i, off)
		}
	}
}

func TestLongStrings(t *testing.T) {
	// No 90-character cap: the usable window is bounded only by the
	// code length, 1023 symbols including the expanded
	// human-readable part and the checksum.
	data := randSymbols(rand.New(rand.NewSource(3)), 1014)
	s, err := Encode(checksum.Bech32, "1", data)
	require.NoError(t, err)
	require.Equal(t, 1022, len(s))
	hrp, data2, err := Decode(checksum.Bech32, s)
	require.NoError(t, err)
	require.Equal(t, "1", hrp)
	require.Equal(t, data, data2)

	_, err = Encode(checksum.Bech32, "1", randSymbols(rand.New(rand.NewSource(4)), 1015))
	require.ErrorIs(t, err, ErrInvalidLength)

	_, _, err = Decode(checksum.Bech32, "x1"+strings.Repeat("q", 1021))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestNoChecksumStrings(t *testing.T) {
	data := []gf32.Fe{5, 10, 15, 20}
	s, err := Encode(checksum.NoChecksum, "raw", data)
	require.NoError(t, err)
	require.Equal(t, "raw1"+"9204", s)

	hrp, data2, err := Decode(checksum.NoChecksum, s)
	require.NoError(t, err)
	require.Equal(t, "raw", hrp)
	require.Equal(t, data, data2)

	// With no checksum symbols there is nothing to catch
	// substitutions.
	hrp, data2, err = Decode(checksum.NoChecksum, "raw1900l")
	require.NoError(t, err)
	require.Equal(t, "raw", hrp)
	require.Equal(t, []gf32.Fe{5, 15, 15, 31}, data2)
}
