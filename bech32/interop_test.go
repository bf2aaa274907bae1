package bech32

import (
	"math/rand"
	"testing"

	"github.com/akalin/gobech32/checksum"
	"github.com/akalin/gobech32/gf32"
	btcbech32 "github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/require"
)

func fesFromBytes(data []byte) []gf32.Fe {
	fes := make([]gf32.Fe, len(data))
	for i, b := range data {
		fes[i] = gf32.Fe(b)
	}
	return fes
}

func TestEncodeAgainstBtcutil(t *testing.T) {
	rand := rand.New(rand.NewSource(1))
	hrps := []string{"bc", "tb", "test", "a", "split"}
	for i := 0; i < 200; i++ {
		hrp := hrps[rand.Intn(len(hrps))]
		raw := make([]byte, 1+rand.Intn(70))
		for j := range raw {
			raw[j] = byte(rand.Intn(32))
		}
		fes := fesFromBytes(raw)

		got, err := Encode(checksum.Bech32, hrp, fes)
		require.NoError(t, err, "i=%d", i)
		want, err := btcbech32.Encode(hrp, raw)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, want, got, "i=%d", i)

		got, err = Encode(checksum.Bech32m, hrp, fes)
		require.NoError(t, err, "i=%d", i)
		want, err = btcbech32.EncodeM(hrp, raw)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, want, got, "i=%d", i)
	}
}

func TestDecodeAnyAgainstBtcutil(t *testing.T) {
	rand := rand.New(rand.NewSource(2))
	algs := []checksum.Algorithm{checksum.Bech32, checksum.Bech32m}
	versions := []btcbech32.Version{btcbech32.Version0, btcbech32.VersionM}
	for i := 0; i < 200; i++ {
		a := rand.Intn(2)
		raw := make([]byte, 1+rand.Intn(70))
		for j := range raw {
			raw[j] = byte(rand.Intn(32))
		}
		s, err := Encode(algs[a], "tb", fesFromBytes(raw))
		require.NoError(t, err, "i=%d", i)

		wantHRP, wantData, wantVersion, err := btcbech32.DecodeGeneric(s)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, versions[a], wantVersion, "i=%d", i)

		hrp, data, gotAlg, err := DecodeAny(s)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, wantHRP, hrp, "i=%d", i)
		require.Equal(t, algs[a], gotAlg, "i=%d", i)
		got := make([]byte, len(data))
		for j, fe := range data {
			got[j] = byte(fe)
		}
		require.Equal(t, wantData, got, "i=%d", i)
	}
}

func TestConvertBitsAgainstBtcutil(t *testing.T) {
	rand := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		raw := make([]byte, 1+rand.Intn(60))
		rand.Read(raw)
		mine, err := ConvertBits(raw, 8, 5, true)
		require.NoError(t, err, "i=%d", i)
		theirs, err := btcbech32.ConvertBits(raw, 8, 5, true)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, theirs, mine, "i=%d", i)

		back, err := ConvertBits(mine, 5, 8, false)
		require.NoError(t, err, "i=%d", i)
		require.Equal(t, raw, back, "i=%d", i)
	}

	// Unpadded conversions agree on acceptance for arbitrary symbol
	// strings, valid or not.
	for i := 0; i < 200; i++ {
		syms := make([]byte, 1+rand.Intn(20))
		for j := range syms {
			syms[j] = byte(rand.Intn(32))
		}
		mine, mineErr := ConvertBits(syms, 5, 8, false)
		theirs, theirsErr := btcbech32.ConvertBits(syms, 5, 8, false)
		require.Equal(t, theirsErr != nil, mineErr != nil, "i=%d, syms=%v", i, syms)
		if mineErr == nil {
			require.Equal(t, theirs, mine, "i=%d", i)
		}
	}
}
