package gf32

// Alphabet lists the canonical character for each element, indexed by
// element value.
const Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var charTable [128]int8

func init() {
	for i := range charTable {
		charTable[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		if charTable[c] != -1 {
			panic("repeated character")
		}
		charTable[c] = int8(i)
		if c >= 'a' && c <= 'z' {
			charTable[c-'a'+'A'] = int8(i)
		}
	}
}

// FromChar returns the element encoded by the given character in
// either case, and whether the character is part of the alphabet.
func FromChar(c byte) (Fe, bool) {
	if c >= 128 || charTable[c] < 0 {
		return 0, false
	}
	return Fe(charTable[c]), true
}

// Char returns the canonical (lowercase) character encoding t, which
// must be a valid element.
func (t Fe) Char() byte {
	if t >= order {
		panic("out-of-range element")
	}
	return Alphabet[t]
}
