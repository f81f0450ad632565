// Package chars provides the character maker: a single rune drawn from a
// union of codepoint ranges with near-uniform probability across the whole
// union, regardless of how the union splits into sub-ranges.
package chars

// Range is an inclusive codepoint range.
type Range struct {
	Lo rune
	Hi rune
}

func (r Range) size() int64 {
	return int64(r.Hi) - int64(r.Lo) + 1
}

// Predefined range sets. Sets compose with Union.
var (
	Lower  = []Range{{'a', 'z'}}
	Upper  = []Range{{'A', 'Z'}}
	Digits = []Range{{'0', '9'}}

	Letters      = Union(Lower, Upper)
	Alphanumeric = Union(Lower, Upper, Digits)

	// ASCIIPrintable spans space through tilde.
	ASCIIPrintable = []Range{{0x20, 0x7e}}

	// Latin1Supplement covers the printable part of Latin-1.
	Latin1Supplement = []Range{{0xa1, 0xff}}

	Greek    = []Range{{0x391, 0x3a9}, {0x3b1, 0x3c9}}
	Cyrillic = []Range{{0x410, 0x44f}}
)

// Union concatenates range sets, preserving declaration order. Overlap is
// permitted; overlapping codepoints simply carry more weight.
func Union(sets ...[]Range) []Range {
	var out []Range
	for _, set := range sets {
		out = append(out, set...)
	}
	return out
}
