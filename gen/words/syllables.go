package words

// Static phoneme tables consulted when building word-like strings. Onsets
// and codas are drawn from common English consonant clusters; the unicode
// nucleus table adds accented vowels.
var (
	onsets = []string{
		"b", "bl", "br", "c", "ch", "cl", "cr", "d", "dr", "f", "fl", "fr",
		"g", "gl", "gr", "h", "j", "k", "l", "m", "n", "p", "ph", "pl", "pr",
		"qu", "r", "s", "sh", "sk", "sl", "sm", "sn", "sp", "st", "str", "sw",
		"t", "th", "tr", "v", "w", "wh", "y", "z",
	}

	nuclei = []string{
		"a", "ai", "e", "ea", "ee", "i", "ia", "o", "oa", "oo", "ou", "u",
	}

	unicodeNuclei = []string{
		"a", "ai", "e", "ea", "ee", "i", "ia", "o", "oa", "oo", "ou", "u",
		"à", "á", "â", "è", "é", "ê", "ì", "í", "ò", "ó", "ô", "ù", "ú", "û",
	}

	codas = []string{
		"", "", "", "ck", "d", "l", "ll", "m", "n", "nd", "ng", "nt", "r",
		"rd", "rn", "s", "ss", "st", "t", "th",
	}
)
