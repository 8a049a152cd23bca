package lujvo

// Tarmi is the shape ("tarmi") of a rafsi or word fragment. The numeric
// values matter: score() reduces a Tarmi modulo 9, so Other must be the
// last member and every proper shape must occupy 1..8.
type Tarmi int

const (
	Hyphen Tarmi = iota // single consonant, or 'y
	Cvccv               // CVCCV gismu shape
	Cvcc                // CVCC
	Ccvcv               // CCVCV gismu shape
	Ccvc                // CCVC
	Cvc                 // CVC
	Cvhv                // CV'V
	Ccv                 // CCV
	Cvv                 // CVV
	Other               // anything else (zi'evla fragments, empty string, ...)
)

func (t Tarmi) String() string {
	switch t {
	case Hyphen:
		return "Hyphen"
	case Cvccv:
		return "CVCCV"
	case Cvcc:
		return "CVCC"
	case Ccvcv:
		return "CCVCV"
	case Ccvc:
		return "CCVC"
	case Cvc:
		return "CVC"
	case Cvhv:
		return "CV'V"
	case Ccv:
		return "CCV"
	case Cvv:
		return "CVV"
	default:
		return "Other"
	}
}

// BrivlaType classifies any Lojban word analyzed by AnalyzeBrivla.
type BrivlaType int

const (
	Gismu BrivlaType = iota
	Zihevla
	Lujvo
	ExtendedLujvo
	Rafsi
	Cmevla
)

func (t BrivlaType) String() string {
	switch t {
	case Gismu:
		return "Gismu"
	case Zihevla:
		return "Zi'evla"
	case Lujvo:
		return "Lujvo"
	case ExtendedLujvo:
		return "Extended Lujvo"
	case Rafsi:
		return "Rafsi"
	case Cmevla:
		return "Cmevla"
	default:
		return "Unknown"
	}
}

// IsVowel reports whether c is one of the five Lojban vowels.
func IsVowel(c rune) bool {
	return c == 'a' || c == 'e' || c == 'i' || c == 'o' || c == 'u'
}

// IsConsonant reports whether c is one of the seventeen Lojban consonants.
func IsConsonant(c rune) bool {
	switch c {
	case 'b', 'c', 'd', 'f', 'g', 'j', 'k', 'l', 'm', 'n', 'p', 'r', 's', 't', 'v', 'x', 'z':
		return true
	}
	return false
}

// IsGlide reports whether s begins with a rising diphthong (i or u
// followed by a vowel other than itself), which Settings.Glides may treat
// as consonantal for cluster-counting purposes.
func IsGlide(s string) bool {
	if len(s) < 2 {
		return false
	}
	c0, c1 := rune(s[0]), rune(s[1])
	return (c0 == 'i' || c0 == 'u') && IsVowel(c1) && c0 != c1
}

// IsOnlyLojbanCharacters reports whether valsi consists solely of the
// Lojban alphabet (vowels, consonants, the y-hyphen letter, apostrophe) and
// is non-empty.
func IsOnlyLojbanCharacters(valsi string) bool {
	if valsi == "" {
		return false
	}
	for i := 0; i < len(valsi); i++ {
		c := rune(valsi[i])
		if !IsVowel(c) && !IsConsonant(c) && c != '\'' && c != 'y' {
			return false
		}
	}
	return true
}

// IsGismu reports whether valsi has the 5-letter gismu shape: CVCCV or
// CCVCV.
func IsGismu(valsi string) bool {
	if len(valsi) != 5 {
		return false
	}
	if !IsConsonant(rune(charAt(valsi, 0))) || !IsConsonant(rune(charAt(valsi, 3))) || !IsVowel(rune(charAt(valsi, 4))) {
		return false
	}
	v1, c1 := IsVowel(rune(charAt(valsi, 1))), IsConsonant(rune(charAt(valsi, 1)))
	v2, c2 := IsVowel(rune(charAt(valsi, 2))), IsConsonant(rune(charAt(valsi, 2)))
	return (v1 && c2) || (c1 && v2)
}

// RafsiTarmi classifies a fragment by its shape, per spec.md §4.1.
func RafsiTarmi(rafsi string) Tarmi {
	switch len(rafsi) {
	case 0:
		return Other
	case 1:
		if IsConsonant(rune(charAt(rafsi, 0))) {
			return Hyphen
		}
		return Other
	case 2:
		if charAt(rafsi, 0) == '\'' && charAt(rafsi, 1) == 'y' {
			return Hyphen
		}
		return Other
	case 3:
		if !IsConsonant(rune(charAt(rafsi, 0))) {
			return Other
		}
		c1, c2 := rune(charAt(rafsi, 1)), rune(charAt(rafsi, 2))
		switch {
		case IsVowel(c1) && IsVowel(c2):
			return Cvv
		case IsVowel(c1) && IsConsonant(c2):
			return Cvc
		case IsConsonant(c1) && IsVowel(c2):
			return Ccv
		default:
			return Other
		}
	case 4:
		if !IsConsonant(rune(charAt(rafsi, 0))) {
			return Other
		}
		vowel1 := IsVowel(rune(charAt(rafsi, 1)))
		cons2, cons3 := IsConsonant(rune(charAt(rafsi, 2))), IsConsonant(rune(charAt(rafsi, 3)))
		switch {
		case vowel1 && charAt(rafsi, 2) == '\'' && charAt(rafsi, 3) != 'y':
			return Cvhv
		case vowel1 && cons2 && cons3:
			return Cvcc
		case !vowel1 && !cons2 && cons3:
			return Ccvc
		default:
			return Other
		}
	case 5:
		if !IsGismu(rafsi) {
			return Other
		}
		if IsVowel(rune(charAt(rafsi, 2))) {
			return Ccvcv
		}
		return Cvccv
	default:
		return Other
	}
}

// TarmiIgnoringHyphen strips a leading or trailing ' or y before
// classifying, so that a rafsi's glue doesn't mask its underlying shape.
func TarmiIgnoringHyphen(rafsi string) Tarmi {
	if charAt(rafsi, 0) == '\'' {
		rafsi = rafsi[1:]
	}
	if charAt(rafsi, -1) == 'y' {
		rafsi = rafsi[:len(rafsi)-1]
	}
	if charAt(rafsi, -1) == '\'' {
		rafsi = rafsi[:len(rafsi)-1]
	}
	return RafsiTarmi(rafsi)
}

// IsValidRafsi reports whether rafsi has a proper rafsi shape and, for
// shapes with an internal or initial two-consonant cluster, that the
// cluster is licensed.
func IsValidRafsi(rafsi string, allowMZ bool) bool {
	t := RafsiTarmi(rafsi)
	switch t {
	case Cvccv, Cvcc:
		return isValidCluster(allowMZ, sliceAt(rafsi, 2, 4))
	case Ccvcv, Ccvc, Ccv:
		return isInitialCluster(sliceAt(rafsi, 0, 2))
	}
	return t >= Cvccv && t <= Cvv
}
