package lujvo

import "strings"

// IsBrivla reports whether word classifies as any kind of predicate word
// (anything AnalyzeBrivla doesn't reject), per spec.md §4.4/§6.
func IsBrivla(word string, settings Settings) (bool, error) {
	_, _, err := AnalyzeBrivla(word, settings)
	if err != nil {
		if k, ok := KindOf(err); ok && k == NotBrivlaError {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// isBrivlaOK is the bool-only convenience wrapper used by the recursive
// tosmabru search, where a propagating error is treated the same as "not a
// brivla".
func isBrivlaOK(word string, settings Settings) bool {
	ok, err := IsBrivla(word, settings)
	return err == nil && ok
}

func stripTosmabruPrefix(word string) (tail string, ok bool) {
	for _, n := range []int{4, 3} {
		if len(word) <= n {
			continue
		}
		if t := RafsiTarmi(word[:n]); t == Cvv || t == Cvhv {
			return word[n:], true
		}
	}
	return "", false
}

// AnalyzeBrivla classifies word and returns its morpheme sequence, per
// spec.md §4.4. It is the central dispatcher every other public operation
// in this package (other than the raw decomposer/composer primitives)
// builds on.
func AnalyzeBrivla(word string, settings Settings) (BrivlaType, []string, error) {
	word = Normalize(word)
	if word == "" {
		return 0, nil, errNotBrivla("empty word")
	}
	if !IsOnlyLojbanCharacters(word) {
		return 0, nil, errNonLojbanCharacter("non-lojban character in {%s}", word)
	}
	last := rune(charAt(word, -1))
	var isCmetai bool
	switch {
	case IsConsonant(last):
		isCmetai = true
	case IsVowel(last):
		isCmetai = false
	default:
		return 0, nil, errNonLojbanCharacter("word must end in a vowel or consonant: {%s}", word)
	}
	if isCmetai && IsGismu(word+"a") {
		return 0, nil, errNotBrivla("non-decomposable cmevla: {%s}", word)
	}
	if IsGismu(word) {
		return Gismu, []string{word}, nil
	}
	if parts, err := Jvokaha(word, settings); err == nil {
		if isCmetai {
			return Cmevla, parts, nil
		}
		return Lujvo, parts, nil
	} else if k, ok := KindOf(err); !ok || (k != DecompositionError && k != InvalidClusterError && k != FakeTypeError) {
		return 0, nil, errNotBrivla("%s", err.Error())
	}

	segments := strings.Split(word, "y")
	if len(segments) == 1 && !isCmetai {
		if _, err := CheckZihevlaOrRafsi(word, settings, true); err != nil {
			if k, ok := KindOf(err); ok && k == NotZihevlaError {
				return 0, nil, errNotBrivla("%s", err.(*Error).Message)
			}
			return 0, nil, err
		}
		return Zihevla, []string{word}, nil
	}

	numConsonants := 0
	hasCluster := false
	var parts []string
	for i, seg := range segments {
		first := i == 0
		final := i == len(segments)-1
		leadingHyphen := ""
		if charAt(seg, 0) == '\'' {
			leadingHyphen = "'"
			seg = seg[1:]
		} else if !first && !IsGlide(seg) {
			return 0, nil, errNotBrivla("non-glide segment after y-hyphen: {%s}", word)
		}
		if RafsiTarmi(seg) == Cvc {
			numConsonants += 2
			parts = append(parts, leadingHyphen+seg)
			continue
		}
		if RafsiTarmi(seg+"a") == Ccv {
			return 0, nil, errNotBrivla("CCV rafsi missing vowel: {%s}", seg)
		}
		trailingHyphen := ""
		requireCluster := false
		if charAt(seg, -1) == '\'' {
			trailingHyphen = "'"
			seg = seg[:len(seg)-1]
		} else if !final || isCmetai {
			seg = seg + "a"
			requireCluster = true
		}
		if hasAdjacentConsonants(seg) {
			hasCluster = true
		}
		if subParts, err := jvokaha2(seg, settings); err == nil {
			for _, sp := range subParts {
				numConsonants += countConsonants(sp)
			}
			if leadingHyphen != "" {
				parts = append(parts, leadingHyphen)
			}
			parts = append(parts, subParts...)
			if trailingHyphen != "" {
				parts = append(parts, trailingHyphen)
			}
		} else {
			requireZihevla := requireCluster || !settings.ExpRafsi
			if _, verr := CheckZihevlaOrRafsi(seg, settings, requireZihevla); verr != nil {
				return 0, nil, errNotBrivla("%s", verr.Error())
			}
			numConsonants += countConsonants(seg)
			parts = append(parts, leadingHyphen+seg+trailingHyphen)
		}
		if first {
			if tail, ok := stripTosmabruPrefix(segments[0]); ok {
				t := RafsiTarmi(tail)
				slinkuhiSeed := t == Ccv && len(tail) >= 5 && sliceAt(tail, 3, 5) == "'y"
				if t >= Cvccv && t <= Cvv && !slinkuhiSeed {
					return 0, nil, errNotBrivla("tosmabru: {%s}", word)
				}
			}
		}
	}

	switch settings.Consonants {
	case Cluster:
		if !hasCluster {
			return 0, nil, errNotBrivla("no two-consonant cluster: {%s}", word)
		}
	case OneConsonant:
		if numConsonants < 1 {
			return 0, nil, errNotBrivla("not enough consonants: {%s}", word)
		}
	default: // TwoConsonants
		if numConsonants < 2 {
			return 0, nil, errNotBrivla("not enough consonants: {%s}", word)
		}
	}
	if isPureCmavoCompound(word) {
		return 0, nil, errNotBrivla("looks like a cmavo compound: {%s}", word)
	}
	if IsSlinkuhi(word, settings) {
		return 0, nil, errNotBrivla("slinku'i: {%s}", word)
	}

	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if isCmetai {
		return Cmevla, out, nil
	}
	return ExtendedLujvo, out, nil
}

// hasAdjacentConsonants reports whether s contains two directly adjacent
// consonant letters, i.e. a genuine consonant cluster rather than just a
// consonant count.
func hasAdjacentConsonants(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if IsConsonant(rune(s[i])) && IsConsonant(rune(s[i+1])) {
			return true
		}
	}
	return false
}

func countConsonants(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if IsConsonant(rune(s[i])) {
			n++
		}
	}
	return n
}
