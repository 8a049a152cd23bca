package lujvo

import "strings"

// IsZihevlaInitialCluster reports whether c is a consonant cluster licensed
// at the very start of a zi'evla, per spec.md §4.2.
func IsZihevlaInitialCluster(c string) bool {
	switch len(c) {
	case 1:
		return true
	case 2:
		return isInitialCluster(c)
	case 3:
		return isInitialCluster(c[:2]) && isZihevlaInitialEnding(c[1:3])
	default:
		return false
	}
}

// IsZihevlaMiddleCluster reports whether c is a consonant cluster licensed
// in the middle of a zi'evla, per spec.md §4.2.
func IsZihevlaMiddleCluster(c string, allowMZ bool) bool {
	switch {
	case len(c) < 3:
		return true
	case len(c) == 3:
		if c[1] == 'l' || c[1] == 'm' || c[1] == 'n' || c[1] == 'r' {
			return true
		}
		return isValidCluster(allowMZ, c[:2]) && isInitialCluster(c[1:3])
	default:
		return isZihevlaMiddleClusterLong(c)
	}
}

// isZihevlaMiddleClusterLong hand-rolls the "regular grammar" spec.md §4.2
// describes for 4+ char zi'evla middle clusters: an optional initial
// consonant, a run of (consonant+sonorant) pairs, then a short
// initial-cluster-like tail.
func isZihevlaMiddleClusterLong(c string) bool {
	if n := len(c); n >= 3 && c[n-3] == 'm' && isInitialCluster(c[n-2:]) {
		c = c[:n-3]
	}
	i := 0
	if len(c) > 0 && IsConsonant(rune(c[0])) {
		i = 1
	}
	for i+1 < len(c) && IsConsonant(rune(c[i])) && strings.ContainsRune("lmnr", rune(c[i+1])) {
		i += 2
	}
	tail := c[i:]
	switch len(tail) {
	case 0:
		return true
	case 1:
		return IsConsonant(rune(tail[0]))
	case 2:
		return isInitialCluster(tail)
	case 3:
		return IsZihevlaInitialCluster(tail)
	default:
		return false
	}
}

// SplitVowelCluster splits a run of two or more vowels into syllables,
// matching FollowVowelClusters greedily from the right and finally
// matching the leftover prefix against StartVowelClusters, per spec.md
// §4.2. A run of length 1 is always its own, trivially valid, syllable.
func SplitVowelCluster(run string) ([]string, bool) {
	if len(run) <= 1 {
		if run == "" {
			return nil, false
		}
		return []string{run}, true
	}
	rest := run
	var tail []string
	for {
		matched := false
		for l := 4; l >= 2; l-- {
			if len(rest) > l {
				suf := rest[len(rest)-l:]
				if isFollowVowelCluster(suf) {
					tail = append(tail, suf)
					rest = rest[:len(rest)-l]
					matched = true
					break
				}
			}
		}
		if !matched {
			break
		}
	}
	if !isStartVowelCluster(rest) {
		return nil, false
	}
	syllables := []string{rest}
	for i := len(tail) - 1; i >= 0; i-- {
		syllables = append(syllables, tail[i])
	}
	for i := 1; i < len(syllables); i++ {
		if isFallingDiphthong(syllables[i-1]) && isRisingStart(rune(syllables[i][0])) {
			return nil, false
		}
	}
	return syllables, true
}

// IsGismuOrLujvo reports whether word is a gismu by shape or a valid lujvo
// by greedy decomposition — the cheap feasibility oracle the validator uses
// to detect words that "fall apart" into a shorter recognizable word.
func IsGismuOrLujvo(word string, settings Settings) bool {
	if IsGismu(word) {
		return true
	}
	_, err := jvokaha2(word, settings)
	return err == nil
}

// IsSlinkuhi reports whether word begins with a consonant and prepending
// the CV particle "pa" to it decomposes as a well-formed lujvo — i.e.
// word would "absorb" a preceding particle, per spec.md §4.3.
func IsSlinkuhi(word string, settings Settings) bool {
	if word == "" || !IsConsonant(rune(word[0])) {
		return false
	}
	_, err := Jvokaha("pa"+word, settings)
	return err == nil
}

func tosmabruCrossOK(word string, p int) bool {
	if p >= len(word) {
		return false
	}
	if IsGlide(word[p:]) {
		return true
	}
	if p > 0 && IsVowel(rune(charAt(word, p-1))) && IsVowel(rune(charAt(word, p))) {
		pair := word[p-1 : p+1]
		return !isFollowVowelCluster(pair) && !isStartVowelCluster(pair)
	}
	return true
}

// findTosmabruSplit searches every prefix split point before a freshly
// discovered consonant cluster for one that would let word's leading
// syllable(s) "fall off" as a cmavo compound, leaving a self-sufficient
// brivla behind — exactly the tosmabru condition spec.md §4.2 describes.
func findTosmabruSplit(word string, clusterStart int, settings Settings) bool {
	for p := 1; p < clusterStart; p++ {
		prev := charAt(word, p-1)
		if !(IsVowel(rune(prev)) || prev == 'y') {
			continue
		}
		if !isPureCmavoCompound(word[:p]) {
			continue
		}
		if !tosmabruCrossOK(word, p) {
			continue
		}
		if isBrivlaOK(word[p:], settings) {
			return true
		}
	}
	return false
}

// CheckZihevlaOrRafsi walks word left to right enforcing the cluster,
// syllable, vowel-sequence, apostrophe, and falling-apart rules of
// spec.md §4.2, returning Zihevla if a genuine consonant cluster was
// found, or Rafsi if the word instead has a short-rafsi shape.
func CheckZihevlaOrRafsi(word string, settings Settings, requireZihevla bool) (BrivlaType, error) {
	if !IsOnlyLojbanCharacters(word) {
		return 0, errNonLojbanCharacter("non-lojban character in {%s}", word)
	}
	if charAt(word, len(word)-1) == '\'' {
		return 0, errNonLojbanCharacter("word cannot end with ': {%s}", word)
	}
	n := len(word)
	hasCluster := false
	clusterStart := -1
	numSyllables := 0
	numConsonants := 0
	i := 0
	for i < n {
		c := rune(word[i])
		switch {
		case IsConsonant(c):
			start := i
			for i < n && IsConsonant(rune(word[i])) {
				i++
			}
			run := word[start:i]
			numConsonants += len(run)
			if len(run) >= 2 && !hasCluster {
				if start > 0 && findTosmabruSplit(word, start, settings) {
					return 0, errNotZihevla("tosmabru: {%s}", word)
				}
				if start == 0 {
					if !IsZihevlaInitialCluster(run) {
						return 0, errInvalidCluster("invalid zi'evla-initial cluster {%s} in {%s}", run, word)
					}
				} else if !IsZihevlaMiddleCluster(run, settings.AllowMZ) {
					return 0, errInvalidCluster("invalid zi'evla-middle cluster {%s} in {%s}", run, word)
				}
				for j := 0; j+1 < len(run); j++ {
					if !isValidCluster(settings.AllowMZ, run[j:j+2]) {
						return 0, errInvalidCluster("invalid cluster {%s} in {%s}", run[j:j+2], word)
					}
				}
				for j := 0; j+2 < len(run); j++ {
					if isBannedTriple(run[j : j+3]) {
						return 0, errInvalidCluster("banned triple {%s} in {%s}", run[j:j+3], word)
					}
				}
				hasCluster = true
				clusterStart = start
			}
		case IsVowel(c):
			start := i
			for i < n && IsVowel(rune(word[i])) {
				i++
			}
			run := word[start:i]
			syll, ok := SplitVowelCluster(run)
			if !ok {
				return 0, errNotZihevla("invalid vowel cluster {%s} in {%s}", run, word)
			}
			if len(run) >= 2 && !hasCluster && start > 0 && charAt(word, start-1) != '\'' && i == n {
				return 0, errNotZihevla("looks like a cmavo compound: {%s}", word)
			}
			if start > 0 && len(syll) > 0 && isFollowVowelCluster(syll[0]) && isRisingStart(rune(syll[0][0])) {
				return 0, errNotZihevla("illegal glide syllable in {%s}", word)
			}
			numSyllables += len(syll)
		case c == '\'':
			prev, next := charAt(word, i-1), charAt(word, i+1)
			if i == 0 || i == n-1 || !IsVowel(rune(prev)) || !IsVowel(rune(next)) {
				return 0, errNotZihevla("apostrophe must be surrounded by vowels: {%s}", word)
			}
			i++
		default:
			return 0, errNonLojbanCharacter("non-lojban character {%c} in {%s}", c, word)
		}
	}
	if numSyllables < 2 && !(!requireZihevla && settings.ExpRafsi) {
		return 0, errNotZihevla("not enough syllables: {%s}", word)
	}
	if hasCluster {
		if clusterStart > 0 {
			if IsGismuOrLujvo(word[clusterStart:], settings) {
				return 0, errNotZihevla("falls apart after {%s}: {%s}", word[:clusterStart], word)
			}
			for p := 1; p < clusterStart; p++ {
				rest := word[p:]
				if (IsConsonant(rune(rest[0])) || IsGlide(rest)) && IsGismuOrLujvo(rest, settings) {
					return 0, errNotZihevla("falls apart after {%s}: {%s}", word[:p], word)
				}
			}
		}
	} else {
		if requireZihevla {
			return 0, errNotZihevla("no consonant cluster in zi'evla candidate: {%s}", word)
		}
		leading := rune(charAt(word, 0))
		if !(IsConsonant(leading) || (settings.ExpRafsi && IsVowel(leading))) {
			return 0, errNotZihevla("rafsi must start with a consonant: {%s}", word)
		}
		if numConsonants > 1 {
			return 0, errNotZihevla("too many consonants for a rafsi: {%s}", word)
		}
	}
	if hasCluster {
		if IsSlinkuhi(word, settings) {
			return 0, errNotZihevla("slinku'i: {%s}", word)
		}
		return Zihevla, nil
	}
	return Rafsi, nil
}
