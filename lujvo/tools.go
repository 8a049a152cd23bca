package lujvo

import "strings"

// Normalize lowercases word, strips a leading/trailing '.', drops every
// ',', and rewrites 'h' to '\'' — the textual normalization every public
// entry point applies before analysis, per spec.md §4.4.
func Normalize(word string) string {
	word = strings.ToLower(word)
	word = strings.Trim(word, ".")
	word = strings.ReplaceAll(word, ",", "")
	word = strings.ReplaceAll(word, "h", "'")
	return word
}

// splitOneCmavo splits a single cmavo (particle) off the front of s,
// assuming the remainder is valid Lojban. It mirrors the greedy syllable
// walk of the original's split_one_cmavo: take at most one leading
// consonant, then take one vowel-cluster "syllable" of a cmavo (a falling diphthong,
// a rising diphthong, or a single vowel), stopping the moment a second
// syllable would start.
func splitOneCmavo(s string) (cmavo, rest string, ok bool) {
	i := 0
	willEnd := false
	for i < len(s) {
		if i+2 < len(s) && isFallingDiphthong(s[i:i+2]) && !isCmavoVowelish(rune(charAt(s, i+2))) {
			i += 2
			willEnd = true
		} else if i+1 < len(s) && isRisingStart(rune(charAt(s, i))) && isCmavoVowelish(rune(charAt(s, i+1))) {
			if willEnd {
				break
			}
			i += 2
			willEnd = true
		} else if isCmavoVowelish(rune(charAt(s, i))) {
			i++
			willEnd = true
		} else if charAt(s, i) == '\'' {
			i++
			willEnd = false
		} else if IsConsonant(rune(charAt(s, i))) {
			if i == 0 {
				i++
				continue
			}
			break
		} else {
			return "", "", false
		}
	}
	return s[:i], s[i:], true
}

func isFallingDiphthong(s string) bool {
	return s == "ai" || s == "ei" || s == "oi" || s == "au"
}

func isRisingStart(c rune) bool {
	return c == 'i' || c == 'u'
}

func isCmavoVowelish(c rune) bool {
	return IsVowel(c) || c == 'y'
}

// isPureCmavoCompound reports whether s can be fully split into a sequence
// of cmavo particles with no leftover — the "prefix is a pure cmavo
// compound" test used by the tosmabru search in CheckZihevlaOrRafsi.
func isPureCmavoCompound(s string) bool {
	for s != "" {
		cmavo, rest, ok := splitOneCmavo(s)
		if !ok || cmavo == "" || len(rest) >= len(s) {
			return false
		}
		s = rest
	}
	return true
}
