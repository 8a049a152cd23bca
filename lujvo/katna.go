package lujvo

import (
	"strings"

	"golang.org/x/exp/slices"
)

// SearchSelrafsiFromRafsi returns the gismu (or other source word) that owns
// rafsi r, if any is on record in RafsiTable, per spec.md §4.5. 4-letter rafsi
// that aren't themselves keys first try every gismu-vowel completion before
// falling back to a reverse lookup through every rafsi list.
func SearchSelrafsiFromRafsi(r string) (string, bool) {
	if r != "brod" && len(r) == 4 && !strings.ContainsRune(r, '\'') {
		for _, v := range "aeiou" {
			gismu := r + string(v)
			if _, ok := RafsiTable[gismu]; ok {
				return gismu, true
			}
		}
	}
	for source, list := range RafsiTable {
		if slices.Contains(list, r) {
			return source, true
		}
	}
	return "", false
}

// SelrafsiListFromRafsiList turns the raw rafsi/hyphen pieces jvokaha2
// produces into the source tanru: each rafsi is replaced by the selrafsi
// (source word) it's short for when one is known, formatted with trailing
// or surrounding hyphens when it reads ambiguously on its own, per
// spec.md §4.5.
func SelrafsiListFromRafsiList(rafsiList []string, settings Settings) ([]string, error) {
	res := make([]string, len(rafsiList))
	for i, r := range rafsiList {
		if isHyphen(r) {
			res[i] = ""
		} else {
			res[i] = r
		}
	}
	for i := range res {
		if res[i] == "" {
			continue
		}
		if source, ok := SearchSelrafsiFromRafsi(res[i]); ok {
			res[i] = source
			continue
		}
		brivlaAfterY := i < len(rafsiList)-2 && charAt(rafsiList[i+1], 0) == 'y'
		if brivlaAfterY {
			ok, err := IsBrivla(res[i]+"a", settings)
			if err != nil {
				return nil, err
			}
			if ok {
				res[i] = res[i] + "-"
				continue
			}
		}
		ok, err := IsBrivla(res[i], settings)
		if err != nil {
			return nil, err
		}
		if ok {
			continue
		}
		if i == len(rafsiList)-1 {
			ok, err := IsBrivla(res[i]+"a", settings)
			if err != nil {
				return nil, err
			}
			if ok {
				res[i] = res[i] + "-"
				continue
			}
		}
		res[i] = "-" + res[i] + "-"
	}
	out := res[:0]
	for _, r := range res {
		if r != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

// CompareLujvoPieces reports whether corr and other decompose to the same
// lujvo, tolerating an extra, grammatically optional "r"/"n" hyphen in
// other that corr omits, per spec.md §4.5.
func CompareLujvoPieces(corr, other []string) bool {
	i := 0
	for _, part := range corr {
		if i < len(other) && part == other[i] {
			i++
			continue
		}
		if i > 0 && i < len(other)-1 && i < len(other) && strings.Contains("rn", other[i]) &&
			(RafsiTarmi(other[i-1]) == Cvv || RafsiTarmi(other[i-1]) == Cvhv) &&
			(i > 1 || (i+1 < len(other) && isCcvShape(RafsiTarmi(other[i+1])))) {
			i++
		}
		if i < len(other) && part == other[i] {
			i++
		} else {
			return false
		}
	}
	return i == len(other)
}

func isCcvShape(t Tarmi) bool {
	return t == Ccvcv || t == Ccvc || t == Ccv
}

// Jvokaha decomposes lujvo into its rafsi and hyphens, then cross-checks the
// decomposition by re-synthesizing a lujvo from the pieces and confirming it
// matches the input (modulo tolerated hyphen differences), rejecting
// malformed lujvo that jvokaha2 alone would accept, per spec.md §4.5.
func Jvokaha(lujvo string, settings Settings) ([]string, error) {
	arr, err := jvokaha2(lujvo, settings)
	if err != nil {
		return nil, err
	}
	var rafsiTanru []string
	for _, r := range arr {
		if len(r) > 2 {
			rafsiTanru = append(rafsiTanru, "-"+r+"-")
		}
	}
	correctLujvo, _, _, err := GetLujvoFromList(rafsiTanru, settings)
	if err != nil {
		if k, ok := KindOf(err); ok && k == NoLujvoFoundError {
			return nil, errDecomposition("no lujvo for %v", rafsiTanru)
		}
		return nil, err
	}
	var coolAndGood bool
	if settings.YHyphens != ForceY {
		standard := settings
		standard.YHyphens = StandardY
		reArr, err := jvokaha2(correctLujvo, standard)
		if err != nil {
			return nil, err
		}
		coolAndGood = CompareLujvoPieces(reArr, arr)
	} else {
		coolAndGood = correctLujvo == lujvo
	}
	if !coolAndGood {
		return nil, errDecomposition("malformed lujvo {%s}; it should be {%s}", lujvo, correctLujvo)
	}
	return arr, nil
}

// jvokaha2 is the core greedy decomposer: it repeatedly strips the longest
// recognizable rafsi or hyphen off the front of lujvo, validating every
// cluster it consumes along the way, per spec.md §4.5. Unlike Jvokaha it
// never second-guesses the result against re-synthesis — it only fails when
// the string genuinely cannot be carved into rafsi.
func jvokaha2(lujvo string, settings Settings) ([]string, error) {
	orig := lujvo
	var res []string
	for {
		if lujvo == "" {
			return res, nil
		}
		if len(res) > 0 && len(res[len(res)-1]) != 1 {
			if charAt(lujvo, 0) == 'y' ||
				(settings.YHyphens != ForceY &&
					(sliceAt(lujvo, 0, 2) == "nr" ||
						(charAt(lujvo, 0) == 'r' && IsConsonant(rune(charAt(lujvo, 1)))))) {
				res = append(res, sliceAt(lujvo, 0, 1))
				lujvo = sliceAt(lujvo, 1, len(lujvo))
				continue
			} else if settings.YHyphens != StandardY && sliceAt(lujvo, 0, 2) == "'y" {
				res = append(res, sliceAt(lujvo, 0, 2))
				lujvo = sliceAt(lujvo, 2, len(lujvo))
				continue
			}
		}
		if RafsiTarmi(sliceAt(lujvo, 0, 3)) == Cvv && isFallingDiphthong(sliceAt(lujvo, 1, 3)) {
			res = append(res, sliceAt(lujvo, 0, 3))
			lujvo = sliceAt(lujvo, 3, len(lujvo))
			continue
		}
		if RafsiTarmi(sliceAt(lujvo, 0, 4)) == Cvhv {
			res = append(res, sliceAt(lujvo, 0, 4))
			lujvo = sliceAt(lujvo, 4, len(lujvo))
			continue
		}
		if t := RafsiTarmi(sliceAt(lujvo, 0, 4)); t == Cvcc || t == Ccvc {
			if IsVowel(rune(charAt(lujvo, 1))) {
				if !isValidCluster(settings.AllowMZ, sliceAt(lujvo, 2, 4)) {
					return nil, errInvalidCluster("invalid cluster {%s} in {%s}", sliceAt(lujvo, 2, 4), orig)
				}
			} else if !isInitialCluster(sliceAt(lujvo, 0, 2)) {
				return nil, errInvalidCluster("invalid initial cluster {%s} in {%s}", sliceAt(lujvo, 0, 2), orig)
			}
			if len(lujvo) == 4 || charAt(lujvo, 4) == 'y' {
				res = append(res, sliceAt(lujvo, 0, 4))
				if charAt(lujvo, 4) == 'y' {
					res = append(res, "y")
				}
				lujvo = sliceAt(lujvo, 5, len(lujvo))
				continue
			}
		}
		if t := RafsiTarmi(lujvo); t == Cvccv || t == Ccvcv {
			res = append(res, lujvo)
			return res, nil
		}
		if RafsiTarmi(sliceAt(lujvo, 0, 3)) == Cvc {
			res = append(res, sliceAt(lujvo, 0, 3))
			lujvo = sliceAt(lujvo, 3, len(lujvo))
			continue
		}
		if RafsiTarmi(sliceAt(lujvo, 0, 3)) == Ccv {
			if !isInitialCluster(sliceAt(lujvo, 0, 2)) {
				return nil, errInvalidCluster("invalid initial cluster {%s} in {%s}", sliceAt(lujvo, 0, 2), orig)
			}
			if len(res) == 0 && sliceAt(lujvo, 3, 5) == "'y" {
				return nil, errNotBrivla("starts with CCV'y, a slinku'i: {%s}", orig)
			}
			res = append(res, sliceAt(lujvo, 0, 3))
			lujvo = sliceAt(lujvo, 3, len(lujvo))
			continue
		}
		return nil, errDecomposition("failed to decompose {%s}", orig)
	}
}

// GetVeljvo returns the source tanru (as selrafsi, with unassigned rafsi
// formatted in hyphens) that lujvo decomposes to, per spec.md §4.5. It
// rejects anything that isn't a Lujvo, ExtendedLujvo, or Cmevla.
func GetVeljvo(lujvo string, settings Settings) ([]string, error) {
	bType, rafsiList, err := AnalyzeBrivla(lujvo, settings)
	if err != nil {
		return nil, err
	}
	if bType != Lujvo && bType != ExtendedLujvo && bType != Cmevla {
		return nil, errDecomposition("{%s} is a %s", lujvo, bType)
	}
	return SelrafsiListFromRafsiList(rafsiList, settings)
}
