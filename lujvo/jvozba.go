package lujvo

import "strings"

// tosytype tracks whether the lujvo built so far is at risk of parsing as a
// tosmabru (a word whose head would fall off as a cmavo, leaving the rest as
// a brivla) or a tosyhu'u (the CVC-y- ambiguity), per spec.md §4.6.
type tosytype int

const (
	tosynone tosytype = iota
	tosmabru
	tosyhuhu
)

// rafsiKind distinguishes the three synthetic kinds GetRafsiForRafsi's
// callers can pass instead of a genuine Tarmi shape.
type rafsiKind Tarmi

const (
	shortBrivla       rafsiKind = -1
	longBrivla        rafsiKind = -2
	experimentalRafsi rafsiKind = -3
)

// Score computes the preference score for a rafsi or hyphen fragment: lower
// is better. Shorter fragments score best; at equal length, apostrophes,
// vowels and a higher tarmi value lower the score and y raises it, per
// spec.md §4.6.
func Score(r string) int {
	t := int(TarmiIgnoringHyphen(r)) % 9
	return 1000*len(r) - 400*countRune(r, '\'') + 100*countRune(r, 'y') - 10*t - countVowels(r)
}

// tiebreak returns 1 when form is a CVV rafsi followed by exactly one more
// piece of shape CCV, CCVC, CVC, or CVCC (the whole remainder must have that
// shape) — a shape combination spec.md §4.6 prefers over equal-scoring
// alternatives — and 0 otherwise.
func tiebreak(form string) int {
	if len(form) < 3 || RafsiTarmi(form[:3]) != Cvv {
		return 0
	}
	rest := form[3:]
	switch RafsiTarmi(rest) {
	case Ccv, Ccvc, Cvc, Cvcc:
		return 1
	}
	return 0
}

// ProcessTanru splits a tanru into normalized words.
func ProcessTanru(tanru string) []string {
	fields := strings.Fields(tanru)
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = Normalize(f)
	}
	return out
}

func stripHyphens(s string) string {
	s = strings.TrimPrefix(s, "'")
	for _, suf := range []string{"'y", "y'", "y", "'"} {
		if strings.HasSuffix(s, suf) {
			return strings.TrimSuffix(s, suf)
		}
	}
	return s
}

func containsConsonant(s string) bool {
	for i := 0; i < len(s); i++ {
		if IsConsonant(rune(s[i])) {
			return true
		}
	}
	return false
}

// rafsiCandidate is one (string, consonant-credit) pair GetRafsiForRafsi
// proposes for a word occupying a particular tanru slot.
type rafsiCandidate struct {
	Text       string
	Consonants int
}

// GetRafsiForRafsi enumerates the hyphenated forms a single rafsi/word r may
// take at this position in the tanru, along with the consonant-credit each
// form contributes toward the "needs one real cluster" requirement, per
// spec.md §4.6.
func GetRafsiForRafsi(r string, kind rafsiKind, first, last bool, settings Settings) []rafsiCandidate {
	if !first && IsVowel(rune(charAt(r, 0))) && !IsGlide(r) {
		r = "'" + r
	}
	var res []rafsiCandidate
	switch kind {
	case shortBrivla, rafsiKind(Ccvc), rafsiKind(Cvcc):
		if !last {
			res = append(res, rafsiCandidate{r + "y", 2})
		} else if !IsVowel(rune(charAt(r, -1))) {
			res = append(res, rafsiCandidate{r, 2})
		}
	case longBrivla, rafsiKind(Ccvcv), rafsiKind(Cvccv):
		if last {
			res = append(res, rafsiCandidate{r, 2})
		} else if !(kind == rafsiKind(Cvccv) && isInitialCluster(sliceAt(r, 2, 4))) {
			res = append(res, rafsiCandidate{r + "'y", 2})
		}
	case experimentalRafsi:
		numConsonants := 0
		if settings.Consonants != Cluster && (IsConsonant(rune(charAt(r, 0))) || (settings.Glides && IsGlide(r))) {
			numConsonants = 1
		}
		switch {
		case last:
			res = append(res, rafsiCandidate{r, numConsonants})
		case !first:
			res = append(res, rafsiCandidate{r + "'y", numConsonants})
		default:
			res = append(res, rafsiCandidate{r + "'", numConsonants})
		}
	case rafsiKind(Cvv), rafsiKind(Cvhv):
		numConsonants := 0
		if settings.Consonants != Cluster {
			numConsonants = 1
		}
		if first {
			res = append(res, rafsiCandidate{r + "'", numConsonants})
		} else if !last {
			res = append(res, rafsiCandidate{r + "'y", numConsonants})
		}
		res = append(res, rafsiCandidate{r, numConsonants})
	case rafsiKind(Ccv):
		res = append(res, rafsiCandidate{r, 2})
		res = append(res, rafsiCandidate{r + "'y", 2})
	case rafsiKind(Cvc):
		res = append(res, rafsiCandidate{r, 2})
		if !last {
			res = append(res, rafsiCandidate{r + "y", 2})
		}
	}
	return res
}

// GetRafsiListList computes, for every word in valsiList, the candidate
// rafsi forms it can contribute to a lujvo, per spec.md §4.6. A word
// suffixed with '-' is taken as an explicit override rather than a
// dictionary lookup: "x-" is a short brivla, "-x-" a rafsi. A word with only
// a leading '-' is not an override and fails the character check.
func GetRafsiListList(valsiList []string, settings Settings) ([][]rafsiCandidate, error) {
	rafsiListList := make([][]rafsiCandidate, len(valsiList))
	for i, valsi := range valsiList {
		first := i == 0
		last := i == len(valsiList)-1
		var rafsiList []rafsiCandidate

		if charAt(valsi, -1) == '-' {
			isShortBrivla := charAt(valsi, 0) != '-'
			bare := strings.Trim(valsi, "-")
			if !IsOnlyLojbanCharacters(bare) {
				return nil, errNonLojbanCharacter("non-lojban character in {%s}", bare)
			}
			if charAt(bare, -1) == '\'' {
				return nil, errNonLojbanCharacter("rafsi cannot end with ': {%s}", bare)
			}
			if isShortBrivla {
				bType, _, err := AnalyzeBrivla(bare+"a", settings)
				if err != nil {
					if k, ok := KindOf(err); ok && k == NoLujvoFoundError {
						return nil, errNoLujvoFound("rafsi + a is not a brivla: {%s}", bare)
					}
					return nil, err
				}
				if bType != Zihevla && bType != Gismu {
					return nil, errNoLujvoFound("rafsi + a is not a gismu or zi'evla: {%s}", bare)
				}
				if len(bare) > 5 && IsConsonant(rune(charAt(bare, -1))) {
					_, err := jvokaha2(bare, settings)
					if err == nil {
						return nil, errNoLujvoFound("short zi'evla rafsi falls apart: {%s}", bare)
					}
				}
				rafsiList = append(rafsiList, GetRafsiForRafsi(bare, shortBrivla, first, last, settings)...)
			} else {
				raftai := RafsiTarmi(bare)
				if raftai == Other {
					var zihevlaOrRafsi BrivlaType
					var found bool
					bType, _, err := AnalyzeBrivla(bare, settings)
					if err != nil {
						k, _ := KindOf(err)
						if k != NotBrivlaError {
							return nil, err
						}
						if settings.ExpRafsi {
							shape, shapeErr := CheckZihevlaOrRafsi(bare, settings, false)
							if shapeErr != nil {
								if sk, ok := KindOf(shapeErr); ok && sk == NotZihevlaError {
									return nil, errNoLujvoFound("not a valid rafsi shape: {%s}", bare)
								}
								return nil, shapeErr
							}
							if shape == Rafsi {
								zihevlaOrRafsi, found = Rafsi, true
							}
						}
					} else if bType == Zihevla {
						zihevlaOrRafsi, found = Zihevla, true
					}
					if !found {
						return nil, errNotZihevla("not a valid rafsi or zi'evla shape: {%s}", bare)
					}
					kind := experimentalRafsi
					if zihevlaOrRafsi == Zihevla {
						kind = longBrivla
					}
					rafsiList = append(rafsiList, GetRafsiForRafsi(bare, kind, first, last, settings)...)
				} else {
					if !IsValidRafsi(bare, settings.AllowMZ) {
						return nil, errInvalidCluster("invalid cluster in rafsi: {%s}", bare)
					}
					rafsiList = append(rafsiList, GetRafsiForRafsi(bare, rafsiKind(raftai), first, last, settings)...)
				}
			}
		} else {
			if !IsOnlyLojbanCharacters(valsi) {
				return nil, errNonLojbanCharacter("non-lojban character in {%s}", valsi)
			}
			if shortRafsiList, ok := RafsiTable[valsi]; ok {
				for _, r := range shortRafsiList {
					raftai := RafsiTarmi(r)
					if raftai == Other && settings.ExpRafsi {
						continue
					}
					rafsiList = append(rafsiList, GetRafsiForRafsi(r, rafsiKind(raftai), first, last, settings)...)
				}
			}
			bType, _, err := AnalyzeBrivla(valsi, settings)
			if err != nil {
				if k, ok := KindOf(err); !ok || k != NotBrivlaError {
					return nil, err
				}
			} else {
				if bType == Gismu {
					rafsiList = append(rafsiList, GetRafsiForRafsi(sliceAt(valsi, 0, -1), shortBrivla, first, last, settings)...)
				}
				if bType == Gismu || bType == Zihevla {
					rafsiList = append(rafsiList, GetRafsiForRafsi(valsi, longBrivla, first, last, settings)...)
				}
			}
		}
		rafsiListList[i] = rafsiList
	}
	return rafsiListList, nil
}

// combineResult is the outcome of trying to append rafsi to lujvo.
type combineResult struct {
	tosmabruType tosytype
	numConsonant int
	score        int
	lujvo        string
	indices      [][2]int
}

// combine tries to glue rafsi onto the end of lujvo, choosing the correct
// hyphen (or none), rejecting the attempt outright if the resulting
// cluster, tosmabru risk, or consonant bookkeeping makes it illegal, per
// spec.md §4.6.
func combine(lujvo, rafsi string, lujvoC, rafsiC, lujvoScore int, indices [][2]int, tosmabruType tosytype, tanruLen int, settings Settings) (combineResult, bool) {
	lujvoF := rune(charAt(lujvo, -1))
	rafsiI := rune(charAt(rafsi, 0))
	if IsConsonant(lujvoF) && IsConsonant(rafsiI) && !isValidCluster(settings.AllowMZ, string(lujvoF)+string(rafsiI)) ||
		isBannedTriple(string(lujvoF)+sliceAt(rafsi, 0, 2)) {
		return combineResult{}, false
	}
	raftai1 := TarmiIgnoringHyphen(rafsi)
	if !strings.ContainsRune("y'", lujvoF) && raftai1 == Other {
		return combineResult{}, false
	}
	hyphen := ""
	switch {
	case lujvoF == '\'':
		if rafsiI == '\'' || settings.YHyphens != StandardY {
			hyphen = "y"
		} else {
			return combineResult{}, false
		}
	case len(lujvo) == 5 && strings.HasSuffix(lujvo, "'y") && RafsiTarmi(lujvo[:3]) == Ccv:
		// the accumulated lujvo so far is a bare CCV rafsi plus its "'y" glue;
		// gluing another rafsi on now would build a word starting with the
		// CCV'y slinku'i seed, which jvokaha2 rejects.
		return combineResult{}, false
	case len(lujvo) <= 5 && !settings.GenerateCmevla:
		raftai0 := TarmiIgnoringHyphen(lujvo)
		if raftai0 == Cvhv || raftai0 == Cvv {
			switch {
			case settings.YHyphens == ForceY:
				hyphen = "'y"
			case rafsiI == 'r':
				hyphen = "n"
			default:
				hyphen = "r"
			}
		}
		if tanruLen == 2 && raftai1 == Ccv {
			hyphen = ""
		}
	}
	switch tosmabruType {
	case tosmabru:
		if !isInitialCluster(string(lujvoF) + string(rafsiI)) {
			tosmabruType = tosynone
		} else if raftai1 == Cvccv {
			if isInitialCluster(sliceAt(rafsi, 2, 4)) {
				return combineResult{}, false
			}
			tosmabruType = tosynone
		} else if raftai1 == Cvc {
			if charAt(rafsi, -1) == 'y' {
				return combineResult{}, false
			}
		} else {
			tosmabruType = tosynone
		}
	case tosyhuhu:
		if rafsiI != '\'' || containsConsonant(rafsi) {
			tosmabruType = tosynone
		}
	}
	rafsiStart := len(lujvo) + len(hyphen)
	if charAt(rafsi, 0) == '\'' {
		rafsiStart++
	}
	rafsiEnd := rafsiStart + len(stripHyphens(rafsi))
	newIndices := append(append([][2]int{}, indices...), [2]int{rafsiStart, rafsiEnd})

	newC := rafsiC
	if hyphen != "" && strings.Contains("nr", hyphen) {
		newC = 2
	} else if settings.Consonants == Cluster && rafsiC != 2 {
		i := len(lujvo) - 1
		for i >= 0 && strings.ContainsRune("'y", rune(charAt(lujvo, i))) {
			i--
		}
		j := 0
		for charAt(rafsi, j) == '\'' {
			j++
		}
		ok := IsConsonant(rune(charAt(lujvo, i))) && (IsConsonant(rune(charAt(rafsi, j))) || (settings.Glides && IsGlide(sliceAt(rafsi, j, len(rafsi)))))
		if ok {
			newC = 2
		} else {
			newC = 0
		}
	}
	totalC := lujvoC + newC
	if totalC > 2 {
		totalC = 2
	}
	if settings.Consonants == OneConsonant && totalC > 0 {
		totalC = 2
	}
	hyphenScore := 1100 * len(hyphen)
	if hyphen == "'y" {
		hyphenScore = 1700
	}
	newForm := lujvo + hyphen + rafsi
	return combineResult{
		tosmabruType: tosmabruType,
		numConsonant: totalC,
		score:        lujvoScore + hyphenScore + Score(rafsi) - tiebreak(newForm),
		lujvo:        newForm,
		indices:      newIndices,
	}, true
}

// bestEntry is one record in the best-so-far table, keyed by the candidate
// lujvo's trailing character.
type bestEntry struct {
	lujvo   string
	score   int
	indices [][2]int
}

// bestTable is survivor bookkeeping indexed [tosmabruType][numConsonants],
// mapping the trailing character of each candidate lujvo to its best
// (lowest-score) continuation so far, per spec.md §4.6.
type bestTable [3][3]map[byte]bestEntry

func newBestTable() bestTable {
	var t bestTable
	for i := range t {
		for j := range t[i] {
			t[i][j] = map[byte]bestEntry{}
		}
	}
	return t
}

func updateCurrentBest(res combineResult, ok bool, table bestTable) bestTable {
	if !ok {
		return table
	}
	lujvoF := charAt(res.lujvo, -1)
	bucket := table[res.tosmabruType][res.numConsonant]
	if existing, has := bucket[lujvoF]; !has || existing.score > res.score {
		bucket[lujvoF] = bestEntry{lujvo: res.lujvo, score: res.score, indices: res.indices}
	}
	return table
}

// GetLujvoFromList runs the dynamic-search composer over the rafsi choices
// for every word in valsiList and returns the lowest-scoring lujvo, its
// score, and the index ranges (in the final string) each source word
// occupies, per spec.md §4.6.
func GetLujvoFromList(valsiList []string, settings Settings) (string, int, [][2]int, error) {
	rafsiListList, err := GetRafsiListList(valsiList, settings)
	if err != nil {
		return "", 0, nil, err
	}
	if len(rafsiListList) < 2 {
		return "", 0, nil, errFakeType("rafsi_list_list is too short: %v", rafsiListList)
	}
	currentBest := newBestTable()
	for _, r0 := range rafsiListList[0] {
		for _, r1 := range rafsiListList[1] {
			tt := tosynone
			if TarmiIgnoringHyphen(r0.Text) == Cvc && !settings.GenerateCmevla {
				if charAt(r0.Text, -1) == 'y' {
					tt = tosyhuhu
				} else {
					tt = tosmabru
				}
			}
			res, ok := combine(r0.Text, r1.Text, r0.Consonants, r1.Consonants, Score(r0.Text),
				[][2]int{{0, len(stripHyphens(r0.Text))}}, tt, len(rafsiListList), settings)
			currentBest = updateCurrentBest(res, ok, currentBest)
		}
	}
	previousBest := currentBest
	for _, rafsiList := range rafsiListList[2:] {
		currentBest = newBestTable()
		for _, rafsi := range rafsiList {
			for tt := tosytype(0); tt < 3; tt++ {
				for nc := 0; nc < 3; nc++ {
					for _, entry := range previousBest[tt][nc] {
						res, ok := combine(entry.lujvo, rafsi.Text, nc, rafsi.Consonants, entry.score,
							entry.indices, tt, len(rafsiListList), settings)
						currentBest = updateCurrentBest(res, ok, currentBest)
					}
				}
			}
		}
		previousBest = currentBest
	}
	bestLujvo, bestScore, bestIndices := "", int(^uint(0)>>1), [][2]int(nil)
	for c, entry := range previousBest[tosynone][2] {
		startsVowel := IsVowel(rune(c))
		startsConsonant := IsConsonant(rune(c))
		if ((startsVowel && !settings.GenerateCmevla) || (startsConsonant && settings.GenerateCmevla)) && entry.score < bestScore {
			bestLujvo, bestScore, bestIndices = entry.lujvo, entry.score, entry.indices
		}
	}
	if bestLujvo == "" {
		return "", 0, nil, errNoLujvoFound("no lujvo found for {%s}", strings.Join(valsiList, " "))
	}
	return bestLujvo, bestScore, bestIndices, nil
}

// GetLujvoWithAnalytics composes the best lujvo for tanru, also returning
// its score and the index range each source word occupies in the result.
func GetLujvoWithAnalytics(tanru string, settings Settings) (string, int, [][2]int, error) {
	return GetLujvoFromList(ProcessTanru(tanru), settings)
}

// GetLujvo composes the best lujvo for tanru.
func GetLujvo(tanru string, settings Settings) (string, error) {
	lujvo, _, _, err := GetLujvoWithAnalytics(tanru, settings)
	return lujvo, err
}

// ScoreLujvo decomposes an already-composed lujvo and recomputes the
// composer score its pieces would earn, per spec.md §6. It is Jvokaha's own
// re-synthesis step (decompose, then re-run the composer over the resulting
// rafsi as explicit overrides) exposed as a standalone operation.
func ScoreLujvo(lujvo string, settings Settings) (int, error) {
	arr, err := Jvokaha(lujvo, settings)
	if err != nil {
		return 0, err
	}
	var rafsiTanru []string
	for _, r := range arr {
		if len(r) > 2 {
			rafsiTanru = append(rafsiTanru, "-"+r+"-")
		}
	}
	_, score, _, err := GetLujvoFromList(rafsiTanru, settings)
	if err != nil {
		return 0, err
	}
	return score, nil
}
