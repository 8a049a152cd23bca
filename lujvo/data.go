// Package lujvo composes and decomposes lujvo, the compound predicate words
// of Lojban, and classifies arbitrary Lojban word-forms.
package lujvo

import "golang.org/x/exp/slices"

// Valid is the full set of CLL-legal two-consonant clusters.
var Valid = []string{
	"bd", "bg", "bj", "bl", "bm", "bn", "br", "bv", "bz", "cf", "ck", "cl", "cm", "cn", "cp", "cr",
	"ct", "db", "dg", "dj", "dl", "dm", "dn", "dr", "dv", "dz", "fc", "fk", "fl", "fm", "fn", "fp",
	"fr", "fs", "ft", "fx", "gb", "gd", "gj", "gl", "gm", "gn", "gr", "gv", "gz", "jb", "jd", "jg",
	"jl", "jm", "jn", "jr", "jv", "kc", "kf", "kl", "km", "kn", "kp", "kr", "ks", "kt", "lb", "lc",
	"ld", "lf", "lg", "lj", "lk", "lm", "ln", "lp", "lr", "ls", "lt", "lv", "lx", "lz", "mb", "mc",
	"md", "mf", "mg", "mj", "mk", "ml", "mn", "mp", "mr", "ms", "mt", "mv", "mx", "nb", "nc", "nd",
	"nf", "ng", "nj", "nk", "nl", "nm", "np", "nr", "ns", "nt", "nv", "nx", "nz", "pc", "pf", "pk",
	"pl", "pm", "pn", "pr", "ps", "pt", "px", "rb", "rc", "rd", "rf", "rg", "rj", "rk", "rl", "rm",
	"rn", "rp", "rs", "rt", "rv", "rx", "rz", "sf", "sk", "sl", "sm", "sn", "sp", "sr", "st", "sx",
	"tc", "tf", "tk", "tl", "tm", "tn", "tp", "tr", "ts", "tx", "vb", "vd", "vg", "vj", "vl", "vm",
	"vn", "vr", "vz", "xf", "xl", "xm", "xn", "xp", "xr", "xs", "xt", "zb", "zd", "zg", "zl", "zm",
	"zn", "zr", "zv",
}

// MzValid is Valid plus the admitted-under-Settings.AllowMZ cluster "mz".
var MzValid = append(append([]string{}, Valid...), "mz")

// Initial is the set of word-initial two-consonant clusters.
var Initial = []string{
	"bl", "br", "cf", "ck", "cl", "cm", "cn", "cp", "cr", "ct", "dj", "dr", "dz", "fl", "fr", "gl",
	"gr", "jb", "jd", "jg", "jm", "jv", "kl", "kr", "ml", "mr", "pl", "pr", "sf", "sk", "sl", "sm",
	"sn", "sp", "sr", "st", "tc", "tr", "ts", "vl", "vr", "xl", "xr", "zb", "zd", "zg", "zm", "zv",
}

// ZihevlaInitial lists the two-letter endings licensed after a single
// consonant in a three-consonant zi'evla-initial cluster.
var ZihevlaInitial = []string{
	"bl", "br", "dr", "fl", "fr", "gl", "gr", "kl", "kr", "ml", "mr", "pl", "pr", "tr", "vl", "vr",
}

// BannedTriples lists the three-consonant sequences that are never allowed,
// regardless of whether each constituent pair is otherwise valid.
var BannedTriples = []string{"ndj", "ndz", "ntc", "nts"}

// StartVowelClusters lists the vowel sequences licensed at the very start
// of a word or a post-cluster syllable run.
var StartVowelClusters = []string{"a", "e", "i", "o", "u", "au", "ai", "ei", "oi"}

// FollowVowelClusters lists the glide-initial syllables licensed elsewhere
// in a vowel run (matched greedily, longest first, from the right).
var FollowVowelClusters = []string{
	"ia", "ie", "ii", "io", "iu", "iau", "iai", "iei", "ioi", "ua", "ue", "ui", "uo", "uu", "uau",
	"uai", "uei", "uoi",
}

// Hyphens lists the glue strings the decomposer and composer may insert or
// recognize between rafsi.
var Hyphens = []string{"r", "n", "y", "'y", "y'", "'y'"}

func isValidCluster(allowMZ bool, c string) bool {
	if allowMZ {
		return slices.Contains(MzValid, c)
	}
	return slices.Contains(Valid, c)
}

func isInitialCluster(c string) bool {
	return slices.Contains(Initial, c)
}

func isZihevlaInitialEnding(c string) bool {
	return slices.Contains(ZihevlaInitial, c)
}

func isBannedTriple(c string) bool {
	return slices.Contains(BannedTriples, c)
}

func isStartVowelCluster(c string) bool {
	return slices.Contains(StartVowelClusters, c)
}

func isFollowVowelCluster(c string) bool {
	return slices.Contains(FollowVowelClusters, c)
}

func isHyphen(s string) bool {
	return slices.Contains(Hyphens, s)
}
