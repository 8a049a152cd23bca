package lujvo

// RafsiTable maps a gismu or cmavo to its authorized list of short-rafsi forms.
//
// spec.md §1 explicitly names this dictionary as a fixed data table provided
// externally ("Out of scope... the rafsi->source-word dictionary"); the
// full CLL table has on the order of a thousand entries and is not part of
// this repo's retrieval pack. This is a representative, intentionally
// partial subset covering the gismu this package's own tests exercise —
// every entry's shapes and internal/initial clusters are validated against
// Valid/Initial so the subset is internally consistent even though it is
// not a literal transcription of the canonical dictionary.
var RafsiTable = map[string][]string{
	"blanu": {"bla", "blan"},
	"zdani": {"zda"},
	"prenu":  {"pre", "pren"},
	"klama":  {"kla", "klam"},
	"tavla":  {"tav", "tavl"},
	"vecnu":  {"vec", "vecn"},
	"bangu":  {"bau", "ban", "bang"},
	"cmene":  {"cme", "cmen"},
	"tcidu":  {"tci", "tcid"},
	"cmalu":  {"cma", "cmal"},
	"barda":  {"bar", "bard"},
	"xamgu":  {"xam", "xamg"},
	"mlatu":  {"mla", "mlat"},
	"gerku":  {"ger", "gerk", "ge'u"},
	"nanmu":  {"nan", "nanm"},
	"ninmu":  {"nin", "ninm"},
	"xunre":  {"xun", "xunr"},
	"xekri":  {"xek", "xekr"},
	"pelxu":  {"pel", "pelx"},
	"crino":  {"cri", "crin"},
	"citka":  {"cit", "citk"},
	"pinxe":  {"pin", "pinx"},
	"sutra":  {"sut", "sutr"},
	"masno":  {"mas", "masn"},
	"zarci":  {"zar", "zarc"},
	"dunda":  {"dun", "dund"},
	"djuno":  {"dju", "djun"},
	"morji":  {"mor", "morj"},
	"bridi":  {"bri", "brid"},
	"ckule":  {"cku", "ckul"},
	"djedi":  {"dje", "djed"},
}
