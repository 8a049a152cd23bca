package lujvo

import "testing"

func TestProcessTanru(t *testing.T) {
	got := ProcessTanru("  Blanu.  ZDANI ")
	want := []string{"blanu", "zdani"}
	if len(got) != len(want) {
		t.Fatalf("ProcessTanru(...) = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("ProcessTanru(...)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScoreMonotonicInLength(t *testing.T) {
	if Score("bla") >= Score("blan") {
		t.Errorf("Score(%q) = %d, want less than Score(%q) = %d", "bla", Score("bla"), "blan", Score("blan"))
	}
}

func TestScoreFormula(t *testing.T) {
	// bla: Ccv (tarmi=7), 1 vowel, 0 apostrophes, 0 y's, length 3.
	want := 1000*3 - 400*0 + 100*0 - 10*int(Ccv) - 1
	if got := Score("bla"); got != want {
		t.Errorf(`Score("bla") = %d, want %d`, got, want)
	}
}

func TestTiebreak(t *testing.T) {
	if got := tiebreak("blazda"); got != 0 {
		t.Errorf(`tiebreak("blazda") = %d, want 0 (prefix isn't CVV)`, got)
	}
	// "ka'atoi": CVV is not the shape of the first 3 bytes (k,a,' form
	// CV' not CVV); use a genuine CVV prefix instead, e.g. "bai" + "ska".
	if got := tiebreak("baiska"); got != 1 {
		t.Errorf(`tiebreak("baiska") = %d, want 1 (CVV followed by CCV)`, got)
	}
}

func TestGetLujvoBlanuZdani(t *testing.T) {
	got, err := GetLujvo("blanu zdani", DefaultSettings())
	if err != nil {
		t.Fatalf(`GetLujvo("blanu zdani", default) error: %v`, err)
	}
	if got != "blazda" {
		t.Errorf(`GetLujvo("blanu zdani", default) = %q, want "blazda"`, got)
	}
}

func TestGetLujvoWithAnalyticsScoreMatchesGetLujvo(t *testing.T) {
	form, _, _, err := GetLujvoWithAnalytics("blanu zdani", DefaultSettings())
	if err != nil {
		t.Fatalf("GetLujvoWithAnalytics error: %v", err)
	}
	plain, err := GetLujvo("blanu zdani", DefaultSettings())
	if err != nil {
		t.Fatalf("GetLujvo error: %v", err)
	}
	if form != plain {
		t.Errorf("GetLujvoWithAnalytics form %q != GetLujvo %q", form, plain)
	}
}

func TestScoreLujvoMatchesComposerScore(t *testing.T) {
	_, wantScore, _, err := GetLujvoWithAnalytics("blanu zdani", DefaultSettings())
	if err != nil {
		t.Fatalf("GetLujvoWithAnalytics error: %v", err)
	}
	got, err := ScoreLujvo("blazda", DefaultSettings())
	if err != nil {
		t.Fatalf(`ScoreLujvo("blazda", default) error: %v`, err)
	}
	if got != wantScore {
		t.Errorf(`ScoreLujvo("blazda", default) = %d, want %d`, got, wantScore)
	}
}

func TestGetLujvoRoundTripsThroughJvokaha(t *testing.T) {
	lujvo, err := GetLujvo("blanu zdani", DefaultSettings())
	if err != nil {
		t.Fatalf("GetLujvo error: %v", err)
	}
	if _, err := Jvokaha(lujvo, DefaultSettings()); err != nil {
		t.Errorf("Jvokaha(%q) error: %v, want a composed lujvo to decompose cleanly", lujvo, err)
	}
}

// TestCombineTosmabruTransitions exercises every branch of combine's
// tosmabruType switch directly, since GetLujvoFromList only ever surfaces
// the outcome of the whole search and never which branch fired.
func TestCombineTosmabruTransitions(t *testing.T) {
	tests := []struct {
		name   string
		lujvo  string
		rafsi  string
		want   tosytype
		wantOK bool
	}{
		{
			name:   "tosmabru clears when the joint isn't a valid initial cluster",
			lujvo:  "blana",
			rafsi:  "rif",
			want:   tosynone,
			wantOK: true,
		},
		{
			name:   "tosmabru rejects a Cvccv continuation with an initial internal cluster",
			lujvo:  "blanuj",
			rafsi:  "batri",
			wantOK: false,
		},
		{
			name:   "tosmabru clears on a Cvccv continuation without an initial internal cluster",
			lujvo:  "blanub",
			rafsi:  "lanci",
			want:   tosynone,
			wantOK: true,
		},
		{
			name:   "tosmabru rejects a Cvc continuation ending in y",
			lujvo:  "blanub",
			rafsi:  "rify",
			wantOK: false,
		},
		{
			name:   "tosmabru clears on any other continuation shape",
			lujvo:  "blanuj",
			rafsi:  "bla",
			want:   tosynone,
			wantOK: true,
		},
	}
	for _, tc := range tests {
		res, ok := combine(tc.lujvo, tc.rafsi, 0, 0, 0, nil, tosmabru, 2, DefaultSettings())
		if ok != tc.wantOK {
			t.Errorf("%s: combine(%q, %q) ok = %v, want %v", tc.name, tc.lujvo, tc.rafsi, ok, tc.wantOK)
			continue
		}
		if ok && res.tosmabruType != tc.want {
			t.Errorf("%s: combine(%q, %q) tosmabruType = %v, want %v", tc.name, tc.lujvo, tc.rafsi, res.tosmabruType, tc.want)
		}
	}
}

func TestCombineTosyhuhuTransitions(t *testing.T) {
	tests := []struct {
		name  string
		rafsi string
		want  tosytype
	}{
		{"tosyhuhu clears on a non-apostrophe rafsi", "rif", tosynone},
		{"tosyhuhu clears when the apostrophe-led rafsi still has a consonant", "'ra", tosynone},
		{"tosyhuhu survives an apostrophe-led rafsi with no consonant", "'y", tosyhuhu},
	}
	lujvo := "fadyy"
	for _, tc := range tests {
		res, ok := combine(lujvo, tc.rafsi, 0, 0, 0, nil, tosyhuhu, 2, DefaultSettings())
		if !ok {
			t.Errorf("%s: combine(%q, %q) ok = false, want true", tc.name, lujvo, tc.rafsi)
			continue
		}
		if res.tosmabruType != tc.want {
			t.Errorf("%s: combine(%q, %q) tosmabruType = %v, want %v", tc.name, lujvo, tc.rafsi, res.tosmabruType, tc.want)
		}
	}
}

// TestCombineRejectsCcvApostropheYSeed covers the CCV'y slinku'i-seed
// rejection in combine: gluing another rafsi onto a bare CCV rafsi plus its
// "'y" glue would build a word starting with CCV'y, which jvokaha2 rejects.
func TestCombineRejectsCcvApostropheYSeed(t *testing.T) {
	lujvo := "bla'y"
	if RafsiTarmi(lujvo[:3]) != Ccv {
		t.Fatalf("test setup: RafsiTarmi(%q) = %v, want Ccv", lujvo[:3], RafsiTarmi(lujvo[:3]))
	}
	settings := Settings{YHyphens: AllowY}
	if _, ok := combine(lujvo, "rif", 0, 0, 0, nil, tosynone, 2, settings); ok {
		t.Errorf("combine(%q, \"rif\") succeeded, want rejection of the reproduced CCV'y seed", lujvo)
	}
}
