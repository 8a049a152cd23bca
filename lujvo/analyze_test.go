package lujvo

import (
	"strings"
	"testing"
)

func TestAnalyzeBrivlaGismu(t *testing.T) {
	tests := []string{"blanu", "zdani"}
	for _, word := range tests {
		bType, parts, err := AnalyzeBrivla(word, DefaultSettings())
		if err != nil {
			t.Errorf("AnalyzeBrivla(%q, default) error: %v", word, err)
			continue
		}
		if bType != Gismu {
			t.Errorf("AnalyzeBrivla(%q, default) type = %v, want Gismu", word, bType)
		}
		if len(parts) != 1 || parts[0] != word {
			t.Errorf("AnalyzeBrivla(%q, default) parts = %v, want [%q]", word, parts, word)
		}
	}
}

func TestAnalyzeBrivlaRejectsEmpty(t *testing.T) {
	if _, _, err := AnalyzeBrivla("", DefaultSettings()); err == nil {
		t.Error(`AnalyzeBrivla("", default) succeeded, want error`)
	} else if k, _ := KindOf(err); k != NotBrivlaError {
		t.Errorf(`AnalyzeBrivla("") kind = %v, want NotBrivlaError`, k)
	}
}

func TestAnalyzeBrivlaRejectsNonLojbanCharacters(t *testing.T) {
	if _, _, err := AnalyzeBrivla("bla1bla", DefaultSettings()); err == nil {
		t.Error(`AnalyzeBrivla("bla1bla", default) succeeded, want error`)
	} else if k, _ := KindOf(err); k != NonLojbanCharacterError {
		t.Errorf(`AnalyzeBrivla("bla1bla") kind = %v, want NonLojbanCharacterError`, k)
	}
}

func TestIsBrivla(t *testing.T) {
	ok, err := IsBrivla("zdani", DefaultSettings())
	if err != nil {
		t.Fatalf(`IsBrivla("zdani", default) error: %v`, err)
	}
	if !ok {
		t.Error(`IsBrivla("zdani", default) = false, want true`)
	}
	ok, err = IsBrivla("", DefaultSettings())
	if err != nil {
		t.Fatalf(`IsBrivla("", default) error: %v`, err)
	}
	if ok {
		t.Error(`IsBrivla("", default) = true, want false`)
	}
}

func TestStripTosmabruPrefix(t *testing.T) {
	tail, ok := stripTosmabruPrefix("ka'ana")
	if !ok || tail != "na" {
		t.Errorf(`stripTosmabruPrefix("ka'ana") = (%q, %v), want ("na", true)`, tail, ok)
	}
	if _, ok := stripTosmabruPrefix("blanu"); ok {
		t.Error(`stripTosmabruPrefix("blanu") succeeded, want no match`)
	}
}

// TestAnalyzeBrivlaConsonantsSetting exercises all three Settings.Consonants
// modes against "tany'dag": two glued CVC rafsi ("tan", "dag") with no real
// adjacent consonant cluster anywhere in the word, but four consonants in
// total. Cluster must reject for lacking a genuine cluster; TwoConsonants
// and OneConsonant both have enough of a count to clear the gate and fail
// later for an unrelated reason, so the three settings must not share a
// rejection message.
func TestAnalyzeBrivlaConsonantsSetting(t *testing.T) {
	word := "tany'dag"
	tests := []struct {
		consonants ConsonantSetting
		wantSubstr string
	}{
		{Cluster, "no two-consonant cluster"},
		{TwoConsonants, "cmavo compound"},
		{OneConsonant, "cmavo compound"},
	}
	for _, tc := range tests {
		settings := Settings{Consonants: tc.consonants}
		_, _, err := AnalyzeBrivla(word, settings)
		if err == nil {
			t.Errorf("AnalyzeBrivla(%q, Consonants=%v) succeeded, want error containing %q", word, tc.consonants, tc.wantSubstr)
			continue
		}
		if k, _ := KindOf(err); k != NotBrivlaError {
			t.Errorf("AnalyzeBrivla(%q, Consonants=%v) kind = %v, want NotBrivlaError", word, tc.consonants, k)
		}
		if !strings.Contains(err.Error(), tc.wantSubstr) {
			t.Errorf("AnalyzeBrivla(%q, Consonants=%v) error = %q, want substring %q", word, tc.consonants, err.Error(), tc.wantSubstr)
		}
	}
	// Cluster's rejection is strictly earlier than the other two settings':
	// it must not also mention the cmavo-compound reason.
	_, _, clusterErr := AnalyzeBrivla(word, Settings{Consonants: Cluster})
	if strings.Contains(clusterErr.Error(), "cmavo compound") {
		t.Errorf("Cluster setting reached the cmavo-compound check; want it to reject earlier for lacking a cluster")
	}
}

func TestCountConsonants(t *testing.T) {
	if got := countConsonants("blanu"); got != 3 {
		t.Errorf(`countConsonants("blanu") = %d, want 3`, got)
	}
	if got := countConsonants("aeiou"); got != 0 {
		t.Errorf(`countConsonants("aeiou") = %d, want 0`, got)
	}
}
