package lujvo

import "testing"

func TestRafsiTarmi(t *testing.T) {
	tests := []struct {
		rafsi string
		want  Tarmi
	}{
		{"", Other},
		{"b", Hyphen},
		{"'y", Hyphen},
		{"bla", Ccv},
		{"dju", Ccv},
		{"tol", Cvc},
		{"ska", Ccv},
		{"zda", Ccv},
		{"blan", Ccvc},
		{"djus", Ccvc},
		{"tcan", Ccvc},
		{"zdan", Ccvc},
		{"bard", Cvcc},
		{"ka'a", Cvhv},
		{"blanu", Ccvcv},
		{"zdani", Ccvcv},
		{"citka", Cvccv},
		{"xyzzy", Other},
	}
	for _, tt := range tests {
		if got := RafsiTarmi(tt.rafsi); got != tt.want {
			t.Errorf("RafsiTarmi(%q) = %v, want %v", tt.rafsi, got, tt.want)
		}
	}
}

func TestTarmiIgnoringHyphen(t *testing.T) {
	if got := TarmiIgnoringHyphen("blany"); got != Ccvc {
		t.Errorf("TarmiIgnoringHyphen(%q) = %v, want %v", "blany", got, Ccvc)
	}
	if got := TarmiIgnoringHyphen("bla"); got != Ccv {
		t.Errorf("TarmiIgnoringHyphen(%q) = %v, want %v", "bla", got, Ccv)
	}
}

func TestIsGismu(t *testing.T) {
	for _, g := range []string{"blanu", "zdani", "citka", "klama"} {
		if !IsGismu(g) {
			t.Errorf("IsGismu(%q) = false, want true", g)
		}
	}
	for _, bad := range []string{"bla", "blanux", "aaaaa"} {
		if IsGismu(bad) {
			t.Errorf("IsGismu(%q) = true, want false", bad)
		}
	}
}

func TestIsValidRafsi(t *testing.T) {
	if !IsValidRafsi("blan", false) {
		t.Error(`IsValidRafsi("blan", false) = false, want true`)
	}
	if !IsValidRafsi("bla", false) {
		t.Error(`IsValidRafsi("bla", false) = false, want true`)
	}
	if IsValidRafsi("zbla", false) {
		t.Error(`IsValidRafsi("zbla", false) = true, want false (CCCV is not a rafsi shape)`)
	}
}

func TestIsGlide(t *testing.T) {
	if !IsGlide("ia") {
		t.Error(`IsGlide("ia") = false, want true`)
	}
	if IsGlide("ii") {
		t.Error(`IsGlide("ii") = true, want false`)
	}
	if IsGlide("ba") {
		t.Error(`IsGlide("ba") = true, want false`)
	}
}

func TestIsOnlyLojbanCharacters(t *testing.T) {
	if !IsOnlyLojbanCharacters("blanu") {
		t.Error(`IsOnlyLojbanCharacters("blanu") = false, want true`)
	}
	if !IsOnlyLojbanCharacters("ka'a") {
		t.Error(`IsOnlyLojbanCharacters("ka'a") = false, want true`)
	}
	if IsOnlyLojbanCharacters("") {
		t.Error(`IsOnlyLojbanCharacters("") = true, want false`)
	}
	if IsOnlyLojbanCharacters("blanw") {
		t.Error(`IsOnlyLojbanCharacters("blanw") = true, want false`)
	}
}
