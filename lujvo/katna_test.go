package lujvo

import (
	"reflect"
	"testing"
)

func TestJvokaha2Toldjuska(t *testing.T) {
	got, err := jvokaha2("toldjuska", DefaultSettings())
	if err != nil {
		t.Fatalf(`jvokaha2("toldjuska", default) error: %v`, err)
	}
	want := []string{"tol", "dju", "ska"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf(`jvokaha2("toldjuska", default) = %v, want %v`, got, want)
	}
}

func TestJvokaha2RejectsUnparseablePrefix(t *testing.T) {
	// no rafsi shape in jvokaha2 ever matches a leading run of three
	// identical consonants, so this can never be carved into rafsi.
	if _, err := jvokaha2("zzzventi", DefaultSettings()); err == nil {
		t.Error(`jvokaha2("zzzventi", default) succeeded, want error`)
	}
}

func TestCompareLujvoPiecesExact(t *testing.T) {
	if !CompareLujvoPieces([]string{"tol", "dju", "ska"}, []string{"tol", "dju", "ska"}) {
		t.Error("CompareLujvoPieces exact match returned false")
	}
}

func TestCompareLujvoPiecesTolerantHyphen(t *testing.T) {
	corr := []string{"ka'a", "zda"}
	other := []string{"ka'a", "r", "zda"}
	if !CompareLujvoPieces(corr, other) {
		t.Errorf("CompareLujvoPieces(%v, %v) = false, want true", corr, other)
	}
}

func TestCompareLujvoPiecesMismatch(t *testing.T) {
	if CompareLujvoPieces([]string{"tol", "dju", "ska"}, []string{"tol", "dju", "skx"}) {
		t.Error("CompareLujvoPieces mismatch returned true")
	}
}

func TestSearchSelrafsiFromRafsi(t *testing.T) {
	if source, ok := SearchSelrafsiFromRafsi("bla"); !ok || source != "blanu" {
		t.Errorf(`SearchSelrafsiFromRafsi("bla") = (%q, %v), want ("blanu", true)`, source, ok)
	}
	if _, ok := SearchSelrafsiFromRafsi("zzz"); ok {
		t.Error(`SearchSelrafsiFromRafsi("zzz") succeeded, want not found`)
	}
}
