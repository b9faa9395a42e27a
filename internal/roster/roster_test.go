package roster

import (
	"reflect"
	"testing"
)

func TestParseSplitsNewlinesAndCommas(t *testing.T) {
	r := Parse("Bon Iver\nFeist,  Sufjan Stevens ,\n\n,Feist")
	want := []string{"Bon Iver", "Feist", "Sufjan Stevens", "Feist"}
	if got := r.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	if r.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", r.Len())
	}
}

func TestContainsAndPosition(t *testing.T) {
	r := New([]string{"Bon Iver", "Feist", "bon iver"})
	if !r.Contains("  BON IVER ") {
		t.Fatal("expected case-insensitive membership")
	}
	if r.Contains("Bon Ive") {
		t.Fatal("membership must be exact after folding case")
	}
	if !r.Contains("Bon\u00a0Iver") || !r.Contains("bon \u2009 iver") {
		t.Fatal("expected Unicode spacing to fold to a single space")
	}
	pos, ok := r.Position("bon iver")
	if !ok || pos != 0 {
		t.Fatalf("Position(bon iver) = %d, %v; want 0, true", pos, ok)
	}
	pos, ok = r.Position("FEIST")
	if !ok || pos != 1 {
		t.Fatalf("Position(FEIST) = %d, %v; want 1, true", pos, ok)
	}
	if pos, ok := r.Position("Bon\u2009Iver"); !ok || pos != 0 {
		t.Fatalf("Position(thin space) = %d, %v; want 0, true", pos, ok)
	}
	if _, ok := r.Position("Nobody"); ok {
		t.Fatal("expected absent artist to report ok=false")
	}
}

func TestBestMatch(t *testing.T) {
	r := New([]string{"Bon Iver", "Feist"})

	got := r.BestMatch("Bon lver")
	if got.Artist != "Bon Iver" {
		t.Fatalf("BestMatch artist = %q, want Bon Iver", got.Artist)
	}
	if !got.Confident() {
		t.Fatalf("expected confident resolution, got score %v", got.Score)
	}

	if got := r.BestMatch("feist"); got.Artist != "Feist" || got.Score != 1 {
		t.Fatalf("BestMatch(feist) = %+v", got)
	}
}

func TestBestMatchTieKeepsEarliest(t *testing.T) {
	r := New([]string{"Feist", "FEIST"})
	if got := r.BestMatch("feist"); got.Artist != "Feist" {
		t.Fatalf("tie should keep first entry, got %q", got.Artist)
	}
}

func TestBestMatchEmpty(t *testing.T) {
	r := New([]string{"Feist"})
	if got := r.BestMatch(""); got.Found() {
		t.Fatalf("expected no match for empty candidate, got %+v", got)
	}
	if got := New(nil).BestMatch("Feist"); got.Found() {
		t.Fatalf("expected no match for empty roster, got %+v", got)
	}
	var nilRoster *Roster
	if got := nilRoster.BestMatch("Feist"); got.Found() {
		t.Fatalf("expected nil roster to resolve nothing, got %+v", got)
	}
}
