package extract

import (
	"testing"

	"spinscan/internal/roster"
)

func TestParseCombined(t *testing.T) {
	members := roster.New([]string{"Bon Iver", "Feist", "Sufjan Stevens"})

	tests := []struct {
		name string
		in   string
		want Pair
	}{
		{"empty", "", Pair{}},
		{"no pattern", "Skinny Love", Pair{}},
		{"key value bare dash", "TEXT=Skinny Love-Bon Iver", Pair{Artist: "Bon Iver", Song: "Skinny Love"}},
		{"key value last first", "title=1234-Stevens, Sufjan", Pair{Artist: "Sufjan Stevens", Song: "1234"}},
		{"key value uses last equals", "a=b;TEXT=Holocene-Bon Iver", Pair{Artist: "Bon Iver", Song: "Holocene"}},
		{"key value unknown artist falls through", "TEXT=Holocene - Bon Iver", Pair{Artist: "Bon Iver", Song: "Holocene"}},
		{"byline", "Holocene by Bon Iver", Pair{Artist: "Bon Iver", Song: "Holocene"}},
		{"byline station suffix", "Holocene by Bon Iver on KXYZ", Pair{Artist: "Bon Iver", Song: "Holocene"}},
		{"byline now on", "Mushaboom BY: Feist now on 101.5", Pair{Artist: "Feist", Song: "Mushaboom"}},
		{"byline playing on", "1234 by Feist playing on The Morning Show", Pair{Artist: "Feist", Song: "1234"}},
		{"three part", "Skinny Love - Bon Iver - For Emma", Pair{Artist: "Bon Iver", Song: "Skinny Love"}},
		{"three part last first", "Skinny Love - Iver, Bon - For Emma", Pair{Artist: "Bon Iver", Song: "Skinny Love"}},
		{"artist first", "Feist - Mushaboom", Pair{Artist: "Feist", Song: "Mushaboom"}},
		{"artist second", "Mushaboom - Feist", Pair{Artist: "Feist", Song: "Mushaboom"}},
		{"en dash", "Mushaboom – Feist", Pair{Artist: "Feist", Song: "Mushaboom"}},
		{"pipe", "Feist | Mushaboom", Pair{Artist: "Feist", Song: "Mushaboom"}},
		{"slash", "Mushaboom / Feist", Pair{Artist: "Feist", Song: "Mushaboom"}},
		{"last first on right", "Chicago - Stevens, Sufjan", Pair{Artist: "Sufjan Stevens", Song: "Chicago"}},
		{"ambiguous defaults left artist", "Unknown Band - Some Song", Pair{Artist: "Unknown Band", Song: "Some Song"}},
		{"three part unknown middle rejoins", "A - B - C", Pair{Artist: "A", Song: "B - C"}},
		{"spaced dash wins over pipe", "Feist - Mushaboom | Live", Pair{Artist: "Feist", Song: "Mushaboom | Live"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCombined(tt.in, members); got != tt.want {
				t.Errorf("ParseCombined(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCombinedNilRoster(t *testing.T) {
	got := ParseCombined("Some Song - Some Artist", nil)
	want := Pair{Artist: "Some Song", Song: "Some Artist"}
	if got != want {
		t.Fatalf("ParseCombined with nil roster = %+v, want %+v", got, want)
	}
}

func TestSwapLastFirst(t *testing.T) {
	tests := map[string]string{
		"Iver, Bon":        "Bon Iver",
		" Stevens ,Sufjan": "Sufjan Stevens",
		"Bon Iver":         "Bon Iver",
		"a, b, c":          "a, b, c",
	}
	for in, want := range tests {
		if got := swapLastFirst(in); got != want {
			t.Errorf("swapLastFirst(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsNumericLike(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"45926.00063657408", true},
		{"45123.5", true},
		{"1234", true},
		{"2024-05-01", true},
		{"2024-05-01T10:00:00Z", true},
		{"Skinny Love", false},
		{"1234 (Live)", false},
		{"99 Luftballons", false},
		{".5", false},
	}
	for _, tt := range tests {
		if got := IsNumericLike(tt.in); got != tt.want {
			t.Errorf("IsNumericLike(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
