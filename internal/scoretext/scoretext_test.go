package scoretext

import (
	"reflect"
	"testing"
)

func TestParseScoresSMSDump(t *testing.T) {
	text := "MOYE = 12,75 ARAB = 11 FRAN=13.5 ANGL = 14 PHIL = 9,25 HGEO = 12 INFO = 15"
	got := ParseScores(text)
	expected := map[string]float64{
		"mg": 12.75, "a": 11, "f": 13.5, "ang": 14, "ph": 9.25, "hg": 12, "info": 15,
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("ParseScores = %v, want %v", got, expected)
	}
}

func TestParseScoresCommaAndDotDecimals(t *testing.T) {
	got := ParseScores("MATH = 15,25\nSP = 14.5")
	if got["math"] != 15.25 {
		t.Fatalf("math = %v, want 15.25", got["math"])
	}
	if got["sp"] != 14.5 {
		t.Fatalf("sp = %v, want 14.5", got["sp"])
	}
}

func TestParseScoresDropsUnknownKeys(t *testing.T) {
	got := ParseScores("XYZ = 10 MATH = 12")
	if _, ok := got["xyz"]; ok {
		t.Fatalf("unexpected xyz key: %v", got)
	}
	if got["math"] != 12 {
		t.Fatalf("math = %v, want 12", got["math"])
	}
}

func TestParseScoresEmptyText(t *testing.T) {
	if got := ParseScores("nothing to see here"); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
}

func TestDetectTrack(t *testing.T) {
	cases := []struct {
		name     string
		scores   map[string]float64
		expected string
	}{
		{name: "eco", scores: map[string]float64{"ec": 12, "ge": 13}, expected: "eco"},
		{name: "sciences_exp", scores: map[string]float64{"svt": 14, "math": 12}, expected: "sciences_exp"},
		{name: "sciences_tech", scores: map[string]float64{"te": 13}, expected: "sciences_tech"},
		{name: "info", scores: map[string]float64{"algo": 16, "math": 15}, expected: "info"},
		{name: "sports", scores: map[string]float64{"sp_sport": 15}, expected: "sports"},
		{name: "lettres", scores: map[string]float64{"ph": 11, "hg": 12}, expected: "lettres"},
		{name: "math", scores: map[string]float64{"math": 17, "sp": 15}, expected: "math"},
		{name: "undetermined", scores: map[string]float64{"mg": 13}, expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectTrack(tc.scores); got != tc.expected {
				t.Fatalf("DetectTrack(%v) = %q, want %q", tc.scores, got, tc.expected)
			}
		})
	}
}
