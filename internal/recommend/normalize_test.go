package recommend

import (
	"reflect"
	"testing"
)

func TestNormalizeScoresLowercasesKeys(t *testing.T) {
	got := NormalizeScores("lettres", map[string]float64{"MG": 15, " Ang ": 14})
	expected := map[string]float64{"mg": 15, "ang": 14}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("NormalizeScores = %v, want %v", got, expected)
	}
}

func TestNormalizeScoresAliasesAlgoToInfo(t *testing.T) {
	got := NormalizeScores("info", map[string]float64{"ALGO": 15})
	if got["algo"] != 15 {
		t.Fatalf("algo = %v, want 15", got["algo"])
	}
	if got["info"] != 15 {
		t.Fatalf("info = %v, want 15 (aliased from algo)", got["info"])
	}
}

func TestNormalizeScoresAliasOverridesZeroInfo(t *testing.T) {
	got := NormalizeScores("info", map[string]float64{"algo": 16, "info": 0})
	if got["info"] != 16 {
		t.Fatalf("info = %v, want 16", got["info"])
	}
}

func TestNormalizeScoresKeepsReportedInfo(t *testing.T) {
	got := NormalizeScores("info", map[string]float64{"algo": 16, "info": 12})
	if got["info"] != 12 {
		t.Fatalf("info = %v, want 12 (explicit grade wins)", got["info"])
	}
}

func TestNormalizeScoresNoAliasOutsideInformaticsTrack(t *testing.T) {
	got := NormalizeScores("math", map[string]float64{"algo": 15})
	if _, ok := got["info"]; ok {
		t.Fatalf("unexpected info key for math track: %v", got)
	}
}

func TestNormalizeScoresIdempotent(t *testing.T) {
	first := NormalizeScores("info", map[string]float64{"ALGO": 15})
	second := NormalizeScores("info", first)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization not idempotent: %v vs %v", first, second)
	}
}

func TestNormalizeScoresDoesNotMutateInput(t *testing.T) {
	raw := map[string]float64{"ALGO": 15}
	_ = NormalizeScores("info", raw)
	if !reflect.DeepEqual(raw, map[string]float64{"ALGO": 15}) {
		t.Fatalf("input mutated: %v", raw)
	}
}
