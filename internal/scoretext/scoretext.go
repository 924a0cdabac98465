// Package scoretext turns raw score-slip text (OCR output or the ministry SMS
// dump) into a subject score mapping. Lines look like "MATH = 15,25"; keys are
// the SMS abbreviations, values use comma or dot decimal separators.
package scoretext

import (
	"regexp"
	"strconv"
	"strings"
)

// smsAbbreviations maps the abbreviations used on score slips to catalog
// subject identifiers.
var smsAbbreviations = map[string]string{
	"moye":  "mg",
	"eco":   "ec",
	"gest":  "ge",
	"math":  "math",
	"hgeo":  "hg",
	"angl":  "ang",
	"fran":  "f",
	"arab":  "a",
	"phil":  "ph",
	"info":  "info",
	"edph":  "edph",
	"edar":  "edar",
	"svt":   "svt",
	"sp":    "sp",
	"te":    "te",
	"algo":  "algo",
	"sti":   "sti",
	"sport": "sp_sport",
}

var scorePattern = regexp.MustCompile(`([a-zA-Z]+)\s*=\s*(\d{1,2}(?:[.,]\d{1,2})?)`)

// ParseScores extracts all recognized "key = value" pairs from raw text and
// returns them keyed by subject identifier. Unrecognized keys are dropped; a
// score seen twice keeps the last occurrence. The result is empty when
// nothing matched.
func ParseScores(text string) map[string]float64 {
	scores := make(map[string]float64)
	for _, match := range scorePattern.FindAllStringSubmatch(text, -1) {
		key := strings.ToLower(match[1])
		subjectID, ok := smsAbbreviations[key]
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(match[2], ",", "."), 64)
		if err != nil {
			continue
		}
		scores[subjectID] = value
	}
	return scores
}

// DetectTrack infers the baccalaureate track from the subjects present in a
// parsed score mapping. Returns "" when the subjects are not distinctive
// enough to decide.
func DetectTrack(scores map[string]float64) string {
	has := func(id string) bool {
		_, ok := scores[id]
		return ok
	}
	switch {
	case has("ec") && has("ge"):
		return "eco"
	case has("svt"):
		return "sciences_exp"
	case has("te"):
		return "sciences_tech"
	case has("algo"):
		return "info"
	case has("sp_sport"):
		return "sports"
	case has("ph") && has("hg"):
		return "lettres"
	case has("math") && has("sp"):
		return "math"
	default:
		return ""
	}
}
