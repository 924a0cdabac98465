package recommend

import "strings"

// Track identifiers with normalization rules.
const trackInformatics = "info"

// NormalizeScores lowercases all score keys and applies track-specific alias
// rules. For the informatics track, the algorithmics grade stands in for the
// informatics grade when none was reported separately: formulas written
// against "info" must find the "algo" score there. Unknown keys pass through
// unchanged and the input mapping is never mutated.
func NormalizeScores(trackID string, raw map[string]float64) map[string]float64 {
	normalized := make(map[string]float64, len(raw)+1)
	for key, value := range raw {
		normalized[strings.ToLower(strings.TrimSpace(key))] = value
	}

	if trackID == trackInformatics {
		if algo, ok := normalized["algo"]; ok && algo != 0 && normalized["info"] == 0 {
			normalized["info"] = algo
		}
	}

	return normalized
}
