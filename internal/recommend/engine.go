package recommend

import (
	"fmt"
	"math"
	"sort"

	"orientation-backend/internal/catalog"
	"orientation-backend/internal/formula"
)

// Engine computes ranked program recommendations for one student submission.
// It is a pure function of (catalog, request): stateless, safe for concurrent
// use, holding the immutable catalog by reference.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine constructs an Engine over the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Recommend normalizes the raw scores, computes the track base score, adds
// each applicable program's modifier contribution and returns the results
// ordered by descending student score (stable on ties). Programs without a
// requirement for the track are excluded; a requirement with no historical
// cutoff is still included. Totals are rounded to 2 decimals, half away from
// zero.
func (e *Engine) Recommend(trackID string, rawScores map[string]float64) ([]Recommendation, error) {
	if trackID == "" || rawScores == nil {
		return nil, ErrInvalidRequest
	}

	scores := NormalizeScores(trackID, rawScores)

	track, ok := e.catalog.Track(trackID)
	if !ok {
		return nil, fmt.Errorf("track %q: %w", trackID, ErrInvalidTrack)
	}

	baseScore := BaseScore(track, scores)

	programs := e.catalog.Programs()
	results := make([]Recommendation, 0, len(programs))
	for _, program := range programs {
		requirement, ok := program.RequirementFor(trackID)
		if !ok {
			continue
		}

		total := baseScore
		for expression, coefficient := range requirement.FormulaModifier {
			total += coefficient * formula.EvalLenient(expression, scores)
		}

		results = append(results, Recommendation{
			Code:         program.Code,
			MajorAr:      program.MajorAr,
			UniversityAr: program.UniversityAr,
			CampusAr:     program.CampusAr,
			FieldAr:      program.FieldAr,
			NotesAr:      program.NotesAr,
			MinScore2024: requirement.MinScore2024,
			StudentScore: round2(total),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StudentScore > results[j].StudentScore
	})
	return results, nil
}

// BaseScore computes the track's weighted baseline sum over the normalized
// scores. Subjects absent from the mapping contribute 0.
func BaseScore(track catalog.Track, scores map[string]float64) float64 {
	var total float64
	for subjectID, coefficient := range track.BaseFormula {
		total += coefficient * scores[subjectID]
	}
	return total
}

// round2 rounds half away from zero to 2 decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
