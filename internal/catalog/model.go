package catalog

// Subject is a scored academic discipline.
type Subject struct {
	ID     string `json:"id"`
	NameAr string `json:"name_ar"`
	NameFr string `json:"name_fr"`
}

// Track is a baccalaureate specialization. BaseFormula maps required subject
// identifiers to the coefficients of the weighted baseline score shared by
// every program for that track.
type Track struct {
	ID               string             `json:"id"`
	NameAr           string             `json:"name_ar"`
	NameFr           string             `json:"name_fr"`
	RequiredSubjects []string           `json:"required_subjects"`
	BaseFormula      map[string]float64 `json:"fg_formula"`
}

// Requirement describes how one program scores students from one track. Keys
// of FormulaModifier are formula expressions (see internal/formula). A nil
// MinScore2024 means no historical cutoff is on record; the program is still
// offered for the track.
type Requirement struct {
	BacType         string             `json:"bac_type"`
	FormulaModifier map[string]float64 `json:"formula_modifier"`
	MinScore2024    *float64           `json:"min_score_2024"`
}

// Program is a university offering. A program may accept several tracks, each
// with its own requirement.
type Program struct {
	Code         string        `json:"code"`
	MajorAr      string        `json:"major_ar"`
	UniversityAr string        `json:"university_ar"`
	CampusAr     string        `json:"campus_ar"`
	FieldAr      string        `json:"field_ar"`
	NotesAr      []string      `json:"notes_ar,omitempty"`
	Requirements []Requirement `json:"requirements"`
}

// RequirementFor returns the program's requirement for the given track, if
// declared.
func (p Program) RequirementFor(trackID string) (Requirement, bool) {
	for _, req := range p.Requirements {
		if req.BacType == trackID {
			return req, true
		}
	}
	return Requirement{}, false
}
