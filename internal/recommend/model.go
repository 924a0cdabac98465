package recommend

// Request is one student's scoring submission.
type Request struct {
	TrackID string             `json:"trackId"`
	Scores  map[string]float64 `json:"scores"`
}

// Recommendation is one qualifying program with the student's computed total.
// MinScore2024 serializes as null when no historical cutoff is on record.
type Recommendation struct {
	Code         string   `json:"code"`
	MajorAr      string   `json:"major_ar"`
	UniversityAr string   `json:"university_ar"`
	CampusAr     string   `json:"campus_ar"`
	FieldAr      string   `json:"field_ar"`
	NotesAr      []string `json:"notes_ar,omitempty"`
	MinScore2024 *float64 `json:"min_score_2024"`
	StudentScore float64  `json:"student_score"`
}
