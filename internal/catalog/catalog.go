// Package catalog holds the immutable reference dataset of subjects, tracks
// and programs. A Catalog is built once at startup, validated eagerly, and
// passed by reference into the scoring engine; it is never mutated afterward.
package catalog

import (
	"errors"
	"fmt"

	"orientation-backend/internal/formula"
)

var (
	ErrUnknownSubject = errors.New("unknown subject")
	ErrUnknownTrack   = errors.New("unknown track")
	ErrDuplicateID    = errors.New("duplicate identifier")
)

// Catalog is the validated, immutable reference dataset.
type Catalog struct {
	subjects map[string]Subject
	tracks   map[string]Track

	subjectOrder []string
	trackOrder   []string
	programs     []Program
}

// New validates the dataset and builds a Catalog. Every subject referenced by
// a base formula, required-subject list or modifier formula must exist in the
// subject dictionary, and every requirement must name a known track. A
// malformed dataset fails here, at load time, rather than silently scoring as
// zero later.
func New(subjects []Subject, tracks []Track, programs []Program) (*Catalog, error) {
	c := &Catalog{
		subjects:     make(map[string]Subject, len(subjects)),
		tracks:       make(map[string]Track, len(tracks)),
		subjectOrder: make([]string, 0, len(subjects)),
		trackOrder:   make([]string, 0, len(tracks)),
		programs:     programs,
	}

	for _, subject := range subjects {
		if subject.ID == "" {
			return nil, fmt.Errorf("catalog: subject with empty id")
		}
		if _, exists := c.subjects[subject.ID]; exists {
			return nil, fmt.Errorf("catalog: subject %q: %w", subject.ID, ErrDuplicateID)
		}
		c.subjects[subject.ID] = subject
		c.subjectOrder = append(c.subjectOrder, subject.ID)
	}

	for _, track := range tracks {
		if _, exists := c.tracks[track.ID]; exists {
			return nil, fmt.Errorf("catalog: track %q: %w", track.ID, ErrDuplicateID)
		}
		if err := c.validateTrack(track); err != nil {
			return nil, err
		}
		c.tracks[track.ID] = track
		c.trackOrder = append(c.trackOrder, track.ID)
	}

	for _, program := range programs {
		if err := c.validateProgram(program); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) validateTrack(track Track) error {
	for _, subjectID := range track.RequiredSubjects {
		if _, ok := c.subjects[subjectID]; !ok {
			return fmt.Errorf("catalog: track %q: required subject %q: %w", track.ID, subjectID, ErrUnknownSubject)
		}
	}
	for subjectID, coefficient := range track.BaseFormula {
		if _, ok := c.subjects[subjectID]; !ok {
			return fmt.Errorf("catalog: track %q: base formula subject %q: %w", track.ID, subjectID, ErrUnknownSubject)
		}
		if coefficient < 0 {
			return fmt.Errorf("catalog: track %q: base formula subject %q: negative coefficient", track.ID, subjectID)
		}
	}
	return nil
}

func (c *Catalog) validateProgram(program Program) error {
	if program.Code == "" {
		return fmt.Errorf("catalog: program with empty code")
	}
	for _, req := range program.Requirements {
		if _, ok := c.tracks[req.BacType]; !ok {
			return fmt.Errorf("catalog: program %q: requirement track %q: %w", program.Code, req.BacType, ErrUnknownTrack)
		}
		for expression := range req.FormulaModifier {
			expr, err := formula.Parse(expression)
			if err != nil {
				return fmt.Errorf("catalog: program %q track %q: %w", program.Code, req.BacType, err)
			}
			for _, subjectID := range expr.Subjects() {
				if _, ok := c.subjects[subjectID]; !ok {
					return fmt.Errorf("catalog: program %q track %q: modifier subject %q: %w",
						program.Code, req.BacType, subjectID, ErrUnknownSubject)
				}
			}
		}
	}
	return nil
}

// Track looks up a track by identifier.
func (c *Catalog) Track(id string) (Track, bool) {
	track, ok := c.tracks[id]
	return track, ok
}

// Subject looks up a subject by identifier.
func (c *Catalog) Subject(id string) (Subject, bool) {
	subject, ok := c.subjects[id]
	return subject, ok
}

// Subjects returns all subjects in dataset order.
func (c *Catalog) Subjects() []Subject {
	out := make([]Subject, 0, len(c.subjectOrder))
	for _, id := range c.subjectOrder {
		out = append(out, c.subjects[id])
	}
	return out
}

// Tracks returns all tracks in dataset order.
func (c *Catalog) Tracks() []Track {
	out := make([]Track, 0, len(c.trackOrder))
	for _, id := range c.trackOrder {
		out = append(out, c.tracks[id])
	}
	return out
}

// Programs returns all programs in dataset order.
func (c *Catalog) Programs() []Program {
	return c.programs
}
