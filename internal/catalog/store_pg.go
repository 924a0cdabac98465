package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// LoadPG reads the catalog from Postgres and validates it. Rows are read in
// dataset order (position column). The returned Catalog is detached from the
// database; the connection is only used during loading.
func LoadPG(ctx context.Context, db *sql.DB) (*Catalog, error) {
	subjects, err := loadSubjects(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	tracks, err := loadTracks(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	programs, err := loadPrograms(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(subjects, tracks, programs)
}

func loadSubjects(ctx context.Context, db *sql.DB) ([]Subject, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name_ar, name_fr FROM subjects ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subject
	for rows.Next() {
		var s Subject
		if err := rows.Scan(&s.ID, &s.NameAr, &s.NameFr); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func loadTracks(ctx context.Context, db *sql.DB) ([]Track, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name_ar, name_fr, required_subjects, fg_formula FROM tracks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Track
	for rows.Next() {
		var t Track
		var requiredRaw, formulaRaw []byte
		if err := rows.Scan(&t.ID, &t.NameAr, &t.NameFr, &requiredRaw, &formulaRaw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(requiredRaw, &t.RequiredSubjects); err != nil {
			return nil, fmt.Errorf("track %q required_subjects: %w", t.ID, err)
		}
		if err := json.Unmarshal(formulaRaw, &t.BaseFormula); err != nil {
			return nil, fmt.Errorf("track %q fg_formula: %w", t.ID, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func loadPrograms(ctx context.Context, db *sql.DB) ([]Program, error) {
	rows, err := db.QueryContext(ctx, `SELECT code, major_ar, university_ar, campus_ar, field_ar, notes_ar FROM programs ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Program
	index := make(map[string]int)
	for rows.Next() {
		var p Program
		var notesRaw []byte
		if err := rows.Scan(&p.Code, &p.MajorAr, &p.UniversityAr, &p.CampusAr, &p.FieldAr, &notesRaw); err != nil {
			return nil, err
		}
		if len(notesRaw) > 0 {
			if err := json.Unmarshal(notesRaw, &p.NotesAr); err != nil {
				return nil, fmt.Errorf("program %q notes_ar: %w", p.Code, err)
			}
		}
		index[p.Code] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reqRows, err := db.QueryContext(ctx, `SELECT program_code, bac_type, formula_modifier, min_score_2024 FROM program_requirements ORDER BY program_code, bac_type`)
	if err != nil {
		return nil, err
	}
	defer reqRows.Close()

	for reqRows.Next() {
		var code, bacType string
		var modifierRaw []byte
		var minScore sql.NullFloat64
		if err := reqRows.Scan(&code, &bacType, &modifierRaw, &minScore); err != nil {
			return nil, err
		}
		pos, ok := index[code]
		if !ok {
			return nil, fmt.Errorf("requirement for unknown program %q", code)
		}
		req := Requirement{BacType: bacType}
		if err := json.Unmarshal(modifierRaw, &req.FormulaModifier); err != nil {
			return nil, fmt.Errorf("program %q track %q formula_modifier: %w", code, bacType, err)
		}
		if minScore.Valid {
			score := minScore.Float64
			req.MinScore2024 = &score
		}
		out[pos].Requirements = append(out[pos].Requirements, req)
	}
	return out, reqRows.Err()
}

// SeedPG replaces the catalog tables with the given dataset in one
// transaction. Used by catalogctl to push the builtin dataset into Postgres.
func SeedPG(ctx context.Context, db *sql.DB, subjects []Subject, tracks []Track, programs []Program) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"program_requirements", "programs", "tracks", "subjects"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("seed catalog: clear %s: %w", table, err)
		}
	}

	for i, s := range subjects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subjects (id, name_ar, name_fr, position) VALUES ($1, $2, $3, $4)`,
			s.ID, s.NameAr, s.NameFr, i,
		); err != nil {
			return fmt.Errorf("seed catalog: subject %q: %w", s.ID, err)
		}
	}

	for i, t := range tracks {
		requiredRaw, err := json.Marshal(t.RequiredSubjects)
		if err != nil {
			return err
		}
		formulaRaw, err := json.Marshal(t.BaseFormula)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tracks (id, name_ar, name_fr, required_subjects, fg_formula, position) VALUES ($1, $2, $3, $4, $5, $6)`,
			t.ID, t.NameAr, t.NameFr, requiredRaw, formulaRaw, i,
		); err != nil {
			return fmt.Errorf("seed catalog: track %q: %w", t.ID, err)
		}
	}

	for i, p := range programs {
		var notesRaw any
		if len(p.NotesAr) > 0 {
			raw, err := json.Marshal(p.NotesAr)
			if err != nil {
				return err
			}
			notesRaw = raw
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO programs (code, major_ar, university_ar, campus_ar, field_ar, notes_ar, position) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.Code, p.MajorAr, p.UniversityAr, p.CampusAr, p.FieldAr, notesRaw, i,
		); err != nil {
			return fmt.Errorf("seed catalog: program %q: %w", p.Code, err)
		}
		for _, req := range p.Requirements {
			modifierRaw, err := json.Marshal(req.FormulaModifier)
			if err != nil {
				return err
			}
			var minScore any
			if req.MinScore2024 != nil {
				minScore = *req.MinScore2024
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO program_requirements (program_code, bac_type, formula_modifier, min_score_2024) VALUES ($1, $2, $3, $4)`,
				p.Code, req.BacType, modifierRaw, minScore,
			); err != nil {
				return fmt.Errorf("seed catalog: program %q track %q: %w", p.Code, req.BacType, err)
			}
		}
	}

	return tx.Commit()
}
