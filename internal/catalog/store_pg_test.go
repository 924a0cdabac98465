package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestLoadPGBuildsValidatedCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, name_ar, name_fr FROM subjects").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name_ar", "name_fr"}).
			AddRow("mg", "المعدل النهائي", "Moyenne Générale").
			AddRow("math", "رياضيات", "Mathématiques").
			AddRow("algo", "خوارزميات وبرمجة", "Algorithmique"))

	mock.ExpectQuery("SELECT id, name_ar, name_fr, required_subjects, fg_formula FROM tracks").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name_ar", "name_fr", "required_subjects", "fg_formula"}).
			AddRow("info", "علوم إعلامية", "Sciences de l'Informatique",
				[]byte(`["mg","math","algo"]`), []byte(`{"mg":4,"math":1.5,"algo":1.5}`)))

	mock.ExpectQuery("SELECT code, major_ar, university_ar, campus_ar, field_ar, notes_ar FROM programs").
		WillReturnRows(sqlmock.NewRows([]string{"code", "major_ar", "university_ar", "campus_ar", "field_ar", "notes_ar"}).
			AddRow("30401", "الإجازة في علوم الإعلامية", "جامعة تونس المنار", "تونس", "الإعلامية والملتيميديا", nil))

	mock.ExpectQuery("SELECT program_code, bac_type, formula_modifier, min_score_2024 FROM program_requirements").
		WillReturnRows(sqlmock.NewRows([]string{"program_code", "bac_type", "formula_modifier", "min_score_2024"}).
			AddRow("30401", "info", []byte(`{"(math+algo)":1}`), 145.2))

	c, err := LoadPG(context.Background(), db)
	if err != nil {
		t.Fatalf("LoadPG: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}

	programs := c.Programs()
	if len(programs) != 1 {
		t.Fatalf("expected 1 program, got %d", len(programs))
	}
	req, ok := programs[0].RequirementFor("info")
	if !ok {
		t.Fatalf("expected requirement for info")
	}
	if req.MinScore2024 == nil || *req.MinScore2024 != 145.2 {
		t.Fatalf("min score = %v, want 145.2", req.MinScore2024)
	}
}

func TestLoadPGNullCutoffBecomesNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, name_ar, name_fr FROM subjects").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name_ar", "name_fr"}).
			AddRow("mg", "المعدل النهائي", "Moyenne Générale"))

	mock.ExpectQuery("SELECT id, name_ar, name_fr, required_subjects, fg_formula FROM tracks").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name_ar", "name_fr", "required_subjects", "fg_formula"}).
			AddRow("lettres", "آداب", "Lettres", []byte(`["mg"]`), []byte(`{"mg":4}`)))

	mock.ExpectQuery("SELECT code, major_ar, university_ar, campus_ar, field_ar, notes_ar FROM programs").
		WillReturnRows(sqlmock.NewRows([]string{"code", "major_ar", "university_ar", "campus_ar", "field_ar", "notes_ar"}).
			AddRow("60101", "الإجازة في العربية", "جامعة منوبة", "منوبة", "الآداب واللغات", []byte(`["ملاحظة"]`)))

	mock.ExpectQuery("SELECT program_code, bac_type, formula_modifier, min_score_2024 FROM program_requirements").
		WillReturnRows(sqlmock.NewRows([]string{"program_code", "bac_type", "formula_modifier", "min_score_2024"}).
			AddRow("60101", "lettres", []byte(`{"mg":1}`), nil))

	c, err := LoadPG(context.Background(), db)
	if err != nil {
		t.Fatalf("LoadPG: %v", err)
	}

	program := c.Programs()[0]
	if len(program.NotesAr) != 1 {
		t.Fatalf("expected 1 note, got %d", len(program.NotesAr))
	}
	req, _ := program.RequirementFor("lettres")
	if req.MinScore2024 != nil {
		t.Fatalf("expected nil min score, got %v", *req.MinScore2024)
	}
}
