package main

// Operator tool for the orientation catalog:
//   go run ./cmd/catalogctl                 validate the active catalog
//   go run ./cmd/catalogctl -tracks         list tracks
//   go run ./cmd/catalogctl -programs      list programs and cutoffs
//   go run ./cmd/catalogctl -track info -score "MOYE=15 ALGO=16 STI=14 MATH=17 FRAN=12 ANGL=13"
//                                           score a sample submission
//   go run ./cmd/catalogctl -seed           push the builtin dataset to Postgres

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"orientation-backend/internal/catalog"
	"orientation-backend/internal/recommend"
	"orientation-backend/internal/scoretext"
	"orientation-backend/internal/shared/config"
	"orientation-backend/internal/shared/server"
	"orientation-backend/internal/shared/storage/db"
)

func main() {
	var (
		showTracks   = flag.Bool("tracks", false, "list catalog tracks")
		showPrograms = flag.Bool("programs", false, "list catalog programs")
		seed         = flag.Bool("seed", false, "push the builtin dataset into Postgres")
		trackID      = flag.String("track", "", "track identifier for -score")
		scoreLine    = flag.String("score", "", "sample scores as KEY=VALUE pairs (SMS abbreviations)")
	)
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	if *seed {
		if err := seedDatabase(ctx, cfg); err != nil {
			color.Red("seed failed: %v", err)
			os.Exit(1)
		}
		color.Green("builtin catalog pushed to database")
		return
	}

	cat, err := server.LoadCatalog(ctx, cfg)
	if err != nil {
		color.Red("catalog is invalid: %v", err)
		os.Exit(1)
	}
	color.Green("catalog OK: %d subjects, %d tracks, %d programs",
		len(cat.Subjects()), len(cat.Tracks()), len(cat.Programs()))

	switch {
	case *showTracks:
		printTracks(cat)
	case *showPrograms:
		printPrograms(cat)
	case *scoreLine != "":
		if *trackID == "" {
			color.Red("-score requires -track")
			os.Exit(1)
		}
		if err := scoreSample(cat, *trackID, *scoreLine); err != nil {
			color.Red("scoring failed: %v", err)
			os.Exit(1)
		}
	}
}

func seedDatabase(ctx context.Context, cfg config.Config) error {
	cat, err := catalog.Builtin()
	if err != nil {
		return err
	}
	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	database, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		return err
	}
	return catalog.SeedPG(ctx, database, cat.Subjects(), cat.Tracks(), cat.Programs())
}

func printTracks(cat *catalog.Catalog) {
	color.Yellow("\nBaccalaureate Tracks")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name (FR)", "Required Subjects", "Base Formula Terms"})
	for _, track := range cat.Tracks() {
		table.Append([]string{
			track.ID,
			track.NameFr,
			strconv.Itoa(len(track.RequiredSubjects)),
			strconv.Itoa(len(track.BaseFormula)),
		})
	}
	table.Render()
}

func printPrograms(cat *catalog.Catalog) {
	color.Yellow("\nPrograms and 2024 Cutoffs")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Code", "University", "Campus", "Track", "Min Score 2024"})
	for _, program := range cat.Programs() {
		for _, req := range program.Requirements {
			minScore := "n/a"
			if req.MinScore2024 != nil {
				minScore = fmt.Sprintf("%.2f", *req.MinScore2024)
			}
			table.Append([]string{
				program.Code,
				program.UniversityAr,
				program.CampusAr,
				req.BacType,
				minScore,
			})
		}
	}
	table.Render()
}

func scoreSample(cat *catalog.Catalog, trackID, scoreLine string) error {
	scores := scoretext.ParseScores(scoreLine)
	if len(scores) == 0 {
		return fmt.Errorf("no recognizable scores in %q", scoreLine)
	}
	log.Printf("parsed %d scores", len(scores))

	engine := recommend.NewEngine(cat)
	results, err := engine.Recommend(trackID, scores)
	if err != nil {
		return err
	}

	color.Yellow("\nRanked Recommendations (%s)", trackID)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Code", "University", "Student Score", "Min Score 2024", "Status"})
	for i, result := range results {
		minScore := "n/a"
		if result.MinScore2024 != nil {
			minScore = fmt.Sprintf("%.2f", *result.MinScore2024)
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			result.Code,
			result.UniversityAr,
			fmt.Sprintf("%.2f", result.StudentScore),
			minScore,
			recommend.Classify(result.StudentScore, result.MinScore2024),
		})
	}
	table.Render()
	return nil
}
