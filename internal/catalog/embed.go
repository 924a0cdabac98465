package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var datasetFiles embed.FS

// Builtin loads and validates the catalog embedded in the binary. It is the
// default catalog source when no database is configured.
func Builtin() (*Catalog, error) {
	var subjects []Subject
	if err := decodeDataset("data/subjects.json", &subjects); err != nil {
		return nil, err
	}
	var tracks []Track
	if err := decodeDataset("data/tracks.json", &tracks); err != nil {
		return nil, err
	}
	var programs []Program
	if err := decodeDataset("data/programs.json", &programs); err != nil {
		return nil, err
	}
	return New(subjects, tracks, programs)
}

func decodeDataset(name string, out any) error {
	raw, err := datasetFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog dataset %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("catalog dataset %s: %w", name, err)
	}
	return nil
}
