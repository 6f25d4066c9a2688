// Package notes loads lecturer-editable note overlays: YAML sidecar files
// that override unit notes and lesson descriptions without recompiling the
// binary. Overlays are applied while the catalog is being built; the
// catalog itself stays immutable afterwards.
package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/praxis-cli/praxis/internal/errors"
)

// Overlay carries the overrides for one lesson. Keys of Units are unit
// names; values replace the unit's note.
type Overlay struct {
	Description string            `yaml:"description"`
	Units       map[string]string `yaml:"units"`
}

// Set maps lesson names to their overlays.
type Set map[string]Overlay

// Note returns the overlay note for a unit, or the fallback when the
// overlay has none.
func (s Set) Note(lesson, unit, fallback string) string {
	overlay, ok := s[lesson]
	if !ok {
		return fallback
	}
	if note, ok := overlay.Units[unit]; ok {
		return note
	}
	return fallback
}

// Description returns the overlay description for a lesson, or the
// fallback when the overlay has none.
func (s Set) Description(lesson, fallback string) string {
	overlay, ok := s[lesson]
	if !ok || overlay.Description == "" {
		return fallback
	}
	return overlay.Description
}

// LoadDir reads every .yml/.yaml file in dir as the overlay for the lesson
// named by the file's base name. An empty dir means no overlays; a
// configured but unreadable dir is an error.
func LoadDir(dir string) (Set, error) {
	if dir == "" {
		return Set{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewConfigError(
			errors.ErrCodeNotesInvalid,
			"reading notes directory "+dir,
		).WithContext("cause", err.Error())
	}

	set := Set{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		overlay, err := loadFile(path)
		if err != nil {
			return nil, err
		}

		lesson := strings.TrimSuffix(entry.Name(), ext)
		set[lesson] = overlay
	}

	return set, nil
}

func loadFile(path string) (Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overlay{}, errors.NewConfigError(
			errors.ErrCodeNotesInvalid,
			"reading notes file "+path,
		).WithContext("cause", err.Error())
	}

	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Overlay{}, errors.NewConfigError(
			errors.ErrCodeNotesInvalid,
			fmt.Sprintf("parsing notes file %s", path),
		).WithContext("cause", err.Error())
	}

	return overlay, nil
}
