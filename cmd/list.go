package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/praxis-cli/praxis/internal/catalog"
	"github.com/praxis-cli/praxis/internal/config"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List lessons and their example units",
	Long: `List the lessons in the catalog, or the units of one lesson with
their declared expectations and notes.

Examples:
  praxis list                     # List all lessons in table format
  praxis list -f json             # Output as JSON
  praxis list --lesson ownership  # List the units of one lesson
  praxis list --lesson ownership --with-notes`,
	RunE: runList,
}

var (
	listFlags     *OutputFlags
	listLesson    string
	listWithNotes bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddOutputFlags(listCmd)
	listCmd.Flags().StringVar(&listLesson, "lesson", "", "List the units of this lesson")
	listCmd.Flags().BoolVar(&listWithNotes, "with-notes", false, "Include unit notes / quiz prompts")
}

type lessonListing struct {
	Name        string `json:"name" yaml:"name"`
	Units       int    `json:"units" yaml:"units"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type unitListing struct {
	Name   string `json:"name" yaml:"name"`
	Expect string `json:"expect" yaml:"expect"`
	Note   string `json:"note,omitempty" yaml:"note,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	listFlags.Resolve(cfg, cmd.Flags())
	if err := listFlags.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	cat, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}

	if listLesson != "" {
		return listUnits(cat, listLesson)
	}

	return listLessons(cat)
}

func listLessons(cat *catalog.Catalog) error {
	listings := make([]lessonListing, 0, cat.LessonCount())
	for _, name := range cat.Lessons() {
		lesson, err := cat.Lesson(name)
		if err != nil {
			return err
		}
		listings = append(listings, lessonListing{
			Name:        lesson.Name,
			Units:       lesson.Len(),
			Description: lesson.Description,
		})
	}

	switch strings.ToLower(listFlags.Format) {
	case "json":
		return outputJSON(listings)
	case "yaml":
		return outputYAML(listings)
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer w.Flush()

		fmt.Fprintln(w, "LESSON\tUNITS\tDESCRIPTION")
		for _, l := range listings {
			fmt.Fprintf(w, "%s\t%d\t%s\n", l.Name, l.Units, l.Description)
		}
		return nil
	}
}

func listUnits(cat *catalog.Catalog, lessonName string) error {
	lesson, err := cat.Lesson(lessonName)
	if err != nil {
		return err
	}

	listings := make([]unitListing, 0, lesson.Len())
	for _, unit := range lesson.Units() {
		listing := unitListing{
			Name:   unit.Name,
			Expect: unit.Expect.String(),
		}
		if listWithNotes {
			listing.Note = unit.Note
		}
		listings = append(listings, listing)
	}

	switch strings.ToLower(listFlags.Format) {
	case "json":
		return outputJSON(listings)
	case "yaml":
		return outputYAML(listings)
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer w.Flush()

		header := "UNIT\tEXPECT"
		if listWithNotes {
			header += "\tNOTE"
		}
		fmt.Fprintln(w, header)
		for _, u := range listings {
			if listWithNotes {
				fmt.Fprintf(w, "%s\t%s\t%s\n", u.Name, u.Expect, u.Note)
			} else {
				fmt.Fprintf(w, "%s\t%s\n", u.Name, u.Expect)
			}
		}
		return nil
	}
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(v)
}
