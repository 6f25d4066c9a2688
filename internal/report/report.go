// Package report renders an ordered sequence of run results into a
// human-readable summary. Summarize is a pure function of its input; the
// writers have no side effects beyond the output they produce.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/praxis-cli/praxis/internal/runner"
)

// Mismatch describes one unit whose observed outcome did not match its
// declared expectation.
type Mismatch struct {
	Lesson   string `json:"lesson" yaml:"lesson"`
	Unit     string `json:"unit" yaml:"unit"`
	Expected string `json:"expected" yaml:"expected"`
	Outcome  string `json:"outcome" yaml:"outcome"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// LessonSummary aggregates results per lesson.
type LessonSummary struct {
	Name          string    `json:"name" yaml:"name"`
	Units         int       `json:"units" yaml:"units"`
	Matched       int       `json:"matched" yaml:"matched"`
	Mismatched    int       `json:"mismatched" yaml:"mismatched"`
	FirstMismatch *Mismatch `json:"first_mismatch,omitempty" yaml:"first_mismatch,omitempty"`
}

// Summary aggregates a full run.
type Summary struct {
	Lessons    []LessonSummary `json:"lessons" yaml:"lessons"`
	Units      int             `json:"units" yaml:"units"`
	Matched    int             `json:"matched" yaml:"matched"`
	Mismatched int             `json:"mismatched" yaml:"mismatched"`
}

// AllMatched reports whether the run had no expectation mismatches.
func (s Summary) AllMatched() bool {
	return s.Mismatched == 0
}

// Summarize folds an ordered result sequence into per-lesson and total
// counts, preserving the lessons' execution order.
func Summarize(results []runner.Result) Summary {
	summary := Summary{}
	index := make(map[string]int)

	for _, r := range results {
		i, seen := index[r.Lesson]
		if !seen {
			i = len(summary.Lessons)
			index[r.Lesson] = i
			summary.Lessons = append(summary.Lessons, LessonSummary{Name: r.Lesson})
		}

		lesson := &summary.Lessons[i]
		lesson.Units++
		summary.Units++

		if r.Matched {
			lesson.Matched++
			summary.Matched++
			continue
		}

		lesson.Mismatched++
		summary.Mismatched++
		if lesson.FirstMismatch == nil {
			lesson.FirstMismatch = &Mismatch{
				Lesson:   r.Lesson,
				Unit:     r.Unit,
				Expected: r.Expect.String(),
				Outcome:  r.Outcome.String(),
				Reason:   r.Reason,
			}
		}
	}

	return summary
}

// Options controls rendering.
type Options struct {
	// Format is one of "table", "json" or "yaml".
	Format string
	// Verbose appends each unit's captured output beneath the summary.
	Verbose bool
}

// Write renders the results to w in the requested format.
func Write(w io.Writer, results []runner.Result, opts Options) error {
	summary := Summarize(results)

	switch strings.ToLower(opts.Format) {
	case "", "table":
		return writeTable(w, summary, results, opts.Verbose)
	case "json":
		return writeJSON(w, summary)
	case "yaml":
		return writeYAML(w, summary)
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

func writeTable(w io.Writer, summary Summary, results []runner.Result, verbose bool) error {
	titler := cases.Title(language.English)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LESSON\tUNITS\tMATCHED\tMISMATCHED")
	for _, lesson := range summary.Lessons {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n",
			titler.String(lesson.Name), lesson.Units, lesson.Matched, lesson.Mismatched)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, lesson := range summary.Lessons {
		if lesson.FirstMismatch == nil {
			continue
		}
		m := lesson.FirstMismatch
		fmt.Fprintf(w, "\nmismatch in %s/%s: expected %s, observed %s",
			m.Lesson, m.Unit, m.Expected, m.Outcome)
		if m.Reason != "" {
			fmt.Fprintf(w, " (%s)", m.Reason)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\n%d units, %d matched, %d mismatched\n",
		summary.Units, summary.Matched, summary.Mismatched)

	if verbose {
		for _, r := range results {
			if r.Output == "" {
				continue
			}
			fmt.Fprintf(w, "\n--- %s/%s ---\n", r.Lesson, r.Unit)
			fmt.Fprint(w, r.Output)
			if !strings.HasSuffix(r.Output, "\n") {
				fmt.Fprintln(w)
			}
		}
	}

	return nil
}

func writeJSON(w io.Writer, summary Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func writeYAML(w io.Writer, summary Summary) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(summary)
}
