package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/praxis-cli/praxis/internal/catalog"
	"github.com/praxis-cli/praxis/internal/runner"
)

func sampleResults() []runner.Result {
	return []runner.Result{
		{Lesson: "basics", Unit: "variables", Expect: catalog.ExpectSuccess, Outcome: runner.OutcomeSucceeded, Matched: true, Output: "x = 10\n"},
		{Lesson: "basics", Unit: "types", Expect: catalog.ExpectSuccess, Outcome: runner.OutcomeSucceeded, Matched: true},
		{Lesson: "ownership", Unit: "moveSemantics", Expect: catalog.ExpectSuccess, Outcome: runner.OutcomeSucceeded, Matched: true},
		{Lesson: "ownership", Unit: "doubleMove", Expect: catalog.ExpectFailure, Outcome: runner.OutcomeSucceeded, Matched: false},
		{Lesson: "ownership", Unit: "danglingRef", Expect: catalog.ExpectFailure, Outcome: runner.OutcomeFailed, Reason: "deliberate", Matched: true},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleResults())

	assert.Equal(t, 5, summary.Units)
	assert.Equal(t, 4, summary.Matched)
	assert.Equal(t, 1, summary.Mismatched)
	assert.False(t, summary.AllMatched())

	require.Len(t, summary.Lessons, 2)
	assert.Equal(t, "basics", summary.Lessons[0].Name)
	assert.Equal(t, 2, summary.Lessons[0].Units)
	assert.Nil(t, summary.Lessons[0].FirstMismatch)

	ownership := summary.Lessons[1]
	assert.Equal(t, "ownership", ownership.Name)
	assert.Equal(t, 3, ownership.Units)
	assert.Equal(t, 1, ownership.Mismatched)
	require.NotNil(t, ownership.FirstMismatch)
	assert.Equal(t, "doubleMove", ownership.FirstMismatch.Unit)
	assert.Equal(t, "failure", ownership.FirstMismatch.Expected)
	assert.Equal(t, "succeeded", ownership.FirstMismatch.Outcome)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Units)
	assert.True(t, summary.AllMatched())
	assert.Empty(t, summary.Lessons)
}

func TestSummarizePreservesLessonOrder(t *testing.T) {
	results := []runner.Result{
		{Lesson: "zeta", Unit: "a", Matched: true},
		{Lesson: "alpha", Unit: "b", Matched: true},
		{Lesson: "zeta", Unit: "c", Matched: true},
	}

	summary := Summarize(results)
	require.Len(t, summary.Lessons, 2)
	assert.Equal(t, "zeta", summary.Lessons[0].Name)
	assert.Equal(t, "alpha", summary.Lessons[1].Name)
	assert.Equal(t, 2, summary.Lessons[0].Units)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleResults(), Options{Format: "table"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "LESSON")
	assert.Contains(t, out, "Basics")
	assert.Contains(t, out, "Ownership")
	assert.Contains(t, out, "mismatch in ownership/doubleMove: expected failure, observed succeeded")
	assert.Contains(t, out, "5 units, 4 matched, 1 mismatched")

	// Not verbose: captured unit output is not included.
	assert.NotContains(t, out, "x = 10")
}

func TestWriteTableVerbose(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleResults(), Options{Format: "table", Verbose: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "--- basics/variables ---")
	assert.Contains(t, out, "x = 10")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleResults(), Options{Format: "json"})
	require.NoError(t, err)

	var summary Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, 5, summary.Units)
	assert.Equal(t, 1, summary.Mismatched)
	require.Len(t, summary.Lessons, 2)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleResults(), Options{Format: "yaml"})
	require.NoError(t, err)

	var summary Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, 5, summary.Units)
	assert.Equal(t, 4, summary.Matched)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleResults(), Options{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestWriteDefaultFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), Options{}))
	assert.Contains(t, buf.String(), "LESSON")
}
