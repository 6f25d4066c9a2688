//go:build property

package runner

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/praxis-cli/praxis/internal/catalog"
)

// TestRunnerProperties validates execution-order and isolation properties.
func TestRunnerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: RunAll over N units yields exactly N results in traversal order.
	properties.Property("RunAll yields one result per unit in traversal order", prop.ForAll(
		func(lessonCount, unitsPerLesson int) bool {
			if lessonCount < 1 || lessonCount > 10 || unitsPerLesson < 1 || unitsPerLesson > 10 {
				return true
			}

			c := catalog.New()
			for l := 0; l < lessonCount; l++ {
				units := make([]catalog.Unit, unitsPerLesson)
				for u := 0; u < unitsPerLesson; u++ {
					units[u] = catalog.Unit{
						Name:   fmt.Sprintf("unit_%02d", u),
						Action: func(io.Writer) error { return nil },
					}
				}
				if err := c.Register(fmt.Sprintf("lesson_%02d", l), "", units); err != nil {
					return false
				}
			}

			r := New(c, Options{})
			results, err := r.RunAll(context.Background())
			if err != nil || len(results) != lessonCount*unitsPerLesson {
				return false
			}

			i := 0
			for l := 0; l < lessonCount; l++ {
				for u := 0; u < unitsPerLesson; u++ {
					if results[i].Lesson != fmt.Sprintf("lesson_%02d", l) ||
						results[i].Unit != fmt.Sprintf("unit_%02d", u) {
						return false
					}
					i++
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.IntRange(1, 8),
	))

	// Property: panicking units never reduce the number of results.
	properties.Property("failures are isolated per unit", prop.ForAll(
		func(unitCount int, panicMask int) bool {
			if unitCount < 1 || unitCount > 20 {
				return true
			}

			c := catalog.New()
			units := make([]catalog.Unit, unitCount)
			for u := 0; u < unitCount; u++ {
				panics := panicMask&(1<<uint(u%16)) != 0
				units[u] = catalog.Unit{
					Name: fmt.Sprintf("unit_%02d", u),
					Action: func(io.Writer) error {
						if panics {
							panic("deliberate")
						}
						return nil
					},
				}
			}
			if err := c.Register("lesson", "", units); err != nil {
				return false
			}

			r := New(c, Options{})
			results, err := r.RunLesson(context.Background(), "lesson")
			return err == nil && len(results) == unitCount
		},
		gen.IntRange(1, 16),
		gen.IntRange(0, 1<<16-1),
	))

	// Property: matched is exactly (observed failure == declared failure).
	properties.Property("expectation matching is consistent", prop.ForAll(
		func(expectFailure, actuallyFails bool) bool {
			c := catalog.New()
			expect := catalog.ExpectSuccess
			if expectFailure {
				expect = catalog.ExpectFailure
			}
			err := c.Register("lesson", "", []catalog.Unit{{
				Name:   "unit",
				Expect: expect,
				Action: func(io.Writer) error {
					if actuallyFails {
						return fmt.Errorf("failing demonstration")
					}
					return nil
				},
			}})
			if err != nil {
				return false
			}

			r := New(c, Options{})
			result, err := r.RunUnit(context.Background(), "lesson", "unit")
			if err != nil {
				return false
			}

			return result.Matched == (expectFailure == actuallyFails)
		},
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
