//go:build property

package catalog

import (
	"fmt"
	"io"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCatalogProperties validates structural invariants of the catalog.
func TestCatalogProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: listings preserve registration order exactly.
	properties.Property("unit listing preserves registration order", prop.ForAll(
		func(unitCount int) bool {
			if unitCount < 1 || unitCount > 100 {
				return true
			}

			c := New()
			units := make([]Unit, unitCount)
			for i := range units {
				units[i] = Unit{
					Name:   fmt.Sprintf("unit_%03d", i),
					Action: func(io.Writer) error { return nil },
				}
			}

			if err := c.Register("lesson", "", units); err != nil {
				return false
			}

			names, err := c.Units("lesson")
			if err != nil || len(names) != unitCount {
				return false
			}
			for i, name := range names {
				if name != fmt.Sprintf("unit_%03d", i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 50),
	))

	// Property: lesson listing preserves registration order across lessons.
	properties.Property("lesson listing preserves registration order", prop.ForAll(
		func(lessonCount int) bool {
			if lessonCount < 1 || lessonCount > 50 {
				return true
			}

			c := New()
			for i := 0; i < lessonCount; i++ {
				err := c.Register(fmt.Sprintf("lesson_%03d", i), "", []Unit{
					{Name: "only", Action: func(io.Writer) error { return nil }},
				})
				if err != nil {
					return false
				}
			}

			names := c.Lessons()
			if len(names) != lessonCount {
				return false
			}
			for i, name := range names {
				if name != fmt.Sprintf("lesson_%03d", i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
	))

	// Property: a failed registration never mutates the catalog.
	properties.Property("failed registration leaves catalog unchanged", prop.ForAll(
		func(unitCount int, dupIndex int) bool {
			if unitCount < 2 || unitCount > 50 {
				return true
			}
			dup := dupIndex % unitCount
			if dup == 0 {
				dup = 1
			}

			c := New()
			units := make([]Unit, unitCount)
			for i := range units {
				units[i] = Unit{
					Name:   fmt.Sprintf("unit_%03d", i),
					Action: func(io.Writer) error { return nil },
				}
			}
			// Introduce a duplicate name partway through the registration.
			units[dup].Name = units[0].Name

			if err := c.Register("lesson", "", units); err == nil {
				return false
			}

			return c.LessonCount() == 0 && c.UnitCount() == 0
		},
		gen.IntRange(2, 40),
		gen.IntRange(1, 1000),
	))

	// Property: every registered unit is reachable through Find.
	properties.Property("registered units are all findable", prop.ForAll(
		func(unitCount int) bool {
			if unitCount < 1 || unitCount > 50 {
				return true
			}

			c := New()
			units := make([]Unit, unitCount)
			for i := range units {
				units[i] = Unit{
					Name:   fmt.Sprintf("unit_%03d", i),
					Action: func(io.Writer) error { return nil },
				}
			}
			if err := c.Register("lesson", "", units); err != nil {
				return false
			}

			for i := 0; i < unitCount; i++ {
				unit, err := c.Find("lesson", fmt.Sprintf("unit_%03d", i))
				if err != nil || unit == nil {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}
