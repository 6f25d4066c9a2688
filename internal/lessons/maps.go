package lessons

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/praxis-cli/praxis/internal/catalog"
)

func mapsUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "singleMap",
			Note: "QUIZ: is the iteration order of a map deterministic between runs?",
			Action: func(w io.Writer) error {
				population := map[string]int{"tallinn": 453864, "tartu": 97435}
				population["narva"] = 53424

				// Iteration order is randomized; sort the keys for stable
				// narrative output.
				cities := make([]string, 0, len(population))
				for city := range population {
					cities = append(cities, city)
				}
				sort.Strings(cities)
				for _, city := range cities {
					fmt.Fprintf(w, "%s: %d\n", city, population[city])
				}
				return nil
			},
		},
		{
			Name: "twoMaps",
			Note: "QUIZ: after the merge, which map owns the entries?",
			Action: func(w io.Writer) error {
				base := map[string]int{"a": 1, "b": 2}
				extra := map[string]int{"b": 20, "c": 3}

				// Entries are copied; the maps stay independent.
				merged := make(map[string]int, len(base)+len(extra))
				for k, v := range base {
					merged[k] = v
				}
				for k, v := range extra {
					merged[k] = v
				}

				keys := make([]string, 0, len(merged))
				for k := range merged {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(w, "%s=%d\n", k, merged[k])
				}
				return nil
			},
		},
		{
			Name: "missingKeys",
			Note: "QUIZ: what does a lookup of an absent key return, and how do you tell it apart from a stored zero?",
			Action: func(w io.Writer) error {
				scores := map[string]int{"ada": 0}

				// Plain lookup of an absent key yields the zero value.
				fmt.Fprintf(w, "bob's score (plain lookup): %d\n", scores["bob"])

				// The comma-ok form reveals whether the key was present.
				if _, ok := scores["bob"]; !ok {
					fmt.Fprintln(w, "bob is not in the map")
				}
				if score, ok := scores["ada"]; ok {
					fmt.Fprintf(w, "ada is in the map with %d\n", score)
				}

				// Deleting an absent key is a no-op, not an error.
				delete(scores, "bob")
				fmt.Fprintf(w, "entries after delete: %d\n", len(scores))
				return nil
			},
		},
		{
			Name: "transformPipeline",
			Note: "QUIZ: does the transformation run eagerly or only when the result is consumed?",
			Action: func(w io.Writer) error {
				words := []string{"Per", "Aspera", "Ad", "Astra"}

				// An explicit loop is the eager pipeline: each step runs
				// immediately and materializes its result.
				lowered := make([]string, 0, len(words))
				for _, word := range words {
					lowered = append(lowered, strings.ToLower(word))
				}
				fmt.Fprintf(w, "lowered: %v\n", lowered)

				total := 0
				for _, word := range lowered {
					total += len(word)
				}
				fmt.Fprintf(w, "total length: %d\n", total)
				return nil
			},
		},
	}
}
