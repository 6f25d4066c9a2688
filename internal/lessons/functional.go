package lessons

import (
	"fmt"
	"io"
	"sort"

	"github.com/praxis-cli/praxis/internal/catalog"
)

type shoe struct {
	size  int
	style string
}

func shoesInSize(shoes []shoe, size int) []shoe {
	fitting := make([]shoe, 0, len(shoes))
	for _, s := range shoes {
		if s.size == size {
			fitting = append(fitting, s)
		}
	}
	return fitting
}

func functionalUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "closures",
			Note: "QUIZ: what distinguishes a closure from a plain function value?",
			Action: func(w io.Writer) error {
				function := func(i int) int { return i + 1 }

				// A closure annotated like the function, and one fully
				// inferred.
				annotated := func(i int) int { return i + 1 }
				one := func() int { return 1 }

				i := 1
				fmt.Fprintf(w, "function: %d\n", function(i))
				fmt.Fprintf(w, "annotated: %d\n", annotated(i))
				fmt.Fprintf(w, "returning one: %d\n", one())
				return nil
			},
		},
		{
			Name: "capturedState",
			Note: "QUIZ: the two counters come from the same constructor; do they share their count?",
			Action: func(w io.Writer) error {
				// Each call to newCounter captures a fresh count variable.
				newCounter := func() func() int {
					count := 0
					return func() int {
						count++
						return count
					}
				}

				first := newCounter()
				second := newCounter()

				fmt.Fprintf(w, "first: %d %d %d\n", first(), first(), first())
				fmt.Fprintf(w, "second: %d\n", second())
				return nil
			},
		},
		{
			Name: "functionValues",
			Note: "QUIZ: can a method be used where a function value is expected?",
			Action: func(w io.Writer) error {
				apply := func(values []int, f func(int) int) []int {
					out := make([]int, len(values))
					for i, v := range values {
						out[i] = f(v)
					}
					return out
				}

				double := func(n int) int { return n * 2 }
				fmt.Fprintf(w, "doubled: %v\n", apply([]int{1, 2, 3}, double))

				// Sorting takes the comparison as a function value too.
				words := []string{"pear", "fig", "banana"}
				sort.Slice(words, func(i, j int) bool { return len(words[i]) < len(words[j]) })
				fmt.Fprintf(w, "by length: %v\n", words)
				return nil
			},
		},
		{
			Name: "filtersBySize",
			Note: "QUIZ: does the filter copy the shoes or alias the input slice's elements?",
			Action: func(w io.Writer) error {
				shoes := []shoe{
					{size: 43, style: "sneaker"},
					{size: 41, style: "sandal"},
					{size: 43, style: "boot"},
				}

				for _, s := range shoesInSize(shoes, 43) {
					fmt.Fprintf(w, "fits: %s (size %d)\n", s.style, s.size)
				}
				return nil
			},
		},
		{
			Name: "iterators",
			Note: "QUIZ: what ends the manual iteration, a sentinel value or a second result?",
			Action: func(w io.Writer) error {
				values := []int{1, 2, 3}

				// range drives the common case.
				total := 0
				for _, v := range values {
					total += v
				}
				fmt.Fprintf(w, "sum via range: %d\n", total)

				// A hand-rolled next() shows what range is doing for us.
				i := 0
				next := func() (int, bool) {
					if i >= len(values) {
						return 0, false
					}
					v := values[i]
					i++
					return v, true
				}

				for v, ok := next(); ok; v, ok = next() {
					fmt.Fprintf(w, "next yielded %d\n", v)
				}
				return nil
			},
		},
	}
}
