package lessons

import (
	"fmt"
	"io"

	"github.com/praxis-cli/praxis/internal/catalog"
)

func add(a, b int) int {
	return a + b
}

func testingUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "passingChecks",
			Note: "QUIZ: what does a test function report when every assertion holds?",
			Action: func(w io.Writer) error {
				cases := []struct{ a, b, want int }{
					{2, 2, 4},
					{-1, 1, 0},
					{0, 0, 0},
				}
				for _, c := range cases {
					got := add(c.a, c.b)
					if got != c.want {
						return fmt.Errorf("add(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
					}
					fmt.Fprintf(w, "add(%d, %d) = %d ok\n", c.a, c.b, got)
				}
				return nil
			},
		},
		{
			Name: "largerCanHold",
			Note: "QUIZ: why check both directions of canHold instead of just one?",
			Action: func(w io.Writer) error {
				larger := rectangle{Width: 8, Height: 7}
				smaller := rectangle{Width: 5, Height: 1}

				if !larger.canHold(smaller) {
					return fmt.Errorf("larger should hold smaller")
				}
				if smaller.canHold(larger) {
					return fmt.Errorf("smaller should not hold larger")
				}
				fmt.Fprintln(w, "both containment checks hold")
				return nil
			},
		},
		{
			Name:   "failingAssertion",
			Note:   "QUIZ: which parts of a good failure message make the fix obvious?",
			Expect: catalog.ExpectFailure,
			Action: func(w io.Writer) error {
				// A check that does not hold: the report carries got and
				// want, exactly what a failing test prints.
				got := add(2, 2)
				want := 5
				fmt.Fprintln(w, "checking a wrong expectation on purpose")
				if got != want {
					return fmt.Errorf("add(2, 2) = %d, want %d", got, want)
				}
				return nil
			},
		},
	}
}
