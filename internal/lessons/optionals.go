package lessons

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/praxis-cli/praxis/internal/catalog"
)

func optionalsUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "optionValues",
			Note: "QUIZ: can a present-but-zero value be told apart from an absent one without the pointer?",
			Action: func(w io.Writer) error {
				// A nil pointer is the idiomatic "no value here".
				var maybeAge *int
				if maybeAge == nil {
					fmt.Fprintln(w, "age: unknown")
				}

				age := 0
				maybeAge = &age
				if maybeAge != nil {
					fmt.Fprintf(w, "age: %d (present, even though zero)\n", *maybeAge)
				}

				// For maps, the comma-ok form distinguishes the two cases.
				scores := map[string]int{"ada": 0}
				if score, ok := scores["ada"]; ok {
					fmt.Fprintf(w, "ada scored %d\n", score)
				}
				if _, ok := scores["bob"]; !ok {
					fmt.Fprintln(w, "bob has no score")
				}
				return nil
			},
		},
		{
			Name: "patternMatching",
			Note: "QUIZ: is the default case required for the type switch to compile?",
			Action: func(w io.Writer) error {
				// A type switch dispatches on the dynamic type of a value.
				describe := func(v interface{}) string {
					switch x := v.(type) {
					case int:
						return fmt.Sprintf("an int: %d", x)
					case string:
						return fmt.Sprintf("a string of length %d", len(x))
					case nil:
						return "nothing at all"
					default:
						return fmt.Sprintf("something else: %T", x)
					}
				}

				for _, v := range []interface{}{42, "coin", nil, 1.5} {
					fmt.Fprintln(w, describe(v))
				}
				return nil
			},
		},
		{
			Name: "errorsAsValues",
			Note: "QUIZ: what does strconv.Atoi return in its first result when parsing fails?",
			Action: func(w io.Writer) error {
				// Errors are ordinary values; the caller decides what a
				// failure means.
				for _, input := range []string{"42", "forty-two"} {
					n, err := strconv.Atoi(input)
					if err != nil {
						fmt.Fprintf(w, "%q did not parse: %v\n", input, err)
						continue
					}
					fmt.Fprintf(w, "%q parsed to %d\n", input, n)
				}

				// Sentinel errors compare with errors.Is.
				errNoMilk := errors.New("no milk")
				brew := func() error { return fmt.Errorf("making coffee: %w", errNoMilk) }
				if err := brew(); errors.Is(err, errNoMilk) {
					fmt.Fprintln(w, "skipping coffee, the cause was the milk")
				}
				return nil
			},
		},
		{
			Name:   "unwrapNone",
			Note:   "QUIZ: the pointer held no value; what does dereferencing it anyway do at runtime?",
			Expect: catalog.ExpectFailure,
			Action: func(w io.Writer) error {
				// Dereferencing the absent case without checking is the
				// classic unwrap-on-nothing failure.
				var maybeAge *int
				fmt.Fprintln(w, "about to read through a nil pointer")
				fmt.Fprintf(w, "age: %d\n", *maybeAge)
				return nil
			},
		},
	}
}
