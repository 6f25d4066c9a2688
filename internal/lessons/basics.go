package lessons

import (
	"fmt"
	"io"

	"github.com/praxis-cli/praxis/internal/catalog"
)

func basicsUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "variables",
			Note: "QUIZ: is a package-level const visible from other packages when its name starts lowercase?",
			Action: func(w io.Writer) error {
				// Declaration with an explicit type, and with inference.
				var x int32 = 10
				y := 11
				fmt.Fprintf(w, "values of x and y: %d and %d\n", x, y)

				// A new declaration in an inner scope shadows the outer one,
				// and may change the type.
				{
					x := "a string?"
					fmt.Fprintf(w, "value of x: %s\n", x)
				}

				z := 10
				z = z + 1
				fmt.Fprintf(w, "value of z: %d\n", z)

				const truthy = 1
				fmt.Fprintf(w, "constants never change: %d\n", truthy)
				return nil
			},
		},
		{
			Name: "types",
			Note: "QUIZ: what happens when an int64 is added to an int32 without a conversion?",
			Action: func(w io.Writer) error {
				// No implicit numeric conversions: mixing widths needs a cast.
				var x int32 = 10
				var y int64 = 20
				fmt.Fprintf(w, "value of +: %d\n", x+int32(y))

				var z float32 = 1.2
				var u float64 = 3.45
				fmt.Fprintf(w, "value of +: %g\n", float64(z)+u)

				t, f := true, false
				if t == f {
					fmt.Fprintln(w, "true is false")
				} else {
					fmt.Fprintln(w, "true is not false")
				}

				// Runes cover the whole of Unicode.
				c := 'z'
				zet := 'ℤ'
				fmt.Fprintf(w, "runes: %c %c\n", c, zet)

				// Compound types: arrays have a fixed length, tuples are
				// spelled as multiple return values or small structs.
				arr := [3]int{1, 2, 3}
				pair := struct {
					name string
					age  int
				}{"ada", 36}
				fmt.Fprintf(w, "array %v, pair %+v\n", arr, pair)
				return nil
			},
		},
		{
			Name: "expressions",
			Note: "QUIZ: which of these forms are expressions and which are statements?",
			Action: func(w io.Writer) error {
				// if is a statement, not an expression; the idiomatic
				// conditional assignment uses an explicit branch.
				grade := 71
				var verdict string
				if grade >= 60 {
					verdict = "pass"
				} else {
					verdict = "fail"
				}
				fmt.Fprintf(w, "verdict: %s\n", verdict)

				// switch selects on values and, with no operand, on the
				// first true case.
				switch {
				case grade >= 90:
					fmt.Fprintln(w, "outstanding")
				case grade >= 60:
					fmt.Fprintln(w, "sufficient")
				default:
					fmt.Fprintln(w, "insufficient")
				}

				// The only loop keyword is for, in three shapes.
				sum := 0
				for i := 1; i <= 5; i++ {
					sum += i
				}
				for sum < 20 {
					sum++
				}
				for _, v := range []int{1, 2, 3} {
					sum += v
				}
				fmt.Fprintf(w, "sum: %d\n", sum)
				return nil
			},
		},
	}
}
