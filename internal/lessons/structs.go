package lessons

import (
	"fmt"
	"io"

	"github.com/praxis-cli/praxis/internal/catalog"
)

type rectangle struct {
	Width  uint
	Height uint
}

func (r rectangle) area() uint {
	return r.Width * r.Height
}

func (r rectangle) canHold(other rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// scale has a pointer receiver: it mutates the rectangle it is called on.
func (r *rectangle) scale(factor uint) {
	r.Width *= factor
	r.Height *= factor
}

func structsUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "structUsage",
			Note: "QUIZ: which fields of a struct literal may be omitted, and what do they hold?",
			Action: func(w io.Writer) error {
				r := rectangle{Width: 30, Height: 50}
				fmt.Fprintf(w, "width %d, height %d\n", r.Width, r.Height)

				// Omitted fields take their zero value.
				thin := rectangle{Width: 1}
				fmt.Fprintf(w, "thin rectangle: %d x %d\n", thin.Width, thin.Height)

				// Structs are values: assignment copies every field.
				copied := r
				copied.Width = 0
				fmt.Fprintf(w, "original still has width %d\n", r.Width)
				return nil
			},
		},
		{
			Name: "structPrinting",
			Note: "QUIZ: what is the difference between the %v and %+v renderings?",
			Action: func(w io.Writer) error {
				r := rectangle{Width: 30, Height: 50}
				fmt.Fprintf(w, "plain:  %v\n", r)
				fmt.Fprintf(w, "fields: %+v\n", r)
				fmt.Fprintf(w, "syntax: %#v\n", r)
				return nil
			},
		},
		{
			Name: "methods",
			Note: "QUIZ: why does scale need a pointer receiver when area does not?",
			Action: func(w io.Writer) error {
				r := rectangle{Width: 30, Height: 50}
				fmt.Fprintf(w, "area: %d\n", r.area())

				small := rectangle{Width: 10, Height: 40}
				fmt.Fprintf(w, "can hold the small one: %t\n", r.canHold(small))

				r.scale(2)
				fmt.Fprintf(w, "area after scaling: %d\n", r.area())
				return nil
			},
		},
	}
}
