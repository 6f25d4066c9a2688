package lessons

import (
	"fmt"
	"io"

	"github.com/praxis-cli/praxis/internal/catalog"
)

// pair is a generic struct: both fields share one type parameter.
type pair[T any] struct {
	first  T
	second T
}

func (p pair[T]) swapped() pair[T] {
	return pair[T]{first: p.second, second: p.first}
}

type ordered interface {
	~int | ~int64 | ~float64 | ~string
}

// largest works for any ordered element type.
func largest[T ordered](values []T) T {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// stack is a generic container with no constraint on its elements.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) {
	s.items = append(s.items, v)
}

func (s *stack[T]) pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func genericsUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "genericStructs",
			Note: "QUIZ: can a pair hold an int first and a string second? why not?",
			Action: func(w io.Writer) error {
				ints := pair[int]{first: 1, second: 2}
				fmt.Fprintf(w, "ints swapped: %+v\n", ints.swapped())

				words := pair[string]{first: "fst", second: "snd"}
				fmt.Fprintf(w, "words swapped: %+v\n", words.swapped())
				return nil
			},
		},
		{
			Name: "genericFunctions",
			Note: "QUIZ: which of these calls needs the type argument spelled out?",
			Action: func(w io.Writer) error {
				// Type arguments are inferred from the operands.
				fmt.Fprintf(w, "largest int: %d\n", largest([]int{34, 50, 25, 100, 65}))
				fmt.Fprintf(w, "largest word: %s\n", largest([]string{"hello", "world"}))

				// They can also be given explicitly.
				fmt.Fprintf(w, "largest float: %g\n", largest[float64]([]float64{1.5, 0.2}))
				return nil
			},
		},
		{
			Name: "constraints",
			Note: "QUIZ: why does largest reject a slice of structs while stack accepts them?",
			Action: func(w io.Writer) error {
				// any admits every type, so the stack holds structs fine.
				var s stack[rectangle]
				s.push(rectangle{Width: 1, Height: 2})
				s.push(rectangle{Width: 3, Height: 4})

				for {
					r, ok := s.pop()
					if !ok {
						break
					}
					fmt.Fprintf(w, "popped %d x %d\n", r.Width, r.Height)
				}

				// largest, by contrast, needs >, which only ordered
				// element types provide.
				fmt.Fprintf(w, "largest rune value: %d\n", largest([]int{'a', 'z', 'm'}))
				return nil
			},
		},
	}
}
