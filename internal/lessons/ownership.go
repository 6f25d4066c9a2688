package lessons

import (
	"fmt"
	"io"
	"strings"

	"github.com/praxis-cli/praxis/internal/catalog"
)

func ownershipUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "strings",
			Note: "QUIZ: how many allocations does building the greeting with += perform?",
			Action: func(w io.Writer) error {
				// Strings are immutable values; concatenation builds new ones.
				s := "hello"
				s = s + ", world"
				fmt.Fprintln(w, s)

				// A strings.Builder amortizes the allocations instead.
				var b strings.Builder
				for _, part := range []string{"hello", ", ", "world"} {
					b.WriteString(part)
				}
				fmt.Fprintln(w, b.String())

				// Slicing a string shares the backing bytes, it never copies.
				fmt.Fprintf(w, "prefix: %s\n", s[:5])
				return nil
			},
		},
		{
			Name: "moveSemantics",
			Note: "QUIZ: after the append, do s1 and s2 still observe the same backing array?",
			Action: func(w io.Writer) error {
				// Assigning a slice copies the header, not the elements:
				// both variables alias one backing array.
				s1 := []int{1, 2, 3}
				s2 := s1
				s2[0] = 99
				fmt.Fprintf(w, "s1 after writing through s2: %v\n", s1)

				// Growing past capacity re-allocates, and the aliasing ends.
				s2 = append(s2, 4, 5, 6, 7)
				s2[1] = -1
				fmt.Fprintf(w, "s1 unchanged by the grown s2: %v\n", s1)
				return nil
			},
		},
		{
			Name: "refsAndBorrowing",
			Note: "QUIZ: which of the two calls can modify the caller's variable, and why?",
			Action: func(w io.Writer) error {
				double := func(n int) { n *= 2 }
				doubleInPlace := func(n *int) { *n *= 2 }

				x := 21
				double(x)
				fmt.Fprintf(w, "after pass-by-value: %d\n", x)

				doubleInPlace(&x)
				fmt.Fprintf(w, "after pass-by-pointer: %d\n", x)
				return nil
			},
		},
		{
			Name: "slices",
			Note: "QUIZ: what are the length and capacity of word after the two slicings?",
			Action: func(w io.Writer) error {
				sentence := []byte("hello world")
				word := sentence[:5]
				fmt.Fprintf(w, "word: %s (len %d, cap %d)\n", word, len(word), cap(word))

				rest := sentence[6:]
				fmt.Fprintf(w, "rest: %s\n", rest)

				// Writing through a subslice is visible in the original.
				word[0] = 'H'
				fmt.Fprintf(w, "sentence: %s\n", sentence)
				return nil
			},
		},
		{
			Name:   "doubleMove",
			Note:   "QUIZ: the channel was already handed off and closed once; what does the second close do?",
			Expect: catalog.ExpectFailure,
			Action: func(w io.Writer) error {
				// Closing a channel transfers the right to close it exactly
				// once. A second close is a runtime panic, the canonical
				// "value used after it was given away" failure.
				ch := make(chan int)
				close(ch)
				fmt.Fprintln(w, "first close succeeded")
				close(ch)
				return nil
			},
		},
	}
}
