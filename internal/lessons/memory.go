package lessons

import (
	"fmt"
	"io"

	"github.com/praxis-cli/praxis/internal/catalog"
)

// listNode is a recursive type: the pointer gives it a known size.
type listNode struct {
	value int
	next  *listNode
}

func (n *listNode) sum() int {
	total := 0
	for ; n != nil; n = n.next {
		total += n.value
	}
	return total
}

func memoryUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "heapAllocation",
			Note: "QUIZ: does returning a pointer to a local variable dangle?",
			Action: func(w io.Writer) error {
				// Escape analysis moves the value to the heap; the pointer
				// stays valid after the function returns.
				makeCounter := func() *int {
					count := 0
					return &count
				}

				counter := makeCounter()
				*counter++
				*counter++
				fmt.Fprintf(w, "counter: %d\n", *counter)

				// new() allocates a zeroed value and hands back a pointer.
				fresh := new(int)
				fmt.Fprintf(w, "fresh allocation holds: %d\n", *fresh)
				return nil
			},
		},
		{
			Name: "recursiveTypes",
			Note: "QUIZ: why can a struct contain a pointer to its own type but not a field of its own type?",
			Action: func(w io.Writer) error {
				// 1 -> 2 -> 3, built back to front.
				list := &listNode{value: 1, next: &listNode{value: 2, next: &listNode{value: 3}}}

				fmt.Fprintf(w, "sum of list: %d\n", list.sum())

				var empty *listNode
				fmt.Fprintf(w, "sum of empty list: %d\n", empty.sum())
				return nil
			},
		},
		{
			Name: "sharedValues",
			Note: "QUIZ: how many owners does the shared counter have, and who frees it?",
			Action: func(w io.Writer) error {
				// Any number of pointers may share one heap value; the
				// garbage collector reclaims it when the last one is gone.
				shared := new(int)
				first, second := shared, shared

				*first += 2
				*second += 3
				fmt.Fprintf(w, "value observed through shared: %d\n", *shared)
				return nil
			},
		},
		{
			Name:   "indexOutOfRange",
			Note:   "QUIZ: the slice has three elements; what happens at index 99?",
			Expect: catalog.ExpectFailure,
			Action: func(w io.Writer) error {
				values := []int{1, 2, 3}
				index := 99
				fmt.Fprintf(w, "reading index %d of %v\n", index, values)
				fmt.Fprintf(w, "value: %d\n", values[index])
				return nil
			},
		},
		{
			Name:   "nilMapWrite",
			Note:   "QUIZ: reads from a nil map yield zeros; why does this write not simply store a zero?",
			Expect: catalog.ExpectFailure,
			Action: func(w io.Writer) error {
				// A nil map is read-only: lookups work, stores panic.
				var scores map[string]int
				fmt.Fprintf(w, "reading from a nil map: %d\n", scores["ada"])
				scores["ada"] = 1
				return nil
			},
		},
	}
}
