package lessons

import (
	"fmt"
	"io"
	mrand "math/rand"
	"reflect"

	"github.com/praxis-cli/praxis/internal/catalog"
)

// invoice mixes exported and unexported fields: the capitalization of the
// first letter is the whole visibility system.
type invoice struct {
	Customer string
	total    int
}

func (inv *invoice) addLine(amount int) {
	inv.total += amount
}

func (inv invoice) Total() int {
	return inv.total
}

func packagesUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "visibility",
			Note: "QUIZ: what makes an identifier exported, and to whom is an unexported one visible?",
			Action: func(w io.Writer) error {
				typ := reflect.TypeOf(invoice{})
				for i := 0; i < typ.NumField(); i++ {
					field := typ.Field(i)
					if field.IsExported() {
						fmt.Fprintf(w, "%s is exported: any importing package sees it\n", field.Name)
					} else {
						fmt.Fprintf(w, "%s is unexported: only this package sees it\n", field.Name)
					}
				}
				return nil
			},
		},
		{
			Name: "encapsulation",
			Note: "QUIZ: how does a package let callers change state it does not export?",
			Action: func(w io.Writer) error {
				// Outside this package inv.total would not compile; the
				// exported method is the only door.
				inv := invoice{Customer: "ACME"}
				inv.addLine(40)
				inv.addLine(2)
				fmt.Fprintf(w, "%s owes %d\n", inv.Customer, inv.Total())
				return nil
			},
		},
		{
			Name: "importAliases",
			Note: "QUIZ: what does an import alias rename - the package, or its import path?",
			Action: func(w io.Writer) error {
				// math/rand is imported under the local alias mrand; the
				// path stays the same, only the qualifier changes. A fixed
				// seed keeps the demonstration reproducible.
				rng := mrand.New(mrand.NewSource(42))
				fmt.Fprintf(w, "random byte: %d\n", rng.Intn(256))
				fmt.Fprintf(w, "random byte: %d\n", rng.Intn(256))
				return nil
			},
		},
	}
}
