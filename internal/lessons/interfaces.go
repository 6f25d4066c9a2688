package lessons

import (
	"fmt"
	"io"
	"strings"

	"github.com/praxis-cli/praxis/internal/catalog"
)

// summarizer is a small behavioral contract, satisfied implicitly.
type summarizer interface {
	summarize() string
}

type article struct {
	headline string
	author   string
}

func (a article) summarize() string {
	return fmt.Sprintf("%s, by %s", a.headline, a.author)
}

type post struct {
	username string
	content  string
}

func (p post) summarize() string {
	return fmt.Sprintf("@%s: %s", p.username, p.content)
}

// notify accepts any summarizer; the call site picks the implementation.
func notify(w io.Writer, item summarizer) {
	fmt.Fprintf(w, "breaking! %s\n", item.summarize())
}

type animal interface {
	name() string
	noise() string
}

type sheep struct{ called string }

func (s sheep) name() string  { return s.called }
func (s sheep) noise() string { return "baa" }

type cow struct{ called string }

func (c cow) name() string  { return c.called }
func (c cow) noise() string { return "moo" }

func interfacesUnits() []catalog.Unit {
	return []catalog.Unit{
		{
			Name: "implicitImplementation",
			Note: "QUIZ: where is the declaration that article implements summarizer?",
			Action: func(w io.Writer) error {
				// There is none: any type with the right method set
				// satisfies the interface.
				a := article{headline: "go released", author: "the team"}
				p := post{username: "gopher", content: "neat"}

				fmt.Fprintln(w, a.summarize())
				fmt.Fprintln(w, p.summarize())
				return nil
			},
		},
		{
			Name: "interfaceParameters",
			Note: "QUIZ: is the summarize call in notify resolved at compile time or at run time?",
			Action: func(w io.Writer) error {
				notify(w, article{headline: "interfaces explained", author: "ada"})
				notify(w, post{username: "bob", content: "finally got it"})
				return nil
			},
		},
		{
			Name: "polymorphism",
			Note: "QUIZ: what concrete types does the animals slice hold at run time?",
			Action: func(w io.Writer) error {
				// A slice of interface values: each element carries its own
				// concrete type, and each noise() call dispatches
				// dynamically.
				animals := []animal{
					sheep{called: "dolly"},
					cow{called: "bella"},
					sheep{called: "shaun"},
				}

				for _, a := range animals {
					fmt.Fprintf(w, "%s says %s\n", a.name(), a.noise())
				}
				return nil
			},
		},
		{
			Name: "stringer",
			Note: "QUIZ: which package defines the Stringer interface that fmt consults?",
			Action: func(w io.Writer) error {
				// fmt checks for the standard Stringer contract and uses it
				// for %v and %s.
				list := shoppingList{"milk", "eggs", "bread"}
				fmt.Fprintf(w, "list: %v\n", list)
				return nil
			},
		},
	}
}

type shoppingList []string

func (l shoppingList) String() string {
	return "[" + strings.Join(l, " | ") + "]"
}
