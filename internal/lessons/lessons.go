// Package lessons carries the course content shipped with praxis: the
// static registration list of lessons and their example units, in the
// order they are taught.
//
// Each unit is a small, self-contained demonstration that writes its
// narrative to the supplied writer. Units flagged ExpectFailure reproduce
// a runtime failure on purpose; the runner records the failure and reports
// it as the expected behavior.
package lessons

import (
	"github.com/praxis-cli/praxis/internal/catalog"
	"github.com/praxis-cli/praxis/internal/notes"
)

type registration struct {
	name        string
	description string
	units       []catalog.Unit
}

// registrations is the pedagogical sequence. Order matters: listings and
// the default run order follow it exactly.
func registrations() []registration {
	return []registration{
		{
			name:        "basics",
			description: "variables, assignment, mutability, base types and expressions",
			units:       basicsUnits(),
		},
		{
			name:        "ownership",
			description: "value vs reference semantics: copies, aliasing and hand-offs",
			units:       ownershipUnits(),
		},
		{
			name:        "optionals",
			description: "absent values, pattern-style dispatch and errors as values",
			units:       optionalsUnits(),
		},
		{
			name:        "structs",
			description: "struct definition, printing and methods",
			units:       structsUnits(),
		},
		{
			name:        "packages",
			description: "exported names, encapsulation and import aliases",
			units:       packagesUnits(),
		},
		{
			name:        "testing",
			description: "checks as code: passing tables and honest failure messages",
			units:       testingUnits(),
		},
		{
			name:        "maps",
			description: "map lookups, iteration and transformation pipelines",
			units:       mapsUnits(),
		},
		{
			name:        "generics",
			description: "type parameters and constraints",
			units:       genericsUnits(),
		},
		{
			name:        "interfaces",
			description: "interfaces, dynamic dispatch and polymorphism",
			units:       interfacesUnits(),
		},
		{
			name:        "memory",
			description: "pointers, heap allocation and recursive types",
			units:       memoryUnits(),
		},
		{
			name:        "functional",
			description: "closures, captured state and iterator-style pipelines",
			units:       functionalUnits(),
		},
	}
}

// Build constructs the catalog from the static registration list, applying
// note overlays while the catalog is being assembled. The returned catalog
// is complete and is treated as read-only by every caller.
func Build(overlays notes.Set) (*catalog.Catalog, error) {
	c := catalog.New()

	for _, reg := range registrations() {
		units := make([]catalog.Unit, len(reg.units))
		for i, unit := range reg.units {
			unit.Note = overlays.Note(reg.name, unit.Name, unit.Note)
			units[i] = unit
		}

		description := overlays.Description(reg.name, reg.description)
		if err := c.Register(reg.name, description, units); err != nil {
			return nil, err
		}
	}

	return c, nil
}
