// Package catalog holds the registry of lessons and example units.
//
// A Catalog is built once at process start from a static registration list
// and is read-only afterwards. Registration order is pedagogical order:
// listings and the default run order preserve it exactly.
package catalog

import (
	"io"
	"sync"

	"github.com/praxis-cli/praxis/internal/errors"
)

// Expectation declares whether a unit is supposed to complete or to fail
// when run.
type Expectation int

const (
	// ExpectSuccess marks a unit whose action should complete normally.
	ExpectSuccess Expectation = iota
	// ExpectFailure marks a deliberately failing demonstration: the action
	// returning an error or panicking is the expected behavior.
	ExpectFailure
)

// String returns the string representation of the expectation.
func (e Expectation) String() string {
	switch e {
	case ExpectSuccess:
		return "success"
	case ExpectFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Action is the runnable body of a unit. Demonstration output goes through
// the supplied writer so the runner can capture it per unit. Actions take
// no other inputs; a non-nil error or a panic counts as a failed run.
type Action func(w io.Writer) error

// Unit is a single named demonstration with a declared expectation.
type Unit struct {
	Name   string
	Action Action
	Expect Expectation
	Note   string
}

// Lesson is an ordered, named group of units covering one topic.
type Lesson struct {
	Name        string
	Description string
	units       []Unit
	index       map[string]int
}

// Units returns the lesson's units in registration order.
func (l *Lesson) Units() []Unit {
	result := make([]Unit, len(l.units))
	copy(result, l.units)
	return result
}

// UnitNames returns the unit names in registration order.
func (l *Lesson) UnitNames() []string {
	names := make([]string, len(l.units))
	for i, u := range l.units {
		names[i] = u.Name
	}
	return names
}

// Unit retrieves a unit by name.
func (l *Lesson) Unit(name string) (*Unit, error) {
	i, ok := l.index[name]
	if !ok {
		return nil, errors.ErrUnknownUnit(l.Name, name)
	}
	return &l.units[i], nil
}

// Len returns the number of units in the lesson.
func (l *Lesson) Len() int {
	return len(l.units)
}

// Catalog manages all registered lessons.
type Catalog struct {
	mutex   sync.RWMutex
	lessons []*Lesson
	index   map[string]int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		lessons: make([]*Lesson, 0),
		index:   make(map[string]int),
	}
}

// Register appends a lesson with its units. It fails with
// ErrDuplicateLesson if the lesson name is already registered and with
// ErrDuplicateUnit if two units in the registration share a name. On any
// error the catalog is left unchanged.
func (c *Catalog) Register(name, description string, units []Unit) error {
	if name == "" {
		return errors.NewCatalogError(errors.ErrCodeInvalidName, "lesson name must not be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.index[name]; exists {
		return errors.ErrDuplicateLesson(name)
	}

	lesson := &Lesson{
		Name:        name,
		Description: description,
		units:       make([]Unit, 0, len(units)),
		index:       make(map[string]int, len(units)),
	}

	for _, u := range units {
		if u.Name == "" {
			return errors.NewCatalogError(errors.ErrCodeInvalidName, "unit name must not be empty").
				WithUnit(name, "")
		}
		if _, exists := lesson.index[u.Name]; exists {
			return errors.ErrDuplicateUnit(name, u.Name)
		}
		lesson.index[u.Name] = len(lesson.units)
		lesson.units = append(lesson.units, u)
	}

	c.index[name] = len(c.lessons)
	c.lessons = append(c.lessons, lesson)

	return nil
}

// Lessons returns the lesson names in registration order.
func (c *Catalog) Lessons() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	names := make([]string, len(c.lessons))
	for i, l := range c.lessons {
		names[i] = l.Name
	}
	return names
}

// Lesson retrieves a lesson by name.
func (c *Catalog) Lesson(name string) (*Lesson, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	i, ok := c.index[name]
	if !ok {
		return nil, errors.ErrUnknownLesson(name)
	}
	return c.lessons[i], nil
}

// Units returns the unit names of a lesson in registration order.
func (c *Catalog) Units(lessonName string) ([]string, error) {
	lesson, err := c.Lesson(lessonName)
	if err != nil {
		return nil, err
	}
	return lesson.UnitNames(), nil
}

// Find retrieves a single unit by lesson and unit name.
func (c *Catalog) Find(lessonName, unitName string) (*Unit, error) {
	lesson, err := c.Lesson(lessonName)
	if err != nil {
		return nil, err
	}
	return lesson.Unit(unitName)
}

// LessonCount returns the number of registered lessons.
func (c *Catalog) LessonCount() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.lessons)
}

// UnitCount returns the total number of units across all lessons.
func (c *Catalog) UnitCount() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	total := 0
	for _, l := range c.lessons {
		total += len(l.units)
	}
	return total
}
