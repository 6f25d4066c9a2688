package catalog

import (
	stderrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	praxerr "github.com/praxis-cli/praxis/internal/errors"
)

func noop(io.Writer) error { return nil }

func TestNew(t *testing.T) {
	c := New()

	assert.NotNil(t, c)
	assert.Equal(t, 0, c.LessonCount())
	assert.Equal(t, 0, c.UnitCount())
	assert.Empty(t, c.Lessons())
}

func TestCatalog_Register(t *testing.T) {
	c := New()

	err := c.Register("basics", "variables and types", []Unit{
		{Name: "variables", Action: noop},
		{Name: "shadowing", Action: noop, Expect: ExpectFailure},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, c.LessonCount())
	assert.Equal(t, 2, c.UnitCount())
	assert.Equal(t, []string{"basics"}, c.Lessons())

	lesson, err := c.Lesson("basics")
	require.NoError(t, err)
	assert.Equal(t, "variables and types", lesson.Description)
	assert.Equal(t, 2, lesson.Len())
}

func TestCatalog_RegisterDuplicateLesson(t *testing.T) {
	c := New()

	require.NoError(t, c.Register("basics", "", []Unit{{Name: "variables", Action: noop}}))

	err := c.Register("basics", "", []Unit{{Name: "other", Action: noop}})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, praxerr.ErrDuplicateLesson("basics")))

	// The catalog is unchanged: still one lesson with one unit.
	assert.Equal(t, 1, c.LessonCount())
	assert.Equal(t, 1, c.UnitCount())
}

func TestCatalog_RegisterDuplicateUnit(t *testing.T) {
	c := New()

	err := c.Register("basics", "", []Unit{
		{Name: "variables", Action: noop},
		{Name: "variables", Action: noop},
	})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, praxerr.ErrDuplicateUnit("basics", "variables")))

	// No partial registration.
	assert.Equal(t, 0, c.LessonCount())
	assert.Empty(t, c.Lessons())
	_, lookupErr := c.Lesson("basics")
	assert.Error(t, lookupErr)
}

func TestCatalog_RegisterEmptyNames(t *testing.T) {
	c := New()

	assert.Error(t, c.Register("", "", nil))

	err := c.Register("basics", "", []Unit{{Name: "", Action: noop}})
	assert.Error(t, err)
	assert.Equal(t, 0, c.LessonCount())
}

func TestCatalog_OrderingPreserved(t *testing.T) {
	c := New()

	require.NoError(t, c.Register("basics", "", []Unit{
		{Name: "variables", Action: noop},
		{Name: "types", Action: noop},
		{Name: "expressions", Action: noop},
	}))
	require.NoError(t, c.Register("ownership", "", []Unit{
		{Name: "moveSemantics", Action: noop},
		{Name: "doubleMove", Action: noop},
	}))

	assert.Equal(t, []string{"basics", "ownership"}, c.Lessons())

	units, err := c.Units("basics")
	require.NoError(t, err)
	assert.Equal(t, []string{"variables", "types", "expressions"}, units)

	// Listings are restartable: a second call returns the same order.
	again, err := c.Units("basics")
	require.NoError(t, err)
	assert.Equal(t, units, again)
}

func TestCatalog_Find(t *testing.T) {
	c := New()

	require.NoError(t, c.Register("ownership", "", []Unit{
		{Name: "moveSemantics", Action: noop, Note: "when is the heap allocation freed?"},
	}))

	unit, err := c.Find("ownership", "moveSemantics")
	require.NoError(t, err)
	assert.Equal(t, "moveSemantics", unit.Name)
	assert.Equal(t, "when is the heap allocation freed?", unit.Note)

	_, err = c.Find("nosuch", "moveSemantics")
	assert.True(t, stderrors.Is(err, praxerr.ErrUnknownLesson("nosuch")))

	_, err = c.Find("ownership", "nosuch")
	assert.True(t, stderrors.Is(err, praxerr.ErrUnknownUnit("ownership", "nosuch")))
}

func TestCatalog_UnitsUnknownLesson(t *testing.T) {
	c := New()

	_, err := c.Units("ghost")
	require.Error(t, err)
	assert.True(t, praxerr.IsUnknownName(err))
}

func TestLesson_UnitsReturnsCopy(t *testing.T) {
	c := New()

	require.NoError(t, c.Register("basics", "", []Unit{
		{Name: "variables", Action: noop},
	}))

	lesson, err := c.Lesson("basics")
	require.NoError(t, err)

	units := lesson.Units()
	units[0].Name = "mutated"

	fresh := lesson.Units()
	assert.Equal(t, "variables", fresh[0].Name)
}

func TestExpectation_String(t *testing.T) {
	assert.Equal(t, "success", ExpectSuccess.String())
	assert.Equal(t, "failure", ExpectFailure.String())
	assert.Equal(t, "unknown", Expectation(7).String())
}
