package domtest_test

import (
	"testing"

	"github.com/MobRulesGames/css3d/dom/domtest"
	"github.com/stretchr/testify/assert"
)

func TestElementRecordsWrites(t *testing.T) {
	j := &domtest.Journal{}
	a := &domtest.Element{Name: "a", Journal: j}
	b := &domtest.Element{Name: "b", Journal: j}

	a.SetPerspective("10px")
	b.SetTransform("none")
	a.SetTransform("matrix3d(1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1)")

	assert.Equal(t, []string{"a.perspective", "b.transform", "a.transform"}, j.Entries)
	assert.Equal(t, 1, a.WritesTo("transform"))
	assert.Equal(t, 1, a.WritesTo("perspective"))
	assert.Equal(t, "10px", a.Perspective)

	a.Reset()
	assert.Empty(t, a.Writes)
	assert.Empty(t, a.Transform)
}

func TestAssertions(t *testing.T) {
	e := domtest.NewElement("card")
	e.SetTransform("none")

	assert.Empty(t, domtest.ShouldHaveTransform(e, "none"))
	assert.Contains(t, domtest.ShouldHaveTransform(e, "matrix3d()"), "transform mismatch")
	assert.Contains(t, domtest.ShouldHavePerspective(e, "1px"), "perspective mismatch")
	assert.Empty(t, domtest.ShouldHaveWrittenOnce(e))

	e.SetTransform("none")
	assert.Contains(t, domtest.ShouldHaveWrittenOnce(e), "have 2")

	assert.Panics(t, func() { domtest.ShouldHaveTransform("not an element", "none") })
}
