package domtest

import (
	"fmt"

	"github.com/MobRulesGames/css3d/dom"
)

// Write is a single style write observed by an Element.
type Write struct {
	Property string
	Value    string
}

// Journal records writes across several elements, in the order they
// happened.
type Journal struct {
	Entries []string
}

// Element records every style write made to it.
type Element struct {
	Name        string
	Transform   string
	Perspective string
	Writes      []Write

	// Journal, when set, also sees every write as "<Name>.<property>".
	Journal *Journal
}

var _ dom.Element = (*Element)(nil)

func NewElement(name string) *Element {
	return &Element{Name: name}
}

func (e *Element) SetTransform(value string) {
	e.Transform = value
	e.record("transform", value)
}

func (e *Element) SetPerspective(value string) {
	e.Perspective = value
	e.record("perspective", value)
}

func (e *Element) record(property, value string) {
	e.Writes = append(e.Writes, Write{Property: property, Value: value})
	if e.Journal != nil {
		e.Journal.Entries = append(e.Journal.Entries, e.Name+"."+property)
	}
}

// WritesTo counts the writes made to the named property.
func (e *Element) WritesTo(property string) int {
	n := 0
	for _, w := range e.Writes {
		if w.Property == property {
			n++
		}
	}
	return n
}

func (e *Element) Reset() {
	e.Transform = ""
	e.Perspective = ""
	e.Writes = nil
}

func (e *Element) String() string {
	return fmt.Sprintf("%s{transform: %q, perspective: %q}", e.Name, e.Transform, e.Perspective)
}
