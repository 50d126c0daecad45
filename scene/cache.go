package scene

import (
	"github.com/MobRulesGames/css3d/dom"
)

// cachedElement drops writes that would not change the element's style.
// Style writes are the expensive part of a frame; most elements hold still.
type cachedElement struct {
	dom.Element
	transform   string
	perspective string
	written     bool

	// Last frame the element was part of.
	frame uint64
}

var _ dom.Element = (*cachedElement)(nil)

func (c *cachedElement) SetTransform(value string) {
	if c.written && c.transform == value {
		return
	}
	c.transform = value
	c.written = true
	c.Element.SetTransform(value)
}

func (c *cachedElement) SetPerspective(value string) {
	if c.perspective == value {
		return
	}
	c.perspective = value
	c.Element.SetPerspective(value)
}
