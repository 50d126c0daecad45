//go:build js && wasm

// Package jsdom binds dom.Element to live browser elements through
// syscall/js.
package jsdom

import (
	"fmt"
	"syscall/js"

	"github.com/MobRulesGames/css3d/dom"
)

// Element wraps an HTMLElement.
type Element struct {
	v     js.Value
	style js.Value
}

var _ dom.Element = (*Element)(nil)

// Wrap adopts v. A null or undefined v is kept as is; the first style write
// then faults inside the browser, which is where such a fault belongs.
func Wrap(v js.Value) *Element {
	e := &Element{v: v}
	if v.Truthy() {
		e.style = v.Get("style")
	}
	return e
}

func (e *Element) Value() js.Value { return e.v }

func (e *Element) SetTransform(value string) {
	e.style.Set("transform", value)
}

func (e *Element) SetPerspective(value string) {
	e.style.Set("perspective", value)
}

// SetStyle sets any other style property, by its script name
// (e.g. "transformStyle").
func (e *Element) SetStyle(property, value string) {
	e.style.Set(property, value)
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) SetClass(class string) {
	e.v.Set("className", class)
}

func (e *Element) Append(child *Element) {
	e.v.Call("appendChild", child.v)
}

// ClientSize is the element's inner size in CSS pixels.
func (e *Element) ClientSize() (float64, float64) {
	return e.v.Get("clientWidth").Float(), e.v.Get("clientHeight").Float()
}

// Document wraps the page's document.
type Document struct {
	v js.Value
}

func Global() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) Body() *Element {
	return Wrap(d.v.Get("body"))
}

func (d *Document) ByID(id string) (*Element, error) {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, fmt.Errorf("no element with id %q", id)
	}
	return Wrap(v), nil
}

func (d *Document) Create(tag string) *Element {
	return Wrap(d.v.Call("createElement", tag))
}
