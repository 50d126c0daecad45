// Package dom is the slice of a document's styling surface that the
// projectors write to.
//
// An Element is owned by whoever handed it over. Nothing in this module
// creates, destroys or holds on to one between calls; the only effect of a
// call is a write of style text.
package dom

// Element is a renderable surface whose presentation style can be set.
type Element interface {
	// SetTransform replaces the element's transform style with value.
	SetTransform(value string)

	// SetPerspective replaces the element's perspective style with value.
	SetPerspective(value string)
}
