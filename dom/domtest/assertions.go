package domtest

import (
	"fmt"
)

func asElement(actual interface{}) *Element {
	e, ok := actual.(*Element)
	if !ok {
		panic(fmt.Errorf("'actual' had wrong type: want *domtest.Element, got %T", actual))
	}
	return e
}

func asString(expected []interface{}) string {
	if len(expected) != 1 {
		panic(fmt.Errorf("need exactly one expected value, got %d", len(expected)))
	}
	s, ok := expected[0].(string)
	if !ok {
		panic(fmt.Errorf("'expected[0]' had wrong type: want string, got %T", expected[0]))
	}
	return s
}

// ShouldHaveTransform is a goconvey assertion on an Element's current
// transform text.
func ShouldHaveTransform(actual interface{}, expected ...interface{}) string {
	e := asElement(actual)
	want := asString(expected)
	if e.Transform != want {
		return fmt.Sprintf("%s: transform mismatch\nwant %q\nhave %q", e.Name, want, e.Transform)
	}
	return ""
}

// ShouldHavePerspective is a goconvey assertion on an Element's current
// perspective text.
func ShouldHavePerspective(actual interface{}, expected ...interface{}) string {
	e := asElement(actual)
	want := asString(expected)
	if e.Perspective != want {
		return fmt.Sprintf("%s: perspective mismatch\nwant %q\nhave %q", e.Name, want, e.Perspective)
	}
	return ""
}

// ShouldHaveWrittenOnce passes when exactly one style write reached the
// element.
func ShouldHaveWrittenOnce(actual interface{}, expected ...interface{}) string {
	e := asElement(actual)
	if len(expected) != 0 {
		panic(fmt.Errorf("ShouldHaveWrittenOnce takes no expected values"))
	}
	if len(e.Writes) != 1 {
		return fmt.Sprintf("%s: want exactly one write, have %d: %v", e.Name, len(e.Writes), e.Writes)
	}
	return ""
}
