package logging

import (
	"log/slog"

	"github.com/caffeine-storm/glop/glog"
)

// Run 'fn' in a context where log messages at 'lvl' and above are propagated.
func Bracket(lvl slog.Level, fn func()) {
	fixup := SetLoggingLevel(lvl)
	defer fixup()
	fn()
}

// Run 'fn' with every written style traced. Useful while chasing a
// mispositioned element.
func TraceBracket(fn func()) {
	Bracket(glog.LevelTrace, fn)
}
