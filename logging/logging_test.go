package logging_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/MobRulesGames/css3d/logging"
	"github.com/MobRulesGames/css3d/logging/logtesting"
	. "github.com/smartystreets/goconvey/convey"
)

func parseSourceAttr(line string) (string, bool) {
	idx := strings.LastIndex(line, "source=")
	if idx == -1 {
		return "", false
	}

	sourcePlus := line[idx+(len("source=")):]
	parts := strings.SplitN(sourcePlus, ":", 2)
	if len(parts) != 2 {
		return "", false
	}

	return parts[0], true
}

func ShouldReference(actual interface{}, expected ...interface{}) string {
	buf, ok := actual.(*bytes.Buffer)
	if !ok {
		panic(fmt.Errorf("'actual' had wrong type: want *bytes.Buffer, got %T", actual))
	}

	target, ok := expected[0].(string)
	if !ok {
		panic(fmt.Errorf("'expected[0]' had wrong type: want string, got %T", expected[0]))
	}

	lines := strings.Split(buf.String(), "\n")
	for _, line := range lines {
		sourceAttr, found := parseSourceAttr(line)
		if !found {
			continue
		}
		if strings.Contains(sourceAttr, target) {
			return ""
		}
	}

	return fmt.Sprintf("did not find %q amongst output %q", target, buf.String())
}

func loggingBehaviour() {
	Convey("using logging directly", func() {
		Convey("the source attribute in a log message", func() {
			buf := &bytes.Buffer{}
			reset := logging.Redirect(buf)
			logging.Info("a test message")
			reset()

			Convey("should reference the client code", func() {
				So(buf, ShouldReference, "logging/logging_test.go")
			})
		})

		Convey("should print when running tests", func() {
			lines := logtesting.CollectOutput(func() {
				logging.Error("collected message")
			})
			So(strings.Join(lines, "\n"), ShouldContainSubstring, "collected message")
		})

		Convey("tracing should be supported during tests", func() {
			var lines []string
			logging.TraceBracket(func() {
				lines = logtesting.CollectOutput(func() {
					logging.Trace("a trace message")
				})
			})
			So(strings.Join(lines, "\n"), ShouldContainSubstring, "a trace message")
		})
	})

	Convey("redirection should be resettable", func() {
		buf1 := &bytes.Buffer{}

		oldErrorLogger := logging.ErrorLogger()
		resetRedirect := logging.Redirect(buf1)

		oldErrorLogger.Error("oldErrorLogger message 1")
		logging.Error("logging.Error() message 1")

		resetRedirect()

		oldErrorLogger.Error("oldErrorLogger message 2")
		logging.Error("logging.Error() message 2")

		// Only 'logging.Error() message 1' should have been sent to buf1
		bufferedOut := buf1.String()
		So(bufferedOut, ShouldContainSubstring, "logging.Error() message 1")
		So(bufferedOut, ShouldNotContainSubstring, "message 2")
		So(bufferedOut, ShouldNotContainSubstring, "oldErrorLogger")
	})

	Convey("redirecting to io.Discard swallows everything", func() {
		reset := logging.Redirect(io.Discard)
		defer reset()
		So(func() { logging.Warn("into the void") }, ShouldNotPanic)
	})
}

func TestLogging(t *testing.T) {
	Convey("logging.{Trace,Debug,Info,Warn,Error} behaviour", t, loggingBehaviour)
}
