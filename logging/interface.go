package logging

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/caffeine-storm/glop/glog"
)

type Logger interface {
	glog.Logger
}

type css3dLogger struct {
	glog.Logger
}

var _ Logger = (*css3dLogger)(nil)

var debugLogger *css3dLogger
var infoLogger *css3dLogger
var warnLogger *css3dLogger
var errorLogger *css3dLogger

func init() {
	debugLogger = &css3dLogger{
		Logger: glog.New(&glog.Opts{
			Level: slog.LevelDebug,
		}),
	}
	infoLogger = &css3dLogger{
		Logger: glog.New(&glog.Opts{
			Level: slog.LevelInfo,
		}),
	}
	warnLogger = &css3dLogger{
		Logger: glog.New(&glog.Opts{
			Level: slog.LevelWarn,
		}),
	}
	errorLogger = &css3dLogger{
		Logger: glog.New(&glog.Opts{
			Level: slog.LevelError,
		}),
	}
}

func DefaultLogger() Logger {
	return InfoLogger()
}

func DebugLogger() Logger {
	return debugLogger
}

func InfoLogger() Logger {
	return infoLogger
}

func WarnLogger() Logger {
	return warnLogger
}

func ErrorLogger() Logger {
	return errorLogger
}

// The package-level helpers all route through the default logger so that
// SetLogLevel and Bracket govern them, and so the 'source' attribute names
// the caller rather than this file.

func Trace(msg string, args ...interface{}) {
	doLog(glog.LevelTrace, msg, args...)
}

func Debug(msg string, args ...interface{}) {
	doLog(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...interface{}) {
	doLog(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...interface{}) {
	doLog(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...interface{}) {
	doLog(slog.LevelError, msg, args...)
}

func doLog(lvl slog.Level, msg string, args ...interface{}) {
	if !infoLogger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, doLog, <helper>]
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	infoLogger.Handler().Handle(context.Background(), r)
}

// Call this to redirect all logging output to the given io.Writer. A cleanup
// function that undoes the redirect is returned.
func Redirect(newOut io.Writer) func() {
	oldDebugLogger := debugLogger
	debugLogger = &css3dLogger{
		Logger: glog.WithRedirect(oldDebugLogger, newOut),
	}

	oldInfoLogger := infoLogger
	infoLogger = &css3dLogger{
		Logger: glog.WithRedirect(oldInfoLogger, newOut),
	}

	oldWarnLogger := warnLogger
	warnLogger = &css3dLogger{
		Logger: glog.WithRedirect(oldWarnLogger, newOut),
	}

	oldErrorLogger := errorLogger
	errorLogger = &css3dLogger{
		Logger: glog.WithRedirect(oldErrorLogger, newOut),
	}
	return func() {
		debugLogger = oldDebugLogger
		infoLogger = oldInfoLogger
		warnLogger = oldWarnLogger
		errorLogger = oldErrorLogger
	}
}

// Tells the 'Default Logger' to changes its verbosity.
func SetLogLevel(lvl slog.Level) {
	infoLogger.Logger = glog.Relevel(infoLogger.Logger, lvl)
}

// Like SetLogLevel but hands back a function that restores the previous
// 'Default Logger'.
func SetLoggingLevel(lvl slog.Level) func() {
	old := infoLogger
	infoLogger = &css3dLogger{
		Logger: glog.Relevel(old.Logger, lvl),
	}
	return func() {
		infoLogger = old
	}
}
