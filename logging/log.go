// Package logging is the leveled logger used by the arena package.
//
// Allocation hot paths never log. Lifecycle events (arena creation and
// destruction, pool bindings, backing failures) are reported through
// DefaultLogger, which applications may replace with SetLogger.
package logging

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

const (
	// LevelAll enables all logs.
	LevelAll = iota
	// LevelDebug logs arena lifecycle events; usually disabled in production.
	LevelDebug
	// LevelInfo is the default logging priority.
	LevelInfo
	// LevelWarn .
	LevelWarn
	// LevelError .
	LevelError
	// LevelNone disables all logs.
	LevelNone
)

// Logger defines log interface.
type Logger interface {
	SetLevel(lvl int)
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger is used by every arena, safe arena and pool.
var DefaultLogger Logger = New(os.Stderr, LevelInfo)

// SetLogger sets default logger.
func SetLogger(l Logger) {
	DefaultLogger = l
}

// SetLevel sets default logger's priority. Invalid levels are ignored.
func SetLevel(lvl int) {
	if DefaultLogger != nil {
		DefaultLogger.SetLevel(lvl)
	}
}

func validLevel(lvl int) bool {
	return lvl >= LevelAll && lvl <= LevelNone
}

// New returns a Logger writing prefixed lines to w.
func New(w io.Writer, lvl int) Logger {
	l := &logger{out: log.New(w, "arena ", log.LstdFlags|log.Lmicroseconds)}
	if !validLevel(lvl) {
		lvl = LevelInfo
	}
	l.level.Store(int32(lvl))
	return l
}

// logger implements Logger on top of the standard log package.
type logger struct {
	level atomic.Int32
	out   *log.Logger
}

func (l *logger) SetLevel(lvl int) {
	if !validLevel(lvl) {
		l.out.Printf("[WRN] invalid log level: %v", lvl)
		return
	}
	l.level.Store(int32(lvl))
}

func (l *logger) enabled(lvl int) bool {
	return lvl >= int(l.level.Load())
}

func (l *logger) Debug(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.out.Printf("[DBG] "+format, v...)
	}
}

func (l *logger) Info(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.out.Printf("[INF] "+format, v...)
	}
}

func (l *logger) Warn(format string, v ...interface{}) {
	if l.enabled(LevelWarn) {
		l.out.Printf("[WRN] "+format, v...)
	}
}

func (l *logger) Error(format string, v ...interface{}) {
	if l.enabled(LevelError) {
		l.out.Printf("[ERR] "+format, v...)
	}
}

// Debug uses DefaultLogger to log a message at LevelDebug.
func Debug(format string, v ...interface{}) {
	if DefaultLogger != nil {
		DefaultLogger.Debug(format, v...)
	}
}

// Info uses DefaultLogger to log a message at LevelInfo.
func Info(format string, v ...interface{}) {
	if DefaultLogger != nil {
		DefaultLogger.Info(format, v...)
	}
}

// Warn uses DefaultLogger to log a message at LevelWarn.
func Warn(format string, v ...interface{}) {
	if DefaultLogger != nil {
		DefaultLogger.Warn(format, v...)
	}
}

// Error uses DefaultLogger to log a message at LevelError.
func Error(format string, v ...interface{}) {
	if DefaultLogger != nil {
		DefaultLogger.Error(format, v...)
	}
}
