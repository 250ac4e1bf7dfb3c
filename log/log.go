package log

import (
	// Stdlib
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	// Vendor
	"github.com/fatih/color"
	"github.com/shiena/ansicolor"
)

type (
	Level  uint32
	Logger bool
)

const (
	Trace Level = iota
	Debug
	Verbose
	Info
	Off
)

var v = Info

var (
	mu     sync.Mutex
	output io.Writer = ansicolor.NewAnsiColorWriter(os.Stderr)
)

var (
	okTag       = color.New(color.FgGreen).SprintFunc()
	skipTag     = color.New(color.FgYellow).SprintFunc()
	failTag     = color.New(color.FgRed).Add(color.Bold).SprintFunc()
	rollbackTag = color.New(color.FgMagenta).SprintFunc()
)

func SetV(level Level) {
	atomic.StoreUint32((*uint32)(&v), uint32(level))
}

func V(level Level) Logger {
	if atomic.LoadUint32((*uint32)(&v)) > uint32(level) {
		return Logger(false)
	}
	return Logger(true)
}

// SetOutput redirects all log output to w.
// The writer is used as it is, colour codes included.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// DisableColor makes the log tags plain text.
func DisableColor() {
	color.NoColor = true
}

func (l Logger) logf(format string, v ...interface{}) {
	if l {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(output, format, v...)
	}
}

func (l Logger) logln(v ...interface{}) {
	if l {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(output, v...)
	}
}

func (l Logger) Skip(msg string) {
	l.logf("%v     %v\n", skipTag("[SKIP]"), msg)
}

func (l Logger) Ok(msg string) {
	l.logf("%v       %v\n", okTag("[OK]"), msg)
}

func (l Logger) Fail(msg string) {
	l.logf("%v     %v\n", failTag("[FAIL]"), msg)
}

func (l Logger) Rollback(msg string) {
	l.logf("%v %v\n", rollbackTag("[ROLLBACK]"), msg)
}

func (l Logger) NewLine(msg string) {
	l.logf("           %v\n", msg)
}

func (l Logger) Printf(format string, v ...interface{}) {
	l.logf(format, v...)
}

func (l Logger) Println(v ...interface{}) {
	l.logln(v...)
}

// Fatalln always prints and exits, the verbosity level is ignored.
func (l Logger) Fatalln(v ...interface{}) {
	Logger(true).logln(v...)
	os.Exit(1)
}

func Fatalln(v ...interface{}) {
	V(Info).Fatalln(v...)
}

// Level strings ---------------------------------------------------------------

var levelToStringMap = map[Level]string{
	Trace:   "trace",
	Debug:   "debug",
	Verbose: "verbose",
	Info:    "info",
	Off:     "off",
}

func LevelToString(level Level) (string, bool) {
	v, ok := levelToStringMap[level]
	return v, ok
}

func MustLevelToString(level Level) string {
	v, ok := LevelToString(level)
	if !ok {
		panic(fmt.Errorf("invalid log level: %v", level))
	}
	return v
}

var stringToLevelMap = map[string]Level{
	"trace":   Trace,
	"debug":   Debug,
	"verbose": Verbose,
	"info":    Info,
	"off":     Off,
}

func StringToLevel(levelString string) (Level, bool) {
	v, ok := stringToLevelMap[levelString]
	return v, ok
}

func MustStringToLevel(levelString string) Level {
	level, ok := StringToLevel(levelString)
	if !ok {
		panic(errors.New("invalid log level string: " + levelString))
	}
	return level
}

// LevelStrings returns the level names ordered from the most verbose one.
func LevelStrings() []string {
	levels := make([]string, 0, len(levelToStringMap))
	for level := Trace; level <= Off; level++ {
		levels = append(levels, levelToStringMap[level])
	}
	return levels
}
