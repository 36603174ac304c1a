package logger

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// StdLogger is a lightweight implementation backed by Go's log package.
// Output is suppressed entirely unless verbose mode is on, keeping the
// interactive session clean.
type StdLogger struct {
	verbose bool
}

// NewStd creates a StdLogger.
func NewStd(verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.emit("DEBUG", msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.emit("INFO", msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.emit("WARN", msg, fields)
}

// Error adds the error under the "error" key. The caller's fields map is
// left untouched.
func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	if err != nil {
		merged := make(map[string]interface{}, len(fields)+1)
		for k, v := range fields {
			merged[k] = v
		}
		merged["error"] = err.Error()
		fields = merged
	}
	l.emit("ERROR", msg, fields)
}

func (l *StdLogger) emit(level, msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	log.Printf("[%s] %s%s", level, msg, renderFields(fields))
}

// renderFields formats fields as sorted key=value pairs for stable output.
func renderFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}
