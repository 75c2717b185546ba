// Package logger is the leveled, structured logger of the weedoc CLI.
// Log lines go to stderr so generated output and progress lines on
// stdout stay machine-readable.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of log messages
type Level int

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

// String returns the string representation of the level
func (l Level) String() string {
	if l < TraceLevel || l > ErrorLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}

var levelColors = map[Level]string{
	TraceLevel: "37", // white
	DebugLevel: "36", // cyan
	InfoLevel:  "32", // green
	WarnLevel:  "33", // yellow
	ErrorLevel: "31", // red
}

// Field is one key/value pair attached to a log line. Fields keep the
// order they were passed in.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	return Field{Key: "error", Value: err.Error()}
}

// Config holds the logger configuration
type Config struct {
	Level     Level
	UseColor  bool
	JSON      bool
	Component string
}

// Logger writes leveled log lines to a single writer.
type Logger struct {
	mu     sync.Mutex
	config Config
	out    io.Writer
}

// New returns a logger writing to w.
func New(config Config, w io.Writer) *Logger {
	return &Logger{config: config, out: w}
}

// The package logger is usable before Initialize runs, so early failures
// (config loading, flag parsing) can already be logged.
var defaultLogger = New(Config{Level: InfoLevel, UseColor: true, Component: "weedoc"}, os.Stderr)

// Initialize reconfigures the package logger from the CLI flags.
func Initialize(config Config) error {
	if config.Level < TraceLevel || config.Level > ErrorLevel {
		return fmt.Errorf("invalid log level %d", config.Level)
	}
	defaultLogger.mu.Lock()
	defaultLogger.config = config
	defaultLogger.mu.Unlock()
	return nil
}

// SetOutput redirects the package logger, mainly for tests.
func SetOutput(w io.Writer) {
	defaultLogger.mu.Lock()
	defaultLogger.out = w
	defaultLogger.mu.Unlock()
}

func (l *Logger) log(level Level, message string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.config.Level {
		return
	}

	var line string
	if l.config.JSON {
		line = l.formatJSON(level, message, fields)
	} else {
		line = l.formatText(level, message, fields)
	}
	fmt.Fprintln(l.out, line)
}

// formatText renders "15:04:05 LEVEL component: message key=value ...".
func (l *Logger) formatText(level Level, message string, fields []Field) string {
	var sb strings.Builder
	sb.WriteString(time.Now().Format("15:04:05"))
	sb.WriteByte(' ')

	name := fmt.Sprintf("%-5s", level.String())
	if l.config.UseColor {
		name = "\033[" + levelColors[level] + "m" + name + "\033[0m"
	}
	sb.WriteString(name)
	sb.WriteByte(' ')

	if l.config.Component != "" {
		sb.WriteString(l.config.Component)
		sb.WriteString(": ")
	}
	sb.WriteString(message)

	for _, f := range fields {
		value := fmt.Sprint(f.Value)
		if strings.ContainsAny(value, " \t\"") {
			value = fmt.Sprintf("%q", value)
		}
		fmt.Fprintf(&sb, " %s=%s", f.Key, value)
	}
	return sb.String()
}

// formatJSON renders one flat JSON object per line. Field keys sit next
// to the standard keys, so they must not be named time, level, msg or
// component.
func (l *Logger) formatJSON(level Level, message string, fields []Field) string {
	entry := make(map[string]interface{}, len(fields)+4)
	entry["time"] = time.Now().Format(time.RFC3339)
	entry["level"] = strings.ToLower(level.String())
	entry["msg"] = message
	if l.config.Component != "" {
		entry["component"] = l.config.Component
	}
	for _, f := range fields {
		entry[f.Key] = f.Value
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"level":"error","msg":"failed to encode log entry: %v"}`, err)
	}
	return string(data)
}

// Trace logs at trace level.
func (l *Logger) Trace(message string, fields ...Field) { l.log(TraceLevel, message, fields) }

// Debug logs at debug level.
func (l *Logger) Debug(message string, fields ...Field) { l.log(DebugLevel, message, fields) }

// Info logs at info level.
func (l *Logger) Info(message string, fields ...Field) { l.log(InfoLevel, message, fields) }

// Warn logs at warn level.
func (l *Logger) Warn(message string, fields ...Field) { l.log(WarnLevel, message, fields) }

// Error logs at error level.
func (l *Logger) Error(message string, fields ...Field) { l.log(ErrorLevel, message, fields) }

// Package-level helpers log through the default logger.

func Trace(message string, fields ...Field) { defaultLogger.log(TraceLevel, message, fields) }
func Debug(message string, fields ...Field) { defaultLogger.log(DebugLevel, message, fields) }
func Info(message string, fields ...Field)  { defaultLogger.log(InfoLevel, message, fields) }
func Warn(message string, fields ...Field)  { defaultLogger.log(WarnLevel, message, fields) }
func Error(message string, fields ...Field) { defaultLogger.log(ErrorLevel, message, fields) }
