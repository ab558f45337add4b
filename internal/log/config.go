package log

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Format represents the output format for logs
type Format int

const (
	// FormatJSON outputs logs in JSON format
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "json"
	}
}

// ParseFormat parses a string into a Format
func ParseFormat(s string) Format {
	switch s {
	case "json", "JSON":
		return FormatJSON
	case "text", "TEXT", "console":
		return FormatText
	default:
		return FormatJSON
	}
}

// Output represents where logs should be written
type Output struct {
	writer io.Writer
}

// Writer returns the underlying io.Writer
func (o Output) Writer() io.Writer {
	return o.writer
}

// NewOutput creates an Output from an io.Writer
func NewOutput(w io.Writer) Output {
	return Output{writer: w}
}

// OutputStderr creates an Output that writes to stderr
func OutputStderr() Output {
	return Output{writer: os.Stderr}
}

// OutputFile creates an Output that writes to a rotated log file.
// The console owns the terminal, so file output is the normal mode:
// writing log lines to stdout would corrupt the rendered UI.
func OutputFile(path string) Output {
	return Output{writer: &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}}
}

// Config holds configuration for the logger
type Config struct {
	// Level is the minimum log level to output
	Level Level

	// Format is the output format (JSON or Text)
	Format Format

	// Output is where logs should be written
	Output Output

	// AddSource includes source file and line number in logs
	AddSource bool
}

// DefaultConfig returns a sensible default configuration
// Logs at INFO level in JSON format to stderr
func DefaultConfig() Config {
	return Config{
		Level:     LevelInfo,
		Format:    FormatJSON,
		Output:    OutputStderr(),
		AddSource: false,
	}
}

// DevelopmentConfig returns a configuration suitable for development
// Logs at DEBUG level in text format to stderr with source location
func DevelopmentConfig() Config {
	return Config{
		Level:     LevelDebug,
		Format:    FormatText,
		Output:    OutputStderr(),
		AddSource: true,
	}
}

// FileConfig returns a configuration that writes JSON logs to a rotated file
func FileConfig(path string, level Level) Config {
	return Config{
		Level:     level,
		Format:    FormatJSON,
		Output:    OutputFile(path),
		AddSource: false,
	}
}
