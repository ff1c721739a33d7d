// Package logger builds the process logger.  Output is plain text on
// standard output; the same logger is handed to Echo so framework messages
// share the sink.
package logger

import (
	"os"
	"strings"

	"github.com/labstack/gommon/log"
)

// Header is the line prefix.  gommon switches to JSON when the header ends
// in '}', so this must stay plain text.
const Header = "${time_rfc3339} ${level}"

// New returns a logger named "okserver" at the given level.
func New(level string) *log.Logger {
	l := log.New("okserver")
	l.SetOutput(os.Stdout)
	l.SetHeader(Header)
	l.SetLevel(ParseLevel(level))
	return l
}

// ParseLevel maps a level name to a gommon level.  Unknown names map to INFO.
func ParseLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off", "none":
		return log.OFF
	default:
		return log.INFO
	}
}
