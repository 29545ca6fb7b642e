package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging threshold; messages below it are dropped
type Level logging.Level

// Levels understood by SetLevel, from quietest to most verbose
const (
	Error  = Level(logging.ERROR)
	Notice = Level(logging.NOTICE)
	Info   = Level(logging.INFO)
	Debug  = Level(logging.DEBUG)
)

func (l Level) String() string {
	return logging.Level(l).String()
}

// Colors are left out because the sink is often a file or a pipe next to the
// image stream.
var format = logging.MustStringFormatter(
	`[%{time:15:04:05.000}] [%{module}] [%{level}] %{message}`,
)

var backend logging.LeveledBackend

// Logger is the subset of go-logging's Logger the renderer and CLI use
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a named module
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects every logger to sink, keeping the current level
func SetSink(sink io.Writer) {
	level := Notice
	if backend != nil {
		level = CurrentLevel()
	}

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	SetLevel(level)
	logging.SetBackend(backend)
}

// SetLevel sets the threshold shared by all modules
func SetLevel(level Level) {
	backend.SetLevel(logging.Level(level), "")
}

// CurrentLevel reports the shared threshold
func CurrentLevel() Level {
	return Level(backend.GetLevel(""))
}

func init() {
	// stdout may carry the PPM stream
	SetSink(os.Stderr)
}
