package logging

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	Logger  zerolog.Logger
	logFile *os.File
)

// Init initializes the logging system with zerolog. Logs go to a file so a
// tool bound to compositor keybindings never pollutes its own stdout.
// Every invocation is tagged with a fresh id so the two IPC round trips of
// one run can be correlated in the log.
func Init() error {
	logDir := filepath.Join(os.Getenv("HOME"), ".local", "state", "swaynav")
	os.MkdirAll(logDir, 0755)

	logPath := filepath.Join(logDir, "swaynav.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.MessageFieldName = "msg"

	Logger = zerolog.New(logFile).With().
		Timestamp().
		Str("invocation", uuid.New().String()).
		Logger()

	return nil
}

// SetLevel applies a config-file log level name
func SetLevel(level string) {
	if parsed, err := zerolog.ParseLevel(level); err == nil && level != "" {
		zerolog.SetGlobalLevel(parsed)
	}
}

// SetDebug lowers the global level to debug
func SetDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
	}
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
