package logging

import (
	"io"
	"log"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode atomic.Bool

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		debugMode.Store(false)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	// configure stdlib logger
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}
	debugMode.Store(true)

	// cleanup closes both files
	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// SetupConsole sends logs to stderr. Used by the HTTP server, which does not
// own the terminal.
func SetupConsole() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags)
	debugMode.Store(false)
}

func IsDebugMode() bool { return debugMode.Load() }

func Debug(msg string) {
	if debugMode.Load() {
		log.Output(2, "DEBUG "+msg)
	}
}

func Debugf(format string, args ...any) {
	if debugMode.Load() {
		log.Printf("DEBUG "+format, args...)
	}
}

func Infof(format string, args ...any)  { log.Printf("INFO  "+format, args...) }
func Warnf(format string, args ...any)  { log.Printf("WARN  "+format, args...) }
func Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }
