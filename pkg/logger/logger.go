package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	InfoLogger  = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarnLogger  = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	DebugLogger = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	debug atomic.Bool
)

// SetDebug turns Debug output on or off.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// SetOutput redirects every level to w.
func SetOutput(w io.Writer) {
	InfoLogger.SetOutput(w)
	WarnLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
	DebugLogger.SetOutput(w)
}

func Info(format string, v ...any) {
	InfoLogger.Output(2, sprintf(format, v...))
}

func Warn(format string, v ...any) {
	WarnLogger.Output(2, sprintf(format, v...))
}

func Error(format string, v ...any) {
	ErrorLogger.Output(2, sprintf(format, v...))
}

func Debug(format string, v ...any) {
	if debug.Load() {
		DebugLogger.Output(2, sprintf(format, v...))
	}
}

func sprintf(format string, v ...any) string {
	if len(v) == 0 {
		return format
	}
	return fmt.Sprintf(format, v...)
}
