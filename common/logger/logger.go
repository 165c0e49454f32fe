package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

// Loggers discard everything until Initialize is called so that packages
// may log safely during early wiring.
var (
	Error = log.New(io.Discard, "ERROR: ", logFlags)
	Warn  = log.New(io.Discard, "WARN:  ", logFlags)
	Info  = log.New(io.Discard, "INFO:  ", logFlags)
	Debug = log.New(io.Discard, "DEBUG: ", logFlags)
	Trace = log.New(io.Discard, "TRACE: ", logFlags)
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())

	if logLevel >= ERROR {
		Error = log.New(os.Stderr, "ERROR: ", logFlags)
	}
	if logLevel >= WARN {
		Warn = log.New(os.Stdout, "WARN:  ", logFlags)
	}
	if logLevel >= INFO {
		Info = log.New(os.Stdout, "INFO:  ", logFlags)
	}
	if logLevel >= DEBUG {
		Debug = log.New(os.Stdout, "DEBUG: ", logFlags)
	}
	if logLevel >= TRACE {
		Trace = log.New(os.Stdout, "TRACE: ", logFlags)
	}
}
