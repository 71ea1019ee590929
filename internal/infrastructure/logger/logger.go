package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

func init() {
	Init(os.Stdout, "info")
}

// Init points every level at out and silences the ones below level.
// Unknown levels behave like "info".
func Init(out io.Writer, level string) {
	Info = log.New(out, "INFO: ", logFlags)
	Error = log.New(out, "ERROR: ", logFlags)
	Debug = log.New(out, "DEBUG: ", logFlags)
	Warn = log.New(out, "WARN: ", logFlags)
	SetLevel(level)
}

func SetLevel(level string) {
	rank := map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}
	min, ok := rank[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		min = 1
	}
	if min > 0 {
		Debug.SetOutput(io.Discard)
	}
	if min > 1 {
		Info.SetOutput(io.Discard)
	}
	if min > 2 {
		Warn.SetOutput(io.Discard)
	}
}
