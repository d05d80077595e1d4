// Package logutil provides the debug log facility shared by all packages.
// Output is discarded unless a host routes it somewhere with SetOutput or
// SetOutputFile.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	file    *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, including future ones, to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	out = w
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers, including future ones,
// to the named file. An empty name discards output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %v", fname, err)
	}
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	file = f
	out = f
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}

func closeFile() {
	if file != nil {
		file.Close()
		file = nil
	}
}
