// Package logging provides the leveled loggers used by the otp-agent. The
// command-line tools write to stderr directly and never initialize file
// logging.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	WarningLogger *log.Logger
	DebugLogger   *log.Logger
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
)

type LogConfig struct {
	LogDir     string
	MaxSize    int64 // Maximum size of log file in bytes
	MaxBackups int   // Maximum number of old log files to retain
	LogLevel   LogLevel
}

func init() {
	// Until InitLogging runs, everything goes to stderr.
	setOutput(os.Stderr)
}

func setOutput(w *os.File) {
	flags := log.Ldate | log.Ltime | log.LUTC

	DebugLogger = log.New(w, "DEBUG: ", flags)
	InfoLogger = log.New(w, "INFO: ", flags)
	WarningLogger = log.New(w, "WARNING: ", flags)
	ErrorLogger = log.New(w, "ERROR: ", flags)
}

// InitLogging redirects the loggers to a dated file under config.LogDir,
// rotating an oversized current file aside first.
func InitLogging(config *LogConfig) error {
	if config == nil {
		config = &LogConfig{
			LogDir:     "logs",
			MaxSize:    10 * 1024 * 1024, // 10MB
			MaxBackups: 5,
			LogLevel:   INFO,
		}
	}

	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile := filepath.Join(config.LogDir, fmt.Sprintf("otp-agent_%s.log", time.Now().Format("2006-01-02")))

	if info, err := os.Stat(logFile); err == nil && info.Size() > config.MaxSize {
		rotateLog(config, logFile)
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	setOutput(file)
	return nil
}

func rotateLog(config *LogConfig, logFile string) {
	for i := config.MaxBackups - 1; i > 0; i-- {
		oldFile := fmt.Sprintf("%s.%d", logFile, i)
		newFile := fmt.Sprintf("%s.%d", logFile, i+1)
		os.Rename(oldFile, newFile)
	}
	os.Rename(logFile, logFile+".1")
}
