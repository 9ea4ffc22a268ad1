package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/notational-fzf/shorten-path/internal/config"
	"github.com/rs/zerolog"
)

var (
	// Log is the global logger instance. It discards everything until Init.
	Log = zerolog.Nop()
)

// Init initializes the logger. Logs go to a dated file in the logs directory;
// debug mode adds pretty console output on stderr. Stdout is never used, it
// carries the filtered stream.
func Init(debug bool, level string) error {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	if debug {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var writers []io.Writer
	var fileErr error

	if err := config.EnsureLogsDir(); err != nil {
		fileErr = fmt.Errorf("failed to create logs directory: %w", err)
	} else if logFile, err := getLogFile(); err != nil {
		fileErr = fmt.Errorf("failed to create log file: %w", err)
	} else {
		writers = append(writers, logFile)
	}

	if debug {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		writers = append(writers, consoleWriter)
	}

	if len(writers) == 0 {
		Log = zerolog.Nop()
		return fileErr
	}

	Log = zerolog.New(io.MultiWriter(writers...)).With().
		Timestamp().
		Str("app", "shorten-path").
		Logger()

	if fileErr != nil {
		Log.Warn().Err(fileErr).Msg("Logging to console only")
	}
	Log.Debug().Msg("Logger initialized")
	return nil
}

// getLogFile returns the log file for the current date
func getLogFile() (*os.File, error) {
	logsDir := config.GetLogsDir()

	logFileName := fmt.Sprintf("shorten-path-%s.log", time.Now().Format("2006-01-02"))
	logFilePath := filepath.Join(logsDir, logFileName)

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	// Keep the last 7 days
	cleanOldLogs(logsDir, 7)

	return logFile, nil
}

// cleanOldLogs removes log files older than the specified number of days
func cleanOldLogs(logsDir string, keepDays int) {
	files, err := os.ReadDir(logsDir)
	if err != nil {
		return
	}

	cutoffTime := time.Now().AddDate(0, 0, -keepDays)

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".log" {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoffTime) {
			os.Remove(filepath.Join(logsDir, file.Name()))
		}
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Debug().Msg(format)
	} else {
		Log.Debug().Msgf(format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Info().Msg(format)
	} else {
		Log.Info().Msgf(format, args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Warn().Msg(format)
	} else {
		Log.Warn().Msgf(format, args...)
	}
}

// Error logs an error message
func Error(msg string, err error) {
	Log.Error().Err(err).Msg(msg)
}
