package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	levelNames = map[LogLevel]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}

	levelColors = map[LogLevel]string{
		DEBUG: "\033[36m", // Cyan
		INFO:  "\033[32m", // Green
		WARN:  "\033[33m", // Yellow
		ERROR: "\033[31m", // Red
		FATAL: "\033[35m", // Magenta
	}

	resetColor = "\033[0m"
)

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a config value (debug, info, warn, error, fatal) to a LogLevel.
func ParseLevel(value string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	case "fatal":
		return FATAL, nil
	}
	return INFO, fmt.Errorf("unknown log level: %q", value)
}

// Logger writes levelled lines to the console and, optionally, a daily file.
type Logger struct {
	level      LogLevel
	writers    []io.Writer
	mu         sync.Mutex
	useColor   bool
	prefix     string
	showCaller bool
}

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Config describes how the logger should be initialised.
type Config struct {
	Level      LogLevel
	LogDir     string
	MaxSize    int64 // bytes
	MaxAge     int   // days
	UseColor   bool
	ShowCaller bool
	Prefix     string
	// Output replaces stdout as the console writer.
	Output io.Writer
}

// Initialize installs the global logger. Calling it again replaces the previous one.
func Initialize(config Config) error {
	console := config.Output
	if console == nil {
		console = os.Stdout
	}

	l := &Logger{
		level:      config.Level,
		writers:    []io.Writer{console},
		useColor:   config.UseColor,
		prefix:     config.Prefix,
		showCaller: config.ShowCaller,
	}

	if config.LogDir != "" {
		if err := os.MkdirAll(config.LogDir, 0755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}

		logFile, err := createLogFile(config.LogDir)
		if err != nil {
			return err
		}
		l.writers = append(l.writers, logFile)

		go rotateLogFiles(config.LogDir, config.MaxSize, config.MaxAge)
	}

	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
	return nil
}

func current() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// createLogFile creates (or opens) the log file for the current day.
func createLogFile(logDir string) (*os.File, error) {
	timestamp := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logDir, fmt.Sprintf("license-tracker-%s.log", timestamp))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// rotateLogFiles hourly prunes files past maxAge days and renames files past maxSize bytes.
func rotateLogFiles(logDir string, maxSize int64, maxAge int) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		files, _ := filepath.Glob(filepath.Join(logDir, "license-tracker-*.log"))
		for _, file := range files {
			info, err := os.Stat(file)
			if err != nil {
				continue
			}

			if maxAge > 0 && time.Since(info.ModTime()).Hours() > float64(maxAge*24) {
				os.Remove(file)
				continue
			}

			if maxSize > 0 && info.Size() > maxSize {
				newName := strings.Replace(file, ".log", fmt.Sprintf("-%d.log", time.Now().Unix()), 1)
				os.Rename(file, newName)
			}
		}
	}
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)

	caller := ""
	if l.showCaller {
		_, file, line, ok := runtime.Caller(3)
		if ok {
			caller = fmt.Sprintf(" [%s:%d]", filepath.Base(file), line)
		}
	}

	for i, writer := range l.writers {
		var line string
		if i == 0 && l.useColor { // colour only on the console
			line = fmt.Sprintf("%s%s [%s]%s %s%s%s\n",
				timestamp, caller, level, l.prefix, levelColors[level], message, resetColor)
		} else {
			line = fmt.Sprintf("%s%s [%s]%s %s\n",
				timestamp, caller, level, l.prefix, message)
		}
		writer.Write([]byte(line))
	}

	if level == FATAL {
		os.Exit(1)
	}
}

func emit(level LogLevel, format string, args ...interface{}) {
	if l := current(); l != nil {
		l.log(level, format, args...)
		return
	}
	if level == DEBUG {
		return
	}
	if level == FATAL {
		log.Fatalf("[FATAL] "+format, args...)
	}
	log.Printf("["+level.String()+"] "+format, args...)
}

func Debug(format string, args ...interface{}) { emit(DEBUG, format, args...) }

func Info(format string, args ...interface{}) { emit(INFO, format, args...) }

func Warn(format string, args ...interface{}) { emit(WARN, format, args...) }

func Error(format string, args ...interface{}) { emit(ERROR, format, args...) }

func Fatal(format string, args ...interface{}) { emit(FATAL, format, args...) }

// WithFields attaches structured fields to the log entry.
func WithFields(fields map[string]interface{}) *LogEntry {
	return &LogEntry{fields: fields}
}

// LogEntry represents a structured log entry builder.
type LogEntry struct {
	fields map[string]interface{}
}

func (e *LogEntry) Debug(format string, args ...interface{}) { e.Log(DEBUG, format, args...) }

func (e *LogEntry) Info(format string, args ...interface{}) { e.Log(INFO, format, args...) }

func (e *LogEntry) Warn(format string, args ...interface{}) { e.Log(WARN, format, args...) }

func (e *LogEntry) Error(format string, args ...interface{}) { e.Log(ERROR, format, args...) }

// Log emits the entry at an explicit level. Fields are appended in key order.
func (e *LogEntry) Log(level LogLevel, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	if len(e.fields) > 0 {
		keys := make([]string, 0, len(e.fields))
		for k := range e.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.fields[k]))
		}
		message = fmt.Sprintf("%s | %s", message, strings.Join(parts, ", "))
	}

	emit(level, "%s", message)
}

// SetLevel updates the global logging level.
func SetLevel(level LogLevel) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.level = level
		l.mu.Unlock()
	}
}

// GetLevel returns the current global logging level.
func GetLevel() LogLevel {
	if l := current(); l != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.level
	}
	return INFO
}
