// internal/logging/logging.go
// Package logging routes the standard logger to the console and an optional
// log file, and formats the tagged lines the rest of chatfreq writes.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init sends log output to the file at logPath and, when echo is set, also to
// stderr. With no file and no echo, log output is discarded so rendered
// results are not interleaved with log lines.
func Init(logPath string, echo bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if echo {
		writers = append(writers, os.Stderr)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close closes the log file, if any, and restores stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Writer returns the writer the standard logger currently uses.
func Writer() io.Writer {
	return log.Writer()
}

// LogEvent formats and logs one line, usually prefixed with a tag like [BATCH].
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogPayload logs payload under tag, JSON-encoded unless it is text.
func LogPayload(tag string, payload any) {
	log.Printf("[%s] %s", strings.ToUpper(strings.TrimSpace(tag)), formatPayload(payload))
}

// FormatRequest renders one served HTTP request as a log line.
func FormatRequest(method, path string, status int, latency time.Duration, clientIP, errMsg string) string {
	parts := []string{"[HTTP]", strings.ToUpper(strings.TrimSpace(method))}
	if path = strings.TrimSpace(path); path == "" {
		path = "/"
	}
	parts = append(parts, path)
	parts = append(parts, fmt.Sprintf("status=%d", status))
	parts = append(parts, fmt.Sprintf("latency=%s", latency.Truncate(time.Microsecond)))
	if clientIP = strings.TrimSpace(clientIP); clientIP == "" {
		clientIP = "unknown"
	}
	parts = append(parts, fmt.Sprintf("client=%s", clientIP))
	if errMsg = strings.TrimSpace(errMsg); errMsg != "" {
		parts = append(parts, fmt.Sprintf("error=%q", errMsg))
	}
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
