package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"status-generic/pkg/status"
)

var log *logrus.Logger

func init() {
	log = logrus.New()

	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableQuote:    true,
		PadLevelText:    true,
	})
}

// caller returns "file:line" of the function that called the logging helper.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown:0"
	}

	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func prefixed(where, format string, args []any) (string, []any) {
	return "%s " + format, append([]any{where}, args...)
}

func Debug(format string, args ...any) {
	f, a := prefixed(caller(), format, args)
	log.Debugf(f, a...)
}

func Info(format string, args ...any) {
	f, a := prefixed(caller(), format, args)
	log.Infof(f, a...)
}

func Warn(format string, args ...any) {
	f, a := prefixed(caller(), format, args)
	log.Warnf(f, a...)
}

func Error(err error, format string, args ...any) {
	f, a := prefixed(caller(), format, args)
	entry := log.WithFields(logrus.Fields{})
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	entry.Errorf(f, a...)
}

// Fatal logs and exits the process.
func Fatal(err error, format string, args ...any) {
	f, a := prefixed(caller(), format, args)
	entry := log.WithFields(logrus.Fields{})
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	entry.Fatalf(f, a...)
}

// Status logs an invalid status at warn level with its errors as fields,
// followed by the debug data of each error at debug level. A valid status is
// logged at debug level.
func Status(st status.Status, format string, args ...any) {
	f, a := prefixed(caller(), format, args)

	if st.IsValid() {
		log.WithField("status_message", st.Message()).Debugf(f, a...)
		return
	}

	entries := st.Errors()
	rendered := make([]string, len(entries))
	for i, e := range entries {
		rendered[i] = e.String()
	}

	log.WithFields(logrus.Fields{
		"status_message": st.Message(),
		"errors":         rendered,
	}).Warnf(f, a...)

	for _, e := range entries {
		if data := e.DebugData(); data != "" {
			log.WithField("error", e.String()).Debugf("debug data:\n%s", data)
		}
	}
}

// WithField adds a field to the logger
func WithField(key string, value any) *logrus.Entry {
	return log.WithField(key, value)
}

// WithFields adds multiple fields to the logger
func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// SetLevel sets the log level by name ("debug", "info", ...).
func SetLevel(levelStr string) error {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	log.SetLevel(level)

	return nil
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// GetLogger returns the underlying logrus logger
func GetLogger() *logrus.Logger {
	return log
}
