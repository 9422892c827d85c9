package bytekit

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// LogWrapper forwards to a logrus logger when one is installed and drops
// everything otherwise, so the library stays silent by default.
type LogWrapper struct {
	logger *log.Logger
}

var pkgLog = &LogWrapper{}

// SetLogger installs l as the package logger. Pass nil to silence again.
func SetLogger(l *log.Logger) {
	pkgLog.logger = l
}

func (l *LogWrapper) log(level log.Level, format string, args ...interface{}) {
	if l != nil && l.logger != nil {
		l.logger.Logf(level, format, args...)
	}
}

// fatalf reports a caller bug: it logs the violation (if a logger is
// installed) and panics. Precondition violations must never be silently
// absorbed, since they would otherwise corrupt patched artifacts undetected.
func fatalf(format string, args ...interface{}) {
	pkgLog.log(log.ErrorLevel, format, args...)
	panic(fmt.Sprintf(format, args...))
}
