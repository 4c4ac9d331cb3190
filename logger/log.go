package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger tags every entry with the protocol it belongs to. Info and Debug
// are only emitted when the debug flag is set; warnings and errors always are.
type Logger struct {
	flag  bool
	proto string
}

func New(flag bool, proto string) *Logger {
	if flag {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return &Logger{
		flag:  flag,
		proto: proto,
	}
}

func (l *Logger) DebugMode() bool {
	return l.flag
}

func (l *Logger) entry() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"protocol": l.proto,
	})
}

// WithField returns an entry carrying the protocol tag and one extra field.
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.entry().WithField(key, value)
}

func (l *Logger) Info(args ...interface{}) {
	if l.flag {
		l.entry().Info(args...)
	}
}

func (l *Logger) Debug(args ...interface{}) {
	if l.flag {
		l.entry().Debug(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	l.entry().Warn(args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.entry().Error(args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.flag {
		l.entry().Infof(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.flag {
		l.entry().Debugf(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry().Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}
