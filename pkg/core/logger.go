package core

import "log"

// DefaultLogger implements Logger on top of the standard log package
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a logger writing through log's standard logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// DiscardLogger returns a Logger that drops everything
func DiscardLogger() Logger {
	return discardLogger{}
}
