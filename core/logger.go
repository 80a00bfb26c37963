package core

// Logger is implemented by the logging services (see services/logger).
// Error and Fatal accept extra args (an error, a map of extra data, the
// authenticated user) that implementations may report to an error tracker.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
