package logging

import "log/slog"

// Debug logs at debug level when a logger is configured.
func Debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error when a logger is configured.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, slog.Any(FieldError, err))
	}
	logger.Error(msg, args...)
}

// StorageError logs a failed key-value operation tagged with the slot it touched.
func StorageError(logger *slog.Logger, msg, key string, err error, args ...any) {
	Error(logger, msg, err, append(args, slog.String(FieldStorageKey, key))...)
}

// StorageWarn logs unreadable stored data that is being discarded.
func StorageWarn(logger *slog.Logger, msg, key string, err error, args ...any) {
	args = append(args, slog.String(FieldStorageKey, key))
	if err != nil {
		args = append(args, slog.Any(FieldError, err))
	}
	Warn(logger, msg, args...)
}
