package errors

const (
	// System errors
	ErrInternal            ErrorCode = "internal_error"
	ErrInvalidArgument     ErrorCode = "invalid_argument"
	ErrUnsupportedPlatform ErrorCode = "unsupported_platform"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Source errors. Samplers recover these locally.
	ErrSourceAbsent     ErrorCode = "source_absent"
	ErrSourceUnreadable ErrorCode = "source_unreadable"

	// Collection errors
	ErrCollectFailed ErrorCode = "collect_failed"
	ErrServerStart   ErrorCode = "server_start_failed"
	ErrShutdown      ErrorCode = "shutdown_failed"
)

var errorMessages = map[ErrorCode]string{
	ErrInternal:            "Internal error occurred",
	ErrInvalidArgument:     "Invalid argument provided",
	ErrUnsupportedPlatform: "Unsupported operating system",
	ErrInvalidConfig:       "Invalid configuration",
	ErrReadConfig:          "Failed to read configuration",
	ErrBindFlags:           "Failed to bind flags",
	ErrInvalidInterval:     "Invalid interval value",
	ErrInvalidLogLevel:     "Invalid log level",
	ErrSourceAbsent:        "Source does not exist",
	ErrSourceUnreadable:    "Source could not be read",
	ErrCollectFailed:       "Failed to collect data",
	ErrServerStart:         "Failed to start server",
	ErrShutdown:            "Shutdown failed",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
