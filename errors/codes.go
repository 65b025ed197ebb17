package errors

// ErrorCode identifies an error condition in API responses and logs.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002

	// Editing
	ErrorCode_INVALID_INPUT ErrorCode = 2000

	// Export
	ErrorCode_INVALID_RECORD ErrorCode = 3000
	ErrorCode_EXPORT_FAILED  ErrorCode = 3001

	// Integrations
	ErrorCode_SYNC_NOT_CONFIGURED ErrorCode = 4000
	ErrorCode_TRANSPORT_FAILURE   ErrorCode = 4001
	ErrorCode_STORAGE_FAILED      ErrorCode = 4002
	ErrorCode_CACHE_FAILED        ErrorCode = 4003

	// AI
	ErrorCode_AI_SUMMARY_FAILED    ErrorCode = 5000
	ErrorCode_AI_EXTRACTION_FAILED ErrorCode = 5001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:              "OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_INVALID_INPUT:        "INVALID_INPUT",
	ErrorCode_INVALID_RECORD:       "INVALID_RECORD",
	ErrorCode_EXPORT_FAILED:        "EXPORT_FAILED",
	ErrorCode_SYNC_NOT_CONFIGURED:  "SYNC_NOT_CONFIGURED",
	ErrorCode_TRANSPORT_FAILURE:    "TRANSPORT_FAILURE",
	ErrorCode_STORAGE_FAILED:       "STORAGE_FAILED",
	ErrorCode_CACHE_FAILED:         "CACHE_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:    "AI_SUMMARY_FAILED",
	ErrorCode_AI_EXTRACTION_FAILED: "AI_EXTRACTION_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
