package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/tandem-cli/tandem/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine
// parsing. All --json output that isn't a purpose-built report uses it.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound  = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid   = "CONFIG_INVALID"
	ErrCodeTmuxMissing     = "TMUX_MISSING"
	ErrCodeTmuxFailed      = "TMUX_FAILED"
	ErrCodeSessionExists   = "SESSION_EXISTS"
	ErrCodeSessionNotFound = "SESSION_NOT_FOUND"
	ErrCodeMonitorFailed   = "MONITOR_FAILED"
	ErrCodeCommandFailed   = "COMMAND_FAILED"
	ErrCodeUnknown         = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: true, Data: data})
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   &JSONError{Code: code, Message: message, Suggestion: suggestion},
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: false, Error: ErrorToJSON(err)})
}

// failJSON reports err on stdout as JSON and exits non-zero without the
// human-readable rendering.
func failJSON(err error) error {
	_ = WriteJSONFromError(os.Stdout, err)
	return errors.NewExitError(1)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if terr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       mapErrorCode(terr.Code, terr.Message),
			Message:    terr.Message,
			Suggestion: terr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable output codes,
// splitting the broad tmux and config codes on the message.
func mapErrorCode(internalCode, message string) string {
	msg := strings.ToLower(message)

	switch internalCode {
	case errors.ErrConfig:
		if strings.Contains(msg, "not found") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrTmux:
		switch {
		case strings.Contains(msg, "not installed"):
			return ErrCodeTmuxMissing
		case strings.Contains(msg, "already exists"):
			return ErrCodeSessionExists
		case strings.Contains(msg, "no session"):
			return ErrCodeSessionNotFound
		}
		return ErrCodeTmuxFailed
	case errors.ErrMonitor:
		return ErrCodeMonitorFailed
	case errors.ErrExec:
		return ErrCodeCommandFailed
	}

	return ErrCodeUnknown
}
