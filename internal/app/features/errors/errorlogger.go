// internal/app/features/errors/errorlogger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures and renders a friendly error page,
// keeping handlers to a one-line call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the internal error with its context message and shows
// the user-facing message on the error page. The internal detail never
// reaches the response.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	w.WriteHeader(http.StatusInternalServerError)
	RenderForbidden(w, r, userMsg, backURL)
}
