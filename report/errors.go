package report

import (
	"fmt"
	"io"
	"net/http"

	apperrors "weather-report/errors"
)

const (
	cityLengthHint = "City names must be at least 3 characters long."
	apiKeyHint     = "Check your API_KEY in the .env file"
	apiKeySignup   = "or apply for an API_KEY at https://weatherapi.com and add it to your .env file."
)

// ErrorReporter turns a failed run into a user-facing diagnostic
type ErrorReporter struct {
	out   io.Writer
	style Styler
}

func NewErrorReporter(out io.Writer, style Styler) *ErrorReporter {
	return &ErrorReporter{out: out, style: style}
}

// Report writes the diagnostic for err. Provider errors get a troubleshooting
// hint for 400 and 401; everything else gets a generic message.
func (r *ErrorReporter) Report(err error) {
	if err == nil {
		return
	}

	appErr, ok := apperrors.As(err)
	if !ok {
		fmt.Fprintf(r.out, "%s %v\n", r.style.Red("Error:"), err)
		return
	}

	switch appErr.Type {
	case apperrors.APIError:
		fmt.Fprintln(r.out, r.style.Red(fmt.Sprintf("%s: %s", appErr.Message, appErr.StatusText)))
		switch appErr.HTTPStatus {
		case http.StatusBadRequest:
			fmt.Fprintln(r.out, r.style.Yellow(cityLengthHint))
		case http.StatusUnauthorized:
			fmt.Fprintln(r.out, r.style.Red(apiKeyHint))
			fmt.Fprintf(r.out, "%s\n\n", apiKeySignup)
		}
	case apperrors.MismatchError, apperrors.UsageError:
		fmt.Fprintf(r.out, "%s %s\n", r.style.Red("Error:"), appErr.Message)
	default:
		if appErr.Detail != "" {
			fmt.Fprintf(r.out, "Error: %s: %s\n", appErr.Message, appErr.Detail)
			return
		}
		fmt.Fprintf(r.out, "Error: %s\n", appErr.Message)
	}
}
