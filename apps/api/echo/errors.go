package echoapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hrms/core"
)

var errUnexpected = "An unexpected error occurred"

// ErrorResponse is the uniform error body; Details carries field errors or,
// in debug mode, the raw fault.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that maps each
// of the known error kinds to its fixed status; anything else is a 500.
func newAppHTTPErrorHandler(conf *core.Config, logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string
		var details interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = fmt.Sprintf("%v", origErr.Message)
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusUnprocessableEntity
			message = "invalid input"
			details = fldErrs
		case *core.ValidationError:
			code = http.StatusUnprocessableEntity
			message = origErr.Error()
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				details = fldErrs
			}
		case *core.NotFoundError:
			code = http.StatusNotFound
			message = origErr.Error()
		case *core.DuplicateError:
			code = http.StatusConflict
			message = origErr.Error()
		default: // DatabaseError or any other error is a server error
			code = http.StatusInternalServerError
			message = errUnexpected
			logger.Error(message, errors.Wrap(err, message))
			if conf.Debug {
				details = err.Error()
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, ErrorResponse{Success: false, Message: message, Details: details})
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
