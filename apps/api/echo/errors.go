package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/nav"
)

const msgUnreachable = "No se pudo conectar con el servidor"

var (
	errHttpNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")
	errInvalidID    = echo.NewHTTPError(http.StatusBadRequest, "invalid id")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch {
		case errors.Is(err, academic.ErrNotConfirmed):
			code, message = http.StatusConflict, err.Error()
		case errors.Is(err, nav.ErrSuperseded):
			code, message = http.StatusConflict, err.Error()
		case errors.Is(err, nav.ErrUnknownPage), errors.Is(err, academic.ErrNotFound):
			code, message = http.StatusNotFound, err.Error()
		default:
			code, message = classify(err, translator)
		}

		if code >= http.StatusInternalServerError {
			logger.Error(http.StatusText(code), errors.WithMessage(err, ctx.Path()), ctx.Request(),
				map[string]interface{}{"request_id": ctx.Response().Header().Get(echo.HeaderXRequestID)})
			if code == http.StatusInternalServerError && core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug && code == http.StatusInternalServerError {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

func classify(err error, translator ut.Translator) (int, interface{}) {
	switch origErr := errors.Cause(err).(type) {
	case *echo.HTTPError:
		if origErr.Internal != nil {
			if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
				origErr = herr
			}
		}
		return origErr.Code, origErr.Message
	case validator.ValidationErrors:
		fldErrs := make(map[string]string, len(origErr))
		for _, vErr := range origErr {
			fldErrs[vErr.Field()] = vErr.Translate(translator)
		}
		return http.StatusBadRequest, fldErrs
	case *core.ValidationError:
		if origErr.Fields != nil {
			fldErrs := make(map[string]string, len(origErr.Fields))
			for _, fErr := range origErr.Fields {
				fldErrs[fErr.Field] = fErr.Error
			}
			return http.StatusBadRequest, fldErrs
		}
		return http.StatusBadRequest, origErr.Error()
	case *core.RequestError:
		return origErr.StatusCode, "Error: " + origErr.Body
	case *core.TransportError:
		return http.StatusBadGateway, msgUnreachable
	default: // any other error is a server error
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
