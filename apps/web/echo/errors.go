package echoweb

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/services/api"
	"github.com/Perlera89/campus/store"
)

var errSessionExpired = echo.NewHTTPError(http.StatusUnauthorized, "la sesión ha expirado")

func newAppHTTPErrorHandler(logger core.Logger, sessions *store.SessionStore, shutdown func()) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if core.IsShutdown(err) {
			logger.Error("unrecoverable error, shutting down", err)
			shutdown()
			return
		}

		var code int
		var message interface{}

		switch err := err.(type) {
		case *echo.HTTPError:
			if err.Internal != nil {
				if herr, ok := err.Internal.(*echo.HTTPError); ok {
					err = herr
				}
			}
			code = err.Code
			message = err.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string)
			for _, vErr := range err {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if err.Fields != nil {
				message = err.FieldErrors()
			} else {
				message = err.Error()
			}
			code = http.StatusBadRequest
		case *apisvc.Error:
			// business rejection from the remote API: relay status and message
			code = err.Status
			message = err.Message
			if code == http.StatusUnauthorized && sessions != nil {
				_ = sessions.Clear(c.Request().Context())
			}
		default:
			logger.Error("unexpected error", err)
			code = http.StatusInternalServerError
			message = http.StatusText(http.StatusInternalServerError)
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead { // Issue #608
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, message)
			}
			if err != nil {
				c.Echo().Logger.Error(err)
			}
		}
	}
}
