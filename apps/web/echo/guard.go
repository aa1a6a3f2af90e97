package echoweb

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Perlera89/campus/core/session"
)

const roleCookie = "role"

// elevatedPrefixes are the navigation prefixes reserved for admins and
// managers. Anyone else who hits one is bounced to the not-found page
// rather than shown a permission error.
var elevatedPrefixes = []string{
	"/courses/manage",
	"/users",
	"/reports",
	"/settings",
}

func RoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			path := ctx.Request().URL.Path
			if !isElevatedPath(path) {
				return next(ctx)
			}
			if !session.IsElevated(requestRole(ctx)) {
				return ctx.Redirect(http.StatusFound, "/404")
			}
			return next(ctx)
		}
	}
}

func isElevatedPath(path string) bool {
	for _, prefix := range elevatedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

func requestRole(ctx echo.Context) string {
	cookie, err := ctx.Cookie(roleCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
