package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Perlera89/campus/services/api"
	"github.com/Perlera89/campus/store"
)

type authApi struct {
	client   *apisvc.Client
	sessions *store.SessionStore
}

func registerAuthRoutes(app *echo.Echo, client *apisvc.Client, sessions *store.SessionStore) {
	api := authApi{client: client, sessions: sessions}

	g := app.Group("/auth")
	g.POST("/login", api.login)
	g.POST("/register", api.register)
	g.POST("/verify-email", api.verifyEmail)
	g.POST("/logout", api.logout)
	g.GET("/session", api.currentSession)
}

func (api *authApi) login(ctx echo.Context) error {
	data := new(apisvc.Credentials)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sess, err := api.client.SignIn(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	if err := api.sessions.SetSession(ctx.Request().Context(), sess); err != nil {
		return err
	}

	setRoleCookie(ctx, sess.Role)
	return ctx.JSON(http.StatusOK, sess)
}

func (api *authApi) register(ctx echo.Context) error {
	data := new(apisvc.NewAccount)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.client.SignUp(ctx.Request().Context(), *data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Cuenta creada, verifica tu correo"})
}

type verifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (api *authApi) verifyEmail(ctx echo.Context) error {
	data := new(verifyEmailRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	// an invalid code comes back as a business rejection carrying the
	// server's own message; the error handler relays it as-is
	if err := api.client.VerifyEmail(ctx.Request().Context(), data.Email, data.Code); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Correo verificado exitosamente"})
}

func (api *authApi) logout(ctx echo.Context) error {
	if err := api.sessions.Clear(ctx.Request().Context()); err != nil {
		return err
	}
	clearRoleCookie(ctx)
	return ctx.NoContent(http.StatusNoContent)
}

func (api *authApi) currentSession(ctx echo.Context) error {
	sess := api.sessions.Session()
	if sess.IsAnonymous() {
		return errSessionExpired
	}
	return ctx.JSON(http.StatusOK, sess)
}

func setRoleCookie(ctx echo.Context, role string) {
	ctx.SetCookie(&http.Cookie{
		Name:     roleCookie,
		Value:    role,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearRoleCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     roleCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
