package apisvc

import (
	"context"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/core/session"
)

type Credentials struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Identifier = core.CleanString(c.Identifier, true /* lower */)

	if err := core.Validate.Struct(c); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

type NewAccount struct {
	Names    string `json:"names" validate:"required,min=2,max=60"`
	Surnames string `json:"surnames" validate:"required,min=2,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (na *NewAccount) Validate() error {
	na.Names = core.CleanString(na.Names)
	na.Surnames = core.CleanString(na.Surnames)
	na.Email = core.CleanString(na.Email, true /* lower */)

	if err := core.Validate.Struct(na); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SignIn exchanges credentials for a token pair and builds the client session
// out of the access token's claims.
func (c *Client) SignIn(ctx context.Context, cred Credentials) (session.Session, error) {
	resp, err := c.request(ctx, "").SetBody(cred).Post("/auth/sign-in")
	if err := checkResponse(resp, err); err != nil {
		return session.Session{}, err
	}

	var out struct {
		Tokens Tokens `json:"tokens"`
	}
	if err := decode(resp, &out); err != nil {
		return session.Session{}, err
	}
	return session.FromToken(out.Tokens.AccessToken, out.Tokens.RefreshToken)
}

// SignUp registers a new account. The server replies with a verification
// challenge sent to the account's email.
func (c *Client) SignUp(ctx context.Context, acc NewAccount) error {
	resp, err := c.request(ctx, "").SetBody(acc).Post("/auth/sign-up")
	return checkResponse(resp, err)
}

// VerifyEmail submits the OTP code emailed on registration. An invalid code is
// a business rejection: the server's message is surfaced via *Error.
func (c *Client) VerifyEmail(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	resp, err := c.request(ctx, "").SetBody(body).Post("/auth/verify-email")
	return checkResponse(resp, err)
}

// ValidateToken asks the server whether the persisted access token is still
// accepted, rebuilding the session on success.
func (c *Client) ValidateToken(ctx context.Context, token string) (session.Session, error) {
	resp, err := c.request(ctx, token).Get("/auth/validate-token")
	if err := checkResponse(resp, err); err != nil {
		return session.Session{}, err
	}

	var out struct {
		Tokens Tokens `json:"tokens"`
	}
	if err := decode(resp, &out); err != nil {
		return session.Session{}, err
	}
	if out.Tokens.AccessToken == "" {
		// server kept the presented token
		return session.FromToken(token, "")
	}
	return session.FromToken(out.Tokens.AccessToken, out.Tokens.RefreshToken)
}

// ForgotPassword triggers the reset email for the given address.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	resp, err := c.request(ctx, "").SetBody(map[string]string{"email": email}).Post("/auth/forgot-password")
	return checkResponse(resp, err)
}

// ResetPassword consumes a reset token and sets the new password.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	resp, err := c.request(ctx, "").SetBody(body).Post("/auth/reset-password")
	return checkResponse(resp, err)
}
