package apisvc

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Perlera89/campus/core"
)

// fallback message for business rejections whose body carries no usable message
const fallbackErrorText = "Ha ocurrido un error inesperado"

// Client is the single gateway to the remote REST API. Every domain call is one
// best-effort round trip: no retries, no caching, no timeout beyond transport
// defaults. Cancellation is honored through the request context.
type Client struct {
	rest *resty.Client
}

func NewClient(conf *core.Config) *Client {
	rest := resty.New().
		SetBaseURL(conf.API.BaseURL).
		SetHeader("Accept", "application/json")
	return &Client{rest: rest}
}

// Error is a business-rule rejection returned by the server inside a non-2xx
// JSON body. Message carries the server-provided text when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// request builds a gateway request, attaching the bearer token header when the
// caller supplies one and tagging the call with a request ID.
func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// checkResponse propagates transport errors unchanged and converts non-2xx
// responses into *Error.
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsSuccess() {
		return nil
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := fallbackErrorText
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil {
		switch {
		case body.Message != "":
			msg = body.Message
		case body.Error != "":
			msg = body.Error
		}
	}
	return &Error{Status: resp.StatusCode(), Message: msg}
}
