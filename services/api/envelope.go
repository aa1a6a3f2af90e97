package apisvc

import (
	"encoding/json"

	"github.com/go-resty/resty/v2"
)

// envelope is the server's wrapping structure: {message, data: {...}}.
// List payloads nest the collection plus a pagination summary under data.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decode unwraps the response envelope into v.
func decode(resp *resty.Response, v interface{}) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return err
	}
	if env.Data == nil {
		return nil
	}
	return json.Unmarshal(env.Data, v)
}

// decodeList unwraps a list envelope, tolerating malformed or missing
// collections by leaving v at its fallback value.
// TODO: surfacing malformed list payloads instead of defaulting to empty needs
// a product decision; today's views rely on the silent fallback.
func decodeList(resp *resty.Response, v interface{}) {
	_ = decode(resp, v)
}
