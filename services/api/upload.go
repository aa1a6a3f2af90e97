package apisvc

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// errUploadFailed deliberately hides transport details from the upload forms.
var errUploadFailed = errors.New("no se pudo subir la imagen")

// UploadCourseImage pushes a course picture and returns its public URL.
// Unlike the rest of the gateway, upload failures are rewrapped into a generic
// error instead of propagating.
func (c *Client) UploadCourseImage(ctx context.Context, token, filename string, r io.Reader) (string, error) {
	return c.uploadImage(ctx, token, "/upload/course-image", filename, r)
}

// UploadProfileImage pushes a profile picture and returns its public URL.
func (c *Client) UploadProfileImage(ctx context.Context, token, filename string, r io.Reader) (string, error) {
	return c.uploadImage(ctx, token, "/upload/profile-image", filename, r)
}

func (c *Client) uploadImage(ctx context.Context, token, path, filename string, r io.Reader) (string, error) {
	resp, err := c.request(ctx, token).
		SetFileReader("file", filename, r).
		Post(path)
	if err := checkResponse(resp, err); err != nil {
		return "", errUploadFailed
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := decode(resp, &out); err != nil || out.URL == "" {
		return "", errUploadFailed
	}
	return out.URL, nil
}
