package apisvc

import (
	"context"

	"github.com/Perlera89/campus/core/content"
)

// AssignmentByContent fetches the assignment sub-record embedded in a content entry.
func (c *Client) AssignmentByContent(ctx context.Context, token, contentID string) (content.Assignment, error) {
	resp, err := c.request(ctx, token).Get("/course/assignment/" + contentID)
	if err := checkResponse(resp, err); err != nil {
		return content.Assignment{}, err
	}

	var out struct {
		Assignment content.Assignment `json:"assignment"`
	}
	if err := decode(resp, &out); err != nil {
		return content.Assignment{}, err
	}
	return out.Assignment, nil
}

func (c *Client) UpdateAssignment(ctx context.Context, token, contentID string, na content.NewAssignment) error {
	resp, err := c.request(ctx, token).SetBody(na).Put("/course/assignment/update/" + contentID)
	return checkResponse(resp, err)
}
