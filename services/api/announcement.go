package apisvc

import (
	"context"
	"strconv"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/core/announcement"
)

// Announcements lists the announcements of a course page by page.
func (c *Client) Announcements(ctx context.Context, token, courseID string, p core.ListParams) ([]announcement.Announcement, core.Pagination, error) {
	p.Clean()
	resp, err := c.request(ctx, token).
		SetQueryParam("page", strconv.Itoa(p.Page)).
		SetQueryParam("limit", strconv.Itoa(p.Limit)).
		Get("/announcement/all/" + courseID)
	if err := checkResponse(resp, err); err != nil {
		return nil, core.Pagination{}, err
	}

	out := struct {
		Announcements []announcement.Announcement `json:"announcements"`
		Pagination    core.Pagination             `json:"pagination"`
	}{Announcements: []announcement.Announcement{}}
	decodeList(resp, &out)
	return out.Announcements, out.Pagination, nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, token string, na announcement.NewAnnouncement) (announcement.Announcement, error) {
	resp, err := c.request(ctx, token).SetBody(na).Post("/announcement/add")
	if err := checkResponse(resp, err); err != nil {
		return announcement.Announcement{}, err
	}

	var out struct {
		Announcement announcement.Announcement `json:"announcement"`
	}
	if err := decode(resp, &out); err != nil {
		return announcement.Announcement{}, err
	}
	return out.Announcement, nil
}

func (c *Client) DeleteAnnouncement(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/announcement/delete/" + id)
	return checkResponse(resp, err)
}
