package apisvc

import (
	"context"
	"strconv"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/core/profile"
)

// Profiles lists user profiles page by page.
func (c *Client) Profiles(ctx context.Context, token string, p core.ListParams) ([]profile.Profile, core.Pagination, error) {
	p.Clean()
	resp, err := c.request(ctx, token).
		SetQueryParam("page", strconv.Itoa(p.Page)).
		SetQueryParam("limit", strconv.Itoa(p.Limit)).
		Get("/profile/all")
	if err := checkResponse(resp, err); err != nil {
		return nil, core.Pagination{}, err
	}

	out := struct {
		Profiles   []profile.Profile `json:"profiles"`
		Pagination core.Pagination   `json:"pagination"`
	}{Profiles: []profile.Profile{}}
	decodeList(resp, &out)
	return out.Profiles, out.Pagination, nil
}

func (c *Client) ProfileByID(ctx context.Context, token, id string) (profile.Profile, error) {
	resp, err := c.request(ctx, token).Get("/profile/" + id)
	if err := checkResponse(resp, err); err != nil {
		return profile.Profile{}, err
	}

	var out struct {
		Profile profile.Profile `json:"profile"`
	}
	if err := decode(resp, &out); err != nil {
		return profile.Profile{}, err
	}
	return out.Profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token, id string, up profile.UpdateProfile) error {
	resp, err := c.request(ctx, token).SetBody(up).Put("/profile/update/" + id)
	return checkResponse(resp, err)
}

// Instructors lists instructor profiles.
func (c *Client) Instructors(ctx context.Context, token string, p core.ListParams) ([]profile.Profile, core.Pagination, error) {
	return c.profilesByRole(ctx, token, "/profile/instructor/all", p)
}

// Students lists student profiles.
func (c *Client) Students(ctx context.Context, token string, p core.ListParams) ([]profile.Profile, core.Pagination, error) {
	return c.profilesByRole(ctx, token, "/profile/student/all", p)
}

func (c *Client) profilesByRole(ctx context.Context, token, path string, p core.ListParams) ([]profile.Profile, core.Pagination, error) {
	p.Clean()
	resp, err := c.request(ctx, token).
		SetQueryParam("page", strconv.Itoa(p.Page)).
		SetQueryParam("limit", strconv.Itoa(p.Limit)).
		Get(path)
	if err := checkResponse(resp, err); err != nil {
		return nil, core.Pagination{}, err
	}

	out := struct {
		Profiles   []profile.Profile `json:"profiles"`
		Pagination core.Pagination   `json:"pagination"`
	}{Profiles: []profile.Profile{}}
	decodeList(resp, &out)
	return out.Profiles, out.Pagination, nil
}
