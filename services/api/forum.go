package apisvc

import (
	"context"
	"strconv"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/core/forum"
)

// Posts lists the forum posts of a module page by page.
func (c *Client) Posts(ctx context.Context, token, moduleID string, p core.ListParams) ([]forum.Post, core.Pagination, error) {
	p.Clean()
	resp, err := c.request(ctx, token).
		SetQueryParam("page", strconv.Itoa(p.Page)).
		SetQueryParam("limit", strconv.Itoa(p.Limit)).
		Get("/course/forum/all/" + moduleID)
	if err := checkResponse(resp, err); err != nil {
		return nil, core.Pagination{}, err
	}

	out := struct {
		Posts      []forum.Post    `json:"posts"`
		Pagination core.Pagination `json:"pagination"`
	}{Posts: []forum.Post{}}
	decodeList(resp, &out)
	return out.Posts, out.Pagination, nil
}

func (c *Client) CreatePost(ctx context.Context, token string, np forum.NewPost) (forum.Post, error) {
	resp, err := c.request(ctx, token).SetBody(np).Post("/course/forum/add")
	if err := checkResponse(resp, err); err != nil {
		return forum.Post{}, err
	}

	var out struct {
		Post forum.Post `json:"post"`
	}
	if err := decode(resp, &out); err != nil {
		return forum.Post{}, err
	}
	return out.Post, nil
}

func (c *Client) UpdatePost(ctx context.Context, token, id string, up forum.UpdatePost) error {
	resp, err := c.request(ctx, token).SetBody(up).Put("/course/forum/update/" + id)
	return checkResponse(resp, err)
}

func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/course/forum/delete/" + id)
	return checkResponse(resp, err)
}

func (c *Client) UpdatePostVisibility(ctx context.Context, token, id string, visible bool) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]bool{"isVisible": visible}).
		Patch("/course/forum/update-visibility/" + id)
	return checkResponse(resp, err)
}

// Replies lists the replies of a post.
func (c *Client) Replies(ctx context.Context, token, postID string) ([]forum.Reply, error) {
	resp, err := c.request(ctx, token).Get("/course/forum/reply/all/" + postID)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	out := struct {
		Replies []forum.Reply `json:"replies"`
	}{Replies: []forum.Reply{}}
	decodeList(resp, &out)
	return out.Replies, nil
}

func (c *Client) CreateReply(ctx context.Context, token string, nr forum.NewReply) (forum.Reply, error) {
	resp, err := c.request(ctx, token).SetBody(nr).Post("/course/forum/reply/add")
	if err := checkResponse(resp, err); err != nil {
		return forum.Reply{}, err
	}

	var out struct {
		Reply forum.Reply `json:"reply"`
	}
	if err := decode(resp, &out); err != nil {
		return forum.Reply{}, err
	}
	return out.Reply, nil
}

func (c *Client) DeleteReply(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/course/forum/reply/delete/" + id)
	return checkResponse(resp, err)
}
