package client

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CreateAgent(ctx context.Context, in AgentRequest) (*Agent, error) {
	var out Agent
	if err := c.do(ctx, http.MethodPost, "/agents", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAgent(ctx context.Context, id string, in AgentRequest) (*Agent, error) {
	var out Agent
	if err := c.do(ctx, http.MethodPut, "/agents/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAgent(ctx context.Context, id string) (*Agent, error) {
	var out Agent
	if err := c.do(ctx, http.MethodGet, "/agents/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	return list[Agent](ctx, c, "/agents")
}

func (c *Client) ListLanguages(ctx context.Context) ([]Language, error) {
	return list[Language](ctx, c, "/languages")
}

func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	return list[Voice](ctx, c, "/voices")
}

func (c *Client) ListPrompts(ctx context.Context) ([]Prompt, error) {
	return list[Prompt](ctx, c, "/prompts")
}

func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	return list[Model](ctx, c, "/models")
}

func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	return list[Tag](ctx, c, "/tags")
}

func (c *Client) CreateTag(ctx context.Context, in CreateTagRequest) (*Tag, error) {
	var out Tag
	if err := c.do(ctx, http.MethodPost, "/tags", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTag(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tags/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return list[User](ctx, c, "/users")
}

func (c *Client) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
