package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"deptboard/internal/model"
)

// ListOptions narrows a list call. Zero values fall back to the resource's
// defaults (users/tasks: limit 100 sorted by due date; comments: limit 50
// newest-first).
type ListOptions struct {
	Limit int
	Sort  string
	// Filters are passed through verbatim as extra query parameters
	// (e.g. status=pending).
	Filters url.Values
}

type resource[T any] struct {
	c            *Client
	path         string
	defaultLimit int
	defaultSort  string
}

func (r resource[T]) listQuery(opts ListOptions) url.Values {
	q := url.Values{}
	limit := opts.Limit
	if limit <= 0 {
		limit = r.defaultLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	sort := opts.Sort
	if sort == "" {
		sort = r.defaultSort
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	q.Set("_t", r.c.cacheBust())
	for k, vs := range opts.Filters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return q
}

func (r resource[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	var out ListResponse[T]
	if err := r.c.do(ctx, http.MethodGet, r.path, r.listQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (r resource[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	q := url.Values{"_t": {r.c.cacheBust()}}
	err := r.c.do(ctx, http.MethodGet, r.path+"/"+id, q, nil, &out)
	return out, err
}

func (r resource[T]) Create(ctx context.Context, fields any) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPost, r.path, nil, fields, &out)
	return out, err
}

func (r resource[T]) Update(ctx context.Context, id string, fields any) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPut, r.path+"/"+id, nil, fields, &out)
	return out, err
}

func (r resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil, nil)
}

// UserFields is the writable subset of a user record.
type UserFields struct {
	Name            string `json:"name"`
	Position        string `json:"position"`
	RoleDescription string `json:"role_description"`
}

// TaskFields is the writable subset of a task record. DueDate marshals as
// null when unset, matching what the backend expects for "no due date".
type TaskFields struct {
	Title         string         `json:"title"`
	AssigneeID    string         `json:"assignee_id"`
	DueDate       *time.Time     `json:"due_date"`
	Priority      model.Priority `json:"priority"`
	Status        model.Status   `json:"status"`
	RequesterName string         `json:"requester_name"`
	Description   string         `json:"description"`
}

// CommentFields is the writable subset of a comment. The creation timestamp
// is stamped client-side by Comments.Create, not by callers.
type CommentFields struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type Users struct{ resource[model.User] }

type Tasks struct{ resource[model.Task] }

type Comments struct{ resource[model.Comment] }

func (c *Client) Users() Users {
	return Users{resource[model.User]{c: c, path: "users", defaultLimit: 100}}
}

func (c *Client) Tasks() Tasks {
	return Tasks{resource[model.Task]{c: c, path: "tasks", defaultLimit: 100, defaultSort: "due_date"}}
}

func (c *Client) Comments() Comments {
	return Comments{resource[model.Comment]{c: c, path: "comments", defaultLimit: 50, defaultSort: "-created_at"}}
}

// Create stamps created_at at submission time before sending.
func (cm Comments) Create(ctx context.Context, fields CommentFields) (model.Comment, error) {
	payload := struct {
		CommentFields
		CreatedAt time.Time `json:"created_at"`
	}{CommentFields: fields, CreatedAt: cm.c.now()}
	return cm.resource.Create(ctx, payload)
}

func (u Users) Create(ctx context.Context, fields UserFields) (model.User, error) {
	return u.resource.Create(ctx, fields)
}

func (u Users) Update(ctx context.Context, id string, fields UserFields) (model.User, error) {
	return u.resource.Update(ctx, id, fields)
}

func (t Tasks) Create(ctx context.Context, fields TaskFields) (model.Task, error) {
	return t.resource.Create(ctx, fields)
}

func (t Tasks) Update(ctx context.Context, id string, fields TaskFields) (model.Task, error) {
	return t.resource.Update(ctx, id, fields)
}
