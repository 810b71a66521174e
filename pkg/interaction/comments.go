package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"ktap/pkg/api"
	"ktap/pkg/content"
)

const CommentMaxLength = 1000

var ErrNotAuthor = errors.New("only the author can delete a comment")

type CommentsAPI interface {
	Comments(ctx context.Context, e api.Endpoint, id string, skip, limit int64) (*content.Page[*content.Comment], error)
	AddComment(ctx context.Context, e api.Endpoint, id, body string) (*content.Comment, error)
	DeleteComment(ctx context.Context, e api.Endpoint, id, commentID string) error
}

// CommentThread is the comment list under one item.
type CommentThread struct {
	*Loader[*content.Comment]

	item     *content.Item
	endpoint api.Endpoint
	api      CommentsAPI
	guard    *Guard
}

func NewCommentThread(item *content.Item, endpoint api.Endpoint, comments CommentsAPI, guard *Guard, limit int64) *CommentThread {
	t := &CommentThread{item: item, endpoint: endpoint, api: comments, guard: guard}
	t.Loader = NewLoader[*content.Comment](limit, func(ctx context.Context, skip, limit int64) (*content.Page[*content.Comment], error) {
		return comments.Comments(ctx, endpoint, item.ID, skip, limit)
	}, func(c *content.Comment) string { return c.ID })
	return t
}

func (t *CommentThread) Load(ctx context.Context) error {
	if err := t.Loader.Load(ctx); err != nil {
		return t.guard.fail(ctx, err)
	}
	return nil
}

func (t *CommentThread) LoadMore(ctx context.Context) error {
	if err := t.Loader.LoadMore(ctx); err != nil {
		return t.guard.fail(ctx, err)
	}
	return nil
}

func (t *CommentThread) Submit(ctx context.Context, body string) (*content.Comment, error) {
	if _, err := t.guard.requireUser(); err != nil {
		return nil, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &api.ValidationError{Message: "comment cannot be blank"}
	}
	if utf8.RuneCountInString(body) > CommentMaxLength {
		return nil, &api.ValidationError{Message: fmt.Sprintf("comment must be at most %d characters long", CommentMaxLength)}
	}

	c, err := t.api.AddComment(ctx, t.endpoint, t.item.ID, body)
	if err != nil {
		return nil, t.guard.fail(ctx, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.Prepend(c)
	t.item.AddComments(1)
	return c, nil
}

func (t *CommentThread) CanDelete(c *content.Comment) bool {
	u := t.guard.Session.User()
	return u != nil && c != nil && c.User != nil && c.User.ID == u.ID
}

func (t *CommentThread) Delete(ctx context.Context, c *content.Comment) error {
	if _, err := t.guard.requireUser(); err != nil {
		return err
	}
	if !t.CanDelete(c) {
		return ErrNotAuthor
	}

	if err := t.api.DeleteComment(ctx, t.endpoint, t.item.ID, c.ID); err != nil {
		return t.guard.fail(ctx, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.Remove(c.ID) {
		t.item.AddComments(-1)
	}
	return nil
}
