package handlers

import (
	"context"

	"ktap/pkg/comments"
	"ktap/pkg/content"
	"ktap/pkg/gifts"
	"ktap/pkg/items"
	"ktap/pkg/user"
)

type UsersRepo interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Add(ctx context.Context, u *user.User) (int64, error)
}

type ItemsRepo interface {
	List(ctx context.Context, kind content.Kind, parentID string, skip, limit int) ([]*items.Item, int64, error)
	GetByID(ctx context.Context, scope items.Scope, id interface{}) (*items.Item, error)
	Add(ctx context.Context, it *items.Item) (interface{}, error)
	Vote(ctx context.Context, scope items.Scope, id interface{}, userID int64, v items.VoteValue) (*items.Item, error)
	Report(ctx context.Context, scope items.Scope, id interface{}, userID int64, reason string) error

	ParseID(string) (interface{}, error)
}

type CommentsRepo interface {
	GetByItemID(ctx context.Context, itemID interface{}, skip, limit int) ([]*comments.Comment, error)
	CountByItemID(ctx context.Context, itemID interface{}) (int64, error)
	GetByID(ctx context.Context, id interface{}) (*comments.Comment, error)
	Add(ctx context.Context, c *comments.Comment) (interface{}, error)
	Delete(ctx context.Context, id interface{}) (bool, error)

	ParseID(string) (interface{}, error)
}

type GiftsRepo interface {
	List(ctx context.Context) ([]*content.Gift, error)
	Receipts(ctx context.Context, kind content.Kind, itemID string) ([]*content.GiftReceipt, int64, error)
	Send(ctx context.Context, s *gifts.Send) (int64, error)
}

type IconSigner interface {
	Sign(ctx context.Context, key string) (string, error)
}
