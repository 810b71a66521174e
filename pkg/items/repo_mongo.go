package items

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ktap/pkg/common"
	"ktap/pkg/content"
)

var (
	ErrNotFound        = errors.New("item not found")
	ErrAlreadyReported = errors.New("item already reported by this user")
)

type ItemsRepoMongo struct {
	collection common.CollectionHelper
}

func NewItemsRepoMongo(db *mongo.Database) *ItemsRepoMongo {
	return &ItemsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("items")}}
}

func filterFor(kind content.Kind, parentID string) bson.M {
	f := bson.M{"kind": kind}
	if parentID != "" {
		f["parentID"] = parentID
	}
	return f
}

func (r *ItemsRepoMongo) List(ctx context.Context, kind content.Kind, parentID string, skip, limit int) ([]*Item, int64, error) {
	filter := filterFor(kind, parentID)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := r.collection.Find(ctx, filter, common.PageOptions(skip, limit))
	if err != nil {
		return nil, 0, err
	}

	defer cur.Close(ctx)

	items := []*Item{}
	err = cur.All(ctx, &items)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Scope says where a single item must live. Discussion posts are bound to
// their discussion; reviews are addressed by id alone.
type Scope struct {
	Kind     content.Kind
	ParentID string
}

func (s Scope) byID(id interface{}) bson.M {
	f := bson.M{"_id": id, "kind": s.Kind}
	if s.Kind == content.DiscussionPost && s.ParentID != "" {
		f["parentID"] = s.ParentID
	}
	return f
}

func (r *ItemsRepoMongo) GetByID(ctx context.Context, scope Scope, id interface{}) (*Item, error) {
	it := &Item{}
	err := r.collection.FindOne(ctx, scope.byID(id)).Decode(it)
	if common.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return it, nil
}

func (r *ItemsRepoMongo) Add(ctx context.Context, it *Item) (interface{}, error) {
	it.Votes = map[string]VoteValue{}
	it.Reports = map[string]string{}
	res, err := r.collection.InsertOne(ctx, it)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

// Vote toggles the user's vote: voting the current direction again clears it.
func (r *ItemsRepoMongo) Vote(ctx context.Context, scope Scope, id interface{}, userID int64, v VoteValue) (*Item, error) {
	it, err := r.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	field := "votes." + userKey(userID)
	var update bson.D
	if v == Unvote || it.VoteOf(userID) == v {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: field, Value: ""}}}}
	} else {
		update = bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: v}}}}
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, scope, id)
}

func (r *ItemsRepoMongo) Report(ctx context.Context, scope Scope, id interface{}, userID int64, reason string) error {
	field := "reports." + userKey(userID)
	filter := scope.byID(id)
	filter[field] = bson.M{"$exists": false}
	res, err := r.collection.UpdateOne(ctx, filter,
		bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: reason}}}})
	if err != nil {
		return err
	}

	if res.GetMatchedCount() == 0 {
		if _, err := r.GetByID(ctx, scope, id); err != nil {
			return err
		}
		return ErrAlreadyReported
	}

	return nil
}

func (r *ItemsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
