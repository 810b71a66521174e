package comments

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ktap/pkg/common"
)

var ErrNotFound = errors.New("comment not found")

type CommentRepoMongo struct {
	collection common.CollectionHelper
}

func NewCommentsRepoMongo(db *mongo.Database) *CommentRepoMongo {
	return &CommentRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("comments")}}
}

func (repo *CommentRepoMongo) GetByItemID(ctx context.Context, itemID interface{}, skip, limit int) ([]*Comment, error) {
	cur, err := repo.collection.Find(ctx, bson.M{"itemID": itemID}, common.PageOptions(skip, limit))
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	comments := []*Comment{}
	err = cur.All(ctx, &comments)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (repo *CommentRepoMongo) CountByItemID(ctx context.Context, itemID interface{}) (int64, error) {
	return repo.collection.CountDocuments(ctx, bson.M{"itemID": itemID})
}

func (repo *CommentRepoMongo) GetByID(ctx context.Context, id interface{}) (*Comment, error) {
	c := &Comment{}
	err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(c)
	if common.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (repo *CommentRepoMongo) Add(ctx context.Context, comment *Comment) (interface{}, error) {
	res, err := repo.collection.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

func (repo *CommentRepoMongo) Delete(ctx context.Context, id interface{}) (bool, error) {
	res, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return res.GetDeletedCount() > 0, nil
}

func (repo *CommentRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
