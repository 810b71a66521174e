package items

import (
	"strconv"
	"time"

	"ktap/pkg/content"
)

type VoteValue int8

const (
	Downvote VoteValue = iota - 1
	Unvote
	Upvote
)

func VoteFromReaction(r content.Reaction) VoteValue {
	switch r {
	case content.Up:
		return Upvote
	case content.Down:
		return Downvote
	}
	return Unvote
}

func (v VoteValue) Reaction() content.Reaction {
	switch v {
	case Upvote:
		return content.Up
	case Downvote:
		return content.Down
	}
	return content.None
}

// Item is the stored form of a review or a discussion post. Votes and
// Reports are keyed by the decimal user id.
type Item struct {
	ID       interface{}          `bson:"_id,omitempty"`
	Kind     content.Kind         `bson:"kind"`
	ParentID string               `bson:"parentID"`
	Title    string               `bson:"title"`
	Content  string               `bson:"content"`
	Score    int                  `bson:"score"`
	AuthorID int64                `bson:"authorID"`
	Created  time.Time            `bson:"created"`
	Votes    map[string]VoteValue `bson:"votes"`
	Reports  map[string]string    `bson:"reports"`
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func (it *Item) Thumbs() *content.Thumbs {
	t := &content.Thumbs{}
	for _, v := range it.Votes {
		switch v {
		case Upvote:
			t.Ups++
		case Downvote:
			t.Downs++
		}
	}
	return t
}

func (it *Item) VoteOf(userID int64) VoteValue {
	return it.Votes[userKey(userID)]
}

func (it *Item) ReportedBy(userID int64) bool {
	_, ok := it.Reports[userKey(userID)]
	return ok
}
