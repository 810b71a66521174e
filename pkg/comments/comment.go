package comments

import "time"

type Comment struct {
	ID       interface{} `bson:"_id,omitempty"`
	ItemID   interface{} `bson:"itemID"`
	AuthorID int64       `bson:"authorID"`
	Body     string      `bson:"body"`
	Created  time.Time   `bson:"created"`
}
