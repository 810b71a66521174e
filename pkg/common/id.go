package common

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func HexID(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	}
	return fmt.Sprint(id)
}
