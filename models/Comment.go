package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is embedded in exactly one photo and is immutable once written.
type Comment struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Text     string             `json:"comment" bson:"comment"`
	DateTime time.Time          `json:"date_time" bson:"date_time"`
	UserID   primitive.ObjectID `json:"user_id" bson:"user_id"`
}
