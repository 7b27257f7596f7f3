package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is an uploaded image with its comments embedded in document
// insertion order. LikeCount is a stored projection of len(LikedBy); the two
// are always written together in one update so they cannot drift apart.
type Photo struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	FileName  string               `json:"file_name" bson:"file_name"`
	DateTime  time.Time            `json:"date_time" bson:"date_time"`
	UserID    primitive.ObjectID   `json:"user_id" bson:"user_id"`
	Comments  []Comment            `json:"comments" bson:"comments"`
	LikeCount int                  `json:"like_count" bson:"like_count"`
	LikedBy   []primitive.ObjectID `json:"liked_by" bson:"liked_by"`
}

// LikedByUser reports whether the user id is in the photo's liked-by set.
func (p *Photo) LikedByUser(userID primitive.ObjectID) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
