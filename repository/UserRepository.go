// Package repository wraps the MongoDB collections behind interfaces so the
// controllers can be exercised without a live store. Toggle methods fold
// their membership precondition into the update filter, making each toggle a
// single atomic store operation.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"photoshare/models"
)

// ErrNotFound is returned by lookup methods when no document matches.
var ErrNotFound = errors.New("document not found")

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByLoginName(ctx context.Context, loginName string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetLastActivity(ctx context.Context, id primitive.ObjectID, activity string) error

	// AddFavorite atomically inserts photoID into the user's favorite set,
	// provided it is not already a member. The returned bool reports whether
	// the update matched; false means the user is missing or the photo was
	// already favorited, which the caller disambiguates with a read.
	AddFavorite(ctx context.Context, userID, photoID primitive.ObjectID) (bool, error)

	// RemoveFavorite is the mirror of AddFavorite: it matches only while
	// photoID is a member of the favorite set.
	RemoveFavorite(ctx context.Context, userID, photoID primitive.ObjectID) (bool, error)
}

type mongoUserRepository struct {
	col *mongo.Collection
}

// NewUserRepository builds the MongoDB-backed UserRepository.
func NewUserRepository(col *mongo.Collection) UserRepository {
	return &mongoUserRepository{col: col}
}

func (r *mongoUserRepository) Insert(ctx context.Context, user *models.User) error {
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) FindByLoginName(ctx context.Context, loginName string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"login_name": loginName}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoUserRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoUserRepository) SetLastActivity(ctx context.Context, id primitive.ObjectID, activity string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_activity": activity}})
	return err
}

func (r *mongoUserRepository) AddFavorite(ctx context.Context, userID, photoID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": userID, "favorite_photos": bson.M{"$ne": photoID}}
	update := bson.M{"$addToSet": bson.M{"favorite_photos": photoID}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *mongoUserRepository) RemoveFavorite(ctx context.Context, userID, photoID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": userID, "favorite_photos": photoID}
	update := bson.M{"$pull": bson.M{"favorite_photos": photoID}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}
