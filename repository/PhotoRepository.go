package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photoshare/models"
)

type PhotoRepository interface {
	Insert(ctx context.Context, photo *models.Photo) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Photo, error)

	// FindByOwner returns the owner's photos in the store's natural return
	// order. This order is the canonical per-owner photo ordering: clients
	// address photos by their position in it, so every caller must preserve
	// it and never re-sort. OwnerPhotoIDs observes the same order.
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Photo, error)
	OwnerPhotoIDs(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error)

	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Photo, error)

	// FindByCommenter returns every photo containing at least one comment
	// authored by the user, regardless of who owns the photo.
	FindByCommenter(ctx context.Context, userID primitive.ObjectID) ([]models.Photo, error)

	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)

	// AddLike atomically inserts userID into the photo's liked-by set and
	// increments the stored like count in the same update, provided the user
	// is not already a member. False means the photo is missing or the like
	// was already present; the caller disambiguates with a read.
	AddLike(ctx context.Context, photoID, userID primitive.ObjectID) (bool, error)

	// RemoveLike is the mirror of AddLike: membership removal and counter
	// decrement in one update, matching only while the like is present. The
	// pairing keeps like_count equal to the set size at all times.
	RemoveLike(ctx context.Context, photoID, userID primitive.ObjectID) (bool, error)

	// AppendComment pushes the comment onto the photo's embedded comment
	// list. False means no photo matched.
	AppendComment(ctx context.Context, photoID primitive.ObjectID, comment models.Comment) (bool, error)
}

type mongoPhotoRepository struct {
	col *mongo.Collection
}

// NewPhotoRepository builds the MongoDB-backed PhotoRepository.
func NewPhotoRepository(col *mongo.Collection) PhotoRepository {
	return &mongoPhotoRepository{col: col}
}

func (r *mongoPhotoRepository) Insert(ctx context.Context, photo *models.Photo) error {
	_, err := r.col.InsertOne(ctx, photo)
	return err
}

func (r *mongoPhotoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Photo, error) {
	var photo models.Photo
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *mongoPhotoRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Photo, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return nil, err
	}
	var photos []models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *mongoPhotoRepository) OwnerPhotoIDs(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids, nil
}

func (r *mongoPhotoRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Photo, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var photos []models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *mongoPhotoRepository) FindByCommenter(ctx context.Context, userID primitive.ObjectID) ([]models.Photo, error) {
	cursor, err := r.col.Find(ctx, bson.M{"comments.user_id": userID})
	if err != nil {
		return nil, err
	}
	var photos []models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *mongoPhotoRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"user_id": ownerID})
}

func (r *mongoPhotoRepository) AddLike(ctx context.Context, photoID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": photoID, "liked_by": bson.M{"$ne": userID}}
	update := bson.M{
		"$addToSet": bson.M{"liked_by": userID},
		"$inc":      bson.M{"like_count": 1},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *mongoPhotoRepository) RemoveLike(ctx context.Context, photoID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": photoID, "liked_by": userID}
	update := bson.M{
		"$pull": bson.M{"liked_by": userID},
		"$inc":  bson.M{"like_count": -1},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *mongoPhotoRepository) AppendComment(ctx context.Context, photoID primitive.ObjectID, comment models.Comment) (bool, error) {
	update := bson.M{"$push": bson.M{"comments": comment}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": photoID}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}
