package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tailyapp/taily-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Array paths of the embedded collections inside a pet document.
const (
	PathSchedules      = "passport.schedules"
	PathPetCare        = "petCare"
	PathMedicalRecords = "medicalRecords"
	PathPetIDs         = "petIds"
)

type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error)
	List(ctx context.Context) ([]*models.Pet, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Pet, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Pet, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Pet, error)

	// PushEmbedded atomically appends an entry to the array at path and
	// returns the updated document.
	PushEmbedded(ctx context.Context, petID primitive.ObjectID, path string, entry any) (*models.Pet, error)
	// SetEmbedded atomically replaces the array entry matched by the
	// (pet id, entry id) pair using the positional operator. ErrNotFound
	// means either identifier failed to match; the two cases are not
	// distinguishable from a single filtered update.
	SetEmbedded(ctx context.Context, petID, entryID primitive.ObjectID, path string, entry any) (*models.Pet, error)
	// PullEmbedded atomically removes the array entry matched by entry id.
	PullEmbedded(ctx context.Context, petID, entryID primitive.ObjectID, path string) (*models.Pet, error)
}

type petRepo struct {
	collection *mongo.Collection
}

func NewPetRepository(db *DB) PetRepository {
	return &petRepo{
		collection: db.Database.Collection(petsCollection),
	}
}

func (r *petRepo) Create(ctx context.Context, pet *models.Pet) error {
	pet.ID = primitive.NewObjectID()
	pet.CreatedAt = time.Now()
	pet.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, pet)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	var pet models.Pet
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return &pet, nil
}

func (r *petRepo) List(ctx context.Context) ([]*models.Pet, error) {
	return r.find(ctx, bson.M{})
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Pet, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID})
}

func (r *petRepo) find(ctx context.Context, filter bson.M) ([]*models.Pet, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer cursor.Close(ctx)

	pets := []*models.Pet{}
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("failed to decode pets: %w", err)
	}
	return pets, nil
}

func (r *petRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Pet, error) {
	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pet models.Pet
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}
	return &pet, nil
}

func (r *petRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	var pet models.Pet
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete pet: %w", err)
	}
	return &pet, nil
}

func (r *petRepo) PushEmbedded(ctx context.Context, petID primitive.ObjectID, path string, entry any) (*models.Pet, error) {
	update := bson.M{
		"$push": bson.M{path: entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pet models.Pet
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": petID}, update, opts).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to push %s entry: %w", path, err)
	}
	return &pet, nil
}

func (r *petRepo) SetEmbedded(ctx context.Context, petID, entryID primitive.ObjectID, path string, entry any) (*models.Pet, error) {
	filter := bson.M{
		"_id":         petID,
		path + "._id": entryID,
	}
	update := bson.M{
		"$set": bson.M{
			path + ".$": entry,
			"updatedAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pet models.Pet
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s entry: %w", path, err)
	}
	return &pet, nil
}

func (r *petRepo) PullEmbedded(ctx context.Context, petID, entryID primitive.ObjectID, path string) (*models.Pet, error) {
	update := bson.M{
		"$pull": bson.M{path: bson.M{"_id": entryID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pet models.Pet
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": petID}, update, opts).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to remove %s entry: %w", path, err)
	}
	return &pet, nil
}
