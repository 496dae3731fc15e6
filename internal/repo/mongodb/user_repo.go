package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
)

var (
	ErrNotFound         = errors.New("user profile not found")
	ErrInvalidID        = errors.New("invalid user id")
	ErrCorruptRecord    = errors.New("stored profile is corrupt")
	ErrStoreUnavailable = errors.New("record store is unavailable")
)

// userDocument is the storage shape. Date and time-of-birth are kept as
// canonical strings so records stay readable in the shell and parse strictly
// on the way out.
type userDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	DateOfBirth string             `bson:"date_of_birth"`
	TimeOfBirth string             `bson:"time_of_birth"`
	Gender      string             `bson:"gender"`
	State       string             `bson:"state"`
	City        string             `bson:"city"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo accepts a nil client so the app can start in degraded mode;
// calls then fail with ErrStoreUnavailable instead of panicking.
func NewUserRepo(client *mongo.Client, database, collection string) *UserRepo {
	if client == nil {
		return &UserRepo{}
	}
	return &UserRepo{coll: client.Database(database).Collection(collection)}
}

func (r *UserRepo) Insert(ctx context.Context, profile model.UserProfile) (string, error) {
	if r.coll == nil {
		return "", ErrStoreUnavailable
	}

	doc := userDocument{
		Name:        profile.Name,
		DateOfBirth: profile.DateOfBirth.String(),
		TimeOfBirth: profile.TimeOfBirth.String(),
		Gender:      string(profile.Gender),
		State:       profile.State,
		City:        profile.City,
		CreatedAt:   profile.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", storeErr("insert user profile", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (model.UserProfile, error) {
	if r.coll == nil {
		return model.UserProfile{}, ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.UserProfile{}, ErrNotFound
		}
		return model.UserProfile{}, storeErr("find user profile", err)
	}

	return docToProfile(doc)
}

// storeErr classifies driver failures. Network and timeout errors (including
// server selection running out of time) mean the store is unreachable;
// everything else keeps its cause.
func storeErr(op string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func docToProfile(doc userDocument) (model.UserProfile, error) {
	dob, err := model.ParseDate(doc.DateOfBirth)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: date_of_birth: %v", ErrCorruptRecord, err)
	}
	tob, err := model.ParseClockTime(doc.TimeOfBirth)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: time_of_birth: %v", ErrCorruptRecord, err)
	}
	gender := enums.Gender(doc.Gender)
	if !gender.Valid() {
		return model.UserProfile{}, fmt.Errorf("%w: gender %q", ErrCorruptRecord, doc.Gender)
	}

	return model.UserProfile{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		DateOfBirth: dob,
		TimeOfBirth: tob,
		Gender:      gender,
		State:       doc.State,
		City:        doc.City,
		CreatedAt:   doc.CreatedAt,
	}, nil
}
