package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
)

type UserRepository struct {
	collection *mongo.Collection
}

type userDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Password        string             `bson:"password"`
	ProfileImageURL *string            `bson:"profileImageUrl"`
	Role            string             `bson:"role"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{collection: database.Collection(usersCollection)}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.User{}, domain.ErrUserNotFound
	}

	var doc userDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserDocToDomainUser(doc), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			// Dangling references are skipped, not fatal.
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	if len(objectIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, mapUserDocToDomainUser(doc))
	}

	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserDocToDomainUser(doc), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, bson.M{})
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	return r.list(ctx, bson.M{"role": string(role)})
}

func (r *UserRepository) list(ctx context.Context, filter bson.M) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, mapUserDocToDomainUser(doc))
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	now := time.Now().UTC()
	doc := userDoc{
		ID:              primitive.NewObjectID(),
		Name:            user.Name,
		Email:           user.Email,
		Password:        user.Password,
		ProfileImageURL: user.ProfileImageURL,
		Role:            string(user.Role),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.User{}, domain.ErrUserAlreadyExists
		}
		return domain.User{}, err
	}

	return mapUserDocToDomainUser(doc), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.User{}, domain.ErrUserNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":            user.Name,
		"email":           user.Email,
		"password":        user.Password,
		"profileImageUrl": user.ProfileImageURL,
		"updatedAt":       time.Now().UTC(),
	}}

	var doc userDoc
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return domain.User{}, domain.ErrUserAlreadyExists
		}
		return domain.User{}, err
	}

	return mapUserDocToDomainUser(doc), nil
}

func mapUserDocToDomainUser(doc userDoc) domain.User {
	return domain.User{
		ID:              doc.ID.Hex(),
		Name:            doc.Name,
		Email:           doc.Email,
		Password:        doc.Password,
		ProfileImageURL: doc.ProfileImageURL,
		Role:            domain.UserRole(doc.Role),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
