package repository

import (
	"context"
	"errors"
	"time"

	"github.com/campventure/summer-camp-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		coll: db.Collection(usersCollection),
	}
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (doc userDocument) toDomain() domain.User {
	return domain.User{
		ID:        doc.ID,
		Email:     doc.Email,
		Name:      doc.Name,
		Role:      domain.Role(doc.Role),
		CreatedAt: doc.CreatedAt,
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	// Emails are a natural key; sign-in retries must not create
	// duplicate records.
	err := r.coll.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	doc := userDocument{
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: time.Now().UTC(),
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	user.CreatedAt = doc.CreatedAt

	return nil
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument

	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	user := doc.toDomain()

	return &user, nil
}

func (r *MongoUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]domain.User, len(docs))
	for i, doc := range docs {
		users[i] = doc.toDomain()
	}

	return users, nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *MongoUserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	update := bson.M{"$set": bson.M{"role": string(role)}}

	result, err := r.coll.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
